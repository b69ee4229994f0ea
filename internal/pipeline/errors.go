package pipeline

import "errors"

// User-facing messages. They are returned verbatim by Error().
const (
	MsgProductMissing     = "Fehler: Bitte ein Produkt oder Thema eingeben."
	MsgAudienceMissing    = "Fehler: Bitte eine Zielgruppe eingeben."
	MsgGoalUnknown        = "Fehler: Unbekanntes Marketingziel."
	MsgToneUnknown        = "Fehler: Unbekannter Ton."
	MsgLanguageUnknown    = "Fehler: Nicht unterstuetzte Sprache."
	MsgNothingToRefine    = "Fehler: Bitte zuerst generieren."
	MsgInstructionMissing = "Fehler: Bitte eine Verfeinerungs-Anweisung eingeben."
	MsgNoPersonas         = "Fehler: Keine Personas generiert."
	MsgNoMessaging        = "Fehler: Kein Messaging generiert."
	MsgNoRefinement       = "Fehler: Keine ueberarbeitete Version generiert."
	MsgModelUnavailable   = "Fehler: Das Sprachmodell ist nicht erreichbar."
)

// ValidationError reports missing or unusable user input. No model call
// has been made when it is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// GenerationError reports an empty result from one pipeline stage.
type GenerationError struct {
	Stage   string
	Message string
}

func (e *GenerationError) Error() string {
	return e.Message
}

// UserMessage renders err as the localized string shown to the end user.
// Errors other than ValidationError and GenerationError come from the model
// transport and map to a generic message.
func UserMessage(err error) string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}
	var generationErr *GenerationError
	if errors.As(err, &generationErr) {
		return generationErr.Message
	}
	return MsgModelUnavailable
}

func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}
