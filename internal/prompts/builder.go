// Package prompts assembles the user prompts sent to the persona and
// messaging instruction personas. All functions are pure.
package prompts

import (
	"fmt"
	"strings"
)

// PersonaPrompt asks for exactly three differentiated personas.
func PersonaPrompt(product, audience, tone, extra, language string) string {
	parts := []string{
		"Erstelle genau 3 unterschiedliche Marketing-Personas.",
		"",
		fmt.Sprintf("Produkt/Thema: %s", product),
		fmt.Sprintf("Zielgruppe: %s", audience),
		fmt.Sprintf("Ton: %s", tone),
		fmt.Sprintf("Sprache: %s", language),
	}
	parts = appendExtra(parts, extra)
	parts = append(parts,
		"",
		"Gib NUR die 3 Personas im vorgegebenen Persona-Format zurueck. Keine Erklaerungen.",
	)
	return strings.Join(parts, "\n")
}

// MessagingPrompt asks for messaging per persona. personasText is embedded
// verbatim.
func MessagingPrompt(product, audience, goal, tone, extra, language, personasText string) string {
	parts := []string{
		"Erstelle Messaging fuer jede Persona (Value Proposition, CTA, Ad Copy, optional Keywords).",
		"",
		fmt.Sprintf("Produkt/Thema: %s", product),
		fmt.Sprintf("Zielgruppe: %s", audience),
		fmt.Sprintf("Marketingziel: %s", goal),
		fmt.Sprintf("Ton: %s", tone),
		fmt.Sprintf("Sprache: %s", language),
	}
	parts = appendExtra(parts, extra)
	parts = append(parts,
		"",
		"Hier sind die Personas:",
		personasText,
		"",
		"Gib NUR das Messaging im Messaging-Format zurueck (PERSONA 1/2/3 mit Value Proposition, CTA, Ad Copy, Keywords).",
		"Keine Erklaerungen, keine Meta-Kommentare.",
	)
	return strings.Join(parts, "\n")
}

// RefinementPrompt asks for a revision of currentOutput according to instruction.
func RefinementPrompt(currentOutput, instruction string) string {
	return fmt.Sprintf(`Ueberarbeite den folgenden Text gemaess der Anweisung.
Gib NUR den ueberarbeiteten Text zurueck.
Keine Erklaerungen, keine Ueberschriften, kein Zusatztext.

TEXT:
%s

ANWEISUNG:
%s`, currentOutput, instruction)
}

func appendExtra(parts []string, extra string) []string {
	extra = strings.TrimSpace(extra)
	if extra == "" {
		return parts
	}
	return append(parts, fmt.Sprintf("Zusatzinfos: %s", extra))
}
