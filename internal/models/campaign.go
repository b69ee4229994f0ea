package models

import "strings"

type Goal string

const (
	GoalLeads       Goal = "Leads generieren"
	GoalPurchases   Goal = "Kaufabschluesse steigern"
	GoalNewsletter  Goal = "Newsletter-Anmeldungen"
	GoalAppDownload Goal = "App-Downloads"
	GoalEventSignup Goal = "Event-Anmeldungen"
)

type Tone string

const (
	ToneProfessional Tone = "Professionell"
	ToneCasual       Tone = "Locker"
	ToneMotivating   Tone = "Motivierend"
	ToneHumorous     Tone = "Humorvoll"
	ToneEnthusiastic Tone = "Begeistert"
	ToneInformative  Tone = "Informativ"
	ToneSerious      Tone = "Serioes"
	ToneEmotional    Tone = "Emotional"
)

type Language string

const (
	LanguageGerman  Language = "Deutsch"
	LanguageEnglish Language = "Englisch"
)

// Defaults used when a field is left empty.
const (
	DefaultGoal     = GoalLeads
	DefaultTone     = ToneInformative
	DefaultLanguage = LanguageGerman
)

var (
	Goals     = []Goal{GoalLeads, GoalPurchases, GoalNewsletter, GoalAppDownload, GoalEventSignup}
	Tones     = []Tone{ToneProfessional, ToneCasual, ToneMotivating, ToneHumorous, ToneEnthusiastic, ToneInformative, ToneSerious, ToneEmotional}
	Languages = []Language{LanguageGerman, LanguageEnglish}
)

func (g Goal) Valid() bool {
	for _, known := range Goals {
		if g == known {
			return true
		}
	}
	return false
}

func (t Tone) Valid() bool {
	for _, known := range Tones {
		if t == known {
			return true
		}
	}
	return false
}

func (l Language) Valid() bool {
	for _, known := range Languages {
		if l == known {
			return true
		}
	}
	return false
}

// CampaignRequest carries the form fields of one generation request.
type CampaignRequest struct {
	Product  string   `json:"product" form:"product"`
	Audience string   `json:"audience" form:"audience"`
	Goal     Goal     `json:"goal" form:"goal"`
	Tone     Tone     `json:"tone" form:"tone"`
	Extra    string   `json:"extra" form:"extra"`
	Language Language `json:"language" form:"language"`
}

// WithDefaults returns a copy with blank enumerations replaced by their defaults.
func (r CampaignRequest) WithDefaults() CampaignRequest {
	if strings.TrimSpace(string(r.Goal)) == "" {
		r.Goal = DefaultGoal
	}
	if strings.TrimSpace(string(r.Tone)) == "" {
		r.Tone = DefaultTone
	}
	if strings.TrimSpace(string(r.Language)) == "" {
		r.Language = DefaultLanguage
	}
	r.Goal = Goal(strings.TrimSpace(string(r.Goal)))
	r.Tone = Tone(strings.TrimSpace(string(r.Tone)))
	r.Language = Language(strings.TrimSpace(string(r.Language)))
	return r
}

type RefineRequest struct {
	CurrentOutput string `json:"current_output" form:"current_output"`
	Instruction   string `json:"instruction" form:"instruction"`
}

type ResultResponse struct {
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Options lists the selectable enumerations and their defaults.
type Options struct {
	Goals           []Goal     `json:"goals"`
	Tones           []Tone     `json:"tones"`
	Languages       []Language `json:"languages"`
	DefaultGoal     Goal       `json:"default_goal"`
	DefaultTone     Tone       `json:"default_tone"`
	DefaultLanguage Language   `json:"default_language"`
}

func DefaultOptions() Options {
	return Options{
		Goals:           Goals,
		Tones:           Tones,
		Languages:       Languages,
		DefaultGoal:     DefaultGoal,
		DefaultTone:     DefaultTone,
		DefaultLanguage: DefaultLanguage,
	}
}
