// Package agent describes this service to A2A clients.
package agent

import (
	"github.com/BerylCAtieno/persona-marketing-agent/internal/prompts"
)

const (
	Name        = "Persona Marketing Agent"
	Version     = "1.0.0"
	Description = "Erstellt 3 Marketing-Personas und darauf abgestimmtes Messaging (Value Proposition, CTA, Ad Copy, Keywords) und ueberarbeitet das Ergebnis auf Anweisung."
	A2APath     = "/a2a/marketing"
)

type Card struct {
	Name               string       `json:"name"`
	Description        string       `json:"description"`
	URL                string       `json:"url"`
	Version            string       `json:"version"`
	Capabilities       Capabilities `json:"capabilities"`
	DefaultInputModes  []string     `json:"defaultInputModes"`
	DefaultOutputModes []string     `json:"defaultOutputModes"`
	Skills             []Skill      `json:"skills"`
}

type Capabilities struct {
	Streaming              bool `json:"streaming"`
	PushNotifications      bool `json:"pushNotifications"`
	StateTransitionHistory bool `json:"stateTransitionHistory"`
}

type Skill struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
	Examples    []string `json:"examples,omitempty"`
}

// NewCard builds the agent card served at /.well-known/agent.json.
// baseURL is the externally reachable root of this service.
func NewCard(baseURL string) Card {
	return Card{
		Name:        Name,
		Description: Description,
		URL:         baseURL + A2APath,
		Version:     Version,
		Capabilities: Capabilities{
			Streaming: false,
		},
		DefaultInputModes:  []string{"text", "data"},
		DefaultOutputModes: []string{"text"},
		Skills: []Skill{
			{
				ID:          "generate_personas_messaging",
				Name:        "Personas und Messaging erstellen",
				Description: prompts.PersonaAgentDescription + " " + prompts.MessagingAgentDescription,
				Tags:        []string{"marketing", "persona", "messaging"},
				Examples: []string{
					"Produkt: Eco Water Bottle\nZielgruppe: Studierende\nMarketingziel: Leads generieren\nTon: Informativ\nSprache: Deutsch",
				},
			},
			{
				ID:          "refine_output",
				Name:        "Ergebnis verfeinern",
				Description: "Ueberarbeitet ein bestehendes Ergebnis gemaess einer freien Anweisung.",
				Tags:        []string{"marketing", "refinement"},
				Examples: []string{
					"Anweisung: CTA kuerzer\nErgebnis: ---\nPERSONAS\n...",
				},
			},
		},
	}
}
