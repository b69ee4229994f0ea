package a2a

import (
	"fmt"
	"strings"
)

// fieldAliases maps accepted labels (lower case) to request fields.
var fieldAliases = map[string]string{
	"product":        "product",
	"produkt":        "product",
	"thema":          "product",
	"produkt/thema":  "product",
	"audience":       "audience",
	"zielgruppe":     "audience",
	"goal":           "goal",
	"marketingziel":  "goal",
	"tone":           "tone",
	"ton":            "tone",
	"extra":          "extra",
	"zusatzinfos":    "extra",
	"language":       "language",
	"sprache":        "language",
	"instruction":    "instruction",
	"anweisung":      "instruction",
	"current_output": "current_output",
	"ergebnis":       "current_output",
}

// extractFields collects request fields from data parts (JSON objects) and
// from "Label: value" lines in text parts. A text part without any known
// label is taken as the product.
func extractFields(msg A2AMessage) map[string]string {
	fields := make(map[string]string)

	for _, part := range msg.Parts {
		switch part.Kind {
		case "data":
			if data, ok := part.Data.(map[string]any); ok {
				for key, value := range data {
					if value == nil {
						continue
					}
					if field, ok := fieldAliases[strings.ToLower(strings.TrimSpace(key))]; ok {
						fields[field] = strings.TrimSpace(fmt.Sprint(value))
					}
				}
			}
		case "text":
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			parsed := parseLabelledText(text)
			if len(parsed) == 0 {
				if _, ok := fields["product"]; !ok {
					fields["product"] = text
				}
				continue
			}
			for field, value := range parsed {
				fields[field] = value
			}
		}
	}
	return fields
}

// parseLabelledText reads "Label: value" lines. Lines without a known label
// continue the value of the previous label, so multi-line results survive.
// Inside a current_output value only an instruction label starts a new field.
func parseLabelledText(text string) map[string]string {
	values := make(map[string][]string)
	current := ""

	for _, line := range strings.Split(text, "\n") {
		if label, value, ok := strings.Cut(line, ":"); ok {
			field, known := fieldAliases[strings.ToLower(strings.TrimSpace(label))]
			if known && current == "current_output" && field != "instruction" {
				known = false
			}
			if known {
				current = field
				values[field] = []string{strings.TrimSpace(value)}
				continue
			}
		}
		if current != "" {
			values[current] = append(values[current], line)
		}
	}

	out := make(map[string]string, len(values))
	for field, lines := range values {
		out[field] = strings.TrimSpace(strings.Join(lines, "\n"))
	}
	return out
}
