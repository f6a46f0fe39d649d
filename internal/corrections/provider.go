// Package corrections talks to the upstream AI service that detects
// grammar mistakes in learner text. It returns plain correction triples;
// classification and everything downstream never touch a model directly.
package corrections

import (
	"context"
	"encoding/json"
	"fmt"
)

// Triple is one detected error: the problematic fragment, its corrected
// form, and an optional free-text description of the issue.
type Triple struct {
	Issue      string `json:"issue,omitempty"`
	Example    string `json:"example"`
	Suggestion string `json:"suggestion"`
}

// Provider is the core abstraction for the upstream correction source.
type Provider interface {
	// Corrections analyzes French text and returns the detected errors.
	// An empty slice means the text had no detectable mistakes.
	Corrections(ctx context.Context, text string) ([]Triple, error)

	// ModelID returns the model identifier this provider is configured
	// to use.
	ModelID() string
}

const systemPrompt = `You are a French grammar checker. Given French text,
find every grammar mistake. For each mistake report the exact erroneous
fragment ("example"), the corrected fragment ("suggestion"), and a short
English description of the issue ("issue"). Report only real mistakes; an
empty list is a valid answer. Respond with JSON only.`

func userPrompt(text string) string {
	return fmt.Sprintf("Find the grammar mistakes in this French text:\n\n%s", text)
}

// schemaName identifies the corrections schema for providers that need a
// named structured-output format.
const schemaName = "grammar-corrections"

// correctionsSchema is the JSON Schema every provider response must
// conform to.
var correctionsSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"corrections": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"issue":      map[string]any{"type": "string"},
					"example":    map[string]any{"type": "string"},
					"suggestion": map[string]any{"type": "string"},
				},
				"required": []any{"example", "suggestion"},
			},
		},
	},
	"required": []any{"corrections"},
}

// parseTriples validates and decodes a provider's raw JSON response.
func parseTriples(raw json.RawMessage) ([]Triple, error) {
	if err := validateResponse(raw); err != nil {
		return nil, err
	}
	var payload struct {
		Corrections []Triple `json:"corrections"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, &ErrInvalidResponse{Content: raw, Err: err}
	}
	return payload.Corrections, nil
}

// resolveModel maps a friendly model name to a provider model ID.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	// If not in the map, use as-is (allows direct model IDs).
	return name
}
