package insight

import "github.com/abhisek/persona/internal/llm"

// ReflectionSchema is the structured output requested from the provider.
var ReflectionSchema = &llm.Schema{
	Name:        "type-reflection",
	Description: "A short personal reflection on a personality test result",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"headline": map[string]any{
				"type":        "string",
				"description": "One-line summary of the result (5-12 words)",
			},
			"reflection": map[string]any{
				"type":        "string",
				"description": "3-5 sentences reflecting on how the preferences combine, mentioning any balanced dimensions",
			},
			"growth_tips": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
				"maxItems":    3,
				"description": "1-3 practical suggestions (8-20 words each)",
			},
		},
		"required":             []any{"headline", "reflection", "growth_tips"},
		"additionalProperties": false,
	},
}
