package questionbank

// documentSchema is the JSON Schema a bank document must satisfy before the
// semantic checks in validate.go run.
var documentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version": map[string]any{
			"type":        "string",
			"description": "Bank format version, semantic version with a leading v",
		},
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":   map[string]any{"type": "integer", "minimum": 1},
					"text": map[string]any{"type": "string", "minLength": 1},
					"options": map[string]any{
						"type":     "array",
						"minItems": 2,
						"maxItems": 2,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"text":  map[string]any{"type": "string", "minLength": 1},
								"value": map[string]any{"type": "string", "enum": []any{"E", "I", "S", "N", "T", "F", "J", "P"}},
							},
							"required":             []any{"text", "value"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"id", "text", "options"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"version", "questions"},
	"additionalProperties": false,
}
