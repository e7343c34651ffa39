package llm

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/genai"
)

func TestResolveModel(t *testing.T) {
	tests := []struct {
		name, want string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.name, geminiModels); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"headline": map[string]any{"type": "string", "description": "short"},
			"tips": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 1,
				"maxItems": float64(3),
			},
			"kind": map[string]any{"type": "string", "enum": []any{"a", "b"}},
		},
		"required": []string{"headline", "tips"},
	}

	one, three := int64(1), int64(3)
	want := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"headline": {Type: genai.TypeString, Description: "short"},
			"tips": {
				Type:     genai.TypeArray,
				Items:    &genai.Schema{Type: genai.TypeString},
				MinItems: &one,
				MaxItems: &three,
			},
			"kind": {Type: genai.TypeString, Enum: []string{"a", "b"}},
		},
		Required: []string{"headline", "tips"},
	}

	if diff := cmp.Diff(want, geminiSchema(def)); diff != "" {
		t.Fatalf("geminiSchema mismatch (-want +got):\n%s", diff)
	}
}

func TestGeminiContents_Roles(t *testing.T) {
	out := geminiContents([]Message{
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello"},
	})
	if out[0].Role != genai.RoleUser || out[1].Role != genai.RoleModel {
		t.Fatalf("unexpected roles: %s, %s", out[0].Role, out[1].Role)
	}
}
