package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-flash-lite", "gemini-2.0-flash-lite"},
		{"gemini-2.5-flash", "gemini-2.5-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"verdict": map[string]any{
				"type": "string",
				"enum": []any{"CORRECT", "INCORRECT"},
			},
			"confidence": map[string]any{"type": "number"},
			"reasoning":  map[string]any{"type": "string"},
			"evidence": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"verdict", "confidence"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["verdict"].Type != "STRING" {
		t.Fatalf("expected STRING for verdict, got %s", schema.Properties["verdict"].Type)
	}
	if len(schema.Properties["verdict"].Enum) != 2 {
		t.Fatalf("expected 2 enum values, got %d", len(schema.Properties["verdict"].Enum))
	}
	if schema.Properties["confidence"].Type != "NUMBER" {
		t.Fatalf("expected NUMBER for confidence, got %s", schema.Properties["confidence"].Type)
	}
	if schema.Properties["evidence"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for evidence, got %s", schema.Properties["evidence"].Type)
	}
	if schema.Properties["evidence"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for evidence items, got %s", schema.Properties["evidence"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
