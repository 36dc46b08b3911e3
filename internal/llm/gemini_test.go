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
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
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
			"message":        map[string]any{"type": "string"},
			"followups_used": map[string]any{"type": "integer"},
			"action":         map[string]any{"type": "string", "enum": []any{"FOLLOWUP", "MOVE_TO_NEXT_QUESTION", "WRAP_UP"}},
			"quick_rubric": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "integer"},
			},
		},
		"required": []any{"message", "action"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["message"].Type != "STRING" {
		t.Fatalf("expected STRING for message, got %s", schema.Properties["message"].Type)
	}
	if schema.Properties["followups_used"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for followups_used, got %s", schema.Properties["followups_used"].Type)
	}
	if len(schema.Properties["action"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["action"].Enum))
	}
	if schema.Properties["quick_rubric"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for quick_rubric, got %s", schema.Properties["quick_rubric"].Type)
	}
	if schema.Properties["quick_rubric"].Items.Type != "INTEGER" {
		t.Fatalf("expected INTEGER for quick_rubric items, got %s", schema.Properties["quick_rubric"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
