package rewrite

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestInstruction(t *testing.T) {
	got := Instruction("Summarize this article.")

	if !strings.Contains(got, `"Summarize this article."`) {
		t.Errorf("instruction missing prompt text:\n%s", got)
	}
	if strings.Contains(got, "{{") {
		t.Error("unexpanded template markers in instruction")
	}
}

func TestSchema(t *testing.T) {
	var schema struct {
		Required []string `json:"required"`
	}
	if err := json.Unmarshal(Schema(), &schema); err != nil {
		t.Fatalf("schema is not valid JSON: %v", err)
	}

	want := map[string]bool{"creative": true, "concise": true, "technical": true}
	if len(schema.Required) != len(want) {
		t.Fatalf("expected %d required fields, got %d", len(want), len(schema.Required))
	}
	for _, field := range schema.Required {
		if !want[field] {
			t.Errorf("unexpected required field %q", field)
		}
	}
}
