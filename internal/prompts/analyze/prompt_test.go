package analyze

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestInstruction(t *testing.T) {
	got := Instruction("  Explain quantum computing.  ")

	if !strings.Contains(got, `"Explain quantum computing."`) {
		t.Errorf("instruction missing trimmed prompt text:\n%s", got)
	}
	if strings.Contains(got, "{{") {
		t.Error("unexpanded template markers in instruction")
	}
}

func TestSchema(t *testing.T) {
	var schema struct {
		Type       string                     `json:"type"`
		Properties map[string]json.RawMessage `json:"properties"`
		Required   []string                   `json:"required"`
	}
	if err := json.Unmarshal(Schema(), &schema); err != nil {
		t.Fatalf("schema is not valid JSON: %v", err)
	}

	if schema.Type != "object" {
		t.Errorf("expected object schema, got %q", schema.Type)
	}
	for _, field := range []string{"clarity", "specificity", "context", "bias", "suggestions"} {
		if _, ok := schema.Properties[field]; !ok {
			t.Errorf("schema missing property %q", field)
		}
	}
	if len(schema.Required) != 5 {
		t.Errorf("expected 5 required fields, got %d", len(schema.Required))
	}
}
