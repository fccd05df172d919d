// Package rewrite renders the meta-instruction and response schema for
// rewriting a prompt into creative, concise, and technical variations.
package rewrite

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"strings"
	"text/template"
)

//go:embed rewrite.tmpl
var rewriteTmpl string

var tmpl = template.Must(template.New("rewrite").Parse(rewriteTmpl))

// Instruction builds the rewrite meta-instruction for the given prompt text.
func Instruction(prompt string) string {
	var buf bytes.Buffer
	data := struct{ Prompt string }{Prompt: strings.TrimSpace(prompt)}
	if err := tmpl.Execute(&buf, data); err != nil {
		return rewriteTmpl
	}
	return buf.String()
}

// responseSchema requires exactly the three variation fields.
var responseSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"creative":  map[string]any{"type": "string"},
		"concise":   map[string]any{"type": "string"},
		"technical": map[string]any{"type": "string"},
	},
	"required": []string{"creative", "concise", "technical"},
}

var schemaJSON = func() json.RawMessage {
	b, err := json.Marshal(responseSchema)
	if err != nil {
		panic(err)
	}
	return b
}()

// Schema returns the JSON schema constraining the rewrite response.
func Schema() json.RawMessage {
	return schemaJSON
}
