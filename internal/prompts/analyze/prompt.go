// Package analyze renders the meta-instruction and response schema for
// scoring an existing prompt on clarity, specificity, context, and bias.
package analyze

import (
	"bytes"
	_ "embed"
	"strings"
	"text/template"
)

//go:embed analysis.tmpl
var analysisTmpl string

var tmpl = template.Must(template.New("analysis").Parse(analysisTmpl))

// Instruction builds the analysis meta-instruction for the given prompt text.
func Instruction(prompt string) string {
	var buf bytes.Buffer
	data := struct{ Prompt string }{Prompt: strings.TrimSpace(prompt)}
	if err := tmpl.Execute(&buf, data); err != nil {
		return analysisTmpl
	}
	return buf.String()
}
