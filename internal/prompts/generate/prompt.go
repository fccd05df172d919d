// Package generate renders a PromptConfig into the meta-instruction sent to
// the model when generating a new prompt. Rendering is pure: identical
// configs produce byte-identical instructions.
package generate

import (
	"bytes"
	_ "embed"
	"strings"
	"text/template"

	"github.com/promptforge/promptforge/internal/types"
)

//go:embed meta.tmpl
var metaTmpl string

var tmpl = template.Must(template.New("meta").Parse(metaTmpl))

// detailDescriptions is the fixed three-tier wording for prompt complexity.
var detailDescriptions = map[types.DetailLevel]string{
	types.DetailSimple:   "short, direct, and to the point",
	types.DetailModerate: "moderately detailed, providing some context and examples",
	types.DetailAdvanced: "highly specific, advanced, providing ample context, constraints, and examples",
}

// DetailDescription returns the complexity wording for a detail level.
// Unknown levels fall back to moderate.
func DetailDescription(level types.DetailLevel) string {
	if d, ok := detailDescriptions[level]; ok {
		return d
	}
	return detailDescriptions[types.DetailModerate]
}

type templateData struct {
	Instruction       string
	PromptType        string
	Tone              string
	WritingStyle      string
	Audience          string
	OutputFormat      string
	DetailDescription string
	Language          string
	Context           string
	Keywords          string
	Optimization      string
}

// Instruction builds the complete meta-instruction for the given config.
// The caller guarantees cfg.Instruction is non-empty and enum fields hold
// declared values.
func Instruction(cfg types.PromptConfig) string {
	data := templateData{
		Instruction:       strings.TrimSpace(cfg.Instruction),
		PromptType:        cfg.PromptType,
		Tone:              cfg.Tone,
		WritingStyle:      cfg.WritingStyle,
		Audience:          cfg.Audience,
		OutputFormat:      cfg.OutputFormat,
		DetailDescription: DetailDescription(cfg.DetailLevel),
		Language:          cfg.Language,
		Context:           strings.TrimSpace(cfg.Context),
		Keywords:          strings.TrimSpace(cfg.Keywords),
	}
	if cfg.OptimizationMode != types.OptimizeNone && cfg.OptimizationMode != "" {
		data.Optimization = string(cfg.OptimizationMode)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return metaTmpl
	}
	return buf.String()
}
