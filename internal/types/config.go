// Package types defines the core data model shared between the composer,
// the HTTP API, and the history store.
package types

import (
	"strings"
	"time"
)

// DetailLevel controls how elaborate the generated prompt should be.
type DetailLevel string

const (
	DetailSimple   DetailLevel = "simple"
	DetailModerate DetailLevel = "moderate"
	DetailAdvanced DetailLevel = "advanced"
)

// OptimizationMode requests one extra refinement pass on the generated prompt.
type OptimizationMode string

const (
	OptimizeNone       OptimizationMode = "none"
	OptimizeClarity    OptimizationMode = "clarity"
	OptimizeCreativity OptimizationMode = "creativity"
	OptimizePrecision  OptimizationMode = "precision"
)

// PromptConfig is the user's declared intent for the prompt to generate.
// Enum-valued fields are validated at the API boundary; the composer
// trusts them as-is.
type PromptConfig struct {
	Instruction      string           `json:"instruction"`
	PromptType       string           `json:"prompt_type"`
	Tone             string           `json:"tone"`
	WritingStyle     string           `json:"writing_style"`
	Audience         string           `json:"audience"`
	OutputFormat     string           `json:"output_format"`
	DetailLevel      DetailLevel      `json:"detail_level"`
	Context          string           `json:"context,omitempty"`
	Keywords         string           `json:"keywords,omitempty"`
	Language         string           `json:"language"`
	OptimizationMode OptimizationMode `json:"optimization_mode"`
}

// HasInstruction reports whether the core instruction is non-empty after
// trimming. Generation must not proceed without one.
func (c PromptConfig) HasInstruction() bool {
	return strings.TrimSpace(c.Instruction) != ""
}

// HistoryEntry is an immutable snapshot of one successful generation.
type HistoryEntry struct {
	// ID is monotonic: unix milliseconds at creation time.
	ID        int64        `json:"id"`
	Config    PromptConfig `json:"config"`
	Prompt    string       `json:"prompt"`
	CreatedAt time.Time    `json:"created_at"`
}

// AnalysisResult scores a prompt on four axes, each nominally 1-10, with
// a short list of improvement suggestions. Scores are reported exactly as
// the model returned them; out-of-range values are not clamped.
type AnalysisResult struct {
	Clarity     float64  `json:"clarity"`
	Specificity float64  `json:"specificity"`
	Context     float64  `json:"context"`
	Bias        float64  `json:"bias"`
	Suggestions []string `json:"suggestions"`
}

// RewriteVariations holds three full rewrites of a prompt along fixed axes.
type RewriteVariations struct {
	Creative  string `json:"creative"`
	Concise   string `json:"concise"`
	Technical string `json:"technical"`
}
