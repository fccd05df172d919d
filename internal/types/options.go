package types

import "fmt"

// Option sets offered by the form UI. The server is the source of truth so
// the embedded frontend and any API client render the same choices.

var PromptTypes = []string{
	"Chat / Conversation", "Image Generation", "Coding", "Writing / Blog / Story",
	"Marketing Copy", "Academic / Research", "Custom Template",
}

var Tones = []string{
	"Friendly", "Professional", "Persuasive", "Creative", "Humorous",
	"Technical", "Formal", "Casual", "Empathetic", "Assertive",
}

var WritingStyles = []string{
	"Storytelling", "Explanatory", "Conversational", "Analytical",
	"Concise", "Poetic", "Descriptive", "Journalistic",
}

var Audiences = []string{
	"General Public", "Students", "Experts", "Customers",
	"Developers", "Children", "Executives", "Scientists",
}

var OutputFormats = []string{
	"Text / Paragraph", "List / Bullet Points", "Code Snippet", "Dialogue / Script",
	"Summary", "Step-by-step Guide", "Table", "JSON",
}

var Languages = []string{
	"English", "Spanish", "French", "German", "Chinese (Mandarin)",
	"Japanese", "Russian", "Hindi", "Bangla", "Arabic", "Portuguese",
}

// DetailLevels maps each detail level to its form label.
var DetailLevels = map[DetailLevel]string{
	DetailSimple:   "Short & Simple",
	DetailModerate: "Moderately Detailed",
	DetailAdvanced: "Highly Specific / Advanced",
}

// OptimizationModes maps each optimization mode to its form label.
var OptimizationModes = map[OptimizationMode]string{
	OptimizeNone:       "None",
	OptimizeClarity:    "Clarity",
	OptimizeCreativity: "Creativity",
	OptimizePrecision:  "Precision",
}

// DefaultPromptConfig returns the config a fresh session starts with.
func DefaultPromptConfig() PromptConfig {
	return PromptConfig{
		Instruction:      "Write an email to a client about a late payment.",
		PromptType:       "Writing / Blog / Story",
		Tone:             "Professional",
		WritingStyle:     "Concise",
		Audience:         "Customers",
		OutputFormat:     "Text / Paragraph",
		DetailLevel:      DetailModerate,
		Context:          "Act as a professional but friendly account manager.",
		Keywords:         "late payment, invoice, due date",
		Language:         "English",
		OptimizationMode: OptimizeNone,
	}
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// Validate checks that every enum-valued field holds one of its declared
// options. It does not check the instruction; emptiness there is a
// validation error at generation time, not a malformed config.
func (c PromptConfig) Validate() error {
	switch {
	case !contains(PromptTypes, c.PromptType):
		return &FieldError{Field: "prompt_type", Value: c.PromptType}
	case !contains(Tones, c.Tone):
		return &FieldError{Field: "tone", Value: c.Tone}
	case !contains(WritingStyles, c.WritingStyle):
		return &FieldError{Field: "writing_style", Value: c.WritingStyle}
	case !contains(Audiences, c.Audience):
		return &FieldError{Field: "audience", Value: c.Audience}
	case !contains(OutputFormats, c.OutputFormat):
		return &FieldError{Field: "output_format", Value: c.OutputFormat}
	case !contains(Languages, c.Language):
		return &FieldError{Field: "language", Value: c.Language}
	}
	if _, ok := DetailLevels[c.DetailLevel]; !ok {
		return &FieldError{Field: "detail_level", Value: string(c.DetailLevel)}
	}
	if _, ok := OptimizationModes[c.OptimizationMode]; !ok {
		return &FieldError{Field: "optimization_mode", Value: string(c.OptimizationMode)}
	}
	return nil
}

// FieldError reports a config field holding a value outside its option set.
type FieldError struct {
	Field string
	Value string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid value %q for field %s", e.Value, e.Field)
}
