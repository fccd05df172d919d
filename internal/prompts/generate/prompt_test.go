package generate

import (
	"strings"
	"testing"

	"github.com/promptforge/promptforge/internal/types"
)

func testConfig() types.PromptConfig {
	return types.PromptConfig{
		Instruction:      "Write an email to a client about a late payment.",
		PromptType:       "Writing / Blog / Story",
		Tone:             "Professional",
		WritingStyle:     "Concise",
		Audience:         "Customers",
		OutputFormat:     "Text / Paragraph",
		DetailLevel:      types.DetailModerate,
		Context:          "Act as a professional but friendly account manager.",
		Keywords:         "late payment, invoice, due date",
		Language:         "English",
		OptimizationMode: types.OptimizeNone,
	}
}

func TestInstruction(t *testing.T) {
	got := Instruction(testConfig())

	wantFragments := []string{
		`User's core instruction: "Write an email to a client about a late payment."`,
		"- **Tone**: The desired tone is Professional.",
		"- **Writing Style**: The style should be Concise.",
		"- **Target Audience**: The prompt should be tailored for a/an Customers audience.",
		"- **Desired Output Format**: The AI should produce its response as a Text / Paragraph.",
		"- **Detail Level**: The prompt's complexity should be: moderately detailed, providing some context and examples.",
		"- **Language**: The final prompt must be written in English.",
		`- **Context/System Role**: The AI should adopt the persona or role of: "Act as a professional but friendly account manager."`,
		"- **Keyword Emphasis**: The following keywords or concepts MUST be central to the prompt and its output: late payment, invoice, due date.",
		"Generate ONLY the final prompt text.",
	}
	for _, want := range wantFragments {
		if !strings.Contains(got, want) {
			t.Errorf("instruction missing fragment %q\n\ngot:\n%s", want, got)
		}
	}

	if strings.Contains(got, "optimization pass") {
		t.Error("optimization clause present for OptimizeNone")
	}
	if strings.Contains(got, "{{") {
		t.Error("unexpanded template markers in instruction")
	}
}

func TestInstruction_Pure(t *testing.T) {
	cfg := testConfig()
	if Instruction(cfg) != Instruction(cfg) {
		t.Error("identical configs produced different instructions")
	}
}

func TestInstruction_OptionalClauses(t *testing.T) {
	t.Run("no context", func(t *testing.T) {
		cfg := testConfig()
		cfg.Context = "   "
		got := Instruction(cfg)
		if strings.Contains(got, "Context/System Role") {
			t.Error("context clause present for blank context")
		}
	})

	t.Run("no keywords", func(t *testing.T) {
		cfg := testConfig()
		cfg.Keywords = ""
		got := Instruction(cfg)
		if strings.Contains(got, "Keyword Emphasis") {
			t.Error("keyword clause present for empty keywords")
		}
	})

	t.Run("optimization clarity", func(t *testing.T) {
		cfg := testConfig()
		cfg.OptimizationMode = types.OptimizeClarity
		got := Instruction(cfg)
		if !strings.Contains(got, "perform one final optimization pass to enhance its clarity") {
			t.Errorf("missing optimization clause:\n%s", got)
		}
	})
}

func TestDetailDescription(t *testing.T) {
	tests := []struct {
		level types.DetailLevel
		want  string
	}{
		{types.DetailSimple, "short, direct, and to the point"},
		{types.DetailModerate, "moderately detailed, providing some context and examples"},
		{types.DetailAdvanced, "highly specific, advanced, providing ample context, constraints, and examples"},
		{"bogus", "moderately detailed, providing some context and examples"},
	}
	for _, tt := range tests {
		if got := DetailDescription(tt.level); got != tt.want {
			t.Errorf("DetailDescription(%q) = %q, want %q", tt.level, got, tt.want)
		}
	}
}
