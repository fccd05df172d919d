package types

import (
	"errors"
	"testing"
)

func TestDefaultPromptConfig(t *testing.T) {
	cfg := DefaultPromptConfig()

	if cfg.Instruction != "Write an email to a client about a late payment." {
		t.Errorf("unexpected default instruction: %q", cfg.Instruction)
	}
	if cfg.DetailLevel != DetailModerate {
		t.Errorf("unexpected default detail level: %q", cfg.DetailLevel)
	}
	if cfg.OptimizationMode != OptimizeNone {
		t.Errorf("unexpected default optimization mode: %q", cfg.OptimizationMode)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
}

func TestValidate(t *testing.T) {
	t.Run("rejects unknown tone", func(t *testing.T) {
		cfg := DefaultPromptConfig()
		cfg.Tone = "Sarcastic"

		err := cfg.Validate()
		var ferr *FieldError
		if !errors.As(err, &ferr) {
			t.Fatalf("expected FieldError, got %v", err)
		}
		if ferr.Field != "tone" {
			t.Errorf("expected tone field, got %q", ferr.Field)
		}
		if ferr.Error() != `invalid value "Sarcastic" for field tone` {
			t.Errorf("unexpected message: %q", ferr.Error())
		}
	})

	t.Run("rejects unknown detail level", func(t *testing.T) {
		cfg := DefaultPromptConfig()
		cfg.DetailLevel = "extreme"
		if cfg.Validate() == nil {
			t.Error("expected error for unknown detail level")
		}
	})

	t.Run("empty instruction is allowed", func(t *testing.T) {
		cfg := DefaultPromptConfig()
		cfg.Instruction = ""
		if err := cfg.Validate(); err != nil {
			t.Errorf("empty instruction should pass config validation, got: %v", err)
		}
	})
}

func TestHasInstruction(t *testing.T) {
	cfg := PromptConfig{Instruction: "  \t\n "}
	if cfg.HasInstruction() {
		t.Error("whitespace-only instruction should not count")
	}
	cfg.Instruction = "do something"
	if !cfg.HasInstruction() {
		t.Error("non-empty instruction should count")
	}
}
