package assistant

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/promptforge/promptforge/internal/providers"
	"github.com/promptforge/promptforge/internal/types"
)

func newTestService(mock *providers.MockClient) *Service {
	registry := providers.NewRegistry()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry.SetLogger(logger)
	registry.Register(providers.MockName, mock)
	registry.SetDefault(providers.MockName)
	return New(registry, logger)
}

func validConfig() types.PromptConfig {
	return types.DefaultPromptConfig()
}

func TestGenerate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mock := providers.NewMockClient()
		mock.ResponseText = "An optimized prompt."
		svc := newTestService(mock)

		got, err := svc.Generate(context.Background(), validConfig())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "An optimized prompt." {
			t.Errorf("expected mock response, got %q", got)
		}
		if mock.Requests() != 1 {
			t.Errorf("expected 1 request, got %d", mock.Requests())
		}
	})

	t.Run("empty instruction fails before any call", func(t *testing.T) {
		mock := providers.NewMockClient()
		svc := newTestService(mock)

		cfg := validConfig()
		cfg.Instruction = "   \n\t"
		_, err := svc.Generate(context.Background(), cfg)

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if verr.Error() != "Please enter a base instruction." {
			t.Errorf("unexpected validation message: %q", verr.Error())
		}
		if mock.Requests() != 0 {
			t.Errorf("expected no requests, got %d", mock.Requests())
		}
	})

	t.Run("service failure reports generic message", func(t *testing.T) {
		mock := providers.NewMockClient()
		mock.ShouldFail = true
		svc := newTestService(mock)

		_, err := svc.Generate(context.Background(), validConfig())

		var serr *ServiceError
		if !errors.As(err, &serr) {
			t.Fatalf("expected ServiceError, got %v", err)
		}
		if serr.Error() != serviceFailureMsg {
			t.Errorf("unexpected service message: %q", serr.Error())
		}
		if serr.Unwrap() == nil {
			t.Error("expected underlying cause to be preserved")
		}
	})

	t.Run("no default client", func(t *testing.T) {
		registry := providers.NewRegistry()
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		svc := New(registry, logger)

		_, err := svc.Generate(context.Background(), validConfig())
		var serr *ServiceError
		if !errors.As(err, &serr) {
			t.Fatalf("expected ServiceError, got %v", err)
		}
	})
}

func TestAnalyze(t *testing.T) {
	t.Run("empty prompt", func(t *testing.T) {
		mock := providers.NewMockClient()
		svc := newTestService(mock)

		_, err := svc.Analyze(context.Background(), "  ")
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if verr.Error() != "There is no prompt to analyze." {
			t.Errorf("unexpected validation message: %q", verr.Error())
		}
		if mock.Requests() != 0 {
			t.Errorf("expected no requests, got %d", mock.Requests())
		}
	})

	t.Run("success with fenced response", func(t *testing.T) {
		mock := providers.NewMockClient()
		mock.ResponseText = "```json\n{\"clarity\": 8, \"specificity\": 7, \"context\": 6, \"bias\": 9, \"suggestions\": [\"Add examples\", \"Name the audience\"]}\n```"
		svc := newTestService(mock)

		got, err := svc.Analyze(context.Background(), "Write a poem.")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Clarity != 8 || got.Specificity != 7 || got.Context != 6 || got.Bias != 9 {
			t.Errorf("unexpected scores: %+v", got)
		}
		if len(got.Suggestions) != 2 {
			t.Errorf("expected 2 suggestions, got %d", len(got.Suggestions))
		}
	})

	t.Run("out-of-range scores pass through unclamped", func(t *testing.T) {
		mock := providers.NewMockClient()
		mock.ResponseText = `{"clarity": 12, "specificity": 0, "context": 5, "bias": 5, "suggestions": []}`
		svc := newTestService(mock)

		got, err := svc.Analyze(context.Background(), "Write a poem.")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Clarity != 12 || got.Specificity != 0 {
			t.Errorf("scores were altered: %+v", got)
		}
	})

	t.Run("malformed response", func(t *testing.T) {
		mock := providers.NewMockClient()
		mock.ResponseText = "I would rate this prompt quite highly overall."
		svc := newTestService(mock)

		_, err := svc.Analyze(context.Background(), "Write a poem.")
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("expected ParseError, got %v", err)
		}
		if perr.Error() != serviceFailureMsg {
			t.Errorf("unexpected parse message: %q", perr.Error())
		}
	})

	t.Run("missing required field", func(t *testing.T) {
		mock := providers.NewMockClient()
		mock.ResponseText = `{"clarity": 8, "specificity": 7, "context": 6, "suggestions": []}`
		svc := newTestService(mock)

		_, err := svc.Analyze(context.Background(), "Write a poem.")
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("expected ParseError for missing bias, got %v", err)
		}
	})
}

func TestRewrite(t *testing.T) {
	t.Run("empty prompt", func(t *testing.T) {
		svc := newTestService(providers.NewMockClient())

		_, err := svc.Rewrite(context.Background(), "")
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if verr.Error() != "There is no prompt to rewrite." {
			t.Errorf("unexpected validation message: %q", verr.Error())
		}
	})

	t.Run("success ignores extra fields", func(t *testing.T) {
		mock := providers.NewMockClient()
		mock.ResponseText = `{"creative": "c1", "concise": "c2", "technical": "c3", "notes": "extra"}`
		svc := newTestService(mock)

		got, err := svc.Rewrite(context.Background(), "Write a poem.")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Creative != "c1" || got.Concise != "c2" || got.Technical != "c3" {
			t.Errorf("unexpected variations: %+v", got)
		}
	})

	t.Run("missing variation", func(t *testing.T) {
		mock := providers.NewMockClient()
		mock.ResponseText = `{"creative": "c1", "concise": "c2"}`
		svc := newTestService(mock)

		_, err := svc.Rewrite(context.Background(), "Write a poem.")
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("expected ParseError for missing technical, got %v", err)
		}
	})
}

func TestParseStructured(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"raw object", `{"a": 1}`, false},
		{"fenced object", "```json\n{\"a\": 1}\n```", false},
		{"fence without language", "```\n{\"a\": 1}\n```", false},
		{"surrounding prose", `Here you go: {"a": 1} hope that helps`, false},
		{"empty", "", true},
		{"no json at all", "sorry, cannot help", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseStructured(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseStructured(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestStripCodeFences(t *testing.T) {
	got := stripCodeFences("```json\n{\"a\":1}\n```")
	if got != `{"a":1}` {
		t.Errorf("unexpected strip result: %q", got)
	}
	if stripCodeFences("plain text") != "" {
		t.Error("expected empty result for unfenced content")
	}
}
