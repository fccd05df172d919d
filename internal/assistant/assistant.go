// Package assistant orchestrates the three operations of the service:
// generate a prompt from a config, analyze a prompt, rewrite a prompt.
// Each operation validates its precondition, composes the meta-instruction,
// invokes the remote model, and (for the structured operations) parses and
// shape-checks the JSON reply.
package assistant

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/promptforge/promptforge/internal/prompts/analyze"
	"github.com/promptforge/promptforge/internal/prompts/generate"
	"github.com/promptforge/promptforge/internal/prompts/rewrite"
	"github.com/promptforge/promptforge/internal/providers"
	"github.com/promptforge/promptforge/internal/types"
)

// Service runs assistant operations against the configured model client.
type Service struct {
	registry *providers.Registry
	logger   *slog.Logger
}

// New creates a Service backed by the given provider registry.
func New(registry *providers.Registry, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{registry: registry, logger: logger}
}

// Generate composes the meta-instruction for cfg and returns the prompt the
// model produced. An empty instruction fails before any remote call.
func (s *Service) Generate(ctx context.Context, cfg types.PromptConfig) (string, error) {
	if !cfg.HasInstruction() {
		return "", &ValidationError{Msg: "Please enter a base instruction."}
	}

	result, err := s.invoke(ctx, &providers.Request{
		Instruction: generate.Instruction(cfg),
	})
	if err != nil {
		return "", err
	}
	return result.Text, nil
}

// Analyze scores the given prompt text on four axes with suggestions.
func (s *Service) Analyze(ctx context.Context, prompt string) (*types.AnalysisResult, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, &ValidationError{Msg: "There is no prompt to analyze."}
	}

	schema := analyze.Schema()
	result, err := s.invoke(ctx, &providers.Request{
		Instruction:    analyze.Instruction(prompt),
		ResponseFormat: &providers.ResponseFormat{JSONSchema: schema},
	})
	if err != nil {
		return nil, err
	}

	doc, err := s.checkStructured(schema, result)
	if err != nil {
		return nil, err
	}

	var analysis types.AnalysisResult
	if err := json.Unmarshal(doc, &analysis); err != nil {
		return nil, s.parseError(result, err)
	}
	return &analysis, nil
}

// Rewrite returns three style variations of the given prompt text.
func (s *Service) Rewrite(ctx context.Context, prompt string) (*types.RewriteVariations, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, &ValidationError{Msg: "There is no prompt to rewrite."}
	}

	schema := rewrite.Schema()
	result, err := s.invoke(ctx, &providers.Request{
		Instruction:    rewrite.Instruction(prompt),
		ResponseFormat: &providers.ResponseFormat{JSONSchema: schema},
	})
	if err != nil {
		return nil, err
	}

	doc, err := s.checkStructured(schema, result)
	if err != nil {
		return nil, err
	}

	var variations types.RewriteVariations
	if err := json.Unmarshal(doc, &variations); err != nil {
		return nil, s.parseError(result, err)
	}
	return &variations, nil
}

// invoke sends one request through the default client and collapses any
// failure into a uniform ServiceError. No retry, no backoff.
func (s *Service) invoke(ctx context.Context, req *providers.Request) (*providers.Result, error) {
	client, err := s.registry.Default()
	if err != nil {
		s.logger.Error("no model client available", "error", err)
		return nil, &ServiceError{Msg: serviceFailureMsg, Cause: err}
	}

	result, err := client.Generate(ctx, req)
	if err != nil {
		s.logger.Error("model invocation failed", "provider", client.Name(), "error", err)
		return nil, &ServiceError{Msg: serviceFailureMsg, Cause: err}
	}

	s.logger.Info("model invocation completed",
		"provider", result.Provider,
		"model", result.ModelUsed,
		"request_id", result.RequestID,
		"latency_ms", result.Latency.Milliseconds())
	return result, nil
}

// checkStructured parses the reply as JSON and validates it against the
// schema the request was composed with.
func (s *Service) checkStructured(schema json.RawMessage, result *providers.Result) (json.RawMessage, error) {
	doc, err := parseStructured(result.Text)
	if err != nil {
		return nil, s.parseError(result, err)
	}
	if err := validateStructured(schema, doc); err != nil {
		return nil, s.parseError(result, err)
	}
	return doc, nil
}

func (s *Service) parseError(result *providers.Result, cause error) error {
	s.logger.Error("structured response rejected",
		"provider", result.Provider,
		"request_id", result.RequestID,
		"error", cause)
	return &ParseError{Msg: serviceFailureMsg, Cause: cause}
}
