package endpoints

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/promptforge/promptforge/internal/api"
	"github.com/promptforge/promptforge/internal/assistant"
	"github.com/promptforge/promptforge/internal/svcctx"
	"github.com/promptforge/promptforge/internal/types"
)

// GenerateRequest is the request body for POST /api/generate.
type GenerateRequest struct {
	Config types.PromptConfig `json:"config"`
}

// GenerateResponse carries the generated prompt and the history entry
// recorded for it.
type GenerateResponse struct {
	Prompt string             `json:"prompt"`
	Entry  types.HistoryEntry `json:"entry"`
}

// GenerateEndpoint handles POST /api/generate.
type GenerateEndpoint struct{}

func (e *GenerateEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/generate", e.handler
}

func (e *GenerateEndpoint) RequiresInit() bool { return true }

func (e *GenerateEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := req.Config.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	svc := svcctx.AssistantFrom(r.Context())
	if svc == nil {
		writeError(w, http.StatusInternalServerError, "assistant not available")
		return
	}

	prompt, err := svc.Generate(r.Context(), req.Config)
	if err != nil {
		writeAssistantError(w, err)
		return
	}

	log := svcctx.HistoryFrom(r.Context())
	if log == nil {
		writeError(w, http.StatusInternalServerError, "history not available")
		return
	}
	entry := log.Append(r.Context(), req.Config, prompt)

	writeJSON(w, http.StatusOK, GenerateResponse{Prompt: prompt, Entry: entry})
}

func (e *GenerateEndpoint) Command(getServerURL func() string) *cobra.Command {
	cfg := types.DefaultPromptConfig()
	var detail, optimize string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an optimized prompt from a config",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.DetailLevel = types.DetailLevel(detail)
			cfg.OptimizationMode = types.OptimizationMode(optimize)

			client := api.NewClient(getServerURL())
			var resp GenerateResponse
			if err := client.Post(cmd.Context(), "/api/generate", GenerateRequest{Config: cfg}, &resp); err != nil {
				return err
			}
			fmt.Println(resp.Prompt)
			return nil
		},
	}

	cmd.Flags().StringVarP(&cfg.Instruction, "instruction", "i", cfg.Instruction, "Base instruction for the prompt")
	cmd.Flags().StringVar(&cfg.PromptType, "type", cfg.PromptType, "Prompt type")
	cmd.Flags().StringVar(&cfg.Tone, "tone", cfg.Tone, "Tone")
	cmd.Flags().StringVar(&cfg.WritingStyle, "style", cfg.WritingStyle, "Writing style")
	cmd.Flags().StringVar(&cfg.Audience, "audience", cfg.Audience, "Target audience")
	cmd.Flags().StringVar(&cfg.OutputFormat, "format", cfg.OutputFormat, "Output format")
	cmd.Flags().StringVar(&detail, "detail", string(cfg.DetailLevel), "Detail level: simple, moderate, or advanced")
	cmd.Flags().StringVar(&cfg.Context, "context", cfg.Context, "Additional context")
	cmd.Flags().StringVar(&cfg.Keywords, "keywords", cfg.Keywords, "Comma-separated keywords to include")
	cmd.Flags().StringVar(&cfg.Language, "language", cfg.Language, "Output language")
	cmd.Flags().StringVar(&optimize, "optimize", string(cfg.OptimizationMode), "Optimization mode: none, clarity, creativity, or precision")
	return cmd
}

// writeAssistantError maps assistant failures onto HTTP statuses: user
// validation failures surface verbatim as 422, remote model failures as 502
// with the uniform service message.
func writeAssistantError(w http.ResponseWriter, err error) {
	var verr *assistant.ValidationError
	if errors.As(err, &verr) {
		writeError(w, http.StatusUnprocessableEntity, verr.Error())
		return
	}

	var perr *assistant.ParseError
	var serr *assistant.ServiceError
	if errors.As(err, &perr) || errors.As(err, &serr) {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeError(w, http.StatusInternalServerError, err.Error())
}
