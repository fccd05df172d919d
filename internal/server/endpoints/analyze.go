package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/promptforge/promptforge/internal/api"
	"github.com/promptforge/promptforge/internal/svcctx"
	"github.com/promptforge/promptforge/internal/types"
)

// AnalyzeRequest is the request body for POST /api/analyze.
type AnalyzeRequest struct {
	Prompt string `json:"prompt"`
}

// AnalyzeResponse carries the structured quality analysis.
type AnalyzeResponse struct {
	Analysis *types.AnalysisResult `json:"analysis"`
}

// AnalyzeEndpoint handles POST /api/analyze.
type AnalyzeEndpoint struct{}

func (e *AnalyzeEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/analyze", e.handler
}

func (e *AnalyzeEndpoint) RequiresInit() bool { return true }

func (e *AnalyzeEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	svc := svcctx.AssistantFrom(r.Context())
	if svc == nil {
		writeError(w, http.StatusInternalServerError, "assistant not available")
		return
	}

	analysis, err := svc.Analyze(r.Context(), req.Prompt)
	if err != nil {
		writeAssistantError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, AnalyzeResponse{Analysis: analysis})
}

func (e *AnalyzeEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <prompt>",
		Short: "Score a prompt on clarity, specificity, context, and bias",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp AnalyzeResponse
			if err := client.Post(cmd.Context(), "/api/analyze", AnalyzeRequest{Prompt: args[0]}, &resp); err != nil {
				return err
			}
			return api.Output(resp.Analysis)
		},
	}
}
