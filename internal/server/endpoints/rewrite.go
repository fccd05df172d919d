package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/promptforge/promptforge/internal/api"
	"github.com/promptforge/promptforge/internal/svcctx"
	"github.com/promptforge/promptforge/internal/types"
)

// RewriteRequest is the request body for POST /api/rewrite.
type RewriteRequest struct {
	Prompt string `json:"prompt"`
}

// RewriteResponse carries the three rewrite variations.
type RewriteResponse struct {
	Variations *types.RewriteVariations `json:"variations"`
}

// RewriteEndpoint handles POST /api/rewrite.
type RewriteEndpoint struct{}

func (e *RewriteEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/rewrite", e.handler
}

func (e *RewriteEndpoint) RequiresInit() bool { return true }

func (e *RewriteEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req RewriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	svc := svcctx.AssistantFrom(r.Context())
	if svc == nil {
		writeError(w, http.StatusInternalServerError, "assistant not available")
		return
	}

	variations, err := svc.Rewrite(r.Context(), req.Prompt)
	if err != nil {
		writeAssistantError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, RewriteResponse{Variations: variations})
}

func (e *RewriteEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "rewrite <prompt>",
		Short: "Rewrite a prompt in creative, concise, and technical variations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp RewriteResponse
			if err := client.Post(cmd.Context(), "/api/rewrite", RewriteRequest{Prompt: args[0]}, &resp); err != nil {
				return err
			}
			return api.Output(resp.Variations)
		},
	}
}
