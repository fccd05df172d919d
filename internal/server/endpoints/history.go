package endpoints

import (
	"net/http"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/promptforge/promptforge/internal/api"
	"github.com/promptforge/promptforge/internal/svcctx"
	"github.com/promptforge/promptforge/internal/types"
)

// HistoryResponse lists history entries, newest first.
type HistoryResponse struct {
	Entries []types.HistoryEntry `json:"entries"`
}

// ListHistoryEndpoint handles GET /api/history.
type ListHistoryEndpoint struct{}

func (e *ListHistoryEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/history", e.handler
}

func (e *ListHistoryEndpoint) RequiresInit() bool { return true }

func (e *ListHistoryEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	log := svcctx.HistoryFrom(r.Context())
	if log == nil {
		writeError(w, http.StatusInternalServerError, "history not available")
		return
	}

	entries := log.List()
	if entries == nil {
		entries = []types.HistoryEntry{}
	}
	writeJSON(w, http.StatusOK, HistoryResponse{Entries: entries})
}

func (e *ListHistoryEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List past generations, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp HistoryResponse
			if err := client.Get(cmd.Context(), "/api/history", &resp); err != nil {
				return err
			}
			return api.Output(resp.Entries)
		},
	}
}

// DeleteHistoryEndpoint handles DELETE /api/history/{id}.
type DeleteHistoryEndpoint struct{}

func (e *DeleteHistoryEndpoint) Route() (string, string, http.HandlerFunc) {
	return "DELETE", "/api/history/{id}", e.handler
}

func (e *DeleteHistoryEndpoint) RequiresInit() bool { return true }

func (e *DeleteHistoryEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid history id")
		return
	}

	log := svcctx.HistoryFrom(r.Context())
	if log == nil {
		writeError(w, http.StatusInternalServerError, "history not available")
		return
	}

	// Deleting an absent entry is a no-op, not an error.
	log.Remove(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

func (e *DeleteHistoryEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one history entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return err
			}
			client := api.NewClient(getServerURL())
			return client.Delete(cmd.Context(), "/api/history/"+args[0])
		},
	}
}

// ClearHistoryEndpoint handles DELETE /api/history.
type ClearHistoryEndpoint struct{}

func (e *ClearHistoryEndpoint) Route() (string, string, http.HandlerFunc) {
	return "DELETE", "/api/history", e.handler
}

func (e *ClearHistoryEndpoint) RequiresInit() bool { return true }

func (e *ClearHistoryEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	log := svcctx.HistoryFrom(r.Context())
	if log == nil {
		writeError(w, http.StatusInternalServerError, "history not available")
		return
	}

	log.Clear(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (e *ClearHistoryEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all history entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			return client.Delete(cmd.Context(), "/api/history")
		},
	}
}
