package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/promptforge/promptforge/internal/api"
	"github.com/promptforge/promptforge/internal/svcctx"
)

const themeSettingKey = "theme"

// ThemeResponse carries the active UI theme.
type ThemeResponse struct {
	Theme string `json:"theme"`
}

// UpdateThemeRequest is the request body for updating the theme.
type UpdateThemeRequest struct {
	Theme string `json:"theme"`
}

func validTheme(theme string) bool {
	return theme == "dark" || theme == "light"
}

// defaultTheme returns the configured default, falling back to dark.
func defaultTheme(r *http.Request) string {
	if mgr := svcctx.ConfigManagerFrom(r.Context()); mgr != nil {
		if t := mgr.Get().UI.DefaultTheme; validTheme(t) {
			return t
		}
	}
	return "dark"
}

// GetThemeEndpoint handles GET /api/settings/theme.
type GetThemeEndpoint struct{}

func (e *GetThemeEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/settings/theme", e.handler
}

func (e *GetThemeEndpoint) RequiresInit() bool { return true }

func (e *GetThemeEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	theme := defaultTheme(r)

	if store := svcctx.StoreFrom(r.Context()); store != nil {
		saved, err := store.GetSetting(r.Context(), themeSettingKey)
		switch {
		case err != nil:
			// Storage trouble is never surfaced; fall back to the default.
			warnStorage(r, "failed to read saved theme, using default", err)
		case validTheme(saved):
			theme = saved
		}
	}

	writeJSON(w, http.StatusOK, ThemeResponse{Theme: theme})
}

func (e *GetThemeEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Get the active UI theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp ThemeResponse
			if err := client.Get(cmd.Context(), "/api/settings/theme", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}

// SetThemeEndpoint handles PUT /api/settings/theme.
type SetThemeEndpoint struct{}

func (e *SetThemeEndpoint) Route() (string, string, http.HandlerFunc) {
	return "PUT", "/api/settings/theme", e.handler
}

func (e *SetThemeEndpoint) RequiresInit() bool { return true }

func (e *SetThemeEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req UpdateThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if !validTheme(req.Theme) {
		writeError(w, http.StatusBadRequest, "theme must be \"dark\" or \"light\"")
		return
	}

	if store := svcctx.StoreFrom(r.Context()); store != nil {
		if err := store.SetSetting(r.Context(), themeSettingKey, req.Theme); err != nil {
			// The choice holds for this response only.
			warnStorage(r, "failed to persist theme", err)
		}
	}

	writeJSON(w, http.StatusOK, ThemeResponse{Theme: req.Theme})
}

// warnStorage logs a storage failure. Persistence trouble degrades settings
// to in-memory behavior and is never reported to the client.
func warnStorage(r *http.Request, msg string, err error) {
	if logger := svcctx.LoggerFrom(r.Context()); logger != nil {
		logger.Warn(msg, "error", err)
	}
}

func (e *SetThemeEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "set <dark|light>",
		Short: "Set the UI theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp ThemeResponse
			if err := client.Put(cmd.Context(), "/api/settings/theme", UpdateThemeRequest{Theme: args[0]}, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
