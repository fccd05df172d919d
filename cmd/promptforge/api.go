package main

import (
	"github.com/spf13/cobra"

	"github.com/promptforge/promptforge/internal/api"
	"github.com/promptforge/promptforge/internal/server/endpoints"
)

var serverURL string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Commands that call the running server",
	Long: `API commands call the running PromptForge server via HTTP.

These commands require a running server (promptforge serve).
Use --server to specify a custom server URL.

Examples:
  promptforge api health                           # Check server health
  promptforge api generate -i "Summarize a paper"  # Generate a prompt
  promptforge api history list                     # List past generations`,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Generation history commands",
}

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "UI theme commands",
}

// getServerURL returns the server URL at runtime (after flag parsing).
func getServerURL() string {
	return serverURL
}

// commandRegistry builds an api.Registry from a set of endpoints.
func commandRegistry(eps []api.Endpoint) *api.Registry {
	r := api.NewRegistry()
	for _, ep := range eps {
		r.Register(ep)
	}
	return r
}

func init() {
	// Add --server flag to api command (persistent so all subcommands inherit it)
	apiCmd.PersistentFlags().StringVar(
		&serverURL, "server", "http://localhost:8585", "Server URL",
	)

	// Health, status, options, and the assistant operations sit directly
	// under api; history and theme are grouped.
	commandRegistry(endpoints.TopLevelCommands()).AddCommands(apiCmd, getServerURL)
	commandRegistry(endpoints.HistoryCommands()).AddCommands(historyCmd, getServerURL)
	commandRegistry(endpoints.ThemeCommands()).AddCommands(themeCmd, getServerURL)

	apiCmd.AddCommand(historyCmd)
	apiCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(apiCmd)
}
