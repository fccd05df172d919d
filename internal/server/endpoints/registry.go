// Package endpoints implements every HTTP operation of the PromptForge API
// as an api.Endpoint, pairing each route with a CLI command.
package endpoints

import (
	"github.com/promptforge/promptforge/internal/api"
)

// All returns all endpoint instances in registration order.
func All() []api.Endpoint {
	return []api.Endpoint{
		// Health endpoints
		&HealthEndpoint{},
		&StatusEndpoint{},

		// Form option sets
		&OptionsEndpoint{},

		// Assistant operations
		&GenerateEndpoint{},
		&AnalyzeEndpoint{},
		&RewriteEndpoint{},

		// History endpoints
		&ListHistoryEndpoint{},
		&DeleteHistoryEndpoint{},
		&ClearHistoryEndpoint{},

		// Theme setting
		&GetThemeEndpoint{},
		&SetThemeEndpoint{},

		// Static files (catch-all, must be last)
		&StaticEndpoint{},
	}
}

// TopLevelCommands returns the endpoints whose CLI commands sit directly
// under "api". History and theme are grouped separately; the static
// endpoint carries no command and registries skip it.
func TopLevelCommands() []api.Endpoint {
	return []api.Endpoint{
		&HealthEndpoint{},
		&StatusEndpoint{},
		&OptionsEndpoint{},
		&GenerateEndpoint{},
		&AnalyzeEndpoint{},
		&RewriteEndpoint{},
		&StaticEndpoint{},
	}
}

// HistoryCommands returns endpoints for history operations.
// This groups history-related commands under a "history" subcommand.
func HistoryCommands() []api.Endpoint {
	return []api.Endpoint{
		&ListHistoryEndpoint{},
		&DeleteHistoryEndpoint{},
		&ClearHistoryEndpoint{},
	}
}

// ThemeCommands returns endpoints for theme operations.
// This groups theme-related commands under a "theme" subcommand.
func ThemeCommands() []api.Endpoint {
	return []api.Endpoint{
		&GetThemeEndpoint{},
		&SetThemeEndpoint{},
	}
}
