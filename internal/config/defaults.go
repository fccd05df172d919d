package config

// DefaultConfig returns the built-in configuration used when no config file
// or environment overrides are present.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "localhost",
			Port: "8585",
		},
		Providers: ProvidersConfig{
			Default: "gemini",
			Gemini: ModelSettings{
				Model:          "gemini-2.5-pro",
				APIKey:         "${GEMINI_API_KEY}",
				TimeoutSeconds: 120,
			},
			OpenAI: ModelSettings{
				Model:          "gpt-4o",
				APIKey:         "${OPENAI_API_KEY}",
				TimeoutSeconds: 120,
			},
		},
		History: HistoryConfig{
			Cap: 20,
		},
		UI: UIConfig{
			DefaultTheme: "dark",
		},
	}
}
