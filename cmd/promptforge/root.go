package main

import (
	"github.com/spf13/cobra"

	"github.com/promptforge/promptforge/internal/api"
	"github.com/promptforge/promptforge/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "promptforge",
	Short: "AI prompt composer with generation, analysis, and rewriting",
	Long: `PromptForge turns a structured description of intent into an optimized
AI prompt, then helps refine it.

It provides:
  - Prompt generation from a form-style config (tone, audience, format, ...)
  - Quality analysis scoring clarity, specificity, context, and bias
  - Rewriting into creative, concise, and technical variations
  - A bounded, persisted history of past generations`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.promptforge/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "promptforge home directory (default: ~/.promptforge)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}
