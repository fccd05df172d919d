package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/promptforge/promptforge/internal/config"
	"github.com/promptforge/promptforge/internal/home"
	"github.com/promptforge/promptforge/internal/server"
)

var (
	serveHost string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the PromptForge server",
	Long: `Start the PromptForge HTTP server.

The server serves the embedded web UI and the JSON API, persists history
and settings to ~/.promptforge/promptforge.db, and hot-reloads provider
configuration when the config file changes.

Examples:
  promptforge serve                  # Start on default port 8585
  promptforge serve --port 3000      # Start on custom port
  promptforge serve --host 0.0.0.0   # Bind to all interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Set up logger
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		// Get home directory
		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}

		// Load config, preferring an explicit --config path, then the
		// home directory config if present.
		configPath := cfgFile
		if configPath == "" && h.ConfigExists() {
			configPath = h.ConfigPath()
		}
		mgr, err := config.NewManager(configPath)
		if err != nil {
			return err
		}
		mgr.WatchConfig()

		cfg := mgr.Get()
		host := serveHost
		if !cmd.Flags().Changed("host") {
			host = cfg.Server.Host
		}
		port := servePort
		if !cmd.Flags().Changed("port") {
			port = cfg.Server.Port
		}

		srv, err := server.New(server.Config{
			Host:          host,
			Port:          port,
			Home:          h,
			ConfigManager: mgr,
			Logger:        logger,
		})
		if err != nil {
			return err
		}

		// Start server (blocks until shutdown)
		return srv.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "localhost", "Host to bind to")
	serveCmd.Flags().StringVar(&servePort, "port", "8585", "Port to listen on")

	rootCmd.AddCommand(serveCmd)
}
