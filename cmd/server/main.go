// Package main implements the numerology API server, which computes
// numerology readings over HTTP and serves their interpretations in seven
// languages.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/phrazzld/numerology-api/internal/config"
	"github.com/phrazzld/numerology-api/internal/platform/logger"
)

func main() {
	configFile := flag.String("config", "", "Path to a YAML config file (default: ./config.yaml if present)")
	migrateCmd := flag.String("migrate", "", "Run a database migration command (up, down, reset, status, version) and exit")
	flag.Parse()

	if err := run(context.Background(), *configFile, *migrateCmd); err != nil {
		slog.Error("numerology-api failed", "error", err)
		os.Exit(1)
	}
}

// run loads configuration and either executes a migration command or serves
// HTTP until interrupted.
func run(ctx context.Context, configFile, migrateCmd string) error {
	cfg, err := config.LoadFrom(configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(logger.LoggerConfig{Level: cfg.Server.LogLevel})
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"default_language", cfg.Content.DefaultLanguage,
		"database_configured", cfg.HasDatabase())

	if migrateCmd != "" {
		return handleMigrations(ctx, cfg, log, migrateCmd)
	}

	app, err := newApplication(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return app.Run(ctx)
}
