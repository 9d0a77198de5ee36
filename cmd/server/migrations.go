package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/numerology-api/internal/config"
	"github.com/phrazzld/numerology-api/internal/platform/postgres"
)

// errNoDatabase is returned when a migration is requested without a database URL.
var errNoDatabase = errors.New("database URL is empty: set NUMEROLOGY_DATABASE_URL")

// handleMigrations runs a migration command against the configured database.
func handleMigrations(ctx context.Context, cfg *config.Config, logger *slog.Logger, command string) error {
	if !cfg.HasDatabase() {
		return errNoDatabase
	}

	logger.Info("Executing migrations", "command", command)

	db, err := setupAppDatabase(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Error closing database connection", "error", err)
		}
	}()

	if err := postgres.Migrate(ctx, db, command, logger); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
