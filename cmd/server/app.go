package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/numerology-api/internal/catalogue"
	"github.com/phrazzld/numerology-api/internal/config"
	"github.com/phrazzld/numerology-api/internal/content"
	"github.com/phrazzld/numerology-api/internal/domain/numerology"
	"github.com/phrazzld/numerology-api/internal/platform/postgres"
	"github.com/phrazzld/numerology-api/internal/platform/sqlite"
	"github.com/phrazzld/numerology-api/internal/service"
	"github.com/phrazzld/numerology-api/internal/store"
)

// application holds the shared dependencies of the server and releases them
// on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	catalogue      *catalogue.Catalogue
	negotiator     *catalogue.Negotiator
	contentStore   store.ContentStore
	readingService service.ReadingService
}

// newApplication wires the application. The content store is the first
// configured of PostgreSQL, a SQLite file and a YAML overrides file; with
// none of them every text comes from the catalogue.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config:    cfg,
		logger:    logger,
		catalogue: catalogue.Default(),
	}

	var err error
	app.negotiator, err = catalogue.NewNegotiator(app.catalogue.Languages(), cfg.Content.DefaultLanguage)
	if err != nil {
		return nil, fmt.Errorf("failed to create language negotiator: %w", err)
	}

	switch {
	case cfg.HasDatabase():
		app.db, err = setupAppDatabase(ctx, cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		if cfg.Database.AutoMigrate {
			if err := postgres.Migrate(ctx, app.db, postgres.MigrateUp, logger); err != nil {
				app.cleanup()
				return nil, fmt.Errorf("failed to apply migrations: %w", err)
			}
		}
		app.contentStore = postgres.NewPostgresContentStore(app.db, logger)
		logger.Info("Content overrides served from database")

	case cfg.Content.SQLitePath != "":
		app.db, err = sqlite.Open(ctx, cfg.Content.SQLitePath, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open content database: %w", err)
		}
		app.contentStore = sqlite.NewContentStore(app.db, logger)
		logger.Info("Content overrides served from SQLite")

	case cfg.Content.OverridesFile != "":
		app.contentStore, err = content.LoadMemoryStoreFile(cfg.Content.OverridesFile)
		if err != nil {
			return nil, err
		}
		logger.Info("Content overrides loaded from file", "path", cfg.Content.OverridesFile)

	default:
		logger.Info("No content store configured, serving catalogue text only")
	}

	resolver, err := content.NewResolver(app.catalogue, app.contentStore, cfg.Content.DefaultLanguage, logger)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create content resolver: %w", err)
	}

	app.readingService, err = service.NewReadingService(
		numerology.NewDefaultService(),
		resolver,
		app.negotiator,
		logger,
	)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create reading service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is canceled or the process is signalled.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
		app.db = nil
	}
}
