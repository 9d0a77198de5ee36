package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // Register the sqlite driver for database/sql
)

// ErrEmptyPath is returned by Open when no database file is given.
var ErrEmptyPath = errors.New("sqlite database path is required")

// Open opens the SQLite database at path, creating the file if needed, and
// applies pending migrations. The pool holds a single connection.
func Open(ctx context.Context, path string, logger *slog.Logger) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrEmptyPath
	}
	if logger == nil {
		logger = slog.Default()
	}

	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err := Migrate(ctx, db, logger); err != nil {
		_ = db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(1)

	logger.Info("SQLite content database ready", slog.String("path", filepath.Clean(path)))
	return db, nil
}
