package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/numerology-api/internal/domain"
	"github.com/phrazzld/numerology-api/internal/platform/logger"
	"github.com/phrazzld/numerology-api/internal/redact"
	"github.com/phrazzld/numerology-api/internal/store"
)

// ContentStore implements store.ContentStore and store.ContentWriter over
// the app_content table. Timestamps are stored as Unix milliseconds.
type ContentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var (
	_ store.ContentStore  = (*ContentStore)(nil)
	_ store.ContentWriter = (*ContentStore)(nil)
)

// NewContentStore creates a content store on db.
// If logger is nil, a default logger will be used.
func NewContentStore(db store.DBTX, logger *slog.Logger) *ContentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ContentStore{
		db:     db,
		logger: logger.With(slog.String("component", "sqlite_content_store")),
	}
}

// WithTx returns a store that runs its queries in tx.
func (s *ContentStore) WithTx(tx *sql.Tx) *ContentStore {
	return &ContentStore{db: tx, logger: s.logger}
}

// Lookup implements store.ContentStore.Lookup.
func (s *ContentStore) Lookup(ctx context.Context, language, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT content_value FROM app_content WHERE language = ? AND content_key = ?`,
		language, key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", store.ErrContentNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to look up content",
			slog.String("language", language),
			slog.String("content_key", key),
			slog.String("error", redact.Error(err)))
		return "", fmt.Errorf("failed to look up content: %w", MapError(err))
	}
	return value, nil
}

// ListByLanguage implements store.ContentStore.ListByLanguage.
func (s *ContentStore) ListByLanguage(ctx context.Context, language string) ([]*domain.ContentEntry, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `
SELECT id, content_key, content_type, language, content_value, description, created_at, updated_at
FROM app_content
WHERE language = ?
ORDER BY content_type, content_key
`, language)
	if err != nil {
		log.Error("failed to list content",
			slog.String("language", language),
			slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("content", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	entries := make([]*domain.ContentEntry, 0)
	for rows.Next() {
		var (
			e                    domain.ContentEntry
			description          sql.NullString
			createdAt, updatedAt int64
		)
		if err := rows.Scan(
			&e.ID,
			&e.Key,
			&e.Type,
			&e.Language,
			&e.Value,
			&description,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, store.NewStoreError("content", "list", "scan failed", err)
		}
		if description.Valid {
			d := description.String
			e.Description = &d
		}
		e.CreatedAt = time.UnixMilli(createdAt).UTC()
		e.UpdatedAt = time.UnixMilli(updatedAt).UTC()
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("content", "list", "iteration failed", MapError(err))
	}
	return entries, nil
}

// Upsert implements store.ContentWriter.Upsert. An existing entry keeps its
// id and creation time.
func (s *ContentStore) Upsert(ctx context.Context, entry *domain.ContentEntry) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := entry.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	var description sql.NullString
	if entry.Description != nil {
		description = sql.NullString{String: *entry.Description, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
INSERT INTO app_content (id, content_key, content_type, language, content_value, description, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (content_key, language) DO UPDATE SET
	content_type = excluded.content_type,
	content_value = excluded.content_value,
	description = excluded.description,
	updated_at = excluded.updated_at
`,
		entry.ID.String(),
		entry.Key,
		string(entry.Type),
		entry.Language,
		entry.Value,
		description,
		entry.CreatedAt.UTC().UnixMilli(),
		entry.UpdatedAt.UTC().UnixMilli(),
	)
	if err != nil {
		log.Error("failed to upsert content",
			slog.String("content_key", entry.Key),
			slog.String("language", entry.Language),
			slog.String("error", redact.Error(err)))
		return fmt.Errorf("failed to upsert content: %w", MapError(err))
	}

	log.Debug("content upserted",
		slog.String("content_key", entry.Key),
		slog.String("language", entry.Language))
	return nil
}
