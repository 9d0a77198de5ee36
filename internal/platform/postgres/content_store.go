package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/numerology-api/internal/domain"
	"github.com/phrazzld/numerology-api/internal/platform/logger"
	"github.com/phrazzld/numerology-api/internal/redact"
	"github.com/phrazzld/numerology-api/internal/store"
)

// PostgresContentStore implements store.ContentStore and store.ContentWriter
// over the app_content table.
type PostgresContentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresContentStore creates a content store on db, which may be a
// connection pool or a transaction owned by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresContentStore(db store.DBTX, logger *slog.Logger) *PostgresContentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresContentStore{
		db:     db,
		logger: logger.With(slog.String("component", "content_store")),
	}
}

var (
	_ store.ContentStore  = (*PostgresContentStore)(nil)
	_ store.ContentWriter = (*PostgresContentStore)(nil)
)

// WithTx returns a store that runs its queries in tx.
func (s *PostgresContentStore) WithTx(tx *sql.Tx) *PostgresContentStore {
	return &PostgresContentStore{db: tx, logger: s.logger}
}

// Lookup implements store.ContentStore.Lookup.
func (s *PostgresContentStore) Lookup(ctx context.Context, language, key string) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT content_value
		FROM app_content
		WHERE language = $1 AND content_key = $2
	`

	var value string
	err := s.db.QueryRowContext(ctx, query, language, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", store.ErrContentNotFound
		}
		log.Error("failed to look up content",
			slog.String("language", language),
			slog.String("content_key", key),
			slog.String("error", redact.Error(err)))
		return "", fmt.Errorf("failed to look up content: %w", MapError(err))
	}

	return value, nil
}

// ListByLanguage implements store.ContentStore.ListByLanguage.
func (s *PostgresContentStore) ListByLanguage(
	ctx context.Context,
	language string,
) ([]*domain.ContentEntry, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, content_key, content_type, language, content_value, description, created_at, updated_at
		FROM app_content
		WHERE language = $1
		ORDER BY content_type, content_key
	`

	rows, err := s.db.QueryContext(ctx, query, language)
	if err != nil {
		log.Error("failed to list content",
			slog.String("language", language),
			slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("content", "list", "query failed", MapError(err))
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Warn("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	entries := make([]*domain.ContentEntry, 0)
	for rows.Next() {
		var (
			e           domain.ContentEntry
			description sql.NullString
		)
		if err := rows.Scan(
			&e.ID,
			&e.Key,
			&e.Type,
			&e.Language,
			&e.Value,
			&description,
			&e.CreatedAt,
			&e.UpdatedAt,
		); err != nil {
			return nil, store.NewStoreError("content", "list", "scan failed", err)
		}
		if description.Valid {
			d := description.String
			e.Description = &d
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("content", "list", "iteration failed", MapError(err))
	}

	log.Debug("listed content",
		slog.String("language", language),
		slog.Int("count", len(entries)))
	return entries, nil
}

// Upsert implements store.ContentWriter.Upsert.
func (s *PostgresContentStore) Upsert(ctx context.Context, entry *domain.ContentEntry) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := entry.Validate(); err != nil {
		log.Warn("content validation failed during upsert",
			slog.String("content_key", entry.Key),
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO app_content (id, content_key, content_type, language, content_value, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (content_key, language) DO UPDATE
		SET content_type = EXCLUDED.content_type,
			content_value = EXCLUDED.content_value,
			description = EXCLUDED.description
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		entry.ID,
		entry.Key,
		entry.Type,
		entry.Language,
		entry.Value,
		entry.Description,
		entry.CreatedAt,
		entry.UpdatedAt,
	)
	if err != nil {
		log.Log(ctx, WriteErrorLevel(err), "failed to upsert content",
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
