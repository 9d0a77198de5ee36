package store

import (
	"context"

	"github.com/phrazzld/numerology-api/internal/domain"
)

// ContentStore reads operator-managed content entries.
type ContentStore interface {
	// Lookup returns the value stored for key in language.
	// Returns ErrContentNotFound if there is no such entry.
	Lookup(ctx context.Context, language, key string) (string, error)

	// ListByLanguage returns every entry in language ordered by type, then key.
	// An empty slice is returned when the language has no entries.
	ListByLanguage(ctx context.Context, language string) ([]*domain.ContentEntry, error)
}

// ContentWriter stores content entries. It is used by the import command,
// never by request handlers.
type ContentWriter interface {
	// Upsert inserts entry or replaces the value, type and description of the
	// entry with the same key and language.
	// Returns ErrInvalidEntity if the entry fails validation or a constraint.
	Upsert(ctx context.Context, entry *domain.ContentEntry) error
}
