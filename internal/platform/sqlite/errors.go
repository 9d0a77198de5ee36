package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/phrazzld/numerology-api/internal/store"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// MapError maps a SQLite error to the matching store error, keeping the
// original in the chain.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var sqliteErr *msqlite.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}

	switch code := sqliteErr.Code(); {
	case code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return fmt.Errorf("%w: %w", store.ErrDuplicate, err)
	case code&0xff == sqlite3.SQLITE_CONSTRAINT:
		// Without extended result codes only the message tells them apart.
		if strings.Contains(sqliteErr.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("%w: %w", store.ErrDuplicate, err)
		}
		return fmt.Errorf("%w: constraint violation: %w", store.ErrInvalidEntity, err)
	}
	return err
}
