//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/phrazzld/numerology-api/internal/domain"
	"github.com/phrazzld/numerology-api/internal/platform/postgres"
	"github.com/phrazzld/numerology-api/internal/store"
	"github.com/phrazzld/numerology-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEntry(t *testing.T, key string, typ domain.ContentType, lang, value string) *domain.ContentEntry {
	t.Helper()
	e, err := domain.NewContentEntry(key, typ, lang, value)
	require.NoError(t, err)
	return e
}

func TestPostgresContentStore_UpsertAndLookup(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		s := postgres.NewPostgresContentStore(tx, nil)

		entry := mustEntry(t, domain.NumberMeaningKey(7), domain.ContentTypeNumberMeaning, "it", "Cercatori")
		require.NoError(t, s.Upsert(ctx, entry))

		value, err := s.Lookup(ctx, "it", domain.NumberMeaningKey(7))
		require.NoError(t, err)
		assert.Equal(t, "Cercatori", value)

		replacement := mustEntry(t, domain.NumberMeaningKey(7), domain.ContentTypeNumberMeaning, "it", "Cercatori di verità")
		require.NoError(t, s.Upsert(ctx, replacement), "same key and language replaces the value")

		value, err = s.Lookup(ctx, "it", domain.NumberMeaningKey(7))
		require.NoError(t, err)
		assert.Equal(t, "Cercatori di verità", value)

		_, err = s.Lookup(ctx, "de", domain.NumberMeaningKey(7))
		assert.ErrorIs(t, err, store.ErrContentNotFound)
	})
}

func TestPostgresContentStore_ListByLanguage(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		s := postgres.NewPostgresContentStore(tx, nil)

		desc := "landing page"
		cta := mustEntry(t, "cta_title", domain.ContentTypeCTAText, "ja", "数字を見つける")
		cta.Description = &desc
		for _, e := range []*domain.ContentEntry{
			mustEntry(t, "step_name", domain.ContentTypeStepText, "ja", "名前を入力"),
			cta,
			mustEntry(t, "cta_button", domain.ContentTypeCTAText, "ja", "進む"),
			mustEntry(t, "cta_button", domain.ContentTypeCTAText, "fr", "Continuer"),
		} {
			require.NoError(t, s.Upsert(ctx, e))
		}

		entries, err := s.ListByLanguage(ctx, "ja")
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "cta_button", entries[0].Key)
		assert.Equal(t, "cta_title", entries[1].Key)
		assert.Equal(t, "step_name", entries[2].Key)
		require.NotNil(t, entries[1].Description)
		assert.Equal(t, desc, *entries[1].Description)
		assert.Nil(t, entries[0].Description)

		entries, err = s.ListByLanguage(ctx, "zh")
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestPostgresContentStore_UpsertRejectsInvalidEntry(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		s := postgres.NewPostgresContentStore(tx, nil)

		entry := mustEntry(t, "cta_title", domain.ContentTypeCTAText, "en", "Discover")
		entry.Type = "banner"

		err := s.Upsert(context.Background(), entry)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}

func TestPostgresContentStore_CheckConstraintMapped(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		_, err := tx.ExecContext(context.Background(),
			`INSERT INTO app_content (content_key, content_type, language, content_value)
			 VALUES ('x', 'banner', 'en', 'y')`)
		require.Error(t, err)

		mapped := postgres.MapError(err)
		assert.ErrorIs(t, mapped, store.ErrInvalidEntity)
		assert.True(t, postgres.IsCheckConstraintViolation(mapped))
	})
}

func TestNewPostgresContentStore_NilDBPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		postgres.NewPostgresContentStore(nil, nil)
	})
}
