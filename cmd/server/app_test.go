package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/numerology-api/internal/config"
	"github.com/phrazzld/numerology-api/internal/domain"
	"github.com/phrazzld/numerology-api/internal/platform/logger"
	"github.com/phrazzld/numerology-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:            0,
			LogLevel:        "debug",
			RequestTimeout:  5 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Content: config.ContentConfig{DefaultLanguage: "en"},
	}
}

func newTestApp(t *testing.T, cfg *config.Config) *application {
	t.Helper()
	log, _ := logger.NewTestLogger(t)
	app, err := newApplication(context.Background(), cfg, log)
	require.NoError(t, err)
	return app
}

func TestNewApplication_CatalogueOnly(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, testConfig())

	assert.Nil(t, app.db)
	assert.Nil(t, app.contentStore)
	assert.NotNil(t, app.readingService)
	assert.Equal(t, "en", app.negotiator.Default())
}

func TestNewApplication_UnsupportedDefaultLanguage(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Content.DefaultLanguage = "pt"

	log, _ := logger.NewTestLogger(t)
	_, err := newApplication(context.Background(), cfg, log)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "language negotiator")
}

func TestNewApplication_OverridesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "overrides.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
entries:
  - key: number_meaning_8
    type: number_meaning
    language: en
    value: "Builders of lasting things"
`), 0o600))

	cfg := testConfig()
	cfg.Content.OverridesFile = path
	app := newTestApp(t, cfg)
	require.NotNil(t, app.contentStore)

	router := app.setupRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/readings",
		strings.NewReader(`{"full_name":"John Doe","birth_day":29,"birth_month":2,"reference_year":2024}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var reading domain.Reading
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reading))
	assert.Equal(t, "Builders of lasting things", reading.Destiny.Meaning)
}

func TestNewApplication_InvalidOverridesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "overrides.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entries:\n  - key: x\n    type: banner\n    language: en\n    value: y\n"), 0o600))

	cfg := testConfig()
	cfg.Content.OverridesFile = path

	log, _ := logger.NewTestLogger(t)
	_, err := newApplication(context.Background(), cfg, log)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load content overrides")
}

func TestStartHTTPServer_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, testConfig())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServiceWiring(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, testConfig())

	entry, err := app.readingService.CatalogueEntry(context.Background(), 22, "it")
	require.NoError(t, err)
	require.NotNil(t, entry.Card)
	assert.Equal(t, "Il Matto", entry.Card.Name)

	_, err = app.readingService.CatalogueEntry(context.Background(), 33, "it")
	assert.ErrorIs(t, err, service.ErrNotCatalogued)
}

func TestNewApplication_SQLite(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Content.SQLitePath = filepath.Join(t.TempDir(), "content.db")
	app := newTestApp(t, cfg)
	t.Cleanup(app.cleanup)

	require.NotNil(t, app.db)
	require.NotNil(t, app.contentStore)

	entries, err := app.readingService.Content(context.Background(), "en")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
