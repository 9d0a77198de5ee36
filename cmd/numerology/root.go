package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/phrazzld/numerology-api/internal/catalogue"
	"github.com/phrazzld/numerology-api/internal/content"
	"github.com/phrazzld/numerology-api/internal/domain/numerology"
	"github.com/phrazzld/numerology-api/internal/platform/logger"
	"github.com/phrazzld/numerology-api/internal/platform/sqlite"
	"github.com/phrazzld/numerology-api/internal/service"
	"github.com/phrazzld/numerology-api/internal/store"
	"github.com/spf13/cobra"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	contentFile     string
	sqlitePath      string
	defaultLanguage string
	logLevel        string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "numerology",
		Short: "Compute numerology readings and manage their texts",
		Long: `Compute Destiny, Soul, Personality and Personal Year numbers, explore
digit-sum reductions and tarot binomials, and import content entries that
override the built-in meanings.

Texts come from the built-in catalogue unless a SQLite content database
(--sqlite) or a YAML overrides file (--content) provides an entry.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.contentFile, "content", "", "YAML file of content entries overriding catalogue text")
	pf.StringVar(&opts.sqlitePath, "sqlite", "", "SQLite content database (takes precedence over --content)")
	pf.StringVar(&opts.defaultLanguage, "default-lang", "en", "Language used when a text is missing in the requested one")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "Log level written to stderr (debug, info, warn, error)")

	root.AddCommand(
		newReadingCmd(opts),
		newReduceCmd(opts),
		newBinomialCmd(opts),
		newCardCmd(opts),
		newCatalogueCmd(opts),
		newContentCmd(opts),
	)
	return root
}

// logger builds the command's logger on its error stream.
func (o *globalOptions) logger(cmd *cobra.Command) *slog.Logger {
	// Setup never fails; an unknown level falls back to info.
	log, _ := logger.Setup(logger.LoggerConfig{Level: o.logLevel, Output: cmd.ErrOrStderr()})
	return log
}

// contentSource opens the configured content store. The returned closer
// releases it and is never nil.
func (o *globalOptions) contentSource(ctx context.Context, log *slog.Logger) (store.ContentStore, io.Closer, error) {
	switch {
	case o.sqlitePath != "":
		db, err := sqlite.Open(ctx, o.sqlitePath, log)
		if err != nil {
			return nil, nopCloser{}, err
		}
		return sqlite.NewContentStore(db, log), db, nil

	case o.contentFile != "":
		s, err := content.LoadMemoryStoreFile(o.contentFile)
		if err != nil {
			return nil, nopCloser{}, err
		}
		return s, nopCloser{}, nil

	default:
		return nil, nopCloser{}, nil
	}
}

// readingService wires the engine, catalogue and content store the same way
// the API server does.
func (o *globalOptions) readingService(cmd *cobra.Command) (service.ReadingService, io.Closer, error) {
	log := o.logger(cmd)
	cat := catalogue.Default()

	negotiator, err := catalogue.NewNegotiator(cat.Languages(), o.defaultLanguage)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --default-lang: %w", err)
	}

	source, closer, err := o.contentSource(cmd.Context(), log)
	if err != nil {
		return nil, nil, err
	}

	resolver, err := content.NewResolver(cat, source, negotiator.Default(), log)
	if err != nil {
		_ = closer.Close()
		return nil, nil, err
	}

	svc, err := service.NewReadingService(numerology.NewDefaultService(), resolver, negotiator, log)
	if err != nil {
		_ = closer.Close()
		return nil, nil, err
	}
	return svc, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
