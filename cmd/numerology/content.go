package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"text/tabwriter"

	_ "github.com/jackc/pgx/v5/stdlib" // Register pgx driver for database/sql
	"github.com/phrazzld/numerology-api/internal/content"
	"github.com/phrazzld/numerology-api/internal/domain"
	"github.com/phrazzld/numerology-api/internal/platform/postgres"
	"github.com/phrazzld/numerology-api/internal/platform/sqlite"
	"github.com/phrazzld/numerology-api/internal/store"
	"github.com/spf13/cobra"
)

// errNoImportTarget is returned when content import has nowhere to write.
var errNoImportTarget = errors.New("content import needs --database-url or --sqlite")

func newContentCmd(global *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Manage content entries that override catalogue text",
	}
	cmd.AddCommand(newContentImportCmd(global), newContentListCmd(global), newContentGetCmd(global))
	return cmd
}

func newContentListCmd(global *globalOptions) *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the content entries of one language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closer, err := global.readingService(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = closer.Close() }()

			lang := svc.Language(language)
			entries, err := svc.Content(cmd.Context(), lang)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No content entries for %q.\n", lang)
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TYPE\tKEY\tVALUE")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Type, e.Key, e.Value)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&language, "lang", "", "Language to list (default: --default-lang)")
	return cmd
}

func newContentGetCmd(global *globalOptions) *cobra.Command {
	var (
		language string
		fallback string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Resolve one content text",
		Long: `Print the entry stored for key in the requested language. Without one,
--fallback is printed, and without a fallback the key itself.`,
		Example: "  numerology content get cta_title --lang it --fallback \"Discover your numbers\"",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closer, err := global.readingService(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = closer.Close() }()

			text, err := svc.Text(cmd.Context(), svc.Language(language), args[0], fallback)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), text)
			}
			fmt.Fprintln(cmd.OutOrStdout(), text.Value)
			return nil
		},
	}
	cmd.Flags().StringVar(&language, "lang", "", "Language of the text (default: --default-lang)")
	cmd.Flags().StringVar(&fallback, "fallback", "", "Text printed when no entry exists")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the text as JSON")
	return cmd
}

type importOptions struct {
	databaseURL string
	migrate     bool
	dryRun      bool
}

func newContentImportCmd(global *globalOptions) *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a YAML file of content entries into a content database",
		Long: `Validate every entry of a YAML overrides file and upsert them into
PostgreSQL (--database-url) or a SQLite file (the global --sqlite flag) in a
single transaction. Entries are matched on key and language; existing
entries are replaced.`,
		Example: `  numerology content import overrides.yaml --sqlite content.db
  numerology content import overrides.yaml --database-url postgres://localhost/numerology --migrate`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := global.logger(cmd)

			source, err := content.LoadMemoryStoreFile(args[0])
			if err != nil {
				return err
			}
			entries := source.All()

			if opts.dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "%d entries are valid.\n", len(entries))
				return nil
			}

			n, err := importContent(cmd.Context(), opts, global.sqlitePath, entries, log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries.\n", n)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.databaseURL, "database-url", "", "PostgreSQL connection URL")
	f.BoolVar(&opts.migrate, "migrate", false, "Apply pending PostgreSQL migrations before importing")
	f.BoolVar(&opts.dryRun, "dry-run", false, "Validate the file without writing anything")
	return cmd
}

// importContent writes entries to PostgreSQL when a URL is given, otherwise
// to the SQLite file, and returns how many were written.
func importContent(
	ctx context.Context,
	opts *importOptions,
	sqlitePath string,
	entries []*domain.ContentEntry,
	log *slog.Logger,
) (int, error) {
	var (
		db   *sql.DB
		bind func(tx *sql.Tx) store.ContentWriter
		err  error
	)

	switch {
	case opts.databaseURL != "":
		db, err = sql.Open("pgx", opts.databaseURL)
		if err != nil {
			return 0, fmt.Errorf("failed to open database connection: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return 0, fmt.Errorf("failed to ping database: %w", err)
		}
		if opts.migrate {
			if err := postgres.Migrate(ctx, db, postgres.MigrateUp, log); err != nil {
				_ = db.Close()
				return 0, err
			}
		}
		pg := postgres.NewPostgresContentStore(db, log)
		bind = func(tx *sql.Tx) store.ContentWriter { return pg.WithTx(tx) }

	case sqlitePath != "":
		db, err = sqlite.Open(ctx, sqlitePath, log)
		if err != nil {
			return 0, err
		}
		lite := sqlite.NewContentStore(db, log)
		bind = func(tx *sql.Tx) store.ContentWriter { return lite.WithTx(tx) }

	default:
		return 0, errNoImportTarget
	}
	defer func() { _ = db.Close() }()

	err = store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		writer := bind(tx)
		for _, e := range entries {
			if err := writer.Upsert(ctx, e); err != nil {
				return fmt.Errorf("import %s/%s: %w", e.Language, e.Key, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Info("content imported", slog.Int("count", len(entries)))
	return len(entries), nil
}
