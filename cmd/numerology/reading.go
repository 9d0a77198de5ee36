package main

import (
	"github.com/phrazzld/numerology-api/internal/domain"
	"github.com/spf13/cobra"
)

type readingOptions struct {
	name     string
	day      int
	month    int
	year     int
	language string
	tarot    bool
	json     bool
}

func newReadingCmd(global *globalOptions) *cobra.Command {
	opts := &readingOptions{}

	cmd := &cobra.Command{
		Use:   "reading",
		Short: "Compute the four numbers of a person",
		Long: `Compute Destiny, Soul and Personality from the full name and the
Personal Year from the day and month of birth, with their meanings.

The Personal Year uses the current year unless --year is given.`,
		Example: `  numerology reading --name "John Doe" --day 29 --month 2 --year 2024 --tarot`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closer, err := global.readingService(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = closer.Close() }()

			reading, err := svc.CreateReading(cmd.Context(), domain.ReadingRequest{
				FullName:      opts.name,
				BirthDay:      opts.day,
				BirthMonth:    opts.month,
				ReferenceYear: opts.year,
				Language:      opts.language,
				IncludeTarot:  opts.tarot,
			})
			if err != nil {
				return err
			}

			if opts.json {
				return writeJSON(cmd.OutOrStdout(), reading)
			}
			renderReading(cmd.OutOrStdout(), reading)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.name, "name", "", "Full name")
	f.IntVar(&opts.day, "day", 0, "Day of birth (1-31)")
	f.IntVar(&opts.month, "month", 0, "Month of birth (1-12)")
	f.IntVar(&opts.year, "year", 0, "Year the Personal Year is computed for (default: current year)")
	f.StringVar(&opts.language, "lang", "", "Language of the meanings (en, es, it, de, zh, ja, fr)")
	f.BoolVar(&opts.tarot, "tarot", false, "Include tarot binomials and cards")
	f.BoolVar(&opts.json, "json", false, "Print the reading as JSON")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("month")

	return cmd
}
