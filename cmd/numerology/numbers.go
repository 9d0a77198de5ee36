package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/phrazzld/numerology-api/internal/domain"
	"github.com/spf13/cobra"
)

// parseNumber reads a non-negative integer argument.
func parseNumber(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return 0, domain.NewValidationError("n", "must be a non-negative integer", nil)
	}
	return n, nil
}

func newReduceCmd(global *globalOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "reduce <n>",
		Short:   "Digit-sum a number down to one digit or a master number",
		Example: "  numerology reduce 38   # 38 → 11",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseNumber(args[0])
			if err != nil {
				return err
			}
			svc, closer, err := global.readingService(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = closer.Close() }()

			reduction, err := svc.Reduce(n)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), reduction)
			}
			fmt.Fprintln(cmd.OutOrStdout(), chain(reduction.Steps))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the reduction as JSON")
	return cmd
}

func newBinomialCmd(global *globalOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "binomial <n>",
		Short:   "Show the tarot binomial of a number",
		Example: "  numerology binomial 22   # 22 + 4",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseNumber(args[0])
			if err != nil {
				return err
			}
			svc, closer, err := global.readingService(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = closer.Close() }()

			binomial, err := svc.Binomial(n)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), binomial)
			}
			if binomial.MasterNumber != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%d + %d\n", *binomial.MasterNumber, binomial.ReducedNumber)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), binomial.ReducedNumber)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the binomial as JSON")
	return cmd
}

func newCardCmd(global *globalOptions) *cobra.Command {
	var (
		language string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:     "card <n>",
		Short:   "Show the meaning and tarot card of a catalogued number",
		Example: "  numerology card 11 --lang it",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseNumber(args[0])
			if err != nil {
				return err
			}
			svc, closer, err := global.readingService(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = closer.Close() }()

			entry, err := svc.CatalogueEntry(cmd.Context(), n, svc.Language(language))
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), entry)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Number"), numberStyle.Render(strconv.Itoa(entry.Number)))
			fmt.Fprintf(w, "  %s\n", entry.Meaning)
			if entry.Card != nil {
				renderCards(w, []domain.TarotCard{*entry.Card})
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&language, "lang", "", "Language of the texts")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the entry as JSON")
	return cmd
}

func newCatalogueCmd(global *globalOptions) *cobra.Command {
	var (
		language string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:     "catalogue",
		Short:   "List every catalogued number with its tarot card",
		Example: "  numerology catalogue --lang ja",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closer, err := global.readingService(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = closer.Close() }()

			entries := svc.Catalogue(cmd.Context(), svc.Language(language))
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), entries)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NUMBER\tCARD\tMEANING")
			for _, e := range entries {
				card := "-"
				if e.Card != nil {
					card = e.Card.Name
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\n", e.Number, card, e.Meaning)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&language, "lang", "", "Language of the texts")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the entries as JSON")
	return cmd
}
