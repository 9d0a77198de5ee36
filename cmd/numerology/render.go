package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/phrazzld/numerology-api/internal/domain"
	"github.com/phrazzld/numerology-api/internal/domain/numerology"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Bold(true).Width(14)
	numberStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

var kindLabels = map[numerology.Kind]string{
	numerology.KindDestiny:      "Destiny",
	numerology.KindSoul:         "Soul",
	numerology.KindPersonality:  "Personality",
	numerology.KindPersonalYear: "Personal Year",
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// chain renders reduction steps as "35 → 8".
func chain(steps []int) string {
	parts := make([]string, len(steps))
	for i, s := range steps {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, " → ")
}

// terms renders the summed steps as "J1 O6 H8".
func terms(steps []numerology.Step) string {
	if len(steps) == 0 {
		return "(no letters)"
	}
	parts := make([]string, len(steps))
	for i, s := range steps {
		parts[i] = fmt.Sprintf("%s%d", s.Letter, s.Value)
	}
	return strings.Join(parts, " ")
}

func renderResult(w io.Writer, kind numerology.Kind, r numerology.Result) {
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render(kindLabels[kind]), numberStyle.Render(strconv.Itoa(r.FinalNumber)))
	fmt.Fprintf(w, "  %s = %s\n", terms(r.Steps), chain(r.ReductionSteps))
}

func renderReading(w io.Writer, reading *domain.Reading) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Numerology reading (%s, year %d)", reading.Language, reading.ReferenceYear)))
	fmt.Fprintln(w)

	for _, nr := range reading.Numbers() {
		renderResult(w, nr.Kind, nr.Result)
		if nr.Meaning != "" {
			fmt.Fprintf(w, "  %s\n", nr.Meaning)
		}
		if nr.Tarot != nil {
			renderCards(w, nr.Tarot.Cards)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Archetype"), numberStyle.Render(reading.Archetype))
}

func renderCards(w io.Writer, cards []domain.TarotCard) {
	for _, c := range cards {
		fmt.Fprintf(w, "  %s %s\n", faintStyle.Render(fmt.Sprintf("[%d]", c.Number)), c.Name)
		if c.Description != "" {
			fmt.Fprintf(w, "      %s\n", c.Description)
		}
	}
}
