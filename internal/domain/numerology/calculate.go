package numerology

import (
	"fmt"
	"strings"
)

// Mode selects which letters of a name take part in a calculation.
type Mode int

const (
	// ModeAllLetters keeps every letter (Destiny number).
	ModeAllLetters Mode = iota
	// ModeVowels keeps a, e, i, o, u only (Soul number).
	ModeVowels
	// ModeConsonants keeps every letter that is not a vowel (Personality number).
	ModeConsonants
)

// String returns the mode name used in logs and the CLI.
func (m Mode) String() string {
	switch m {
	case ModeAllLetters:
		return "all"
	case ModeVowels:
		return "vowels"
	case ModeConsonants:
		return "consonants"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Step is one term contributing to a sum.
type Step struct {
	// Letter is a display label: the upper-cased letter for names, or a
	// synthetic label such as "Day (29)" for dates.
	Letter string `json:"letter"`
	Value  int    `json:"value"`
}

// Result is the output of every calculation.
type Result struct {
	Steps           []Step `json:"steps"`
	IntermediateSum int    `json:"intermediate_sum"`
	ReductionSteps  []int  `json:"reduction_steps"`
	FinalNumber     int    `json:"final_number"`
}

// ByName values the letters of name selected by mode and reduces their sum.
//
// Every character that is not an ASCII letter is dropped before selection, so
// spaces, punctuation, digits and accented letters neither appear in Steps nor
// contribute to the sum. When nothing survives the result is the empty
// calculation: no steps, a sum of 0 and a final number of 0.
func ByName(name string, mode Mode) Result {
	steps := make([]Step, 0, len(name))
	for _, r := range name {
		if !isASCIILetter(r) {
			continue
		}
		switch mode {
		case ModeVowels:
			if !IsVowel(r) {
				continue
			}
		case ModeConsonants:
			if IsVowel(r) {
				continue
			}
		}
		steps = append(steps, Step{
			Letter: strings.ToUpper(string(r)),
			Value:  LetterValue(r),
		})
	}
	return assemble(steps)
}

// ByAllLetters computes the Destiny number of name.
func ByAllLetters(name string) Result {
	return ByName(name, ModeAllLetters)
}

// ByVowels computes the Soul number of name.
func ByVowels(name string) Result {
	return ByName(name, ModeVowels)
}

// ByConsonants computes the Personality number of name.
func ByConsonants(name string) Result {
	return ByName(name, ModeConsonants)
}

// ByDate computes the Personal Year number for a birth day and month in the
// given reference year.
//
// Each component contributes the digit-sum of its own digits, taken once and not
// reduced (day 29 contributes 11). The components are not range checked: day 45
// is summed as 4 + 5 like any other value.
func ByDate(day, month, referenceYear int) Result {
	steps := []Step{
		{Letter: fmt.Sprintf("Day (%d)", day), Value: DigitSum(day)},
		{Letter: fmt.Sprintf("Month (%d)", month), Value: DigitSum(month)},
		{Letter: fmt.Sprintf("Year (%d)", referenceYear), Value: DigitSum(referenceYear)},
	}
	return assemble(steps)
}

// assemble sums the steps and attaches the reduction trace.
func assemble(steps []Step) Result {
	sum := 0
	for _, step := range steps {
		sum += step.Value
	}

	reduction := Reduce(sum)

	return Result{
		Steps:           steps,
		IntermediateSum: sum,
		ReductionSteps:  reduction.Steps,
		FinalNumber:     reduction.Final,
	}
}
