package numerology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLetterValue(t *testing.T) {
	t.Parallel()

	expected := map[rune]int{
		'a': 1, 'b': 2, 'c': 3, 'd': 4, 'e': 5, 'f': 6, 'g': 7, 'h': 8, 'i': 9,
		'j': 1, 'k': 2, 'l': 3, 'm': 4, 'n': 5, 'o': 6, 'p': 7, 'q': 8, 'r': 9,
		's': 1, 't': 2, 'u': 3, 'v': 4, 'w': 5, 'x': 6, 'y': 7, 'z': 8,
	}
	for r, value := range expected {
		assert.Equal(t, value, LetterValue(r), "lowercase %q", r)
		assert.Equal(t, value, LetterValue(r-'a'+'A'), "uppercase %q", r)
	}

	for _, r := range []rune{'é', 'ñ', 'ß', '1', ' ', '-', '田'} {
		assert.Zero(t, LetterValue(r), "%q should not contribute", r)
	}
}

func TestLetterValue_OnlyFoldsASCII(t *testing.T) {
	t.Parallel()

	// Each of these lower-cases to an ASCII letter under Unicode rules.
	for _, r := range []rune{'İ', '\u212A'} {
		assert.Zero(t, LetterValue(r), "%q (%U) should not contribute", r, r)
		assert.False(t, IsVowel(r), "%q (%U) is not a vowel", r, r)
	}
	assert.Equal(t, 9, LetterValue('I'))
	assert.True(t, IsVowel('I'))
}

func TestByAllLetters(t *testing.T) {
	t.Parallel()

	got := ByAllLetters("John Doe")

	assert.Equal(t, []Step{
		{Letter: "J", Value: 1},
		{Letter: "O", Value: 6},
		{Letter: "H", Value: 8},
		{Letter: "N", Value: 5},
		{Letter: "D", Value: 4},
		{Letter: "O", Value: 6},
		{Letter: "E", Value: 5},
	}, got.Steps)
	assert.Equal(t, 35, got.IntermediateSum)
	assert.Equal(t, []int{35, 8}, got.ReductionSteps)
	assert.Equal(t, 8, got.FinalNumber)
}

func TestByVowelsAndConsonants(t *testing.T) {
	t.Parallel()

	soul := ByVowels("John Doe")
	assert.Equal(t, []Step{{"O", 6}, {"O", 6}, {"E", 5}}, soul.Steps)
	assert.Equal(t, 17, soul.IntermediateSum)
	assert.Equal(t, []int{17, 8}, soul.ReductionSteps)
	assert.Equal(t, 8, soul.FinalNumber)

	personality := ByConsonants("John Doe")
	assert.Equal(t, []Step{{"J", 1}, {"H", 8}, {"N", 5}, {"D", 4}}, personality.Steps)
	assert.Equal(t, 18, personality.IntermediateSum)
	assert.Equal(t, []int{18, 9}, personality.ReductionSteps)
	assert.Equal(t, 9, personality.FinalNumber)

	// Y counts as a consonant.
	assert.Empty(t, ByVowels("Yy").Steps)
	assert.Len(t, ByConsonants("Yy").Steps, 2)
}

func TestByName_FiltersNonASCIILetters(t *testing.T) {
	t.Parallel()

	got := ByAllLetters("Élodie-Anne 3rd")

	letters := make([]string, 0, len(got.Steps))
	for _, step := range got.Steps {
		letters = append(letters, step.Letter)
	}
	assert.Equal(t, []string{"L", "O", "D", "I", "E", "A", "N", "N", "E", "R", "D"}, letters)
	assert.Equal(t, 56, got.IntermediateSum)
	assert.Equal(t, []int{56, 11}, got.ReductionSteps)
	assert.Equal(t, 11, got.FinalNumber, "a master total must be kept")
}

func TestByName_EmptySelection(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
		mode  Mode
	}{
		{name: "empty name", input: "", mode: ModeAllLetters},
		{name: "only punctuation and digits", input: "-- 42 !", mode: ModeAllLetters},
		{name: "only accented letters", input: "Ñé", mode: ModeAllLetters},
		{name: "no vowels", input: "Brr", mode: ModeVowels},
		{name: "no consonants", input: "Aoi", mode: ModeConsonants},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ByName(tc.input, tc.mode)
			assert.Empty(t, got.Steps)
			assert.Equal(t, 0, got.IntermediateSum)
			assert.Equal(t, []int{0}, got.ReductionSteps)
			assert.Equal(t, 0, got.FinalNumber)
		})
	}
}

func TestByDate(t *testing.T) {
	t.Parallel()

	got := ByDate(29, 2, 2024)

	assert.Equal(t, []Step{
		{Letter: "Day (29)", Value: 11},
		{Letter: "Month (2)", Value: 2},
		{Letter: "Year (2024)", Value: 8},
	}, got.Steps)
	assert.Equal(t, 21, got.IntermediateSum)
	assert.Equal(t, []int{21, 3}, got.ReductionSteps)
	assert.Equal(t, 3, got.FinalNumber)
}

func TestByDate_OutOfRangeComponentsAreSummed(t *testing.T) {
	t.Parallel()

	got := ByDate(45, 13, 2024)

	assert.Equal(t, 9, got.Steps[0].Value)
	assert.Equal(t, 4, got.Steps[1].Value)
	assert.Equal(t, 21, got.IntermediateSum)
	assert.Equal(t, 3, got.FinalNumber)
}

func TestResultInvariants(t *testing.T) {
	t.Parallel()

	names := []string{"John Doe", "María José", "Brr", "", "Alexandra Ocasio", "Zz Yy Xx"}
	for _, name := range names {
		for _, mode := range []Mode{ModeAllLetters, ModeVowels, ModeConsonants} {
			got := ByName(name, mode)
			require.NotEmpty(t, got.ReductionSteps)

			sum := 0
			for _, step := range got.Steps {
				sum += step.Value
			}
			assert.Equal(t, sum, got.IntermediateSum, "%q %s", name, mode)
			assert.Equal(t, got.IntermediateSum, got.ReductionSteps[0], "%q %s", name, mode)
			assert.Equal(t, got.FinalNumber, got.ReductionSteps[len(got.ReductionSteps)-1], "%q %s", name, mode)
		}
	}
}

func TestCalculationsAreIdempotent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ByAllLetters("Ada Lovelace"), ByAllLetters("Ada Lovelace"))
	assert.Equal(t, ByVowels("Ada Lovelace"), ByVowels("Ada Lovelace"))
	assert.Equal(t, ByConsonants("Ada Lovelace"), ByConsonants("Ada Lovelace"))
	assert.Equal(t, ByDate(10, 12, 2025), ByDate(10, 12, 2025))
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	for _, kind := range Kinds {
		parsed, err := ParseKind(string(kind))
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	_, err := ParseKind("life-path")
	assert.ErrorIs(t, err, ErrUnknownKind)

	mode, ok := KindSoul.NameMode()
	assert.True(t, ok)
	assert.Equal(t, ModeVowels, mode)

	_, ok = KindPersonalYear.NameMode()
	assert.False(t, ok)
}
