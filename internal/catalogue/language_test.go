package catalogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNegotiator(t *testing.T) *Negotiator {
	t.Helper()
	n, err := NewNegotiator(allLanguages, "en")
	require.NoError(t, err)
	return n
}

func TestNewNegotiator_RejectsUnsupportedFallback(t *testing.T) {
	t.Parallel()

	_, err := NewNegotiator(allLanguages, "pt")
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)

	_, err = NewNegotiator([]string{"en", "not a tag!"}, "en")
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
}

func TestNegotiator_Match(t *testing.T) {
	t.Parallel()

	n := newTestNegotiator(t)
	assert.Equal(t, "en", n.Default())

	testCases := []struct {
		name     string
		values   []string
		expected string
	}{
		{name: "exact", values: []string{"ja"}, expected: "ja"},
		{name: "upper case", values: []string{"DE"}, expected: "de"},
		{name: "regional variant", values: []string{"es-MX"}, expected: "es"},
		{name: "first usable value wins", values: []string{"", "  ", "it", "fr"}, expected: "it"},
		{name: "unparseable value is skipped", values: []string{"not a tag!", "fr"}, expected: "fr"},
		{name: "unsupported language", values: []string{"ko"}, expected: "en"},
		{name: "nothing given", values: nil, expected: "en"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, n.Match(tc.values...))
		})
	}
}

func TestNegotiator_MatchAcceptLanguage(t *testing.T) {
	t.Parallel()

	n := newTestNegotiator(t)

	assert.Equal(t, "fr", n.MatchAcceptLanguage("fr-CH, fr;q=0.9, en;q=0.8"))
	assert.Equal(t, "de", n.MatchAcceptLanguage("ko;q=0.9, de;q=0.5"))
	assert.Equal(t, "en", n.MatchAcceptLanguage(""))
	assert.Equal(t, "en", n.MatchAcceptLanguage("ko"))
	assert.Equal(t, "en", n.MatchAcceptLanguage(";;;==="))
}

func TestNegotiator_NonEnglishFallback(t *testing.T) {
	t.Parallel()

	n, err := NewNegotiator(allLanguages, "es")
	require.NoError(t, err)

	assert.Equal(t, "es", n.Match("ko"))
	assert.Equal(t, "en", n.Match("en-GB"))
	assert.Equal(t, "es", n.Default())
}
