package catalogue

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// ErrUnsupportedLanguage is returned when a fallback language is not supported.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Negotiator resolves requested language values to one of a fixed set of
// supported codes. Unknown or unparseable values resolve to the fallback.
type Negotiator struct {
	fallback string
	codes    []string
	matcher  language.Matcher
}

// NewNegotiator builds a Negotiator over supported codes. fallback must be one
// of them.
func NewNegotiator(supported []string, fallback string) (*Negotiator, error) {
	fallback = strings.ToLower(strings.TrimSpace(fallback))

	// The matcher answers with the first tag when nothing matches, so the
	// fallback goes first.
	codes := []string{fallback}
	found := false
	for _, code := range supported {
		if code == fallback {
			found = true
			continue
		}
		codes = append(codes, code)
	}
	if !found {
		return nil, fmt.Errorf("%w: fallback %q", ErrUnsupportedLanguage, fallback)
	}

	tags := make([]language.Tag, 0, len(codes))
	for _, code := range codes {
		tag, err := language.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrUnsupportedLanguage, code, err)
		}
		tags = append(tags, tag)
	}

	return &Negotiator{
		fallback: fallback,
		codes:    codes,
		matcher:  language.NewMatcher(tags),
	}, nil
}

// Default returns the fallback code.
func (n *Negotiator) Default() string {
	return n.fallback
}

// Match returns the supported code for the first value that matches one.
// Blank values are skipped, so callers can pass candidates in priority order.
func (n *Negotiator) Match(values ...string) string {
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		tag, err := language.Parse(value)
		if err != nil {
			continue
		}
		if code, ok := n.match(tag); ok {
			return code
		}
	}
	return n.fallback
}

// MatchAcceptLanguage resolves an Accept-Language header value.
func (n *Negotiator) MatchAcceptLanguage(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return n.fallback
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return n.fallback
	}
	if code, ok := n.match(tags...); ok {
		return code
	}
	return n.fallback
}

func (n *Negotiator) match(tags ...language.Tag) (string, bool) {
	_, index, confidence := n.matcher.Match(tags...)
	if confidence == language.No || index < 0 || index >= len(n.codes) {
		return "", false
	}
	return n.codes[index], true
}
