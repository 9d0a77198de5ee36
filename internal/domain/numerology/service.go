package numerology

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned when a number kind is not one of the four readings.
var ErrUnknownKind = errors.New("unknown number kind")

// Kind names one of the four numbers of a reading.
type Kind string

// The four numbers produced for a person.
const (
	KindDestiny      Kind = "destiny"
	KindSoul         Kind = "soul"
	KindPersonality  Kind = "personality"
	KindPersonalYear Kind = "personal-year"
)

// Kinds lists the reading numbers in display order.
var Kinds = []Kind{KindDestiny, KindSoul, KindPersonality, KindPersonalYear}

// ParseKind converts s into a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindDestiny, KindSoul, KindPersonality, KindPersonalYear:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// NameMode returns the letter selection used by a name-based kind.
// The second value is false for KindPersonalYear, which is date based.
func (k Kind) NameMode() (Mode, bool) {
	switch k {
	case KindDestiny:
		return ModeAllLetters, true
	case KindSoul:
		return ModeVowels, true
	case KindPersonality:
		return ModeConsonants, true
	default:
		return 0, false
	}
}

// Service defines the calculation operations consumed by the rest of the
// application. It exists so callers can substitute the engine in tests; the
// default implementation is stateless and safe for concurrent use.
type Service interface {
	// ByName computes a name-based number using the given letter selection.
	ByName(name string, mode Mode) Result

	// ByDate computes the Personal Year number.
	ByDate(day, month, referenceYear int) Result

	// Reduce exposes the digit-sum reduction primitive.
	Reduce(n int) Reduction

	// BinomialOf exposes the tarot binomial derivation.
	BinomialOf(n int) Binomial
}

// defaultService is the standard implementation of the Service interface
type defaultService struct{}

// NewDefaultService creates a new calculation service backed by the fixed
// Pythagorean cipher and master numbers.
func NewDefaultService() Service {
	return &defaultService{}
}

func (s *defaultService) ByName(name string, mode Mode) Result {
	return ByName(name, mode)
}

func (s *defaultService) ByDate(day, month, referenceYear int) Result {
	return ByDate(day, month, referenceYear)
}

func (s *defaultService) Reduce(n int) Reduction {
	return Reduce(n)
}

func (s *defaultService) BinomialOf(n int) Binomial {
	return BinomialOf(n)
}
