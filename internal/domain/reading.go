package domain

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/phrazzld/numerology-api/internal/domain/numerology"
)

// Bounds accepted for a reading request.
const (
	MaxNameLength = 256
	MinYear       = 1
	MaxYear       = 9999
)

// ReadingRequest holds the personal data a reading is computed from.
// The birth year is not collected: no calculation uses it.
type ReadingRequest struct {
	FullName   string `json:"full_name"`
	BirthDay   int    `json:"birth_day"`
	BirthMonth int    `json:"birth_month"`
	// ReferenceYear is the year the Personal Year is computed for.
	// Zero means the current year.
	ReferenceYear int    `json:"reference_year,omitempty"`
	Language      string `json:"language,omitempty"`
	IncludeTarot  bool   `json:"include_tarot"`
}

// Validate checks the request and returns a ValidationError for the first
// invalid field.
func (r ReadingRequest) Validate() error {
	if strings.TrimSpace(r.FullName) == "" {
		return NewValidationError("full_name", "is required", nil)
	}
	if utf8.RuneCountInString(r.FullName) > MaxNameLength {
		return NewValidationError("full_name", "must be at most "+strconv.Itoa(MaxNameLength)+" characters", nil)
	}
	return ValidateDate(r.BirthDay, r.BirthMonth, r.ReferenceYear, "birth_day", "birth_month", "reference_year")
}

// ValidateDate checks a day and month of birth and a reference year, where
// zero means the current year. The field names label the ValidationError.
// Day and month are checked independently: 31 February is accepted.
func ValidateDate(day, month, year int, dayField, monthField, yearField string) error {
	if day < 1 || day > 31 {
		return NewValidationError(dayField, "must be between 1 and 31", nil)
	}
	if month < 1 || month > 12 {
		return NewValidationError(monthField, "must be between 1 and 12", nil)
	}
	if year != 0 && (year < MinYear || year > MaxYear) {
		return NewValidationError(yearField, "must be between 1 and 9999", nil)
	}
	return nil
}

// TarotCard is an archetype card in the reading's language.
type TarotCard struct {
	Number      int    `json:"number"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TarotReading is the binomial of a number with the cards it points to,
// master card first.
type TarotReading struct {
	MasterNumber  *int        `json:"master_number"`
	ReducedNumber int         `json:"reduced_number"`
	Cards         []TarotCard `json:"cards"`
}

// NumberReading is one calculated number with its interpretation.
type NumberReading struct {
	Kind    numerology.Kind   `json:"kind"`
	Result  numerology.Result `json:"result"`
	Meaning string            `json:"meaning"`
	Tarot   *TarotReading     `json:"tarot,omitempty"`
}

// Reading is the full set of numbers computed for a person.
type Reading struct {
	Language      string        `json:"language"`
	ReferenceYear int           `json:"reference_year"`
	Destiny       NumberReading `json:"destiny"`
	Soul          NumberReading `json:"soul"`
	Personality   NumberReading `json:"personality"`
	PersonalYear  NumberReading `json:"personal_year"`
	// Archetype is the destiny number written as its binomial, e.g. "22 + 4".
	Archetype string `json:"archetype"`
}

// Numbers returns the four readings in display order.
func (r *Reading) Numbers() []NumberReading {
	return []NumberReading{r.Destiny, r.Soul, r.Personality, r.PersonalYear}
}

// Archetype renders a binomial: "22 + 4" for master numbers, the plain
// number otherwise.
func Archetype(b numerology.Binomial) string {
	if b.MasterNumber == nil {
		return strconv.Itoa(b.ReducedNumber)
	}
	return strconv.Itoa(*b.MasterNumber) + " + " + strconv.Itoa(b.ReducedNumber)
}
