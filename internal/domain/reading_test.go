package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/phrazzld/numerology-api/internal/domain/numerology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadingRequestValidate(t *testing.T) {
	t.Parallel()

	valid := ReadingRequest{FullName: "John Doe", BirthDay: 29, BirthMonth: 2}

	testCases := []struct {
		name          string
		mutate        func(r *ReadingRequest)
		expectedField string
	}{
		{name: "valid without year", mutate: func(r *ReadingRequest) {}},
		{name: "valid with year", mutate: func(r *ReadingRequest) { r.ReferenceYear = 2024 }},
		{name: "name without ascii letters is allowed", mutate: func(r *ReadingRequest) { r.FullName = "田中" }},
		{name: "blank name", mutate: func(r *ReadingRequest) { r.FullName = " \t" }, expectedField: "full_name"},
		{name: "long name", mutate: func(r *ReadingRequest) { r.FullName = strings.Repeat("a", MaxNameLength+1) }, expectedField: "full_name"},
		{name: "day zero", mutate: func(r *ReadingRequest) { r.BirthDay = 0 }, expectedField: "birth_day"},
		{name: "day 32", mutate: func(r *ReadingRequest) { r.BirthDay = 32 }, expectedField: "birth_day"},
		{name: "month 13", mutate: func(r *ReadingRequest) { r.BirthMonth = 13 }, expectedField: "birth_month"},
		{name: "negative year", mutate: func(r *ReadingRequest) { r.ReferenceYear = -1 }, expectedField: "reference_year"},
		{name: "five digit year", mutate: func(r *ReadingRequest) { r.ReferenceYear = 10000 }, expectedField: "reference_year"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := valid
			tc.mutate(&req)

			err := req.Validate()
			if tc.expectedField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tc.expectedField, vErr.Field)
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := NewValidationError("birth_day", "must be between 1 and 31", nil)
	assert.Equal(t, "birth_day: must be between 1 and 31", err.Error())
	assert.ErrorIs(t, err, ErrValidation)

	wrapped := NewValidationError("language", "is not supported", ErrInvalidLanguage)
	assert.ErrorIs(t, wrapped, ErrInvalidLanguage)
	assert.ErrorIs(t, wrapped, ErrValidation)
}

func TestArchetype(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "22 + 4", Archetype(numerology.BinomialOf(22)))
	assert.Equal(t, "11 + 2", Archetype(numerology.BinomialOf(11)))
	assert.Equal(t, "7", Archetype(numerology.BinomialOf(7)))
	assert.Equal(t, "0", Archetype(numerology.BinomialOf(0)))
}

func TestReadingNumbersOrder(t *testing.T) {
	t.Parallel()

	r := &Reading{
		Destiny:      NumberReading{Kind: numerology.KindDestiny},
		Soul:         NumberReading{Kind: numerology.KindSoul},
		Personality:  NumberReading{Kind: numerology.KindPersonality},
		PersonalYear: NumberReading{Kind: numerology.KindPersonalYear},
	}

	var kinds []numerology.Kind
	for _, n := range r.Numbers() {
		kinds = append(kinds, n.Kind)
	}
	assert.Equal(t, numerology.Kinds, kinds)
}

func TestValidateDate_FieldNames(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateDate(31, 2, 0, "day", "month", "year"), "day and month are checked independently")

	err := ValidateDate(1, 0, 2024, "day", "month", "year")
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "month", ve.Field)
}
