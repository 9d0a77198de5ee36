package api

import (
	"github.com/phrazzld/numerology-api/internal/domain"
	"github.com/phrazzld/numerology-api/internal/service"
)

// CreateReadingRequest defines the payload of POST /api/readings.
type CreateReadingRequest struct {
	FullName      string `json:"full_name"                validate:"required,max=256"`
	BirthDay      int    `json:"birth_day"                validate:"required,min=1,max=31"`
	BirthMonth    int    `json:"birth_month"              validate:"required,min=1,max=12"`
	ReferenceYear int    `json:"reference_year,omitempty" validate:"omitempty,min=1,max=9999"`

	// Language takes precedence over the lang query parameter and the
	// Accept-Language header.
	Language     string `json:"language,omitempty" validate:"omitempty,max=35"`
	IncludeTarot bool   `json:"include_tarot"`
}

// toDomain converts the payload, with language already negotiated.
func (r CreateReadingRequest) toDomain(language string) domain.ReadingRequest {
	return domain.ReadingRequest{
		FullName:      r.FullName,
		BirthDay:      r.BirthDay,
		BirthMonth:    r.BirthMonth,
		ReferenceYear: r.ReferenceYear,
		Language:      language,
		IncludeTarot:  r.IncludeTarot,
	}
}

// NameNumberRequest defines the payload of POST /api/numbers/{kind} for the
// name-based kinds.
type NameNumberRequest struct {
	Name string `json:"name" validate:"required,max=256"`
}

// PersonalYearRequest defines the payload of POST /api/numbers/personal-year.
// A missing year means the current one.
type PersonalYearRequest struct {
	Day   int `json:"day"            validate:"required,min=1,max=31"`
	Month int `json:"month"          validate:"required,min=1,max=12"`
	Year  int `json:"year,omitempty" validate:"omitempty,min=1,max=9999"`
}

// ContentResponse lists the content entries of one language.
type ContentResponse struct {
	Language string                 `json:"language"`
	Entries  []*domain.ContentEntry `json:"entries"`
}

// CatalogueResponse lists every catalogue entry in one language.
type CatalogueResponse struct {
	Language string                    `json:"language"`
	Entries  []*service.CatalogueEntry `json:"entries"`
}
