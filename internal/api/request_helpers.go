package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/numerology-api/internal/domain"
)

// maxPathNumber bounds numeric path parameters.
const maxPathNumber = 1_000_000_000

// getPathNumber extracts a non-negative integer path parameter.
func getPathNumber(r *http.Request, paramName string) (int, error) {
	raw := chi.URLParam(r, paramName)
	if raw == "" {
		return 0, domain.NewValidationError(paramName, "is required", nil)
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 || n > maxPathNumber {
		return 0, domain.NewValidationError(paramName, "must be a non-negative integer", err)
	}
	return n, nil
}
