package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/numerology-api/internal/api/shared"
	"github.com/phrazzld/numerology-api/internal/domain"
	"github.com/phrazzld/numerology-api/internal/domain/numerology"
	"github.com/phrazzld/numerology-api/internal/service"
	"github.com/phrazzld/numerology-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", domain.NewValidationError("birth_day", "must be between 1 and 31", nil), http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("create: %w", domain.ErrValidation), http.StatusBadRequest},
		{"unknown kind", fmt.Errorf("%w: %q", numerology.ErrUnknownKind, "karma"), http.StatusBadRequest},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"not catalogued", service.ErrNotCatalogued, http.StatusNotFound},
		{"content not found", store.ErrContentNotFound, http.StatusNotFound},
		{"duplicate", store.ErrDuplicate, http.StatusConflict},
		{"deadline", fmt.Errorf("lookup: %w", context.DeadlineExceeded), http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.status, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
	assert.Equal(t, "Invalid birth_month: must be between 1 and 12",
		GetSafeErrorMessage(domain.NewValidationError("birth_month", "must be between 1 and 12", nil)))
	assert.Equal(t, "Number not in catalogue", GetSafeErrorMessage(fmt.Errorf("%w: 33", service.ErrNotCatalogued)))
	assert.Equal(t, "Not found", GetSafeErrorMessage(store.ErrContentNotFound))
	assert.Equal(t, "Unknown number kind", GetSafeErrorMessage(numerology.ErrUnknownKind))
	assert.Equal(t, "An unexpected error occurred",
		GetSafeErrorMessage(errors.New("pq: relation app_content does not exist")))
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	err := shared.ValidateRequest(NameNumberRequest{})
	assert.Equal(t, "Invalid name: required field", SanitizeValidationError(err))

	legacy := errors.New("Key: 'Request.day' Error:Field validation for 'day' failed on the 'max' tag")
	assert.Equal(t, "Invalid day: too large", SanitizeValidationError(legacy))

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("something else")))
}

func TestHandleAPIError(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/catalogue/33", nil)

	w := httptest.NewRecorder()
	HandleAPIError(w, req, service.ErrNotCatalogued, "Failed to load catalogue entry")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Number not in catalogue"}`, w.Body.String())

	w = httptest.NewRecorder()
	HandleAPIError(w, req, errors.New("boom"), "Failed to load catalogue entry")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to load catalogue entry"}`, w.Body.String())
}
