package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/numerology-api/internal/api/shared"
	"github.com/phrazzld/numerology-api/internal/domain/numerology"
	"github.com/phrazzld/numerology-api/internal/platform/logger"
	"github.com/phrazzld/numerology-api/internal/service"
)

// NumerologyHandler serves the reading, calculation, catalogue and content
// endpoints.
type NumerologyHandler struct {
	readingService service.ReadingService
	logger         *slog.Logger
}

// NewNumerologyHandler creates a NumerologyHandler.
// If logger is nil, a default logger will be used.
func NewNumerologyHandler(readingService service.ReadingService, logger *slog.Logger) *NumerologyHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &NumerologyHandler{
		readingService: readingService,
		logger:         logger.With(slog.String("component", "numerology_handler")),
	}
}

// decodeAndValidate writes a 400 response and returns false when the body
// cannot be decoded or fails its validate tags.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}
	if err := shared.ValidateRequest(v); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return false
	}
	return true
}

// CreateReading handles POST /api/readings.
func (h *NumerologyHandler) CreateReading(w http.ResponseWriter, r *http.Request) {
	var req CreateReadingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	lang := h.readingService.Language(req.Language, shared.GetLanguage(r.Context()))
	reading, err := h.readingService.CreateReading(r.Context(), req.toDomain(lang))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create reading")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, reading)
}

// ComputeNumber handles POST /api/numbers/{kind}.
func (h *NumerologyHandler) ComputeNumber(w http.ResponseWriter, r *http.Request) {
	kind, err := numerology.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var result numerology.Result
	if kind == numerology.KindPersonalYear {
		var req PersonalYearRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}
		result, err = h.readingService.PersonalYear(r.Context(), req.Day, req.Month, req.Year)
	} else {
		var req NameNumberRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}
		result, err = h.readingService.NameNumber(r.Context(), kind, req.Name)
	}
	if err != nil {
		HandleAPIError(w, r, err, "Failed to compute number")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("number computed",
		slog.String("kind", string(kind)),
		slog.Int("final_number", result.FinalNumber))
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// GetReduction handles GET /api/reductions/{n}.
func (h *NumerologyHandler) GetReduction(w http.ResponseWriter, r *http.Request) {
	n, err := getPathNumber(r, "n")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	reduction, err := h.readingService.Reduce(n)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, reduction)
}

// GetBinomial handles GET /api/binomials/{n}.
func (h *NumerologyHandler) GetBinomial(w http.ResponseWriter, r *http.Request) {
	n, err := getPathNumber(r, "n")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	binomial, err := h.readingService.Binomial(n)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, binomial)
}

// GetCatalogueEntry handles GET /api/catalogue/{n}.
func (h *NumerologyHandler) GetCatalogueEntry(w http.ResponseWriter, r *http.Request) {
	n, err := getPathNumber(r, "n")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	entry, err := h.readingService.CatalogueEntry(r.Context(), n, shared.GetLanguage(r.Context()))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load catalogue entry")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, entry)
}

// ListCatalogue handles GET /api/catalogue.
func (h *NumerologyHandler) ListCatalogue(w http.ResponseWriter, r *http.Request) {
	lang := h.readingService.Language(shared.GetLanguage(r.Context()))
	shared.RespondWithJSON(w, r, http.StatusOK, CatalogueResponse{
		Language: lang,
		Entries:  h.readingService.Catalogue(r.Context(), lang),
	})
}

// GetText handles GET /api/texts/{key}. The optional fallback query
// parameter is returned when no entry exists for the language.
func (h *NumerologyHandler) GetText(w http.ResponseWriter, r *http.Request) {
	text, err := h.readingService.Text(r.Context(), shared.GetLanguage(r.Context()),
		chi.URLParam(r, "key"), r.URL.Query().Get("fallback"))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to resolve text")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, text)
}

// ListContent handles GET /api/content.
func (h *NumerologyHandler) ListContent(w http.ResponseWriter, r *http.Request) {
	lang := h.readingService.Language(shared.GetLanguage(r.Context()))

	entries, err := h.readingService.Content(r.Context(), lang)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load content")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, ContentResponse{Language: lang, Entries: entries})
}
