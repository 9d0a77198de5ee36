package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/numerology-api/internal/api"
	apiMiddleware "github.com/phrazzld/numerology-api/internal/api/middleware"
)

// setupRouter creates the router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(app.config.Server.RequestTimeout))
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	h := api.NewNumerologyHandler(app.readingService, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Use(apiMiddleware.LanguageMiddleware(app.negotiator))

		r.Post("/readings", h.CreateReading)
		r.Post("/numbers/{kind}", h.ComputeNumber)
		r.Get("/reductions/{n}", h.GetReduction)
		r.Get("/binomials/{n}", h.GetBinomial)
		r.Get("/catalogue", h.ListCatalogue)
		r.Get("/catalogue/{n}", h.GetCatalogueEntry)
		r.Get("/texts/{key}", h.GetText)
		r.Get("/content", h.ListContent)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
