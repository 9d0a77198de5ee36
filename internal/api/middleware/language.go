package middleware

import (
	"net/http"

	"github.com/phrazzld/numerology-api/internal/api/shared"
	"github.com/phrazzld/numerology-api/internal/catalogue"
)

// LanguageQueryParam overrides the Accept-Language header when present.
const LanguageQueryParam = "lang"

// LanguageMiddleware negotiates the response language from the lang query
// parameter, then the Accept-Language header, then the default, and stores
// it with shared.SetLanguage.
func LanguageMiddleware(n *catalogue.Negotiator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			code := n.MatchAcceptLanguage(r.Header.Get("Accept-Language"))
			if q := r.URL.Query().Get(LanguageQueryParam); q != "" {
				code = n.Match(q, code)
			}

			w.Header().Add("Vary", "Accept-Language")
			w.Header().Set("Content-Language", code)
			next.ServeHTTP(w, r.WithContext(shared.SetLanguage(r.Context(), code)))
		})
	}
}
