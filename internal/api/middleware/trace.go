package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/numerology-api/internal/api/shared"
	"github.com/phrazzld/numerology-api/internal/platform/logger"
)

// TraceMiddleware stamps the request context with a trace ID and a logger
// carrying it, so every log line of the request can be correlated with the
// trace_id of an error response. base may be nil for slog.Default().
func TraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			w.Header().Set("X-Trace-ID", traceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
