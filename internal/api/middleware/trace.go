package middleware

import (
	"log/slog"
	"net/http"

	"github.com/jalvarado/contacts-api/internal/api/shared"
	"github.com/jalvarado/contacts-api/internal/platform/logger"
)

// TraceMiddleware adds a trace ID to the request context and stores a
// request-scoped logger carrying it. Apply this early in the middleware
// chain so all subsequent handlers log and respond with the same trace ID.
// A nil base falls back to slog.Default().
func TraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := base
			if log == nil {
				log = slog.Default()
			}

			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			log = log.With(slog.String("trace_id", traceID))
			ctx = logger.WithContext(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
