// Package middleware provides HTTP middleware specific to the task API.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/agent-tasks/internal/api/shared"
	"github.com/phrazzld/agent-tasks/internal/platform/logger"
)

// TraceHeader is the response header that echoes the request trace ID.
const TraceHeader = "X-Trace-ID"

// TraceMiddleware adds a trace ID to the request context together with a
// logger that carries it. It should be applied early in the middleware
// chain so all subsequent handlers have access to both.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		log := logger.FromContextOrDefault(ctx).With(slog.String("trace_id", traceID))
		ctx = logger.WithLogger(ctx, log)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		w.Header().Set(TraceHeader, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
