package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jsamuelsen11/exclusive-events/internal/platform/logging"
)

// Static assets and probes log at debug; at info they would bury the page
// traffic.
var quietPrefixes = []string{"/static/", "/health/"}

// accessLevel picks the level of the completion line.
func accessLevel(path string, status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case quiet(path):
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

func quiet(path string) bool {
	for _, p := range quietPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// Logging writes one access line per request and hands downstream handlers a
// logger tagged with the request and correlation IDs through the context.
// At debug level the request line and its redacted headers are logged first.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			reqLogger := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, reqLogger)

			reqLogger.DebugContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				RedactHeaders(r.Header),
			)

			rw := record(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			reqLogger.Log(ctx, accessLevel(r.URL.Path, rw.status), "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rw.status),
				slog.Int64("bytes", rw.bytes),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}
