package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/exclusive-events/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders renders headers as a "headers" log group in key order. The
// session cookie, the CSRF token and any credentials are masked; repeated
// values are comma-joined.
func RedactHeaders(headers http.Header) slog.Attr {
	attrs := make([]any, 0, len(headers))
	for _, key := range slices.Sorted(maps.Keys(headers)) {
		val := redacted
		if !logging.SensitiveHeaders[strings.ToLower(key)] {
			val = strings.Join(headers[key], ",")
		}
		attrs = append(attrs, slog.String(key, val))
	}
	return slog.Group("headers", attrs...)
}
