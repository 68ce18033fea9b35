package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/jsamuelsen11/exclusive-events/internal/adapters/http/dto"
	"github.com/jsamuelsen11/exclusive-events/internal/adapters/http/view"
)

var errPanicked = errors.New("internal server error")

// Recovery turns a handler panic into the static fatal page (or an RFC 9457
// problem for JSON clients) and logs the panic with its stack. A response
// that has already started is left as it is.
//
// http.ErrAbortHandler is re-raised so net/http can drop the connection.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := record(w)
			defer func() {
				v := recover()
				switch {
				case v == nil:
					return
				case v == http.ErrAbortHandler:
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("stack", string(debug.Stack())),
				)
				if rw.written {
					return
				}
				if wantsJSON(r) {
					dto.WriteErrorResponse(rw, r, errPanicked)
					return
				}
				view.WriteFatal(rw)
			}()

			next.ServeHTTP(rw, r)
		})
	}
}

// wantsJSON reports whether the client prefers a problem document over HTML.
func wantsJSON(r *http.Request) bool {
	for part := range strings.SplitSeq(r.Header.Get("Accept"), ",") {
		mt, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		if mt == "application/json" || strings.HasSuffix(mt, "+json") {
			return true
		}
	}
	return false
}
