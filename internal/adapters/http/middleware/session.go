package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/exclusive-events/internal/app/session"
	"github.com/jsamuelsen11/exclusive-events/internal/platform/logging"
)

// sessionLogPrefix is how much of a session id reaches the logs. The full id
// authenticates the visitor.
const sessionLogPrefix = 8

type visitorKey struct{}

// WithVisitor returns a new context carrying v.
func WithVisitor(ctx context.Context, v *session.Visitor) context.Context {
	return context.WithValue(ctx, visitorKey{}, v)
}

// VisitorFromContext returns the visitor bound by the Session middleware.
func VisitorFromContext(ctx context.Context) (*session.Visitor, bool) {
	v, ok := ctx.Value(visitorKey{}).(*session.Visitor)
	return v, ok && v != nil
}

// Session returns middleware binding every request to a visitor. The
// visitor id travels in an HttpOnly cookie. A known id resumes its visitor.
// Otherwise safe methods render from a transient visitor that is neither
// stored nor given a cookie, and only a state-changing request starts a new
// session and rewrites the cookie. The context logger is enriched with a
// prefix of the session id.
//
// It must run after Logging so the enriched logger replaces the request one.
func Session(store *session.Store, cookieName string, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if c, err := r.Cookie(cookieName); err == nil {
				id = c.Value
			}

			v, ok := store.Get(id)
			if !ok && safeMethod(r.Method) {
				v = store.Transient()
				defer v.Close()
				next.ServeHTTP(w, r.WithContext(WithVisitor(r.Context(), v)))
				return
			}

			created := false
			if !ok {
				v, created = store.GetOrCreate(id)
				http.SetCookie(w, &http.Cookie{
					Name:     cookieName,
					Value:    v.ID,
					Path:     "/",
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := WithVisitor(r.Context(), v)
			logger := logging.FromContext(ctx).With(slog.String("session", shortID(v.ID)))
			ctx = logging.WithLogger(ctx, logger)
			if created {
				logger.DebugContext(ctx, "session started")
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func safeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

func shortID(id string) string {
	if len(id) > sessionLogPrefix {
		return id[:sessionLogPrefix]
	}
	return id
}
