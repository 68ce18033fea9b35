package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/gorilla/securecookie"

	"github.com/jsamuelsen11/exclusive-events/internal/adapters/http/dto"
	"github.com/jsamuelsen11/exclusive-events/internal/domain"
	"github.com/jsamuelsen11/exclusive-events/internal/platform/config"
	"github.com/jsamuelsen11/exclusive-events/internal/platform/logging"
)

const (
	csrfKeyLength  = 32
	csrfCookieName = "ie_csrf"
)

// CSRF returns gorilla/csrf protection for the form routes. Without a
// configured key an ephemeral one is generated, which invalidates every
// token on restart.
//
// With security.plaintext_http set, requests are marked as plain HTTP so the
// origin checks accept http:// referers and the cookie is not Secure.
func CSRF(cfg config.SecurityConfig, logger *slog.Logger) (func(http.Handler) http.Handler, error) {
	key, err := cfg.CSRFKeyBytes()
	if err != nil {
		return nil, fmt.Errorf("csrf key: %w", err)
	}
	if key == nil {
		logger.Warn("security.csrf_key is not set, using an ephemeral key")
		key = securecookie.GenerateRandomKey(csrfKeyLength)
		if key == nil {
			return nil, fmt.Errorf("generating csrf key: %w", domain.ErrUnavailable)
		}
	}

	protect := csrf.Protect(key,
		csrf.Secure(!cfg.PlaintextHTTP),
		csrf.Path("/"),
		csrf.HttpOnly(true),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.CookieName(csrfCookieName),
		csrf.TrustedOrigins(cfg.TrustedOrigins),
		csrf.ErrorHandler(http.HandlerFunc(csrfFailure)),
	)

	return func(next http.Handler) http.Handler {
		protected := protect(next)
		if !cfg.PlaintextHTTP {
			return protected
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			protected.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
		})
	}, nil
}

// csrfFailure answers a rejected form post. Browsers are sent back to the
// page, where a fresh token is issued; the form is not replayed.
func csrfFailure(w http.ResponseWriter, r *http.Request) {
	reason := csrf.FailureReason(r)
	logging.FromContext(r.Context()).WarnContext(r.Context(), "csrf check failed",
		slog.String("path", r.URL.Path),
		slog.Any("reason", reason),
	)
	if wantsJSON(r) {
		dto.WriteErrorResponse(w, r, fmt.Errorf("csrf: %v: %w", reason, domain.ErrForbidden))
		return
	}
	http.Error(w, "Session expirée. Veuillez recharger la page et réessayer.", http.StatusForbidden)
}
