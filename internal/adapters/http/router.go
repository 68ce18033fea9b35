// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"io/fs"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/exclusive-events/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/exclusive-events/internal/adapters/http/view"
	"github.com/jsamuelsen11/exclusive-events/internal/platform/config"
)

const staticCacheControl = "public, max-age=3600"

// Handlers groups the route handlers.
type Handlers struct {
	Page        *handlers.PageHandler
	Booking     *handlers.BookingHandler
	Contact     *handlers.ContactHandler
	Testimonial *handlers.TestimonialHandler
	Health      *handlers.HealthHandler
}

// Routes holds what the router serves besides the handlers.
type Routes struct {
	// Static holds the files served under /static and the brochure.
	Static fs.FS
	PDF    config.PDFConfig
	// Visitor is applied to the page and its form posts only (session and
	// CSRF protection), so probes and assets never start a session.
	// A nil Visitor leaves the page routes unwrapped.
	Visitor func(http.Handler) http.Handler
}

// NewRouter creates an HTTP handler with all site routes registered.
// Middleware is applied globally in the order given.
func NewRouter(h Handlers, routes Routes, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	static := http.StripPrefix("/static/", http.FileServerFS(routes.Static))
	r.Handle("/static/*", cacheable(static))

	if routes.PDF.Path != "" {
		brochure := brochureHandler(routes.Static, routes.PDF)
		r.Get(routes.PDF.Path, brochure)
		r.Head(routes.PDF.Path, brochure)
	}

	r.Group(func(r chi.Router) {
		if routes.Visitor != nil {
			r.Use(routes.Visitor)
		}

		r.Get("/", h.Page.Home)

		r.Post("/booking/slot", h.Booking.SelectSlot)
		r.Post("/booking/confirm", h.Booking.Confirm)
		r.Post("/booking/reset", h.Booking.Reset)

		r.Post("/contact", h.Contact.Submit)
		r.Post("/contact/dismiss", h.Contact.Dismiss)

		r.Post("/testimonials/form", h.Testimonial.ToggleForm)
		r.Post("/testimonials/{id}/recommend", h.Testimonial.Recommend)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		view.WriteFatalStatus(w, http.StatusNotFound)
	})

	return r
}

func cacheable(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", staticCacheControl)
		next.ServeHTTP(w, r)
	})
}

// brochureHandler serves the brochure PDF from the static files as a
// download named after cfg.FileName.
func brochureHandler(static fs.FS, cfg config.PDFConfig) http.HandlerFunc {
	name := strings.TrimPrefix(cfg.Path, "/")
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := fs.Stat(static, name); err != nil {
			http.NotFound(w, r)
			return
		}
		if cfg.FileName != "" {
			w.Header().Set("Content-Disposition",
				mime.FormatMediaType("attachment", map[string]string{"filename": cfg.FileName}))
		}
		w.Header().Set("Cache-Control", staticCacheControl)
		http.ServeFileFS(w, r, static, name)
	}
}
