// Package handlers provides the HTTP handlers of the site: the page, the
// form posts that drive the visitor's flows and the health endpoints.
package handlers

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/csrf"

	"github.com/jsamuelsen11/exclusive-events/internal/adapters/http/dto"
	"github.com/jsamuelsen11/exclusive-events/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/exclusive-events/internal/adapters/http/view"
	"github.com/jsamuelsen11/exclusive-events/internal/platform/config"
	"github.com/jsamuelsen11/exclusive-events/internal/platform/logging"
	"github.com/jsamuelsen11/exclusive-events/internal/ports"
)

// Renderer renders the whole page.
type Renderer interface {
	Render(w io.Writer, p *view.Page) error
}

// PageHandler serves the single page.
type PageHandler struct {
	catalog  ports.CatalogService
	renderer Renderer
	probe    ports.AssetProbe
	site     *config.SiteConfig
	reload   bool
	now      func() time.Time
}

// PageOption configures a PageHandler.
type PageOption func(*PageHandler)

// WithReload rebuilds the catalog before every render.
func WithReload(reload bool) PageOption {
	return func(h *PageHandler) { h.reload = reload }
}

// WithClock overrides the clock used for the footer year.
func WithClock(now func() time.Time) PageOption {
	return func(h *PageHandler) { h.now = now }
}

// NewPageHandler creates a PageHandler.
func NewPageHandler(
	catalog ports.CatalogService,
	renderer Renderer,
	probe ports.AssetProbe,
	site *config.SiteConfig,
	opts ...PageOption,
) *PageHandler {
	h := &PageHandler{
		catalog:  catalog,
		renderer: renderer,
		probe:    probe,
		site:     site,
		now:      time.Now,
	}
	for _, o := range opts {
		o(h)
	}
	return h
}

// Home handles GET /. The page is rendered into a buffer first so a failure
// replaces it entirely with the fatal page.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)

	if h.reload {
		if err := h.catalog.Reload(ctx); err != nil {
			logger.WarnContext(ctx, "catalog reload failed", slog.Any("error", err))
		}
	}

	page := &view.Page{
		Catalog:      h.catalog.Catalog(),
		Testimonial:  dto.CarouselPosition(r.URL.Query()),
		PDFAvailable: h.probe.Exists(ctx, h.site.PDF.Path),
		CSRFField:    csrf.TemplateField(r),
		Year:         h.now().Year(),
	}
	if v, ok := middleware.VisitorFromContext(ctx); ok {
		page.State = v.State.Snapshot()
		page.Booking = v.Booking.Snapshot()
		page.Contact = v.Contact.Snapshot()
		page.Liked = v.Liked
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, page); err != nil {
		logger.ErrorContext(ctx, "page render failed", slog.Any("error", err))
		view.WriteFatal(w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logger.DebugContext(ctx, "page write interrupted", slog.Any("error", err))
	}
}
