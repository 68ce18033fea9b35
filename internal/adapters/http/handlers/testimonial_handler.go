package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/exclusive-events/internal/adapters/http/dto"
	"github.com/jsamuelsen11/exclusive-events/internal/ports"
)

// TestimonialHandler handles the testimonials section posts.
type TestimonialHandler struct {
	catalog ports.CatalogService
}

// NewTestimonialHandler creates a TestimonialHandler.
func NewTestimonialHandler(catalog ports.CatalogService) *TestimonialHandler {
	return &TestimonialHandler{catalog: catalog}
}

// Recommend handles POST /testimonials/{id}/recommend. It toggles the
// visitor's recommendation and returns to the same carousel position.
// Unknown testimonials are ignored.
func (h *TestimonialHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	if !readForm(w, r) {
		return
	}
	v := visitor(w, r)
	if v == nil {
		return
	}

	id := chi.URLParam(r, "id")
	if _, ok := h.catalog.Catalog().Testimonial(id); ok {
		v.ToggleLiked(id)
	}

	pos := dto.CarouselPosition(r.PostForm)
	seeOther(w, r, "/?t="+strconv.Itoa(pos)+"#"+anchorTestimonials)
}

// ToggleForm handles POST /testimonials/form. It opens or closes the
// testimonial form; its fields are never submitted anywhere.
func (h *TestimonialHandler) ToggleForm(w http.ResponseWriter, r *http.Request) {
	v := visitor(w, r)
	if v == nil {
		return
	}
	v.State.ToggleTestimonialForm()
	seeOther(w, r, "/#"+anchorTestimonials)
}
