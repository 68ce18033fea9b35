package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/exclusive-events/internal/adapters/http/dto"
	"github.com/jsamuelsen11/exclusive-events/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/exclusive-events/internal/app/session"
)

var errNoVisitor = errors.New("no visitor bound to request")

// Page anchors the form handlers redirect back to.
const (
	anchorCalendar     = "calendar"
	anchorContact      = "contact"
	anchorTestimonials = "testimonials"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// seeOther sends the browser back to the page after a form post.
func seeOther(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// visitor returns the request's visitor. Without one (the session middleware
// is missing) it writes a 500 problem and returns nil.
func visitor(w http.ResponseWriter, r *http.Request) *session.Visitor {
	v, ok := middleware.VisitorFromContext(r.Context())
	if !ok {
		dto.WriteErrorResponse(w, r, errNoVisitor)
		return nil
	}
	return v
}

// readForm parses the posted form. On failure it writes a 400 problem and
// returns false.
func readForm(w http.ResponseWriter, r *http.Request) bool {
	if err := dto.ParseForm(w, r); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// valid validates req, writing a 400 problem when it fails.
func valid(w http.ResponseWriter, r *http.Request, req validatable) bool {
	if err := req.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

// await blocks until a submission has settled or the request is canceled.
// It reports whether the submission settled.
func await(ctx context.Context, done <-chan struct{}) bool {
	select {
	case <-done:
		return true
	case <-ctx.Done():
		return false
	}
}
