package handlers

import (
	"errors"
	"net/http"

	"github.com/jsamuelsen11/exclusive-events/internal/adapters/http/dto"
	"github.com/jsamuelsen11/exclusive-events/internal/domain"
	"github.com/jsamuelsen11/exclusive-events/internal/platform/logging"
)

// ContactHandler handles the contact form posts.
type ContactHandler struct{}

// NewContactHandler creates a ContactHandler.
func NewContactHandler() *ContactHandler {
	return &ContactHandler{}
}

// Submit handles POST /contact. Field errors are kept in the visitor's flow
// and shown by the redirected page, so an invalid form still redirects.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if !readForm(w, r) {
		return
	}
	req := dto.ContactFromForm(r.PostForm)
	v := visitor(w, r)
	if v == nil {
		return
	}

	ctx := r.Context()
	done, err := v.Contact.Submit(ctx, req.Fields)
	switch {
	case err == nil:
		if !await(ctx, done) {
			logging.FromContext(ctx).InfoContext(ctx, "contact submission still pending at redirect")
		}
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrConflict):
		// Shown by the redirected page.
	default:
		dto.WriteErrorResponse(w, r, err)
		return
	}
	seeOther(w, r, "/#"+anchorContact)
}

// Dismiss handles POST /contact/dismiss.
func (h *ContactHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	v := visitor(w, r)
	if v == nil {
		return
	}
	v.Contact.Dismiss()
	seeOther(w, r, "/#"+anchorContact)
}
