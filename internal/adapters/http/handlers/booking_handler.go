package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/exclusive-events/internal/adapters/http/dto"
	"github.com/jsamuelsen11/exclusive-events/internal/domain"
	"github.com/jsamuelsen11/exclusive-events/internal/platform/logging"
	"github.com/jsamuelsen11/exclusive-events/internal/ports"
)

// BookingHandler handles the calendar's form posts.
type BookingHandler struct {
	catalog ports.CatalogService
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(catalog ports.CatalogService) *BookingHandler {
	return &BookingHandler{catalog: catalog}
}

// SelectSlot handles POST /booking/slot. Dates the calendar does not offer
// are ignored.
func (h *BookingHandler) SelectSlot(w http.ResponseWriter, r *http.Request) {
	if !readForm(w, r) {
		return
	}
	req := dto.SlotFromForm(r.PostForm)
	if !valid(w, r, req) {
		return
	}
	v := visitor(w, r)
	if v == nil {
		return
	}

	if !v.Booking.SelectSlot(h.catalog.Catalog().Calendar, req.Date) {
		logging.FromContext(r.Context()).DebugContext(r.Context(), "slot not selectable",
			slog.String("date", req.Date),
		)
	}
	seeOther(w, r, "/#"+anchorCalendar)
}

// Confirm handles POST /booking/confirm. The posted time, when present, is
// selected first. The response waits for the request to settle so the
// redirected page shows its outcome.
func (h *BookingHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	if !readForm(w, r) {
		return
	}
	req := dto.ConfirmFromForm(r.PostForm)
	if !valid(w, r, req) {
		return
	}
	v := visitor(w, r)
	if v == nil {
		return
	}

	ctx := r.Context()
	if req.Time != "" {
		if err := v.Booking.SelectTime(req.Time); err != nil && !errors.Is(err, domain.ErrConflict) {
			dto.WriteErrorResponse(w, r, err)
			return
		}
	}

	done := v.Booking.Confirm(ctx, h.catalog.Catalog().Calendar)
	if !await(ctx, done) {
		logging.FromContext(ctx).InfoContext(ctx, "booking still pending at redirect")
	}
	seeOther(w, r, "/#"+anchorCalendar)
}

// Reset handles POST /booking/reset.
func (h *BookingHandler) Reset(w http.ResponseWriter, r *http.Request) {
	v := visitor(w, r)
	if v == nil {
		return
	}
	v.Booking.Reset()
	seeOther(w, r, "/#"+anchorCalendar)
}
