package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/exclusive-events/internal/app/state"
	"github.com/jsamuelsen11/exclusive-events/internal/domain"
	"github.com/jsamuelsen11/exclusive-events/internal/domain/availability"
	"github.com/jsamuelsen11/exclusive-events/internal/domain/frdate"
	"github.com/jsamuelsen11/exclusive-events/internal/ports"
)

// BookingStatus is the state of the booking flow.
type BookingStatus string

const (
	BookingIdle    BookingStatus = "idle"
	BookingPending BookingStatus = "booking"
	BookingSuccess BookingStatus = "success"
	BookingError   BookingStatus = "error"
)

// Booking messages shown under the calendar.
const (
	MsgBookingIncomplete = "Veuillez sélectionner une date et une heure."
	MsgBookingTaken      = "Cette date est déjà réservée. Veuillez choisir une autre date."
	MsgBookingFailed     = "Une erreur est survenue lors de l'envoi de votre demande. " +
		"Veuillez réessayer ou nous contacter directement."
	msgBookingSuccess = "Votre demande de réservation pour le %s à %s a été envoyée avec succès ! " +
		"Nous vous contacterons rapidement pour confirmer."
)

// BookingSnapshot is what the calendar section renders.
type BookingSnapshot struct {
	Status       BookingStatus
	Message      string
	SelectedDate string
	SelectedTime string
}

// BookingFlow drives one visitor's booking request:
// idle -> booking -> {success, error}. A success returns to idle after
// ResetDelay or on Reset.
type BookingFlow struct {
	state     *state.AppState
	submitter ports.Submitter
	opts      flowOptions

	mu           sync.Mutex
	status       BookingStatus
	message      string
	selectedTime string
	gen          uint64
	stopReset    func() bool
	closed       bool
}

// NewBookingFlow creates an idle booking flow over the visitor's state.
func NewBookingFlow(st *state.AppState, submitter ports.Submitter, opts ...FlowOption) *BookingFlow {
	return &BookingFlow{
		state:     st,
		submitter: submitter,
		opts:      newFlowOptions(opts),
		status:    BookingIdle,
	}
}

// Snapshot returns the current booking state.
func (f *BookingFlow) Snapshot() BookingSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return BookingSnapshot{
		Status:       f.status,
		Message:      f.message,
		SelectedDate: f.state.Snapshot().SelectedDate,
		SelectedTime: f.selectedTime,
	}
}

// SelectSlot selects date when the calendar offers it: the slot must exist,
// be available and not be booked. It reports whether the selection changed
// anything; a refused selection leaves every field untouched.
func (f *BookingFlow) SelectSlot(cal availability.Calendar, date string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed || f.status == BookingPending || !cal.Selectable(date) {
		return false
	}

	stopTimer(&f.stopReset)
	f.gen++
	f.state.SetSelectedDate(&date)
	f.status = BookingIdle
	f.message = ""
	return true
}

// SelectTime selects one of the fixed time slots.
func (f *BookingFlow) SelectTime(t string) error {
	if !availability.IsTimeSlot(t) {
		return &domain.ValidationError{Fields: map[string]string{"time": fmt.Sprintf("créneau inconnu %q", t)}}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.status == BookingPending {
		return fmt.Errorf("booking in progress: %w", domain.ErrConflict)
	}
	f.selectedTime = t
	return nil
}

// Confirm sends the booking request for the selected date and time. It is a
// no-op while a request is pending or its success is displayed. Missing
// selections and booked dates move the flow to error without submitting.
//
// The submission runs detached from ctx's cancellation; the returned channel
// is closed once it has settled.
func (f *BookingFlow) Confirm(ctx context.Context, cal availability.Calendar) <-chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed || f.status == BookingPending || f.status == BookingSuccess {
		return closedChan()
	}

	date := f.state.Snapshot().SelectedDate
	t := f.selectedTime
	switch {
	case date == "" || t == "":
		f.status, f.message = BookingError, MsgBookingIncomplete
		return closedChan()
	case cal.Booked.Contains(date):
		f.status, f.message = BookingError, MsgBookingTaken
		return closedChan()
	}

	f.status, f.message = BookingPending, ""
	f.gen++
	gen := f.gen

	sub := ports.Submission{
		Kind:   ports.SubmissionBooking,
		ID:     f.opts.newID(),
		Fields: map[string]string{"date": date, "time": t},
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		ctx := context.WithoutCancel(ctx)
		err := safeSubmit(ctx, f.submitter, sub)
		f.settle(ctx, gen, sub, err)
	}()
	return done
}

func (f *BookingFlow) settle(ctx context.Context, gen uint64, sub ports.Submission, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed || gen != f.gen {
		return
	}

	if err != nil {
		f.opts.metrics.RecordSubmission(ctx, string(sub.Kind), "failure")
		f.opts.logger.ErrorContext(ctx, "booking submission failed",
			slog.String("operation", "Confirm"),
			slog.String("submission_id", sub.ID),
			slog.Any("error", err),
		)
		f.status, f.message = BookingError, MsgBookingFailed
		return
	}

	f.opts.metrics.RecordSubmission(ctx, string(sub.Kind), "success")
	f.opts.logger.InfoContext(ctx, "booking submitted", slog.String("submission_id", sub.ID))
	f.status = BookingSuccess
	f.message = fmt.Sprintf(msgBookingSuccess, frdate.Long(sub.Fields["date"]), sub.Fields["time"])
	f.stopReset = f.opts.afterFunc(ResetDelay, func() { f.autoReset(gen) })
}

func (f *BookingFlow) autoReset(gen uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed || gen != f.gen || f.status != BookingSuccess {
		return
	}
	f.resetLocked()
}

// Reset returns a settled flow to idle at once and clears the selected date
// and time. It has no effect while a request is pending.
func (f *BookingFlow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed || f.status == BookingPending {
		return
	}
	f.gen++
	f.resetLocked()
}

func (f *BookingFlow) resetLocked() {
	stopTimer(&f.stopReset)
	f.status = BookingIdle
	f.message = ""
	f.selectedTime = ""
	f.state.SetSelectedDate(nil)
}

// Close stops the pending reset timer. Submissions still in flight settle
// into a closed flow and are discarded.
func (f *BookingFlow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true
	stopTimer(&f.stopReset)
}
