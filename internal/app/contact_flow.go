package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"sync"

	"github.com/jsamuelsen11/exclusive-events/internal/app/state"
	"github.com/jsamuelsen11/exclusive-events/internal/domain"
	"github.com/jsamuelsen11/exclusive-events/internal/domain/contact"
	"github.com/jsamuelsen11/exclusive-events/internal/ports"
)

// ContactStatus is the state of the contact form.
type ContactStatus string

const (
	ContactIdle       ContactStatus = "idle"
	ContactSubmitting ContactStatus = "submitting"
	ContactSubmitted  ContactStatus = "submitted"
	ContactFailed     ContactStatus = "failed"
)

// Contact form banners.
const (
	MsgContactInvalid = "Veuillez corriger les erreurs ci-dessus avant de soumettre le formulaire."
	MsgContactFailed  = "Une erreur est survenue lors de l'envoi. Veuillez réessayer ou nous contacter directement."
	MsgContactSent    = "Votre message a bien été envoyé ! Nous vous répondrons dans les plus brefs délais."
)

// ContactSnapshot is what the contact section renders.
type ContactSnapshot struct {
	Status ContactStatus
	Form   contact.Form
	// Errors holds one message per invalid field.
	Errors  map[string]string
	Banner  string
	Success string
}

// ContactFlow drives one visitor's contact form:
// idle -> submitting -> {submitted, failed}.
type ContactFlow struct {
	state     *state.AppState
	submitter ports.Submitter
	opts      flowOptions

	mu        sync.Mutex
	status    ContactStatus
	errors    map[string]string
	banner    string
	gen       uint64
	stopReset func() bool
	closed    bool
}

// NewContactFlow creates an idle contact flow over the visitor's state.
func NewContactFlow(st *state.AppState, submitter ports.Submitter, opts ...FlowOption) *ContactFlow {
	return &ContactFlow{
		state:     st,
		submitter: submitter,
		opts:      newFlowOptions(opts),
		status:    ContactIdle,
	}
}

// Snapshot returns the current contact form state.
func (f *ContactFlow) Snapshot() ContactSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	snap := ContactSnapshot{
		Status: f.status,
		Form:   f.state.Snapshot().ContactForm,
		Errors: maps.Clone(f.errors),
		Banner: f.banner,
	}
	if f.status == ContactSubmitted {
		snap.Success = MsgContactSent
	}
	return snap
}

// Submit stores the posted fields in the visitor's form, validates every
// rule and, when the form is valid, starts the submission. Unknown field
// names are ignored.
//
// A *domain.ValidationError is returned when the form is invalid; the flow
// stays idle with the field errors and the banner set. domain.ErrConflict is
// returned while a submission is pending. The submission runs detached from
// ctx's cancellation; the returned channel is closed once it has settled.
func (f *ContactFlow) Submit(ctx context.Context, fields map[string]string) (<-chan struct{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return closedChan(), fmt.Errorf("contact flow closed: %w", domain.ErrUnavailable)
	}
	if f.status == ContactSubmitting {
		return closedChan(), fmt.Errorf("contact submission in progress: %w", domain.ErrConflict)
	}

	for _, name := range contact.Fields {
		v, ok := fields[name]
		if !ok {
			continue
		}
		if err := f.state.UpdateContactForm(name, v); err != nil {
			return closedChan(), fmt.Errorf("update contact field %s: %w", name, err)
		}
	}
	form := f.state.Snapshot().ContactForm

	if err := form.Validate(); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			f.errors = maps.Clone(verr.Fields)
		}
		f.status, f.banner = ContactIdle, MsgContactInvalid
		return closedChan(), err
	}

	stopTimer(&f.stopReset)
	f.status, f.errors, f.banner = ContactSubmitting, nil, ""
	f.state.SetFormSubmitted(false)
	f.state.SetFormSubmitting(true)
	f.gen++
	gen := f.gen

	sub := ports.Submission{
		Kind: ports.SubmissionContact,
		ID:   f.opts.newID(),
		Fields: map[string]string{
			contact.FieldName:      form.Name,
			contact.FieldEmail:     form.Email,
			contact.FieldPhone:     form.Phone,
			contact.FieldDate:      form.Date,
			contact.FieldEventType: form.EventType,
			contact.FieldMessage:   form.Message,
		},
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		ctx := context.WithoutCancel(ctx)
		err := safeSubmit(ctx, f.submitter, sub)
		f.settle(ctx, gen, sub, err)
	}()
	return done, nil
}

func (f *ContactFlow) settle(ctx context.Context, gen uint64, sub ports.Submission, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed || gen != f.gen {
		return
	}
	f.state.SetFormSubmitting(false)

	if err != nil {
		f.opts.metrics.RecordSubmission(ctx, string(sub.Kind), "failure")
		f.opts.logger.ErrorContext(ctx, "contact submission failed",
			slog.String("operation", "Submit"),
			slog.String("submission_id", sub.ID),
			slog.Any("error", err),
		)
		f.status, f.banner = ContactFailed, MsgContactFailed
		return
	}

	f.opts.metrics.RecordSubmission(ctx, string(sub.Kind), "success")
	f.opts.logger.InfoContext(ctx, "contact message submitted",
		slog.String("submission_id", sub.ID),
		slog.String("event_type", sub.Fields[contact.FieldEventType]),
	)
	f.state.ClearContactForm()
	f.state.SetFormSubmitted(true)
	f.status = ContactSubmitted
	f.stopReset = f.opts.afterFunc(ResetDelay, func() { f.autoDismiss(gen) })
}

func (f *ContactFlow) autoDismiss(gen uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed || gen != f.gen || f.status != ContactSubmitted {
		return
	}
	f.dismissLocked()
}

// Dismiss leaves the success or failure display and shows an empty form
// again ("Envoyer un autre message"). A failed submission keeps its fields.
// Leaving a success resets the visitor's form state, keeping only the
// selected date.
func (f *ContactFlow) Dismiss() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed || f.status == ContactSubmitting {
		return
	}
	f.gen++
	f.dismissLocked()
}

func (f *ContactFlow) dismissLocked() {
	stopTimer(&f.stopReset)
	if f.status == ContactSubmitted {
		f.state.ResetForm()
	} else {
		f.state.SetFormSubmitted(false)
	}
	f.status, f.errors, f.banner = ContactIdle, nil, ""
}

// Close stops the pending dismiss timer. Submissions still in flight settle
// into a closed flow and are discarded.
func (f *ContactFlow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true
	stopTimer(&f.stopReset)
}
