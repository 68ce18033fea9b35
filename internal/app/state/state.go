// Package state holds the per-visitor UI state shared by the page sections
// and the booking and contact flows.
//
// AppState is mutated only through its setters and read through Snapshot.
// Every mutation is serialised by a mutex; independent fields follow last
// write wins.
package state

import (
	"sync"

	"github.com/jsamuelsen11/exclusive-events/internal/domain/contact"
)

// Snapshot is a consistent copy of the state at one instant.
type Snapshot struct {
	// SelectedDate is empty when no date is selected.
	SelectedDate        string
	IsFormSubmitting    bool
	FormSubmitted       bool
	ShowTestimonialForm bool
	ContactForm         contact.Form
}

// HasSelectedDate reports whether a booking date is selected.
func (s Snapshot) HasSelectedDate() bool {
	return s.SelectedDate != ""
}

// AppState is the process-wide state of one visitor's page.
type AppState struct {
	mu sync.Mutex
	s  Snapshot
}

// New returns the state of a freshly loaded page.
func New() *AppState {
	return &AppState{}
}

// Snapshot returns a copy of the current state.
func (a *AppState) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.s
}

// UpdateContactForm sets one contact form field.
func (a *AppState) UpdateContactForm(field, value string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.s.ContactForm.Set(field, value)
}

// SetFormSubmitting flags a contact submission in flight.
func (a *AppState) SetFormSubmitting(v bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.s.IsFormSubmitting = v
}

// SetFormSubmitted flags a completed contact submission.
func (a *AppState) SetFormSubmitted(v bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.s.FormSubmitted = v
}

// SetSelectedDate selects a booking date, or clears the selection when date
// is nil. A selected date is copied into the contact form.
func (a *AppState) SetSelectedDate(date *string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if date == nil {
		a.s.SelectedDate = ""
		return
	}
	a.s.SelectedDate = *date
	a.s.ContactForm.Date = *date
}

// ClearContactForm empties the contact form.
func (a *AppState) ClearContactForm() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.s.ContactForm = contact.Form{}
}

// ToggleTestimonialForm shows or hides the testimonial form.
func (a *AppState) ToggleTestimonialForm() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.s.ShowTestimonialForm = !a.s.ShowTestimonialForm
}

// ResetForm returns the contact submission flags and form to their initial
// values. The selected date is kept and copied into the fresh form.
func (a *AppState) ResetForm() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.s.IsFormSubmitting = false
	a.s.FormSubmitted = false
	a.s.ContactForm = contact.Form{Date: a.s.SelectedDate}
}
