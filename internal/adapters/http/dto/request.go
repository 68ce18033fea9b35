package dto

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/exclusive-events/internal/domain"
	"github.com/jsamuelsen11/exclusive-events/internal/domain/availability"
	"github.com/jsamuelsen11/exclusive-events/internal/domain/contact"
)

const (
	// maxFormBytes bounds a posted form body.
	maxFormBytes = 64 << 10
	// maxFieldRunes bounds a single contact field.
	maxFieldRunes = 5000

	msgUnreadableForm = "formulaire illisible"
	msgInvalidDate    = "date invalide"
	msgUnknownTime    = "créneau horaire inconnu"
)

// ParseForm reads the urlencoded body of r into r.PostForm, limited to
// maxFormBytes. A body that cannot be read is a *domain.ValidationError.
func ParseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		return &domain.ValidationError{Fields: map[string]string{"body": msgUnreadableForm}}
	}
	return nil
}

// SlotRequest is the calendar slot selection posted by a slot button.
type SlotRequest struct {
	Date string
}

// SlotFromForm reads a SlotRequest.
func SlotFromForm(v url.Values) SlotRequest {
	return SlotRequest{Date: strings.TrimSpace(v.Get("date"))}
}

// Validate checks the date is a calendar day (YYYY-MM-DD).
func (r SlotRequest) Validate() error {
	if _, err := time.Parse(time.DateOnly, r.Date); err != nil {
		return &domain.ValidationError{Fields: map[string]string{"date": msgInvalidDate}}
	}
	return nil
}

// ConfirmRequest is the booking confirmation form. Time may be empty; the
// booking flow reports the missing selection.
type ConfirmRequest struct {
	Time string
}

// ConfirmFromForm reads a ConfirmRequest.
func ConfirmFromForm(v url.Values) ConfirmRequest {
	return ConfirmRequest{Time: strings.TrimSpace(v.Get("time"))}
}

// Validate accepts an empty time or one of the bookable time slots.
func (r ConfirmRequest) Validate() error {
	if r.Time != "" && !availability.IsTimeSlot(r.Time) {
		return &domain.ValidationError{Fields: map[string]string{"time": msgUnknownTime}}
	}
	return nil
}

// ContactRequest is the posted contact form.
type ContactRequest struct {
	Fields map[string]string
}

// ContactFromForm keeps the known contact fields present in v, each cut to
// maxFieldRunes. Absent fields stay absent so they do not overwrite the
// visitor's form.
func ContactFromForm(v url.Values) ContactRequest {
	fields := make(map[string]string, len(contact.Fields))
	for _, name := range contact.Fields {
		if _, ok := v[name]; !ok {
			continue
		}
		fields[name] = truncate(v.Get(name), maxFieldRunes)
	}
	return ContactRequest{Fields: fields}
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// CarouselPosition reads the requested testimonial index from the "t"
// parameter. Missing or malformed values select the first testimonial;
// out-of-range values are wrapped by the renderer.
func CarouselPosition(v url.Values) int {
	n, err := strconv.Atoi(v.Get("t"))
	if err != nil {
		return 0
	}
	return n
}
