// Package contact holds the contact form and its validation rules.
package contact

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/exclusive-events/internal/domain"
)

// Field names, as posted by the form and used as keys in validation errors.
const (
	FieldName      = "name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldDate      = "date"
	FieldEventType = "eventType"
	FieldMessage   = "message"
)

// Fields lists every form field in display order.
var Fields = []string{FieldName, FieldEmail, FieldPhone, FieldDate, FieldEventType, FieldMessage}

// Validation messages.
const (
	MsgNameRequired    = "Le nom est obligatoire"
	MsgNameTooShort    = "Le nom doit contenir au moins 2 caractères"
	MsgEmailRequired   = "L'adresse e-mail est obligatoire"
	MsgEmailInvalid    = "Adresse e-mail invalide"
	MsgPhoneInvalid    = "Numéro de téléphone invalide"
	MsgMessageRequired = "Le message est obligatoire"
	MsgMessageTooShort = "Le message doit contenir au moins 10 caractères"
)

const (
	minNameLength    = 2
	minMessageLength = 10
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[\+]?[0-9\s\-\(\)]{8,}$`)
)

// EventType is the kind of event the visitor is planning.
type EventType string

const (
	EventWedding   EventType = "wedding"
	EventCorporate EventType = "corporate"
	EventPrivate   EventType = "private"
	EventLuxury    EventType = "luxury"
	EventOther     EventType = "other"
)

// EventTypes lists the selectable event types in display order.
var EventTypes = []EventType{EventWedding, EventCorporate, EventPrivate, EventLuxury, EventOther}

var eventLabels = map[EventType]string{
	EventWedding:   "Mariage",
	EventCorporate: "Événement corporate",
	EventPrivate:   "Fête privée",
	EventLuxury:    "Événement de luxe",
	EventOther:     "Autre",
}

// Label returns the French label of the event type.
func (e EventType) Label() string {
	return eventLabels[e]
}

// Form is the contact form as typed by the visitor.
type Form struct {
	Name      string
	Email     string
	Phone     string
	Date      string
	EventType string
	Message   string
}

// Set updates a single field by name.
func (f *Form) Set(field, value string) error {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldPhone:
		f.Phone = value
	case FieldDate:
		f.Date = value
	case FieldEventType:
		f.EventType = value
	case FieldMessage:
		f.Message = value
	default:
		return &domain.ValidationError{Fields: map[string]string{field: fmt.Sprintf("unknown field %q", field)}}
	}
	return nil
}

// Get returns a field by name, or "" for unknown names.
func (f Form) Get(field string) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldPhone:
		return f.Phone
	case FieldDate:
		return f.Date
	case FieldEventType:
		return f.EventType
	case FieldMessage:
		return f.Message
	default:
		return ""
	}
}

// Validate evaluates every rule at once. It returns a *domain.ValidationError
// keyed by field, or nil when the form can be submitted.
func (f Form) Validate() error {
	fields := make(map[string]string)

	name := strings.TrimSpace(f.Name)
	switch {
	case name == "":
		fields[FieldName] = MsgNameRequired
	case utf8.RuneCountInString(name) < minNameLength:
		fields[FieldName] = MsgNameTooShort
	}

	email := strings.TrimSpace(f.Email)
	switch {
	case email == "":
		fields[FieldEmail] = MsgEmailRequired
	case !emailPattern.MatchString(email):
		fields[FieldEmail] = MsgEmailInvalid
	}

	// Phone is optional, but a non-empty value must hold a number.
	if f.Phone != "" && !phonePattern.MatchString(strings.TrimSpace(f.Phone)) {
		fields[FieldPhone] = MsgPhoneInvalid
	}

	message := strings.TrimSpace(f.Message)
	switch {
	case message == "":
		fields[FieldMessage] = MsgMessageRequired
	case utf8.RuneCountInString(message) < minMessageLength:
		fields[FieldMessage] = MsgMessageTooShort
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
