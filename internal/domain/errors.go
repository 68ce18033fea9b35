package domain

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

// Sentinels matched with errors.Is by the HTTP layer.
var (
	ErrValidation  = errors.New("validation error")
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
)

// ValidationError carries the French message of every rejected form field,
// keyed by field name. It matches ErrValidation.
type ValidationError struct {
	Fields map[string]string
}

// Error lists the fields alphabetically so the message is stable.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	for i, field := range slices.Sorted(maps.Keys(e.Fields)) {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(field + ": " + e.Fields[field])
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// LoadErrorKind says which stage of a content load failed.
type LoadErrorKind string

const (
	LoadMissing    LoadErrorKind = "missing"
	LoadUnreadable LoadErrorKind = "unreadable"
	LoadMalformed  LoadErrorKind = "malformed"
	LoadShape      LoadErrorKind = "shape"
)

// LoadError is returned when a content resource cannot be used. It matches
// ErrUnavailable as well as the underlying cause, if any.
type LoadError struct {
	Resource string
	Kind     LoadErrorKind
	Err      error
}

func (e *LoadError) Error() string {
	msg := "loading " + e.Resource + ": " + string(e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() []error {
	return slices.DeleteFunc([]error{ErrUnavailable, e.Err}, func(err error) bool { return err == nil })
}
