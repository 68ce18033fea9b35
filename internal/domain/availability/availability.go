// Package availability holds the booking calendar: availability slots, the
// booked-date set and the bookable time slots.
package availability

import (
	"slices"

	"github.com/jsamuelsen11/exclusive-events/internal/domain"
)

// TimeSlots are the hours a visitor can pick once a date is selected.
var TimeSlots = []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00", "18:00", "19:00"}

// IsTimeSlot reports whether t is one of TimeSlots.
func IsTimeSlot(t string) bool {
	return slices.Contains(TimeSlots, t)
}

// Slot types with a dedicated status text.
const (
	TypeWeekend = "weekend"
	TypeBooked  = "booked"
	TypeHoliday = "holiday"
)

// Slot is one day in the availability calendar.
type Slot struct {
	Date      string
	Available bool
	Type      string
}

// IsValid reports whether candidate carries a non-empty string date, a
// boolean available flag and a string type.
func IsValid(candidate any) bool {
	if !domain.HasFields(candidate, "date", "available", "type") {
		return false
	}
	m := candidate.(map[string]any)
	return domain.IsNonEmptyStringField(m, "date") &&
		domain.IsBoolField(m, "available") &&
		domain.IsStringField(m, "type")
}

// Filter keeps the valid slots of raw in their original order.
func Filter(raw any, dropped domain.DropFunc) []Slot {
	valid := domain.FilterValid(raw, IsValid, dropped)
	out := make([]Slot, 0, len(valid))
	for _, c := range valid {
		m := c.(map[string]any)
		out = append(out, Slot{
			Date:      m["date"].(string),
			Available: m["available"].(bool),
			Type:      m["type"].(string),
		})
	}
	return out
}

// BookedDates is the set of dates that can no longer be booked, whatever
// their slot says.
type BookedDates []string

// ParseBookedDates keeps the string elements of raw. A non-array yields an
// empty set.
func ParseBookedDates(raw any) BookedDates {
	items, _ := raw.([]any)
	out := make(BookedDates, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Contains reports whether date is booked.
func (b BookedDates) Contains(date string) bool {
	return slices.Contains(b, date)
}

// State is the display state of a slot.
type State string

const (
	StateAlreadyBooked    State = "already_booked"
	StateReserved         State = "reserved"
	StateHoliday          State = "holiday"
	StateUnavailable      State = "unavailable"
	StateWeekendAvailable State = "weekend_available"
	StateAvailable        State = "available"
)

var stateText = map[State]string{
	StateAlreadyBooked:    "Déjà réservé",
	StateReserved:         "Réservé",
	StateHoliday:          "Férié",
	StateUnavailable:      "Indisponible",
	StateWeekendAvailable: "Week-end disponible",
	StateAvailable:        "Disponible",
}

// Text returns the French label for the state.
func (s State) Text() string {
	return stateText[s]
}

// IsOpen reports whether a slot in this state can be selected.
func (s State) IsOpen() bool {
	return s == StateAvailable || s == StateWeekendAvailable
}

// Calendar is the validated availability data: slots plus booked dates.
type Calendar struct {
	Slots  []Slot
	Booked BookedDates
}

// StateOf computes a slot's display state. A booked date wins over the
// slot's own flags.
func (c Calendar) StateOf(s Slot) State {
	if c.Booked.Contains(s.Date) {
		return StateAlreadyBooked
	}
	if !s.Available {
		switch s.Type {
		case TypeBooked:
			return StateReserved
		case TypeHoliday:
			return StateHoliday
		default:
			return StateUnavailable
		}
	}
	if s.Type == TypeWeekend {
		return StateWeekendAvailable
	}
	return StateAvailable
}

// Slot returns the slot for date.
func (c Calendar) Slot(date string) (Slot, bool) {
	for _, s := range c.Slots {
		if s.Date == date {
			return s, true
		}
	}
	return Slot{}, false
}

// Selectable reports whether the visitor may pick date: the slot must exist,
// be available and not be booked.
func (c Calendar) Selectable(date string) bool {
	s, ok := c.Slot(date)
	return ok && s.Available && !c.Booked.Contains(date)
}
