// Package testimonial holds the Testimonial entity, its validator and the
// visibility stage.
package testimonial

import (
	"math"

	"github.com/jsamuelsen11/exclusive-events/internal/domain"
)

// MaxRating is the number of stars drawn for a testimonial.
const MaxRating = 5

// Testimonial is a client quote.
type Testimonial struct {
	ID      string
	Name    string
	Event   string
	Rating  float64
	Comment string
	Visible bool
	Date    string
}

// IsVisible implements domain.Visible.
func (t Testimonial) IsVisible() bool {
	return t.Visible
}

// Stars returns the number of filled stars to draw. A zero rating or one
// outside [0, MaxRating] draws the maximum; other ratings are floored.
func (t Testimonial) Stars() int {
	r := t.Rating
	if r == 0 || math.IsNaN(r) || r < 0 || r > MaxRating {
		return MaxRating
	}
	return int(math.Floor(r))
}

// IsValid reports whether candidate carries string id, name, event and
// comment fields, a numeric rating and a boolean visible flag. The date field
// is optional.
func IsValid(candidate any) bool {
	if !domain.HasFields(candidate, "id", "name", "event", "rating", "comment", "visible") {
		return false
	}
	m := candidate.(map[string]any)
	return domain.IsStringField(m, "id") &&
		domain.IsStringField(m, "name") &&
		domain.IsStringField(m, "event") &&
		domain.IsNumberField(m, "rating") &&
		domain.IsStringField(m, "comment") &&
		domain.IsBoolField(m, "visible")
}

// Filter keeps the valid testimonials of raw in their original order. It
// does not look at the visible flag; see Visible.
func Filter(raw any, dropped domain.DropFunc) []Testimonial {
	valid := domain.FilterValid(raw, IsValid, dropped)
	out := make([]Testimonial, 0, len(valid))
	for _, c := range valid {
		m := c.(map[string]any)
		rating, _ := domain.NumberField(m, "rating")
		out = append(out, Testimonial{
			ID:      m["id"].(string),
			Name:    m["name"].(string),
			Event:   m["event"].(string),
			Rating:  rating,
			Comment: m["comment"].(string),
			Visible: m["visible"].(bool),
			Date:    domain.StringField(m, "date", ""),
		})
	}
	return out
}

// Visible keeps the testimonials flagged for display.
func Visible(items []Testimonial) []Testimonial {
	return domain.OnlyVisible(items)
}
