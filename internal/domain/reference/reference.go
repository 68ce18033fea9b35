// Package reference holds the Reference entity (past clients and venues).
package reference

import "github.com/jsamuelsen11/exclusive-events/internal/domain"

// Reference is a past client, venue or partner.
type Reference struct {
	ID      string
	Name    string
	Type    string
	Event   string
	Year    string
	Visible bool
}

// IsVisible implements domain.Visible.
func (r Reference) IsVisible() bool {
	return r.Visible
}

// IsValid reports whether candidate carries string id, name, type, event and
// year fields and a boolean visible flag.
func IsValid(candidate any) bool {
	if !domain.HasFields(candidate, "id", "name", "type", "event", "year", "visible") {
		return false
	}
	m := candidate.(map[string]any)
	return domain.IsStringField(m, "id") &&
		domain.IsStringField(m, "name") &&
		domain.IsStringField(m, "type") &&
		domain.IsStringField(m, "event") &&
		domain.IsStringField(m, "year") &&
		domain.IsBoolField(m, "visible")
}

// Filter keeps the valid references of raw in their original order.
func Filter(raw any, dropped domain.DropFunc) []Reference {
	valid := domain.FilterValid(raw, IsValid, dropped)
	out := make([]Reference, 0, len(valid))
	for _, c := range valid {
		m := c.(map[string]any)
		out = append(out, Reference{
			ID:      m["id"].(string),
			Name:    m["name"].(string),
			Type:    m["type"].(string),
			Event:   m["event"].(string),
			Year:    m["year"].(string),
			Visible: m["visible"].(bool),
		})
	}
	return out
}

// Visible keeps the references flagged for display.
func Visible(items []Reference) []Reference {
	return domain.OnlyVisible(items)
}
