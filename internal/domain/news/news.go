// Package news holds the NewsItem entity.
package news

import "github.com/jsamuelsen11/exclusive-events/internal/domain"

// Item is a news entry. Image and Category are optional.
type Item struct {
	ID       string
	Title    string
	Date     string
	Summary  string
	Image    string
	Category string
	Visible  bool
}

// IsVisible implements domain.Visible.
func (i Item) IsVisible() bool {
	return i.Visible
}

// IsValid reports whether candidate carries string id, title, date and
// summary fields and a boolean visible flag.
func IsValid(candidate any) bool {
	if !domain.HasFields(candidate, "id", "title", "date", "summary", "visible") {
		return false
	}
	m := candidate.(map[string]any)
	return domain.IsStringField(m, "id") &&
		domain.IsStringField(m, "title") &&
		domain.IsStringField(m, "date") &&
		domain.IsStringField(m, "summary") &&
		domain.IsBoolField(m, "visible")
}

// Filter keeps the valid news items of raw in their original order.
func Filter(raw any, dropped domain.DropFunc) []Item {
	valid := domain.FilterValid(raw, IsValid, dropped)
	out := make([]Item, 0, len(valid))
	for _, c := range valid {
		m := c.(map[string]any)
		out = append(out, Item{
			ID:       m["id"].(string),
			Title:    m["title"].(string),
			Date:     m["date"].(string),
			Summary:  m["summary"].(string),
			Image:    domain.StringField(m, "image", ""),
			Category: domain.StringField(m, "category", ""),
			Visible:  m["visible"].(bool),
		})
	}
	return out
}

// Visible keeps the news items flagged for display.
func Visible(items []Item) []Item {
	return domain.OnlyVisible(items)
}
