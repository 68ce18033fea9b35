// Package service holds the Service entity and its validator.
package service

import "github.com/jsamuelsen11/exclusive-events/internal/domain"

// DefaultIcon is drawn when a service names an icon outside the known set.
const DefaultIcon = domain.IconBuilding

// Service is an offering presented in the services section.
type Service struct {
	ID          string
	Title       string
	Description string
	Icon        domain.IconKind
	Image       string
	Features    []string
}

// IsValid reports whether candidate is an object with string id, title,
// description, icon and image fields and an array of features.
func IsValid(candidate any) bool {
	if !domain.HasFields(candidate, "id", "title", "description", "icon", "image", "features") {
		return false
	}
	m := candidate.(map[string]any)
	return domain.IsStringField(m, "id") &&
		domain.IsStringField(m, "title") &&
		domain.IsStringField(m, "description") &&
		domain.IsStringField(m, "icon") &&
		domain.IsStringField(m, "image") &&
		domain.IsArrayField(m, "features")
}

// Filter keeps the valid services of raw in their original order.
func Filter(raw any, dropped domain.DropFunc) []Service {
	valid := domain.FilterValid(raw, IsValid, dropped)
	out := make([]Service, 0, len(valid))
	for _, c := range valid {
		out = append(out, fromMap(c.(map[string]any)))
	}
	return out
}

func fromMap(m map[string]any) Service {
	return Service{
		ID:          m["id"].(string),
		Title:       m["title"].(string),
		Description: m["description"].(string),
		Icon:        domain.ParseIcon(m["icon"].(string), DefaultIcon),
		Image:       m["image"].(string),
		Features:    domain.StringsField(m, "features"),
	}
}
