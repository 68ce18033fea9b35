// Package catalog describes the content resources the site is built from and
// the validated, immutable view assembled from them.
package catalog

// Resource identifies a content document: its file name, the top-level key
// wrapping its entities, and the shape substituted when it cannot be loaded.
type Resource struct {
	Name string
	File string
	// Key is the top-level key holding the entity array. Empty for documents
	// whose top level is a record of sections.
	Key string
}

// Content resources.
var (
	Services     = Resource{Name: "services", File: "services.json", Key: "services"}
	Testimonials = Resource{Name: "testimonials", File: "testimonials.json", Key: "testimonials"}
	References   = Resource{Name: "references", File: "references.json", Key: "references"}
	News         = Resource{Name: "news", File: "news.json", Key: "news"}
	Availability = Resource{Name: "availability", File: "availability.json", Key: "availability"}
	BookedDates  = Resource{Name: "booked-dates", File: "booked-dates.json", Key: "bookedDates"}
	Content      = Resource{Name: "content", File: "content.json"}
)

// Resources lists every resource in load order.
var Resources = []Resource{Services, Testimonials, References, News, Availability, BookedDates, Content}

// Fallback returns the document used in place of one that failed to load:
// an empty entity array under Key, or an empty record.
func (r Resource) Fallback() map[string]any {
	if r.Key == "" {
		return map[string]any{}
	}
	return map[string]any{r.Key: []any{}}
}

// Entities returns the raw value under Key in doc, or nil when doc is not a
// record.
func (r Resource) Entities(doc any) any {
	m, ok := doc.(map[string]any)
	if !ok {
		return nil
	}
	return m[r.Key]
}
