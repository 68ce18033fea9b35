package catalog

import (
	"github.com/jsamuelsen11/exclusive-events/internal/domain/availability"
	"github.com/jsamuelsen11/exclusive-events/internal/domain/content"
	"github.com/jsamuelsen11/exclusive-events/internal/domain/news"
	"github.com/jsamuelsen11/exclusive-events/internal/domain/reference"
	"github.com/jsamuelsen11/exclusive-events/internal/domain/service"
	"github.com/jsamuelsen11/exclusive-events/internal/domain/testimonial"
)

// Catalog is everything the page displays. Testimonials, References and News
// hold only shape-valid, visible entities. A Catalog is never mutated after
// it is built.
type Catalog struct {
	Services     []service.Service
	Testimonials []testimonial.Testimonial
	References   []reference.Reference
	News         []news.Item
	Calendar     availability.Calendar
	Blocks       content.Blocks
}

// Empty returns a catalog with no entities and default content blocks.
func Empty() *Catalog {
	return &Catalog{
		Services:     []service.Service{},
		Testimonials: []testimonial.Testimonial{},
		References:   []reference.Reference{},
		News:         []news.Item{},
		Calendar: availability.Calendar{
			Slots:  []availability.Slot{},
			Booked: availability.BookedDates{},
		},
		Blocks: content.Defaults(),
	}
}

// Testimonial returns the displayed testimonial with the given id.
func (c *Catalog) Testimonial(id string) (testimonial.Testimonial, bool) {
	for _, t := range c.Testimonials {
		if t.ID == id {
			return t, true
		}
	}
	return testimonial.Testimonial{}, false
}
