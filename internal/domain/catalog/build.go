package catalog

import (
	"github.com/jsamuelsen11/exclusive-events/internal/domain"
	"github.com/jsamuelsen11/exclusive-events/internal/domain/availability"
	"github.com/jsamuelsen11/exclusive-events/internal/domain/content"
	"github.com/jsamuelsen11/exclusive-events/internal/domain/news"
	"github.com/jsamuelsen11/exclusive-events/internal/domain/reference"
	"github.com/jsamuelsen11/exclusive-events/internal/domain/service"
	"github.com/jsamuelsen11/exclusive-events/internal/domain/testimonial"
)

// DropReporter returns the callback notified of entities rejected from the
// named resource. It may return nil.
type DropReporter func(resource string) domain.DropFunc

// Build assembles a catalog from loaded documents keyed by resource name.
// A missing document is treated as its resource's fallback. Entities go
// through the shape filter first and, where the entity carries a visible
// flag, through the visibility filter second.
func Build(docs map[string]any, report DropReporter) *Catalog {
	doc := func(r Resource) any {
		if d, ok := docs[r.Name]; ok {
			return d
		}
		return r.Fallback()
	}
	dropped := func(r Resource) domain.DropFunc {
		if report == nil {
			return nil
		}
		return report(r.Name)
	}

	return &Catalog{
		Services:     service.Filter(Services.Entities(doc(Services)), dropped(Services)),
		Testimonials: testimonial.Visible(testimonial.Filter(Testimonials.Entities(doc(Testimonials)), dropped(Testimonials))),
		References:   reference.Visible(reference.Filter(References.Entities(doc(References)), dropped(References))),
		News:         news.Visible(news.Filter(News.Entities(doc(News)), dropped(News))),
		Calendar: availability.Calendar{
			Slots:  availability.Filter(Availability.Entities(doc(Availability)), dropped(Availability)),
			Booked: availability.ParseBookedDates(BookedDates.Entities(doc(BookedDates))),
		},
		Blocks: content.Parse(doc(Content)),
	}
}
