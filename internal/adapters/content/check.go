package content

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/exclusive-events/internal/domain"
	"github.com/jsamuelsen11/exclusive-events/internal/domain/catalog"
	blocks "github.com/jsamuelsen11/exclusive-events/internal/domain/content"
)

// ResourceReport is the offline validation result of one content document.
type ResourceReport struct {
	Resource string
	File     string
	// Err is the load failure, if any. The site would use the fallback.
	Err error
	// Problems lists structural defects of a document that did load.
	Problems []string
	// Entities counts the raw array elements, Valid those passing the shape
	// filter and Shown those left after the visibility filter.
	Entities int
	Valid    int
	Shown    int
}

// OK reports whether the document loaded and is structurally sound.
// Dropped entities are not a structural problem.
func (r ResourceReport) OK() bool {
	return r.Err == nil && len(r.Problems) == 0
}

// Dropped returns how many entities the shape filter rejected.
func (r ResourceReport) Dropped() int {
	return r.Entities - r.Valid
}

// Report covers every content resource in load order.
type Report struct {
	Resources []ResourceReport
}

// OK reports whether every resource is OK.
func (r Report) OK() bool {
	for _, res := range r.Resources {
		if !res.OK() {
			return false
		}
	}
	return true
}

// Dropped returns the number of entities rejected across all resources.
func (r Report) Dropped() int {
	n := 0
	for _, res := range r.Resources {
		n += res.Dropped()
	}
	return n
}

// Check loads every resource and reports how the catalog would see it.
func (l *Loader) Check(ctx context.Context) Report {
	report := Report{Resources: make([]ResourceReport, 0, len(catalog.Resources))}
	for _, res := range catalog.Resources {
		report.Resources = append(report.Resources, l.checkResource(ctx, res))
	}
	return report
}

func (l *Loader) checkResource(ctx context.Context, res catalog.Resource) ResourceReport {
	rep := ResourceReport{Resource: res.Name, File: res.File}

	doc, err := l.Load(ctx, res)
	if err != nil {
		rep.Err = err
		return rep
	}

	if res.Key == "" {
		m, _ := doc.(map[string]any)
		for _, section := range blocks.Sections {
			if !domain.IsObject(m[section]) || domain.IsArray(m[section]) {
				rep.Problems = append(rep.Problems, fmt.Sprintf("section %q missing or not an object", section))
			}
		}
		return rep
	}

	raw, ok := res.Entities(doc).([]any)
	if !ok {
		rep.Problems = append(rep.Problems, fmt.Sprintf("top-level key %q missing or not an array", res.Key))
		return rep
	}
	rep.Entities = len(raw)

	dropped := 0
	cat := catalog.Build(map[string]any{res.Name: doc}, func(string) domain.DropFunc {
		return func(int, any) { dropped++ }
	})
	rep.Valid = rep.Entities - dropped
	rep.Shown = shown(cat, res)
	return rep
}

func shown(c *catalog.Catalog, res catalog.Resource) int {
	switch res.Name {
	case catalog.Services.Name:
		return len(c.Services)
	case catalog.Testimonials.Name:
		return len(c.Testimonials)
	case catalog.References.Name:
		return len(c.References)
	case catalog.News.Name:
		return len(c.News)
	case catalog.Availability.Name:
		return len(c.Calendar.Slots)
	case catalog.BookedDates.Name:
		return len(c.Calendar.Booked)
	default:
		return 0
	}
}
