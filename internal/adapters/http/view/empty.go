package view

import (
	"html/template"

	"github.com/jsamuelsen11/exclusive-events/internal/domain"
	"github.com/jsamuelsen11/exclusive-events/internal/platform/config"
)

// Empty-state keys, matching site.empty_states in config.
const (
	EmptyServices     = "services"
	EmptyTestimonials = "testimonials"
	EmptyReferences   = "references"
	EmptyNews         = "news"
	EmptyCalendar     = "calendar"
	EmptyValues       = "values"
	EmptyDefault      = "default"
)

// EmptyState is the block shown in place of an empty collection.
type EmptyState struct {
	Title   string
	Message string
	Icon    template.HTML
}

type emptyCopy struct {
	title   string
	message string
	icon    domain.IconKind
}

var emptyDefaults = map[string]emptyCopy{
	// The services section shows its message inline, without a title.
	EmptyServices: {
		message: "Aucun service disponible actuellement. Veuillez nous contacter directement pour découvrir notre offre complète.",
		icon:    domain.IconBuilding,
	},
	EmptyTestimonials: {
		title:   "Témoignages bientôt disponibles",
		message: "Les témoignages de nos clients seront affichés ici prochainement.",
		icon:    domain.IconQuote,
	},
	EmptyReferences: {
		title:   "Références bientôt disponibles",
		message: "Nos références et partenariats seront affichés ici prochainement.",
		icon:    domain.IconMapPin,
	},
	EmptyNews: {
		title:   "Actualités bientôt disponibles",
		message: "Nos dernières actualités et réalisations seront affichées ici prochainement.",
		icon:    domain.IconCalendar,
	},
	EmptyCalendar: {
		title: "Calendrier en cours de mise à jour",
		message: "Les disponibilités seront affichées ici prochainement. " +
			"Contactez-nous directement pour connaître nos créneaux disponibles.",
		icon: domain.IconCalendar,
	},
	EmptyValues: {
		title:   "Valeurs en cours de mise à jour",
		message: "Nos valeurs et notre approche seront bientôt détaillées ici.",
		icon:    domain.IconHeart,
	},
	EmptyDefault: {
		title:   "Aucune donnée disponible",
		message: "Les informations seront bientôt disponibles. Contactez-nous pour plus de détails.",
		icon:    domain.IconPackage,
	},
}

// emptyStates resolves each section's empty state once, applying the config
// overrides on top of the built-in copy.
func emptyStates(overrides map[string]config.EmptyState) map[string]EmptyState {
	out := make(map[string]EmptyState, len(emptyDefaults))
	for key, def := range emptyDefaults {
		es := EmptyState{Title: def.title, Message: def.message, Icon: Icon(def.icon)}
		if o, ok := overrides[key]; ok {
			if o.Title != "" {
				es.Title = o.Title
			}
			if o.Message != "" {
				es.Message = o.Message
			}
		}
		out[key] = es
	}
	return out
}
