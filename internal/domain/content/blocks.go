// Package content holds the textual content blocks (hero, about, contact,
// footer). Every field is optional in the source document and has a
// hardcoded default.
package content

import "github.com/jsamuelsen11/exclusive-events/internal/domain"

// Sections are the top-level keys expected in the content document.
var Sections = []string{"hero", "about", "contact", "footer"}

// Default copy used when the content document omits a field.
const (
	DefaultHeroTitle       = "Isaac & Alyam"
	DefaultHeroSubtitle    = "Exclusive Events"
	DefaultHeroSlogan      = "Créateurs d'expériences mémorables"
	DefaultHeroDescription = "Créateurs d'expériences mémorables depuis 2014. Événements de luxe et sur mesure à Paris."
	DefaultHeroCTA         = "Prendre contact"

	DefaultAboutTitle       = "Notre Excellence"
	DefaultAboutDescription = "Informations bientôt disponibles."
	DefaultValueTitle       = "Valeur"
	DefaultValueDescription = "Description non disponible."

	DefaultContactTitle    = "Contactez-nous"
	DefaultContactSubtitle = "Parlons ensemble de votre prochain événement d'exception"

	DefaultFooterTagline = "Événements d'exception, service discret"
)

// DefaultValueIcon is drawn for an about value with an unknown icon.
const DefaultValueIcon = domain.IconSparkles

// Blocks is the parsed content document.
type Blocks struct {
	Hero    Hero
	About   About
	Contact Contact
	Footer  Footer
}

// Hero is the landing banner copy.
type Hero struct {
	Title       string
	Subtitle    string
	Slogan      string
	Description string
	CTA         string
}

// About is the presentation block with the company values.
type About struct {
	Title       string
	Description string
	Values      []Value
}

// Value is one company value in the about block.
type Value struct {
	Icon        domain.IconKind
	Title       string
	Description string
}

// Contact is the heading copy of the contact section.
type Contact struct {
	Title    string
	Subtitle string
}

// Footer is the footer copy.
type Footer struct {
	Tagline string
}

// Defaults returns the blocks used when the content document is missing.
func Defaults() Blocks {
	return Parse(nil)
}

// Parse reads the content document. Missing sections, missing fields and
// fields of the wrong type take their default; malformed about values are
// skipped.
func Parse(raw any) Blocks {
	doc, _ := raw.(map[string]any)

	hero := section(doc, "hero")
	about := section(doc, "about")
	contact := section(doc, "contact")
	footer := section(doc, "footer")

	return Blocks{
		Hero: Hero{
			Title:       domain.StringField(hero, "title", DefaultHeroTitle),
			Subtitle:    domain.StringField(hero, "subtitle", DefaultHeroSubtitle),
			Slogan:      domain.StringField(hero, "slogan", DefaultHeroSlogan),
			Description: domain.StringField(hero, "description", DefaultHeroDescription),
			CTA:         domain.StringField(hero, "cta", DefaultHeroCTA),
		},
		About: About{
			Title:       domain.StringField(about, "title", DefaultAboutTitle),
			Description: domain.StringField(about, "description", DefaultAboutDescription),
			Values:      parseValues(about["values"]),
		},
		Contact: Contact{
			Title:    domain.StringField(contact, "title", DefaultContactTitle),
			Subtitle: domain.StringField(contact, "subtitle", DefaultContactSubtitle),
		},
		Footer: Footer{
			Tagline: domain.StringField(footer, "tagline", DefaultFooterTagline),
		},
	}
}

func section(doc map[string]any, key string) map[string]any {
	if m, ok := doc[key].(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

func parseValues(raw any) []Value {
	items, _ := raw.([]any)
	out := make([]Value, 0, len(items))
	for _, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, Value{
			Icon:        domain.ParseIcon(domain.StringField(m, "icon", ""), DefaultValueIcon),
			Title:       domain.StringField(m, "title", DefaultValueTitle),
			Description: domain.StringField(m, "description", DefaultValueDescription),
		})
	}
	return out
}
