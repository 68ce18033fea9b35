// Package view renders the single-page site from embedded html/template
// templates.
//
// Every section is executed into its own buffer: a section that fails is
// replaced by an error block and the rest of the page still renders. Cards
// inside a section are isolated the same way and degrade to a placeholder.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/exclusive-events/internal/app"
	"github.com/jsamuelsen11/exclusive-events/internal/app/state"
	"github.com/jsamuelsen11/exclusive-events/internal/domain/catalog"
	"github.com/jsamuelsen11/exclusive-events/internal/platform/config"
)

//go:embed templates/*.html
var templateFS embed.FS

// degradedCard replaces a card whose template failed.
const degradedCard template.HTML = `<article class="card card--degraded" role="status">Contenu indisponible</article>`

// Page is the input of one page render.
type Page struct {
	Catalog *catalog.Catalog
	State   state.Snapshot
	Booking app.BookingSnapshot
	Contact app.ContactSnapshot
	// Liked reports whether the visitor recommended a testimonial. May be nil.
	Liked func(testimonialID string) bool
	// Testimonial is the requested carousel position, wrapped on render.
	Testimonial  int
	PDFAvailable bool
	CSRFField    template.HTML
	// URL is the address shared by the share links. Defaults to the site's
	// base URL.
	URL  string
	Year int
}

func (p *Page) liked(id string) bool {
	return p.Liked != nil && p.Liked(id)
}

func (p *Page) url(def string) string {
	if p.URL != "" {
		return p.URL
	}
	return def
}

type section struct {
	id      string
	failure string
	model   func(*Renderer, *Page) any
}

// Sections in page order.
var sections = []section{
	{id: "hero", failure: "Impossible de charger la section d'accueil", model: (*Renderer).heroModel},
	{id: "about", failure: "Impossible de charger les informations de la section À propos", model: (*Renderer).aboutModel},
	{id: "services", failure: "Impossible de charger les services", model: (*Renderer).servicesModel},
	{id: "testimonials", failure: "Impossible de charger les témoignages", model: (*Renderer).testimonialsModel},
	{id: "references", failure: "Impossible de charger les références", model: (*Renderer).referencesModel},
	{id: "news", failure: "Impossible de charger les actualités", model: (*Renderer).newsModel},
	{id: "calendar", failure: "Impossible de charger le calendrier de disponibilités", model: (*Renderer).calendarModel},
	{id: "contact", failure: "Impossible de charger le formulaire de contact", model: (*Renderer).contactModel},
	{id: "pdf", failure: "Impossible de charger les options de partage", model: (*Renderer).pdfModel},
	{id: "footer", failure: "Impossible de charger le pied de page", model: (*Renderer).footerModel},
}

// SectionIDs returns the anchor ids of the page sections in order.
func SectionIDs() []string {
	ids := make([]string, len(sections))
	for i, s := range sections {
		ids[i] = s.id
	}
	return ids
}

// sectionData is the dot of every section template.
type sectionData struct {
	ID   string
	CSRF template.HTML
	Site *config.SiteConfig
	Data any
}

type dataErrorData struct {
	ID      string
	Message string
}

type layoutData struct {
	Site     *config.SiteConfig
	Sections []template.HTML
}

// Renderer renders pages. It is safe for concurrent use.
type Renderer struct {
	tmpl   *template.Template
	site   *config.SiteConfig
	empty  map[string]EmptyState
	md     *markdown
	logger *slog.Logger
}

// Option configures a Renderer.
type Option func(*options)

type options struct {
	overrides []string
	logger    *slog.Logger
}

// WithOverrides parses extra template definitions after the embedded ones,
// replacing templates of the same name.
func WithOverrides(text string) Option {
	return func(o *options) { o.overrides = append(o.overrides, text) }
}

// WithLogger sets the logger section and card failures are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New parses the embedded templates.
func New(site *config.SiteConfig, opts ...Option) (*Renderer, error) {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	r := &Renderer{
		site:   site,
		empty:  emptyStates(site.EmptyStates),
		md:     newMarkdown(),
		logger: o.logger,
	}

	tmpl, err := template.New("site").Funcs(template.FuncMap{
		"card": r.card,
		"icon": iconKind,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	for _, text := range o.overrides {
		if tmpl, err = tmpl.Parse(text); err != nil {
			return nil, fmt.Errorf("parsing template overrides: %w", err)
		}
	}
	r.tmpl = tmpl
	return r, nil
}

// Render writes the full page. Section and card failures are contained; an
// error is returned only when the page shell itself cannot be rendered.
func (r *Renderer) Render(w io.Writer, p *Page) error {
	if p.Catalog == nil {
		p.Catalog = catalog.Empty()
	}
	if p.Year == 0 {
		p.Year = time.Now().Year()
	}

	rendered := make([]template.HTML, 0, len(sections))
	for _, s := range sections {
		rendered = append(rendered, r.section(s, p))
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "layout", layoutData{Site: r.site, Sections: rendered}); err != nil {
		return fmt.Errorf("rendering layout: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func (r *Renderer) section(s section, p *Page) (out template.HTML) {
	defer func() {
		if v := recover(); v != nil {
			r.logger.Error("section panicked", slog.String("section", s.id), slog.String("panic", fmt.Sprint(v)))
			out = r.dataError(s)
		}
	}()

	data := sectionData{ID: s.id, CSRF: p.CSRFField, Site: r.site, Data: s.model(r, p)}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "section-"+s.id, data); err != nil {
		r.logger.Error("section failed", slog.String("section", s.id), slog.String("error", err.Error()))
		return r.dataError(s)
	}
	return template.HTML(buf.String())
}

func (r *Renderer) dataError(s section) template.HTML {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "data-error", dataErrorData{ID: s.id, Message: s.failure}); err != nil {
		return template.HTML(`<section id="` + s.id + `"><p role="alert">` +
			template.HTMLEscapeString(s.failure) + `</p></section>`)
	}
	return template.HTML(buf.String())
}

// card executes the named card template in isolation. A failure yields the
// degraded placeholder card.
func (r *Renderer) card(name string, data any) (out template.HTML) {
	defer func() {
		if v := recover(); v != nil {
			r.logger.Error("card panicked", slog.String("card", name), slog.String("panic", fmt.Sprint(v)))
			out = degradedCard
		}
	}()

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		r.logger.Error("card failed", slog.String("card", name), slog.String("error", err.Error()))
		return degradedCard
	}
	return template.HTML(buf.String())
}
