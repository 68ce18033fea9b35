package view

import (
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"github.com/jsamuelsen11/exclusive-events/internal/app"
	"github.com/jsamuelsen11/exclusive-events/internal/domain"
	"github.com/jsamuelsen11/exclusive-events/internal/domain/availability"
	"github.com/jsamuelsen11/exclusive-events/internal/domain/contact"
	"github.com/jsamuelsen11/exclusive-events/internal/domain/content"
	"github.com/jsamuelsen11/exclusive-events/internal/domain/frdate"
	"github.com/jsamuelsen11/exclusive-events/internal/domain/news"
	"github.com/jsamuelsen11/exclusive-events/internal/domain/reference"
	"github.com/jsamuelsen11/exclusive-events/internal/domain/service"
	"github.com/jsamuelsen11/exclusive-events/internal/domain/share"
	"github.com/jsamuelsen11/exclusive-events/internal/domain/testimonial"
	"github.com/jsamuelsen11/exclusive-events/internal/platform/config"
)

// Inline defaults for optional display fields.
const (
	DefaultTitle          = "Titre non disponible"
	DefaultSummary        = "Résumé non disponible."
	DefaultCategory       = "Actualité"
	DefaultClient         = "Client"
	DefaultEvent          = "Événement"
	DefaultComment        = "Témoignage non disponible."
	DefaultServiceSummary = "Description du service non disponible."
)

// placeholderImage is drawn when an entity has no usable image.
const placeholderImage template.URL = "data:image/svg+xml;base64,PHN2ZyB3aWR0aD0iODAwIiBoZWlnaHQ9IjQ1MCIgeG1sbnM9" +
	"Imh0dHA6Ly93d3cudzMub3JnLzIwMDAvc3ZnIj48cmVjdCB3aWR0aD0iMTAwJSIgaGVpZ2h0PSIxMDAlIiBmaWxsPSIjZjNmNGY2Ii8+PHRleHQg" +
	"eD0iNTAlIiB5PSI1MCUiIGZvbnQtZmFtaWx5PSJBcmlhbCIgZm9udC1zaXplPSIxOCIgZmlsbD0iIzk5YTNhZiIgdGV4dC1hbmNob3I9Im1pZGRs" +
	"ZSIgZHk9Ii4zZW0iPkltYWdlIG5vbiBkaXNwb25pYmxlPC90ZXh0Pjwvc3ZnPg=="

// CarouselInterval is the auto-advance hint of the testimonials carousel, in
// milliseconds.
const CarouselInterval = 5000

type heroView struct {
	Hero     content.Hero
	ShareURL string
}

type valueView struct {
	Icon        template.HTML
	Title       string
	Description string
}

type aboutView struct {
	Title       string
	Description template.HTML
	Values      []valueView
	Empty       EmptyState
	Business    config.BusinessConfig
}

type serviceCard struct {
	ID          string
	Title       string
	Description string
	Icon        template.HTML
	Image       template.URL
	Features    []string
}

type servicesView struct {
	Cards []serviceCard
	Empty EmptyState
}

type testimonialCard struct {
	ID       string
	Index    int
	Name     string
	Event    string
	Comment  string
	Date     string
	Stars    []bool
	Liked    bool
	ShareURL string
	CSRF     template.HTML
}

type carouselDot struct {
	Index   int
	Href    string
	Current bool
}

type testimonialsView struct {
	Active   *testimonialCard
	Dots     []carouselDot
	PrevHref string
	NextHref string
	Interval int
	ShowForm bool
	Empty    EmptyState
}

type referenceCard struct {
	ID    string
	Name  string
	Type  string
	Event string
	Year  string
}

type referencesView struct {
	Cards []referenceCard
	Empty EmptyState
}

type newsCard struct {
	ID       string
	Title    string
	Date     string
	Summary  template.HTML
	Image    template.URL
	Category string
	ShareURL string
}

type newsView struct {
	Cards []newsCard
	Empty EmptyState
}

type slotView struct {
	Date     string
	Label    string
	State    availability.State
	Text     string
	Open     bool
	Selected bool
	Weekend  bool
}

type timeOption struct {
	Value    string
	Selected bool
}

type calendarView struct {
	Slots         []slotView
	Empty         EmptyState
	SelectedDate  string
	SelectedLabel string
	Times         []timeOption
	Status        app.BookingStatus
	Message       string
	Pending       bool
	CanConfirm    bool
	Success       bool
}

type eventOption struct {
	Value    string
	Label    string
	Selected bool
}

type contactView struct {
	Title      string
	Subtitle   string
	Form       contact.Form
	Errors     map[string]string
	Banner     string
	Success    string
	Submitting bool
	Failed     bool
	Events     []eventOption
	Details    config.ContactConfig
	WhatsApp   string
}

type pdfView struct {
	Available bool
	Href      string
	FileName  string
	Phone     string
	ShareURL  string
}

type footerView struct {
	Brand    config.BrandConfig
	Tagline  string
	Contact  config.ContactConfig
	Business config.BusinessConfig
	Socials  map[string]string
	Year     int
}

func (r *Renderer) heroModel(p *Page) any {
	b := r.site.Brand
	return heroView{
		Hero:     p.Catalog.Blocks.Hero,
		ShareURL: share.WhatsAppURL(share.SiteMessage(b.Name, b.Subtitle, b.Slogan), p.url(r.site.BaseURL)),
	}
}

func (r *Renderer) aboutModel(p *Page) any {
	about := p.Catalog.Blocks.About
	values := make([]valueView, 0, len(about.Values))
	for _, v := range about.Values {
		values = append(values, valueView{Icon: Icon(v.Icon), Title: v.Title, Description: v.Description})
	}
	return aboutView{
		Title:       about.Title,
		Description: r.md.render(about.Description),
		Values:      values,
		Empty:       r.empty[EmptyValues],
		Business:    r.site.Business,
	}
}

func (r *Renderer) servicesModel(p *Page) any {
	cards := make([]serviceCard, 0, len(p.Catalog.Services))
	for _, s := range p.Catalog.Services {
		cards = append(cards, newServiceCard(s))
	}
	return servicesView{Cards: cards, Empty: r.empty[EmptyServices]}
}

func newServiceCard(s service.Service) serviceCard {
	return serviceCard{
		ID:          s.ID,
		Title:       orDefault(s.Title, DefaultTitle),
		Description: orDefault(s.Description, DefaultServiceSummary),
		Icon:        Icon(s.Icon),
		Image:       imageURL(s.Image),
		Features:    s.Features,
	}
}

func (r *Renderer) testimonialsModel(p *Page) any {
	items := p.Catalog.Testimonials
	v := testimonialsView{
		Interval: CarouselInterval,
		ShowForm: p.State.ShowTestimonialForm,
		Empty:    r.empty[EmptyTestimonials],
	}
	if len(items) == 0 {
		return v
	}

	active := CarouselIndex(p.Testimonial, len(items))
	t := items[active]
	card := testimonialCard{
		ID:       t.ID,
		Index:    active,
		Name:     orDefault(t.Name, DefaultClient),
		Event:    orDefault(t.Event, DefaultEvent),
		Comment:  orDefault(t.Comment, DefaultComment),
		Stars:    stars(t),
		Liked:    p.liked(t.ID),
		ShareURL: share.WhatsAppURL(share.TestimonialMessage(r.site.Brand.Name, t.Comment, t.Name), p.url(r.site.BaseURL)),
		CSRF:     p.CSRFField,
	}
	if t.Date != "" {
		card.Date = frdate.Medium(t.Date)
	}
	v.Active = &card

	if len(items) > 1 {
		for i := range items {
			v.Dots = append(v.Dots, carouselDot{Index: i, Href: carouselHref(i), Current: i == active})
		}
		v.PrevHref = carouselHref(CarouselIndex(active-1, len(items)))
		v.NextHref = carouselHref(CarouselIndex(active+1, len(items)))
	}
	return v
}

// CarouselIndex wraps i into [0, n). n must be positive.
func CarouselIndex(i, n int) int {
	return ((i % n) + n) % n
}

func carouselHref(i int) string {
	return fmt.Sprintf("/?t=%d#testimonials", i)
}

func stars(t testimonial.Testimonial) []bool {
	filled := t.Stars()
	out := make([]bool, testimonial.MaxRating)
	for i := range out {
		out[i] = i < filled
	}
	return out
}

func (r *Renderer) referencesModel(p *Page) any {
	cards := make([]referenceCard, 0, len(p.Catalog.References))
	for _, ref := range p.Catalog.References {
		cards = append(cards, newReferenceCard(ref))
	}
	return referencesView{Cards: cards, Empty: r.empty[EmptyReferences]}
}

func newReferenceCard(ref reference.Reference) referenceCard {
	return referenceCard{
		ID:    ref.ID,
		Name:  orDefault(ref.Name, DefaultClient),
		Type:  ref.Type,
		Event: orDefault(ref.Event, DefaultEvent),
		Year:  ref.Year,
	}
}

func (r *Renderer) newsModel(p *Page) any {
	cards := make([]newsCard, 0, len(p.Catalog.News))
	for _, n := range p.Catalog.News {
		cards = append(cards, r.newNewsCard(n, p))
	}
	return newsView{Cards: cards, Empty: r.empty[EmptyNews]}
}

func (r *Renderer) newNewsCard(n news.Item, p *Page) newsCard {
	summary := template.HTML(template.HTMLEscapeString(DefaultSummary))
	if strings.TrimSpace(n.Summary) != "" {
		summary = r.md.render(n.Summary)
	}
	title := orDefault(n.Title, DefaultTitle)
	return newsCard{
		ID:       n.ID,
		Title:    title,
		Date:     frdate.Medium(n.Date),
		Summary:  summary,
		Image:    imageURL(n.Image),
		Category: orDefault(n.Category, DefaultCategory),
		ShareURL: share.WhatsAppURL(share.NewsMessage(r.site.Brand.Name, title), p.url(r.site.BaseURL)),
	}
}

func (r *Renderer) calendarModel(p *Page) any {
	cal := p.Catalog.Calendar
	selected := p.State.SelectedDate

	slots := make([]slotView, 0, len(cal.Slots))
	for _, s := range cal.Slots {
		state := cal.StateOf(s)
		slots = append(slots, slotView{
			Date:     s.Date,
			Label:    frdate.Long(s.Date),
			State:    state,
			Text:     state.Text(),
			Open:     state.IsOpen(),
			Selected: s.Date == selected,
			Weekend:  s.Type == availability.TypeWeekend,
		})
	}

	b := p.Booking
	v := calendarView{
		Slots:        slots,
		Empty:        r.empty[EmptyCalendar],
		SelectedDate: selected,
		Status:       b.Status,
		Message:      b.Message,
		Pending:      b.Status == app.BookingPending,
		Success:      b.Status == app.BookingSuccess,
		CanConfirm:   b.Status != app.BookingPending && b.Status != app.BookingSuccess,
	}
	if p.State.HasSelectedDate() {
		v.SelectedLabel = frdate.Long(selected)
		for _, t := range availability.TimeSlots {
			v.Times = append(v.Times, timeOption{Value: t, Selected: t == b.SelectedTime})
		}
	}
	return v
}

func (r *Renderer) contactModel(p *Page) any {
	c := p.Contact
	events := make([]eventOption, 0, len(contact.EventTypes))
	for _, e := range contact.EventTypes {
		events = append(events, eventOption{
			Value:    string(e),
			Label:    e.Label(),
			Selected: string(e) == c.Form.EventType,
		})
	}

	var whatsapp string
	if n := r.site.Contact.WhatsAppNumber; n != "" {
		whatsapp = "https://wa.me/" + url.PathEscape(n)
	}

	return contactView{
		Title:      p.Catalog.Blocks.Contact.Title,
		Subtitle:   p.Catalog.Blocks.Contact.Subtitle,
		Form:       c.Form,
		Errors:     c.Errors,
		Banner:     c.Banner,
		Success:    c.Success,
		Submitting: c.Status == app.ContactSubmitting,
		Failed:     c.Status == app.ContactFailed,
		Events:     events,
		Details:    r.site.Contact,
		WhatsApp:   whatsapp,
	}
}

func (r *Renderer) pdfModel(p *Page) any {
	b := r.site.Brand
	return pdfView{
		Available: p.PDFAvailable && r.site.PDF.Path != "",
		Href:      r.site.PDF.Path,
		FileName:  r.site.PDF.FileName,
		Phone:     r.site.Contact.Phone,
		ShareURL:  share.WhatsAppURL(share.SiteMessage(b.Name, b.Subtitle, b.Slogan), p.url(r.site.BaseURL)),
	}
}

func (r *Renderer) footerModel(p *Page) any {
	return footerView{
		Brand:    r.site.Brand,
		Tagline:  p.Catalog.Blocks.Footer.Tagline,
		Contact:  r.site.Contact,
		Business: r.site.Business,
		Socials:  r.site.Socials,
		Year:     p.Year,
	}
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// imageURL accepts site-relative paths, http(s) URLs and data:image URIs.
// Anything else is replaced by the placeholder.
func imageURL(src string) template.URL {
	src = strings.TrimSpace(src)
	if src == "" {
		return placeholderImage
	}
	if strings.HasPrefix(src, "data:image/") {
		return template.URL(src)
	}
	u, err := url.Parse(src)
	if err != nil {
		return placeholderImage
	}
	switch u.Scheme {
	case "", "http", "https":
		return template.URL(u.String())
	default:
		return placeholderImage
	}
}

// iconKind is used by templates that draw a fixed icon.
func iconKind(name string) template.HTML {
	return Icon(domain.ParseIcon(name, domain.IconPackage))
}
