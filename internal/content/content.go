package content

import "strings"

// Kind classifies a page for layout and schema selection.
type Kind string

const (
	KindHome     Kind = "home"
	KindService  Kind = "service"
	KindLocation Kind = "location"
	KindArticle  Kind = "article"
	KindContent  Kind = "content"
	KindHub      Kind = "hub"
)

// FAQ is a single question/answer pair rendered as one accordion entry.
type FAQ struct {
	Question string
	Answer   string
}

// Crumb is a breadcrumb entry. The last crumb of a page points at the page itself.
type Crumb struct {
	Name string
	Href string
}

// Link is an internal cross-link.
type Link struct {
	Href  string
	Label string
}

// Article is a related-article teaser.
type Article struct {
	Href    string
	Title   string
	Excerpt string
}

// Card is a service or feature card.
type Card struct {
	Icon        string
	Title       string
	Description string
}

// Step is one entry of an ordered process.
type Step struct {
	Step        int
	Title       string
	Description string
}

// CostRow is a pricing table row. Low and High are USD cents.
type CostRow struct {
	Item string
	Low  int64
	High int64
	Note string
}

// CTA is a call-to-action button.
type CTA struct {
	Label string
	Href  string
}

// Hero is the top-of-page banner.
type Hero struct {
	Eyebrow    string
	Heading    string
	Subheading string
	Image      string
	CTA        CTA
	Secondary  CTA
}

// Section groups one block of authored content. Any of the arrays may be empty.
type Section struct {
	ID      string
	Heading string
	Intro   string
	Cards   []Card
	Steps   []Step
	Costs   []CostRow
	Bullets []string
	Body    string // markdown
}

// Meta is the search-engine metadata of a page.
type Meta struct {
	Title       string
	Description string
	Keywords    []string
	OGImage     string
	NoIndex     bool
}

// ArticleInfo carries article-only schema details.
type ArticleInfo struct {
	Headline  string
	Author    string
	Published string // YYYY-MM-DD
	Modified  string
	Image     string
}

// Schemas selects which JSON-LD blocks a page emits.
type Schemas struct {
	LocalBusiness bool
	Service       bool
	FAQ           bool
	Breadcrumb    bool
	Article       bool
	ServiceName   string
	ServiceType   string
	ArticleInfo   *ArticleInfo
}

// FormEmbed configures the embedded lead form.
type FormEmbed struct {
	Heading string
	Height  int
}

// MapEmbed configures the embedded map.
type MapEmbed struct {
	City   string
	Height int
}

// Parallax is a full-bleed image band with overlaid copy.
type Parallax struct {
	Image   string
	Heading string
	Body    string
	CTA     CTA
}

// Page is the full authored content of one route.
type Page struct {
	Route         string
	Kind          Kind
	Lang          string
	City          string
	Meta          Meta
	Hero          Hero
	Sections      []Section
	FAQs          []FAQ
	Breadcrumbs   []Crumb
	InternalLinks []Link
	Related       []Article
	Nearby        []Link
	Schemas       Schemas
	Form          *FormEmbed
	Map           *MapEmbed
	Parallax      *Parallax
}

// Outbound returns every internal href the page links to through its data arrays,
// in declaration order. Breadcrumbs are included.
func (p Page) Outbound() []string {
	out := make([]string, 0, len(p.InternalLinks)+len(p.Related)+len(p.Nearby)+len(p.Breadcrumbs))
	for _, c := range p.Breadcrumbs {
		out = append(out, c.Href)
	}
	for _, l := range p.InternalLinks {
		out = append(out, l.Href)
	}
	for _, a := range p.Related {
		out = append(out, a.Href)
	}
	for _, l := range p.Nearby {
		out = append(out, l.Href)
	}
	if p.Hero.CTA.Href != "" {
		out = append(out, p.Hero.CTA.Href)
	}
	if p.Hero.Secondary.Href != "" {
		out = append(out, p.Hero.Secondary.Href)
	}
	if p.Parallax != nil && p.Parallax.CTA.Href != "" {
		out = append(out, p.Parallax.CTA.Href)
	}
	return out
}

// CardCount is the total number of cards across sections.
func (p Page) CardCount() int {
	n := 0
	for _, s := range p.Sections {
		n += len(s.Cards)
	}
	return n
}

// StepCount is the total number of process steps across sections.
func (p Page) StepCount() int {
	n := 0
	for _, s := range p.Sections {
		n += len(s.Steps)
	}
	return n
}

// CostRowCount is the total number of pricing rows across sections.
func (p Page) CostRowCount() int {
	n := 0
	for _, s := range p.Sections {
		n += len(s.Costs)
	}
	return n
}

// IsInternal reports whether href targets this site.
func IsInternal(href string) bool {
	href = strings.TrimSpace(href)
	if href == "" {
		return false
	}
	if strings.HasPrefix(href, "//") {
		return false
	}
	return strings.HasPrefix(href, "/")
}

// NormalizeRoute strips query and fragment, collapses a trailing slash, and returns
// "/" for the empty path. External hrefs are returned unchanged.
func NormalizeRoute(href string) string {
	href = strings.TrimSpace(href)
	if !IsInternal(href) {
		return href
	}
	if i := strings.IndexAny(href, "?#"); i != -1 {
		href = href[:i]
	}
	if len(href) > 1 {
		href = strings.TrimRight(href, "/")
	}
	if href == "" {
		return "/"
	}
	return href
}

// BulletCount is the total number of bullet items across sections.
func (p Page) BulletCount() int {
	n := 0
	for _, s := range p.Sections {
		n += len(s.Bullets)
	}
	return n
}
