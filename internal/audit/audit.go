// Package audit checks every page for the structural and content rules a published
// landing page must satisfy.
package audit

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"ridgeline.build/ridgeline-web/internal/content"
	"ridgeline.build/ridgeline-web/internal/render"
	"ridgeline.build/ridgeline-web/internal/site"
)

// Check names one audit rule.
type Check string

const (
	CheckFAQ         Check = "faq"
	CheckBreadcrumb  Check = "breadcrumb"
	CheckLinks       Check = "links"
	CheckCardinality Check = "cardinality"
	CheckMeta        Check = "meta"
	CheckRendered    Check = "rendered-links"
	CheckOrphan      Check = "orphan"
	CheckRender      Check = "render"
	CheckAnchor      Check = "anchors"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one rule violation on one route.
type Issue struct {
	Route    string   `json:"route"`
	Check    Check    `json:"check"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Report collects the issues of one audit run, sorted by route then check.
type Report struct {
	Pages  int     `json:"pages"`
	Issues []Issue `json:"issues"`
}

// Errors returns the error-severity issues.
func (r Report) Errors() []Issue {
	var out []Issue
	for _, is := range r.Issues {
		if is.Severity == SeverityError {
			out = append(out, is)
		}
	}
	return out
}

// Err returns a *ValidationError when any error-severity issue exists.
func (r Report) Err() error {
	errs := r.Errors()
	if len(errs) == 0 {
		return nil
	}
	seen := map[string]bool{}
	var routes []string
	for _, is := range errs {
		if !seen[is.Route] {
			seen[is.Route] = true
			routes = append(routes, is.Route)
		}
	}
	return &ValidationError{routes: routes, issues: len(errs)}
}

// ValidationError lists the routes that failed the audit.
type ValidationError struct {
	routes []string
	issues int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("audit failed: %d issue(s) on [%s]", e.issues, strings.Join(e.routes, ", "))
}

// Routes returns a copy of the failing routes.
func (e *ValidationError) Routes() []string {
	out := make([]string, len(e.routes))
	copy(out, e.routes)
	return out
}

// Options tunes an audit run. Zero values use the defaults.
type Options struct {
	MaxTitle       int
	MaxDescription int
	Concurrency    int
}

func (o Options) withDefaults() Options {
	if o.MaxTitle <= 0 {
		o.MaxTitle = 60
	}
	if o.MaxDescription <= 0 {
		o.MaxDescription = 160
	}
	if o.Concurrency <= 0 {
		o.Concurrency = 4
	}
	return o
}

// Renderer is the part of render.Renderer the audit needs.
type Renderer interface {
	Render(ctx context.Context, p content.Page) (render.Document, error)
}

// Run audits every page of s. Render failures are reported as issues; only context
// cancellation aborts the run.
func Run(ctx context.Context, s *site.Site, r Renderer, opts Options) (Report, error) {
	opts = opts.withDefaults()
	pages := s.Pages()

	var (
		mu      sync.Mutex
		issues  []Issue
		inbound = map[string]bool{}
	)
	add := func(found []Issue, targets []string) {
		mu.Lock()
		defer mu.Unlock()
		issues = append(issues, found...)
		for _, t := range targets {
			inbound[t] = true
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)
	for _, p := range pages {
		p := p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			found := checkContent(p, s, opts)
			doc, err := r.Render(gctx, p)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				found = append(found, issue(p.Route, CheckRender, SeverityError, "render failed: %v", err))
				add(found, nil)
				return nil
			}
			rendered, targets := checkRendered(p, doc.HTML, s)
			add(append(found, rendered...), targets)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	for _, p := range pages {
		if p.Route != "/" && !inbound[p.Route] {
			issues = append(issues, issue(p.Route, CheckOrphan, SeverityWarning, "no rendered page links here"))
		}
	}

	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Route != issues[j].Route {
			return issues[i].Route < issues[j].Route
		}
		return issues[i].Check < issues[j].Check
	})
	return Report{Pages: len(pages), Issues: issues}, nil
}

func issue(route string, c Check, sev Severity, format string, args ...any) Issue {
	return Issue{Route: route, Check: c, Severity: sev, Message: fmt.Sprintf(format, args...)}
}

// checkContent applies the rules that only need the page data.
func checkContent(p content.Page, s *site.Site, opts Options) []Issue {
	var out []Issue

	for i, f := range p.FAQs {
		if strings.TrimSpace(f.Question) == "" || strings.TrimSpace(f.Answer) == "" {
			out = append(out, issue(p.Route, CheckFAQ, SeverityError, "faq %d has an empty question or answer", i+1))
		}
	}

	if n := len(p.Breadcrumbs); n == 0 {
		out = append(out, issue(p.Route, CheckBreadcrumb, SeverityError, "no breadcrumbs"))
	} else if last := content.NormalizeRoute(p.Breadcrumbs[n-1].Href); last != p.Route {
		out = append(out, issue(p.Route, CheckBreadcrumb, SeverityError, "last breadcrumb points to %s", last))
	}

	for _, href := range p.Outbound() {
		if content.IsInternal(href) && !s.Has(href) {
			out = append(out, issue(p.Route, CheckLinks, SeverityError, "link to missing route %s", href))
		}
	}

	title := strings.TrimSpace(p.Meta.Title)
	switch n := utf8.RuneCountInString(title); {
	case n == 0:
		out = append(out, issue(p.Route, CheckMeta, SeverityError, "missing title"))
	case n > opts.MaxTitle:
		out = append(out, issue(p.Route, CheckMeta, SeverityError, "title is %d characters, limit %d", n, opts.MaxTitle))
	}
	desc := strings.TrimSpace(p.Meta.Description)
	switch n := utf8.RuneCountInString(desc); {
	case n == 0:
		out = append(out, issue(p.Route, CheckMeta, SeverityError, "missing description"))
	case n > opts.MaxDescription:
		out = append(out, issue(p.Route, CheckMeta, SeverityError, "description is %d characters, limit %d", n, opts.MaxDescription))
	}
	return out
}

type cardinality struct {
	marker string
	want   int
}

// checkRendered compares the rendered markup with the page data and returns the
// internal routes the markup links to.
func checkRendered(p content.Page, html []byte, s *site.Site) ([]Issue, []string) {
	var out []Issue
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return []Issue{issue(p.Route, CheckRender, SeverityError, "parse rendered html: %v", err)}, nil
	}

	for _, c := range []cardinality{
		{"data-faq-item", len(p.FAQs)},
		{"data-crumb", len(p.Breadcrumbs)},
		{"data-internal-link", len(p.InternalLinks)},
		{"data-related-article", len(p.Related)},
		{"data-nearby", len(p.Nearby)},
		{"data-card", p.CardCount()},
		{"data-step", p.StepCount()},
		{"data-cost-row", p.CostRowCount()},
		{"data-bullet", p.BulletCount()},
	} {
		if got := doc.Find("[" + c.marker + "]").Length(); got != c.want {
			out = append(out, issue(p.Route, CheckCardinality, SeverityError, "%s: rendered %d, want %d", c.marker, got, c.want))
		}
	}
	if got := doc.Find("h1").Length(); got != 1 {
		out = append(out, issue(p.Route, CheckCardinality, SeverityWarning, "page has %d h1 elements", got))
	}

	out = append(out, checkAnchors(p.Route, doc)...)

	links, err := site.ExtractLinks(html)
	if err != nil {
		return append(out, issue(p.Route, CheckRendered, SeverityError, "extract links: %v", err)), nil
	}
	var targets []string
	seen := map[string]bool{}
	for _, href := range links {
		if !content.IsInternal(href) {
			continue
		}
		route := content.NormalizeRoute(href)
		if seen[route] {
			continue
		}
		seen[route] = true
		if !s.Has(route) {
			out = append(out, issue(p.Route, CheckRendered, SeverityError, "rendered link to missing route %s", href))
			continue
		}
		if route != p.Route {
			targets = append(targets, route)
		}
	}
	return out, targets
}

// checkAnchors reports in-page links whose fragment names no element in the
// same document.
func checkAnchors(route string, doc *goquery.Document) []Issue {
	ids := map[string]bool{}
	doc.Find("[id]").Each(func(_ int, sel *goquery.Selection) {
		ids[sel.AttrOr("id", "")] = true
	})
	var out []Issue
	seen := map[string]bool{}
	doc.Find(`a[href^="#"]`).Each(func(_ int, sel *goquery.Selection) {
		frag := strings.TrimPrefix(sel.AttrOr("href", ""), "#")
		if frag == "" || seen[frag] {
			return
		}
		seen[frag] = true
		if !ids[frag] {
			out = append(out, issue(route, CheckAnchor, SeverityError, "link to #%s has no matching id", frag))
		}
	})
	return out
}
