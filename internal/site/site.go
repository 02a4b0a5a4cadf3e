// Package site indexes every renderable page by route and derives the link graph,
// sitemap and robots file from it.
package site

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"ridgeline.build/ridgeline-web/internal/cms"
	"ridgeline.build/ridgeline-web/internal/content"
	"ridgeline.build/ridgeline-web/internal/pages"
)

// ErrNotFound is returned by Lookup for unknown routes.
var ErrNotFound = errors.New("site: route not found")

// DuplicateRouteError reports two pages claiming the same route.
type DuplicateRouteError struct {
	Route string
}

func (e *DuplicateRouteError) Error() string {
	return fmt.Sprintf("site: duplicate route %s", e.Route)
}

// Site is an immutable, ordered set of pages.
type Site struct {
	pages []content.Page
	index map[string]int
}

// New indexes pages in the order given. Routes are normalized before indexing.
func New(pages ...content.Page) (*Site, error) {
	s := &Site{
		pages: make([]content.Page, 0, len(pages)),
		index: make(map[string]int, len(pages)),
	}
	for _, p := range pages {
		route := content.NormalizeRoute(p.Route)
		if !content.IsInternal(route) {
			return nil, fmt.Errorf("site: route %q must start with /", p.Route)
		}
		if _, dup := s.index[route]; dup {
			return nil, &DuplicateRouteError{Route: route}
		}
		p.Route = route
		s.index[route] = len(s.pages)
		s.pages = append(s.pages, p)
	}
	return s, nil
}

// Load builds the site from the Go-authored registry followed by every markdown page
// available for lang. A markdown page may not take over a registry route.
func Load(ctx context.Context, client *cms.Client, lang string) (*Site, error) {
	all := pages.Registry()
	if client != nil {
		extra, err := client.Pages(ctx, lang)
		if err != nil {
			return nil, fmt.Errorf("site: load content pages: %w", err)
		}
		all = append(all, extra...)
	}
	return New(all...)
}

// Pages returns the pages in registration order.
func (s *Site) Pages() []content.Page {
	return append([]content.Page(nil), s.pages...)
}

// Len is the number of pages.
func (s *Site) Len() int { return len(s.pages) }

// Routes returns every route in registration order.
func (s *Site) Routes() []string {
	out := make([]string, 0, len(s.pages))
	for _, p := range s.pages {
		out = append(out, p.Route)
	}
	return out
}

// Has reports whether href resolves to a page. Query and fragment are ignored.
func (s *Site) Has(href string) bool {
	_, ok := s.index[content.NormalizeRoute(href)]
	return ok
}

// Lookup returns the page served at route.
func (s *Site) Lookup(route string) (content.Page, error) {
	i, ok := s.index[content.NormalizeRoute(route)]
	if !ok {
		return content.Page{}, fmt.Errorf("%w: %s", ErrNotFound, route)
	}
	return s.pages[i], nil
}

// Graph holds internal link edges between routes. Self links are dropped and each
// edge is recorded once.
type Graph struct {
	Out map[string][]string
	In  map[string][]string
}

// LinkGraph builds the graph from each page's authored links and breadcrumbs.
// Links to routes that do not exist are kept as outbound edges so callers can find them.
func (s *Site) LinkGraph() Graph {
	g := Graph{Out: map[string][]string{}, In: map[string][]string{}}
	for _, p := range s.pages {
		seen := map[string]bool{}
		for _, href := range p.Outbound() {
			if !content.IsInternal(href) {
				continue
			}
			to := content.NormalizeRoute(href)
			if to == p.Route || seen[to] {
				continue
			}
			seen[to] = true
			g.Out[p.Route] = append(g.Out[p.Route], to)
			g.In[to] = append(g.In[to], p.Route)
		}
	}
	return g
}

// Orphans lists routes no other page links to, home excluded, sorted.
func (s *Site) Orphans() []string {
	g := s.LinkGraph()
	var out []string
	for _, p := range s.pages {
		if p.Route == "/" {
			continue
		}
		if len(g.In[p.Route]) == 0 {
			out = append(out, p.Route)
		}
	}
	sort.Strings(out)
	return out
}
