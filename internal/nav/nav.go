package nav

import (
	"path"
	"strings"

	"ridgeline.build/ridgeline-web/internal/content"
)

// Item represents a top-level navigation item.
type Item struct {
	Path     string // e.g. "/kitchen-remodeling"
	LabelKey string // i18n key, e.g. "nav.kitchens"
	Label    string // breadcrumb label when the section is not a page of its own
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href     string
	LabelKey string
	Active   bool
}

// Main is the primary navigation definition.
var Main = []Item{
	{Path: "/kitchen-remodeling", LabelKey: "nav.kitchens", Label: "Kitchen Remodeling"},
	{Path: "/bathroom-remodeling", LabelKey: "nav.bathrooms", Label: "Bathroom Remodeling"},
	{Path: "/room-additions", LabelKey: "nav.additions", Label: "Room Additions"},
	{Path: "/adu-construction", LabelKey: "nav.adu", Label: "ADU Construction"},
	{Path: "/service-areas", LabelKey: "nav.areas", Label: "Service Areas"},
	{Path: "/blog", LabelKey: "nav.blog", Label: "Blog"},
}

// sections maps path prefixes that are not in Main to breadcrumb labels.
var sections = map[string]string{
	"/locations": "Service Areas",
}

// sectionHref redirects section crumbs without an index page to their hub.
var sectionHref = map[string]string{
	"/locations": "/service-areas",
}

// Build renders navigation items with active state given the current path.
func Build(currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:     it.Path,
			LabelKey: it.LabelKey,
			Active:   isActive(it.Path, currentPath),
		})
	}
	return items
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	// match exact or prefix boundary: "/blog" or "/blog/..."
	if currentPath == itemPath {
		return true
	}
	return strings.HasPrefix(currentPath, itemPath+"/")
}

// Breadcrumbs derives a breadcrumb trail from a path for pages that do not author
// their own. The last crumb is the page itself and uses title when non-empty.
// Rules:
// - Always start with Home
// - Known top-level sections use their nav label
// - Deeper segments use a prettified segment label
func Breadcrumbs(currentPath, title string) []content.Crumb {
	crumbs := []content.Crumb{{Name: "Home", Href: "/"}}
	if currentPath == "" || currentPath == "/" {
		return crumbs
	}
	clean := path.Clean("/" + strings.TrimPrefix(currentPath, "/"))
	parts := strings.Split(strings.TrimPrefix(clean, "/"), "/")

	href := ""
	for i, seg := range parts {
		href += "/" + seg
		last := i == len(parts)-1
		name := titleFromSegment(seg)
		target := href
		if i == 0 {
			if label := sectionLabel(href); label != "" {
				name = label
			}
			if alt, ok := sectionHref[href]; ok && !last {
				target = alt
			}
		}
		if last && strings.TrimSpace(title) != "" {
			name = title
		}
		crumbs = append(crumbs, content.Crumb{Name: name, Href: target})
	}
	return crumbs
}

func sectionLabel(top string) string {
	for _, it := range Main {
		if it.Path == top {
			return it.Label
		}
	}
	return sections[top]
}

func titleFromSegment(seg string) string {
	if seg == "" {
		return seg
	}
	words := strings.FieldsFunc(seg, func(r rune) bool { return r == '-' || r == '_' })
	for i, w := range words {
		r := []rune(w)
		r[0] = toUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

func toUpper(r rune) rune {
	// ASCII only is sufficient for slugs here
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
