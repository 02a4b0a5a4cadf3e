package pages

import (
	"strings"
	"testing"
	"unicode/utf8"

	"ridgeline.build/ridgeline-web/internal/content"
)

func TestRegistryRoutesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Registry() {
		if seen[p.Route] {
			t.Fatalf("duplicate route %s", p.Route)
		}
		seen[p.Route] = true
	}
	for _, want := range []string{"/", "/kitchen-remodeling", "/service-areas", "/locations/pasadena", "/blog", "/blog/adu-permits-explained"} {
		if !seen[want] {
			t.Fatalf("registry is missing %s", want)
		}
	}
}

func TestEveryFAQHasQuestionAndAnswer(t *testing.T) {
	for _, p := range Registry() {
		for i, f := range p.FAQs {
			if strings.TrimSpace(f.Question) == "" || strings.TrimSpace(f.Answer) == "" {
				t.Errorf("%s: faq %d is incomplete: %+v", p.Route, i, f)
			}
		}
	}
}

func TestLastBreadcrumbIsThePage(t *testing.T) {
	for _, p := range Registry() {
		if len(p.Breadcrumbs) == 0 {
			t.Errorf("%s: no breadcrumbs", p.Route)
			continue
		}
		if last := p.Breadcrumbs[len(p.Breadcrumbs)-1]; last.Href != p.Route {
			t.Errorf("%s: last breadcrumb href is %s", p.Route, last.Href)
		}
	}
}

func TestMetadataWithinBudgets(t *testing.T) {
	for _, p := range Registry() {
		if n := utf8.RuneCountInString(p.Meta.Title); n == 0 || n > 60 {
			t.Errorf("%s: title length %d: %q", p.Route, n, p.Meta.Title)
		}
		if n := utf8.RuneCountInString(p.Meta.Description); n == 0 || n > 160 {
			t.Errorf("%s: description length %d", p.Route, n)
		}
	}
}

func TestStepsAreNumberedInOrder(t *testing.T) {
	for _, p := range Registry() {
		for _, s := range p.Sections {
			for i, step := range s.Steps {
				if step.Step != i+1 {
					t.Errorf("%s/%s: step %d numbered %d", p.Route, s.ID, i, step.Step)
				}
			}
		}
	}
}

func TestCostRowsHaveOrderedBounds(t *testing.T) {
	for _, p := range Registry() {
		for _, s := range p.Sections {
			for _, row := range s.Costs {
				if row.High != 0 && row.High < row.Low {
					t.Errorf("%s: %q high below low", p.Route, row.Item)
				}
			}
		}
	}
}

func TestLocationNearbyLinksAreCityPages(t *testing.T) {
	for _, p := range Locations() {
		if p.Kind != content.KindLocation || p.City == "" || p.Map == nil {
			t.Fatalf("%s: incomplete location page", p.Route)
		}
		for _, l := range p.Nearby {
			if !strings.HasPrefix(l.Href, "/locations/") || l.Href == p.Route {
				t.Errorf("%s: unexpected nearby link %s", p.Route, l.Href)
			}
		}
	}
}

func TestServiceLinksSkipCurrentRoute(t *testing.T) {
	for _, l := range serviceLinks("/room-additions") {
		if l.Href == "/room-additions" {
			t.Fatalf("serviceLinks kept the current route")
		}
	}
	if got := len(serviceLinks("")); got != 6 {
		t.Fatalf("expected 6 links, got %d", got)
	}
}

func TestJoinNames(t *testing.T) {
	tests := map[string][]string{
		"":            nil,
		"A":           {"A"},
		"A and B":     {"A", "B"},
		"A, B, and C": {"A", "B", "C"},
	}
	for want, in := range tests {
		if got := joinNames(in); got != want {
			t.Errorf("joinNames(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestArticleRelatedResolvesSlugs(t *testing.T) {
	for _, p := range Articles() {
		if p.Schemas.ArticleInfo == nil || p.Schemas.ArticleInfo.Published == "" {
			t.Fatalf("%s: article info missing", p.Route)
		}
		for _, r := range p.Related {
			if r.Title == "" || !strings.HasPrefix(r.Href, "/blog/") {
				t.Errorf("%s: bad related article %+v", p.Route, r)
			}
		}
	}
}
