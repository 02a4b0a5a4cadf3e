package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	ridgeline "ridgeline.build/ridgeline-web"
	"ridgeline.build/ridgeline-web/internal/business"
	"ridgeline.build/ridgeline-web/internal/cms"
	"ridgeline.build/ridgeline-web/internal/content"
	"ridgeline.build/ridgeline-web/internal/i18n"
	"ridgeline.build/ridgeline-web/internal/render"
	"ridgeline.build/ridgeline-web/internal/site"
)

func newRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	tmpl, err := ridgeline.TemplatesFS()
	require.NoError(t, err)
	locales, err := ridgeline.LocalesFS()
	require.NoError(t, err)
	bundle, err := i18n.Load(locales, "en", nil)
	require.NoError(t, err)
	r, err := render.New(render.Options{
		Templates: tmpl,
		BaseURL:   "https://www.example.com",
		Business:  business.Default,
		Bundle:    bundle,
		Now:       func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, err)
	return r
}

func TestShippedSitePassesAudit(t *testing.T) {
	fsys, err := ridgeline.ContentFS()
	require.NoError(t, err)
	cms.ResetCache()
	s, err := site.Load(context.Background(), cms.NewClient(fsys, "", nil), "en")
	require.NoError(t, err)

	report, err := Run(context.Background(), s, newRenderer(t), Options{Concurrency: 3})
	require.NoError(t, err)
	require.Equal(t, s.Len(), report.Pages)
	require.Empty(t, report.Errors(), "%+v", report.Issues)
	require.NoError(t, report.Err())
}

func brokenPage() content.Page {
	return content.Page{
		Route: "/broken",
		Kind:  content.KindService,
		Meta: content.Meta{
			Title:       "An extremely long title that keeps going well past the sixty character budget",
			Description: "",
		},
		Hero:          content.Hero{Heading: "Broken"},
		FAQs:          []content.FAQ{{Question: "Why?", Answer: " "}},
		Breadcrumbs:   []content.Crumb{{Name: "Home", Href: "/"}, {Name: "Wrong", Href: "/elsewhere"}},
		InternalLinks: []content.Link{{Href: "/nowhere#faq", Label: "Nowhere"}, {Href: "https://example.org", Label: "External"}},
	}
}

func homePage() content.Page {
	return content.Page{
		Route:         "/",
		Kind:          content.KindHome,
		Meta:          content.Meta{Title: "Home", Description: "Home page"},
		Hero:          content.Hero{Heading: "Home"},
		Breadcrumbs:   []content.Crumb{{Name: "Home", Href: "/"}},
		InternalLinks: []content.Link{{Href: "/broken", Label: "Broken"}},
	}
}

func checksFor(issues []Issue, route string) map[Check]int {
	out := map[Check]int{}
	for _, is := range issues {
		if is.Route == route {
			out[is.Check]++
		}
	}
	return out
}

func TestRunReportsContentViolations(t *testing.T) {
	s, err := site.New(homePage(), brokenPage())
	require.NoError(t, err)

	report, err := Run(context.Background(), s, newRenderer(t), Options{})
	require.NoError(t, err)

	got := checksFor(report.Issues, "/broken")
	require.Equal(t, 1, got[CheckFAQ])
	require.Equal(t, 1, got[CheckBreadcrumb])
	require.Equal(t, 2, got[CheckLinks])
	require.Equal(t, 2, got[CheckMeta])
	require.Zero(t, got[CheckCardinality])
	require.Zero(t, got[CheckOrphan])

	err = report.Err()
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	require.Contains(t, vErr.Routes(), "/broken")
}

func TestOrphanIsWarningOnly(t *testing.T) {
	lonely := homePage()
	lonely.Route = "/lonely"
	lonely.Kind = content.KindContent
	lonely.Breadcrumbs = []content.Crumb{{Name: "Home", Href: "/"}, {Name: "Lonely", Href: "/lonely"}}
	lonely.InternalLinks = nil
	home := homePage()
	home.InternalLinks = nil

	s, err := site.New(home, lonely)
	require.NoError(t, err)
	report, err := Run(context.Background(), s, fakeRenderer{html: `<html><body><h1>x</h1><nav><span data-crumb></span><span data-crumb></span></nav></body></html>`}, Options{})
	require.NoError(t, err)

	var orphans []Issue
	for _, is := range report.Issues {
		if is.Check == CheckOrphan {
			orphans = append(orphans, is)
		}
	}
	require.Len(t, orphans, 1)
	require.Equal(t, "/lonely", orphans[0].Route)
	require.Equal(t, SeverityWarning, orphans[0].Severity)
}

type fakeRenderer struct {
	html string
	err  error
}

func (f fakeRenderer) Render(_ context.Context, p content.Page) (render.Document, error) {
	if f.err != nil {
		return render.Document{}, f.err
	}
	return render.Document{Route: p.Route, HTML: []byte(f.html)}, nil
}

func TestCardinalityMismatchIsReported(t *testing.T) {
	p := homePage()
	p.InternalLinks = nil
	p.FAQs = []content.FAQ{{Question: "Q", Answer: "A"}, {Question: "Q2", Answer: "A2"}}
	s, err := site.New(p)
	require.NoError(t, err)

	html := `<html><body><h1>x</h1><span data-crumb></span><details data-faq-item></details><a href="/missing">m</a></body></html>`
	report, err := Run(context.Background(), s, fakeRenderer{html: html}, Options{})
	require.NoError(t, err)

	got := checksFor(report.Issues, "/")
	require.Equal(t, 1, got[CheckCardinality])
	require.Equal(t, 1, got[CheckRendered])
}

func TestRenderFailureBecomesIssue(t *testing.T) {
	s, err := site.New(homePage(), brokenPage())
	require.NoError(t, err)
	report, err := Run(context.Background(), s, fakeRenderer{err: errors.New("boom")}, Options{})
	require.NoError(t, err)
	require.Equal(t, 1, checksFor(report.Issues, "/")[CheckRender])
}

func TestRunStopsOnCanceledContext(t *testing.T) {
	s, err := site.New(homePage(), brokenPage())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Run(ctx, s, fakeRenderer{}, Options{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestDanglingFragmentLinkIsReported(t *testing.T) {
	p := homePage()
	p.InternalLinks = nil
	s, err := site.New(p)
	require.NoError(t, err)

	html := `<html><body><a href="#main">skip</a><main id="main"><h1>x</h1><span data-crumb></span>` +
		`<a href="#estimate">estimate</a><a href="#estimate">again</a><a href="#">top</a></main></body></html>`
	report, err := Run(context.Background(), s, fakeRenderer{html: html}, Options{})
	require.NoError(t, err)

	var anchors []Issue
	for _, is := range report.Issues {
		if is.Check == CheckAnchor {
			anchors = append(anchors, is)
		}
	}
	require.Len(t, anchors, 1)
	require.Equal(t, SeverityError, anchors[0].Severity)
	require.Contains(t, anchors[0].Message, "#estimate")
}

func TestBulletCountMismatchIsReported(t *testing.T) {
	p := homePage()
	p.InternalLinks = nil
	p.Sections = []content.Section{{ID: "why", Bullets: []string{"Licensed", "Insured", "Local"}}}
	s, err := site.New(p)
	require.NoError(t, err)

	html := `<html><body><h1>x</h1><span data-crumb></span><ul><li data-bullet>Licensed</li><li data-bullet>Insured</li></ul></body></html>`
	report, err := Run(context.Background(), s, fakeRenderer{html: html}, Options{})
	require.NoError(t, err)

	var msgs []string
	for _, is := range report.Issues {
		if is.Check == CheckCardinality {
			msgs = append(msgs, is.Message)
		}
	}
	require.Equal(t, []string{"data-bullet: rendered 2, want 3"}, msgs)
}
