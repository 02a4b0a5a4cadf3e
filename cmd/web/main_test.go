package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"ridgeline.build/ridgeline-web/internal/config"
	"ridgeline.build/ridgeline-web/internal/di"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg, err := config.Load(context.Background(),
		config.WithoutSystemEnv(),
		config.WithEnvFile(""),
		config.WithEnvMap(map[string]string{"SITE_BASE_URL": "https://www.example.com"}),
	)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	c, err := di.NewContainer(context.Background(), cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("build container: %v", err)
	}
	h, err := newRouter(c, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return h
}

func get(t *testing.T, h http.Handler, target string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthzOK(t *testing.T) {
	rec := get(t, newTestRouter(t), "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body=%s", rec.Code, rec.Body.String())
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "ok" {
		t.Fatalf("expected body 'ok', got %q", got)
	}
}

func TestPageRoutesRender(t *testing.T) {
	srv := newTestRouter(t)
	for _, route := range []string{"/", "/kitchen-remodeling", "/adu-construction", "/locations/pasadena", "/blog/adu-permits-explained", "/about"} {
		rec := get(t, srv, route, map[string]string{"Accept-Language": "en"})
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", route, rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Fatalf("%s: unexpected content type %q", route, ct)
		}
		doc, err := goquery.NewDocumentFromReader(rec.Body)
		if err != nil {
			t.Fatalf("%s: parse: %v", route, err)
		}
		if doc.Find(`script[type="application/ld+json"]`).Length() == 0 {
			t.Fatalf("%s: expected JSON-LD", route)
		}
		if doc.Find("nav.breadcrumb [aria-current=page]").Length() != 1 {
			t.Fatalf("%s: expected one current breadcrumb", route)
		}
	}
}

func TestUnknownRouteRendersNotFoundPage(t *testing.T) {
	rec := get(t, newTestRouter(t), "/no-such-page", map[string]string{"Accept-Language": "en"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Page Not Found") {
		t.Fatalf("expected not-found copy in body; body=%s", body)
	}
	if !strings.Contains(body, `content="noindex`) {
		t.Fatalf("expected noindex on 404 page")
	}
}

func TestSitemapAndRobots(t *testing.T) {
	srv := newTestRouter(t)
	rec := get(t, srv, "/sitemap.xml", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("sitemap: expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<loc>https://www.example.com/kitchen-remodeling</loc>") {
		t.Fatalf("sitemap missing kitchen page: %s", rec.Body.String())
	}
	rec = get(t, srv, "/robots.txt", nil)
	if !strings.Contains(rec.Body.String(), "Sitemap: https://www.example.com/sitemap.xml") {
		t.Fatalf("robots missing sitemap line: %s", rec.Body.String())
	}
}

func TestAssetsHaveCacheHeaders(t *testing.T) {
	rec := get(t, newTestRouter(t), "/assets/css/site.css", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Header().Get("Cache-Control"), "max-age=") {
		t.Fatalf("expected cache-control, got %q", rec.Header().Get("Cache-Control"))
	}
	if rec.Header().Get("ETag") == "" {
		t.Fatalf("expected ETag")
	}
}

func TestContentPageFollowsRequestLanguage(t *testing.T) {
	srv := newTestRouter(t)
	rec := get(t, srv, "/about?hl=es", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `<html lang="es">`) {
		t.Fatalf("expected spanish document")
	}
	if !strings.Contains(body, "Sobre Ridgeline Builders") {
		t.Fatalf("expected spanish heading")
	}
	if got := rec.Header().Get("Content-Language"); got != "es" {
		t.Fatalf("expected Content-Language es, got %q", got)
	}
	vary := strings.Join(rec.Header().Values("Vary"), ",")
	if !strings.Contains(vary, "Accept-Language") || !strings.Contains(vary, "Cookie") {
		t.Fatalf("expected Vary on Accept-Language and Cookie, got %q", vary)
	}
	var cookie bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == "hl" && c.Value == "es" {
			cookie = true
		}
	}
	if !cookie {
		t.Fatalf("expected hl cookie to be set")
	}
}

func TestUntranslatedPageKeepsDefaultLanguage(t *testing.T) {
	rec := get(t, newTestRouter(t), "/financing", map[string]string{"Accept-Language": "es"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `<html lang="en">`) {
		t.Fatalf("expected english document for untranslated page")
	}
}
