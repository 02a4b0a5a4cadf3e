package i18n

import (
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"en.json": {Data: []byte(`{"cta.estimate":"Get a Free Estimate","faq.heading":"Frequently Asked Questions"}`)},
		"es.json": {Data: []byte(`{"cta.estimate":"Solicite un Presupuesto Gratis"}`)},
	}
}

func TestResolveHonorsQValues(t *testing.T) {
	b, err := Load(testFS(), "en", []string{"en", "es"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := b.Resolve("en;q=0.8, es;q=0.9"); got != "es" {
		t.Fatalf("expected es, got %s", got)
	}
	if got := b.Resolve("es-MX,es;q=0.9"); got != "es" {
		t.Fatalf("expected es for regional tag, got %s", got)
	}
	if got := b.Resolve("fr-FR"); got != "en" {
		t.Fatalf("expected fallback en, got %s", got)
	}
	if got := b.Resolve(""); got != "en" {
		t.Fatalf("expected fallback for empty header, got %s", got)
	}
}

func TestTFallsBackToDefaultThenKey(t *testing.T) {
	b, err := Load(testFS(), "en", []string{"en", "es"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := b.T("es", "cta.estimate"); got != "Solicite un Presupuesto Gratis" {
		t.Fatalf("unexpected es string %q", got)
	}
	if got := b.T("es", "faq.heading"); got != "Frequently Asked Questions" {
		t.Fatalf("expected fallback string, got %q", got)
	}
	if got := b.T("es", "missing.key"); got != "missing.key" {
		t.Fatalf("expected key echo, got %q", got)
	}
}

func TestLoadRequiresFallbackFile(t *testing.T) {
	fsys := fstest.MapFS{"es.json": {Data: []byte(`{}`)}}
	if _, err := Load(fsys, "en", []string{"en", "es"}); err == nil {
		t.Fatalf("expected error when fallback locale is missing")
	}
	b, err := Load(fstest.MapFS{"en.json": {Data: []byte(`{}`)}}, "en", []string{"en", "es"})
	if err != nil {
		t.Fatalf("missing non-default locale should be tolerated: %v", err)
	}
	if !b.IsSupported("es") {
		t.Fatalf("es should still be supported")
	}
	if got := b.Supported(); len(got) != 2 || got[0] != "en" || got[1] != "es" {
		t.Fatalf("unexpected supported list %v", got)
	}
}
