package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := Load(context.Background(), WithEnvMap(map[string]string{}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Site.BaseURL != defaultBaseURL {
		t.Errorf("unexpected base url %s", cfg.Site.BaseURL)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("unexpected read timeout: %s", cfg.Server.ReadTimeout)
	}
	if !reflect.DeepEqual(cfg.Site.Languages, []string{"en", "es"}) {
		t.Errorf("unexpected languages %v", cfg.Site.Languages)
	}
	if cfg.Site.DefaultLang != "en" {
		t.Errorf("unexpected default lang %s", cfg.Site.DefaultLang)
	}
	if cfg.Export.Dir != "dist" || cfg.Export.Concurrency != 8 {
		t.Errorf("unexpected export config %+v", cfg.Export)
	}
	if cfg.Audit.MaxTitle != 60 || cfg.Audit.MaxDescription != 160 {
		t.Errorf("unexpected audit limits %+v", cfg.Audit)
	}
	if cfg.Server.DevMode {
		t.Errorf("dev mode should default to off")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("unexpected log level %s", cfg.Logging.Level)
	}
}

func TestLoadWithOverrides(t *testing.T) {
	env := map[string]string{
		"SITE_BASE_URL":           "https://staging.example.com/",
		"SITE_PORT":               "9090",
		"PORT":                    "7070",
		"SITE_READ_TIMEOUT":       "20s",
		"SITE_LANGUAGES":          "es, EN",
		"SITE_DEFAULT_LANG":       "es",
		"SITE_DEV":                "yes",
		"SITE_GA_MEASUREMENT_ID":  "G-TEST",
		"SITE_ANALYTICS_DEBUG":    "1",
		"SITE_EXPORT_CONCURRENCY": "2",
		"SITE_PUBLISH_BUCKET":     "ridgeline-site",
		"SITE_PUBLISH_PREFIX":     "/v2/",
		"SITE_PUBLISH_ENDPOINT":   "http://localhost:4443/storage/v1/",
		"SITE_FORM_URL":           "https://forms.example.com/widget/abc",
		"LOG_LEVEL":               "DEBUG",
	}
	cfg, err := Load(context.Background(), WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Site.BaseURL != "https://staging.example.com" {
		t.Errorf("trailing slash not trimmed: %s", cfg.Site.BaseURL)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("SITE_PORT should win over PORT, got %s", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 20*time.Second {
		t.Errorf("unexpected read timeout %s", cfg.Server.ReadTimeout)
	}
	if !reflect.DeepEqual(cfg.Site.Languages, []string{"es", "en"}) {
		t.Errorf("unexpected languages %v", cfg.Site.Languages)
	}
	if !cfg.Server.DevMode || !cfg.Analytics.Debug || cfg.Analytics.GA4MeasurementID != "G-TEST" {
		t.Errorf("unexpected flags %+v %+v", cfg.Server, cfg.Analytics)
	}
	if cfg.Export.Concurrency != 2 {
		t.Errorf("unexpected concurrency %d", cfg.Export.Concurrency)
	}
	if cfg.Publish.Bucket != "ridgeline-site" || cfg.Publish.Prefix != "v2" || cfg.Publish.Endpoint == "" {
		t.Errorf("unexpected publish config %+v", cfg.Publish)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("unexpected log level %s", cfg.Logging.Level)
	}
}

func TestLoadFallsBackToCloudRunPort(t *testing.T) {
	cfg, err := Load(context.Background(), WithEnvMap(map[string]string{"PORT": "7070"}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != "7070" {
		t.Errorf("expected PORT fallback, got %s", cfg.Server.Port)
	}
}

func TestLoadValidationError(t *testing.T) {
	env := map[string]string{
		"SITE_BASE_URL":           "ftp://example.com",
		"SITE_DEFAULT_LANG":       "fr",
		"SITE_EXPORT_CONCURRENCY": "0",
		"SITE_FORM_URL":           "http://insecure.example.com",
		"LOG_LEVEL":               "verbose",
	}
	_, err := Load(context.Background(), WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	if err == nil {
		t.Fatal("expected validation error")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	want := []string{"Site.BaseURL", "Site.DefaultLang", "Site.FormURL", "Export.Concurrency", "Logging.Level"}
	if !reflect.DeepEqual(vErr.Fields(), want) {
		t.Errorf("unexpected fields %v", vErr.Fields())
	}
}

func TestLoadReadsDotEnvWithLowestPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	contents := "# local overrides\nexport SITE_PORT=6060\nSITE_NAME=\"Ridgeline Dev\"\nSITE_EXPORT_DIR=out\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	env := map[string]string{"SITE_EXPORT_DIR": "public-out"}
	cfg, err := Load(context.Background(), WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(path))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != "6060" {
		t.Errorf("expected port from .env, got %s", cfg.Server.Port)
	}
	if cfg.Site.Name != "Ridgeline Dev" {
		t.Errorf("expected quoted name trimmed, got %q", cfg.Site.Name)
	}
	if cfg.Export.Dir != "public-out" {
		t.Errorf("env map should override .env, got %s", cfg.Export.Dir)
	}
}

func TestLoadMissingDotEnvIsIgnored(t *testing.T) {
	_, err := Load(context.Background(), WithoutSystemEnv(), WithEnvFile(filepath.Join(t.TempDir(), "missing.env")))
	if err != nil {
		t.Fatalf("missing .env should be ignored: %v", err)
	}
}
