package config

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	defaultEnvFile           = ".env"
	defaultBaseURL           = "https://www.ridgelinebuilders.com"
	defaultSiteName          = "Ridgeline Builders"
	defaultLang              = "en"
	defaultPort              = "8080"
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 15 * time.Second
	defaultIdleTimeout       = 60 * time.Second
	defaultRequestTimeout    = 30 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
	defaultTemplatesDir      = "templates"
	defaultContentCacheTTL   = 5 * time.Minute
	defaultExportDir         = "dist"
	defaultExportConcurrency = 8
	defaultMaxTitle          = 60
	defaultMaxDescription    = 160
	defaultLogLevel          = "info"
)

var defaultLanguages = []string{"en", "es"}

// Config captures all runtime configuration organised by concern.
type Config struct {
	Site      SiteConfig
	Server    ServerConfig
	Content   ContentConfig
	Analytics AnalyticsConfig
	Export    ExportConfig
	Publish   PublishConfig
	Audit     AuditConfig
	Logging   LoggingConfig
}

// SiteConfig describes the public identity of the site.
type SiteConfig struct {
	BaseURL     string
	Name        string
	DefaultLang string
	Languages   []string
	// FormURL is the estimate form embed. Empty renders a call button.
	FormURL         string
	InlineFAQSchema bool
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	// DevMode reparses templates from TemplatesDir on every request.
	DevMode      bool
	TemplatesDir string
}

// ContentConfig locates markdown content pages.
type ContentConfig struct {
	CMSBaseURL string
	CacheTTL   time.Duration
}

type AnalyticsConfig struct {
	GA4MeasurementID string
	GTMContainerID   string
	Debug            bool
}

type ExportConfig struct {
	Dir         string
	Concurrency int
}

type PublishConfig struct {
	Bucket string
	Prefix string
	// Endpoint overrides the storage API endpoint, e.g. for an emulator.
	Endpoint string
}

type AuditConfig struct {
	MaxTitle       int
	MaxDescription int
}

type LoggingConfig struct {
	Level string
}

// ValidationError is returned when required configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path used for local overrides.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects an explicit key/value map for environment lookups. Values in the map
// take precedence over system environment variables.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from os.Getenv, relying only on provided maps and .env files.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load assembles the configuration by combining defaults, .env overrides,
// environment variables and explicit maps, in increasing precedence.
func Load(ctx context.Context, opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}
	if err := ctx.Err(); err != nil {
		return Config{}, err
	}

	dotEnvValues, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		if dotEnvValues != nil {
			if value, ok := dotEnvValues[key]; ok {
				return value, true
			}
		}
		return "", false
	}

	languages := csvWithDefault(lookup, "SITE_LANGUAGES")
	if len(languages) == 0 {
		languages = append([]string(nil), defaultLanguages...)
	}

	cfg := Config{
		Site: SiteConfig{
			BaseURL:         strings.TrimRight(stringWithDefault(lookup, "SITE_BASE_URL", defaultBaseURL), "/"),
			Name:            stringWithDefault(lookup, "SITE_NAME", defaultSiteName),
			DefaultLang:     strings.ToLower(stringWithDefault(lookup, "SITE_DEFAULT_LANG", defaultLang)),
			Languages:       languages,
			FormURL:         stringWithDefault(lookup, "SITE_FORM_URL", ""),
			InlineFAQSchema: boolWithDefault(lookup, "SITE_INLINE_FAQ_SCHEMA", false),
		},
		Server: ServerConfig{
			// Cloud Run injects PORT; SITE_PORT wins when both are set.
			Port:            stringWithDefault(lookup, "SITE_PORT", stringWithDefault(lookup, "PORT", defaultPort)),
			ReadTimeout:     durationWithDefault(lookup, "SITE_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout:    durationWithDefault(lookup, "SITE_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:     durationWithDefault(lookup, "SITE_IDLE_TIMEOUT", defaultIdleTimeout),
			RequestTimeout:  durationWithDefault(lookup, "SITE_REQUEST_TIMEOUT", defaultRequestTimeout),
			ShutdownTimeout: durationWithDefault(lookup, "SITE_SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
			DevMode:         boolWithDefault(lookup, "SITE_DEV", false),
			TemplatesDir:    stringWithDefault(lookup, "SITE_TEMPLATES_DIR", defaultTemplatesDir),
		},
		Content: ContentConfig{
			CMSBaseURL: stringWithDefault(lookup, "SITE_CMS_BASE_URL", ""),
			CacheTTL:   durationWithDefault(lookup, "SITE_CONTENT_CACHE_TTL", defaultContentCacheTTL),
		},
		Analytics: AnalyticsConfig{
			GA4MeasurementID: stringWithDefault(lookup, "SITE_GA_MEASUREMENT_ID", ""),
			GTMContainerID:   stringWithDefault(lookup, "SITE_GTM_CONTAINER_ID", ""),
			Debug:            boolWithDefault(lookup, "SITE_ANALYTICS_DEBUG", false),
		},
		Export: ExportConfig{
			Dir:         stringWithDefault(lookup, "SITE_EXPORT_DIR", defaultExportDir),
			Concurrency: intWithDefault(lookup, "SITE_EXPORT_CONCURRENCY", defaultExportConcurrency),
		},
		Publish: PublishConfig{
			Bucket:   stringWithDefault(lookup, "SITE_PUBLISH_BUCKET", ""),
			Prefix:   strings.Trim(stringWithDefault(lookup, "SITE_PUBLISH_PREFIX", ""), "/"),
			Endpoint: stringWithDefault(lookup, "SITE_PUBLISH_ENDPOINT", ""),
		},
		Audit: AuditConfig{
			MaxTitle:       intWithDefault(lookup, "SITE_AUDIT_MAX_TITLE", defaultMaxTitle),
			MaxDescription: intWithDefault(lookup, "SITE_AUDIT_MAX_DESCRIPTION", defaultMaxDescription),
		},
		Logging: LoggingConfig{
			Level: strings.ToLower(stringWithDefault(lookup, "LOG_LEVEL", defaultLogLevel)),
		},
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg Config) error {
	var invalid []string

	if u, err := url.Parse(cfg.Site.BaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		invalid = append(invalid, "Site.BaseURL")
	}
	if strings.TrimSpace(cfg.Site.Name) == "" {
		invalid = append(invalid, "Site.Name")
	}
	found := false
	for _, l := range cfg.Site.Languages {
		if l == cfg.Site.DefaultLang {
			found = true
			break
		}
	}
	if !found {
		invalid = append(invalid, "Site.DefaultLang")
	}
	if cfg.Site.FormURL != "" {
		if u, err := url.Parse(cfg.Site.FormURL); err != nil || u.Scheme != "https" {
			invalid = append(invalid, "Site.FormURL")
		}
	}
	if cfg.Server.Port == "" {
		invalid = append(invalid, "Server.Port")
	}
	if cfg.Server.ReadTimeout <= 0 {
		invalid = append(invalid, "Server.ReadTimeout")
	}
	if cfg.Server.WriteTimeout <= 0 {
		invalid = append(invalid, "Server.WriteTimeout")
	}
	if cfg.Server.RequestTimeout <= 0 {
		invalid = append(invalid, "Server.RequestTimeout")
	}
	if cfg.Export.Concurrency <= 0 {
		invalid = append(invalid, "Export.Concurrency")
	}
	if cfg.Audit.MaxTitle <= 0 {
		invalid = append(invalid, "Audit.MaxTitle")
	}
	if cfg.Audit.MaxDescription <= 0 {
		invalid = append(invalid, "Audit.MaxDescription")
	}
	switch cfg.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		invalid = append(invalid, "Logging.Level")
	}

	if len(invalid) > 0 {
		return &ValidationError{fields: invalid}
	}
	return nil
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	file, err := os.Open(absPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", absPath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	values := make(map[string]string)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		values[key] = strings.Trim(strings.TrimSpace(value), "\"'")
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: failed parsing %s: %w", absPath, err)
	}
	return values, nil
}

func stringWithDefault(lookup func(string) (string, bool), key, fallback string) string {
	if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func durationWithDefault(lookup func(string) (string, bool), key string, fallback time.Duration) time.Duration {
	if value, ok := lookup(key); ok && value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func intWithDefault(lookup func(string) (string, bool), key string, fallback int) int {
	if value, ok := lookup(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func boolWithDefault(lookup func(string) (string, bool), key string, fallback bool) bool {
	if value, ok := lookup(key); ok && value != "" {
		switch strings.ToLower(value) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return fallback
}

func csvWithDefault(lookup func(string) (string, bool), key string) []string {
	raw, ok := lookup(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.ToLower(strings.TrimSpace(part)); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
