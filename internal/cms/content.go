package cms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"ridgeline.build/ridgeline-web/internal/content"
	"ridgeline.build/ridgeline-web/internal/nav"
)

// ErrNotFound is returned when a CMS resource cannot be located.
var ErrNotFound = errors.New("cms: not found")

// ContentPage represents a localized static page sourced from the CMS or local markdown.
type ContentPage struct {
	Slug      string
	Lang      string
	Title     string
	Summary   string
	Body      string
	Image     string
	UpdatedAt time.Time
	NoIndex   bool
	// EstimateForm appends the lead form section so the page's estimate CTA has a target.
	EstimateForm bool
	FAQs         []content.FAQ
	Links        []content.Link
	SEO          ContentSEO
}

// ContentSEO holds optional metadata overrides for static pages.
type ContentSEO struct {
	Title       string
	Description string
	Keywords    []string
	OGImage     string
}

type contentFrontMatter struct {
	Title     string                 `yaml:"title"`
	Summary   string                 `yaml:"summary"`
	Lang      string                 `yaml:"lang"`
	Image     string                 `yaml:"image"`
	UpdatedAt string                 `yaml:"updated_at"`
	NoIndex   bool                   `yaml:"noindex"`
	Form      bool                   `yaml:"estimate_form"`
	SEO       contentFrontMatterSEO  `yaml:"seo"`
	FAQs      []contentFrontMatterQA `yaml:"faqs"`
	Links     []contentFrontMatterLn `yaml:"links"`
}

type contentFrontMatterSEO struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
	OGImage     string   `yaml:"og_image"`
}

type contentFrontMatterQA struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

type contentFrontMatterLn struct {
	Href  string `yaml:"href"`
	Label string `yaml:"label"`
}

const (
	defaultLang        = "en"
	estimateFormHeight = 640
)

var (
	contentCache = struct {
		mu    sync.RWMutex
		items map[string]contentCacheEntry
	}{
		items: map[string]contentCacheEntry{},
	}
	contentCacheTTL = time.Minute * 5
)

type contentCacheEntry struct {
	page    ContentPage
	expires time.Time
}

// SetContentCacheDuration allows overriding the in-memory cache duration (primarily for tests).
func SetContentCacheDuration(d time.Duration) {
	if d <= 0 {
		d = time.Minute
	}
	contentCacheTTL = d
}

// ResetCache drops every cached page.
func ResetCache() {
	contentCache.mu.Lock()
	contentCache.items = map[string]contentCacheEntry{}
	contentCache.mu.Unlock()
}

// Client provides read-only access to content pages. Pages come from the remote CMS
// when a base URL is configured, otherwise from markdown files in fsys laid out as
// <lang>/<slug>.md.
type Client struct {
	fsys    fs.FS
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient constructs a Client reading local markdown from fsys.
func NewClient(fsys fs.FS, baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	baseURL = strings.TrimSpace(baseURL)
	return &Client{
		fsys:    fsys,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 5 * time.Second},
		logger:  logger,
	}
}

// GetContentPage fetches a localized static page, consulting the remote CMS when configured,
// otherwise falling back to local markdown.
func (c *Client) GetContentPage(ctx context.Context, slug, lang string) (ContentPage, error) {
	slug = sanitizeSlug(slug)
	if slug == "" {
		return ContentPage{}, ErrNotFound
	}
	lang = normalizeLang(lang)

	cacheKey := strings.Join([]string{lang, slug}, "|")
	if page, ok := cachedContent(cacheKey); ok {
		return page, nil
	}

	page, err := c.fetchContentPage(ctx, slug, lang)
	if err != nil {
		return ContentPage{}, err
	}
	storeContent(cacheKey, page)
	return cloneContentPage(page), nil
}

// ListSlugs returns the slugs available locally for lang, sorted.
func (c *Client) ListSlugs(lang string) ([]string, error) {
	if c == nil || c.fsys == nil {
		return nil, nil
	}
	lang = normalizeLang(lang)
	entries, err := fs.ReadDir(c.fsys, lang)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("cms: list %s: %w", lang, err)
	}
	slugs := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		slugs = append(slugs, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(slugs)
	return slugs, nil
}

// Pages loads every local page for lang and converts it to a renderable page.
func (c *Client) Pages(ctx context.Context, lang string) ([]content.Page, error) {
	slugs, err := c.ListSlugs(lang)
	if err != nil {
		return nil, err
	}
	out := make([]content.Page, 0, len(slugs))
	for _, slug := range slugs {
		cp, err := c.GetContentPage(ctx, slug, lang)
		if err != nil {
			return nil, err
		}
		out = append(out, cp.Page())
	}
	return out, nil
}

func (c *Client) fetchContentPage(ctx context.Context, slug, lang string) (ContentPage, error) {
	if c != nil && c.baseURL != "" {
		page, err := c.fetchContentPageRemote(ctx, slug, lang)
		if err == nil {
			return page, nil
		}
		if !errors.Is(err, ErrNotFound) {
			c.logger.Warn("cms: remote fetch failed, using local content",
				zap.String("slug", slug), zap.String("lang", lang), zap.Error(err))
		}
	}
	var fsys fs.FS
	if c != nil {
		fsys = c.fsys
	}
	return fallbackContentPage(fsys, slug, lang)
}

func (c *Client) fetchContentPageRemote(ctx context.Context, slug, lang string) (ContentPage, error) {
	endpoint, err := url.JoinPath(c.baseURL, "content", "pages", slug)
	if err != nil {
		return ContentPage{}, err
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: 5 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ContentPage{}, err
	}
	q := req.URL.Query()
	if lang != "" {
		q.Set("lang", lang)
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return ContentPage{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return ContentPage{}, ErrNotFound
	}
	if resp.StatusCode >= 400 {
		return ContentPage{}, fmt.Errorf("cms: content remote status %d", resp.StatusCode)
	}

	var payload struct {
		Slug      string    `json:"slug"`
		Lang      string    `json:"lang"`
		Title     string    `json:"title"`
		Summary   string    `json:"summary"`
		Body      string    `json:"body"`
		Image     string    `json:"image"`
		UpdatedAt time.Time `json:"updated_at"`
		NoIndex   bool      `json:"noindex"`
		Form      bool      `json:"estimate_form"`
		FAQs      []struct {
			Question string `json:"question"`
			Answer   string `json:"answer"`
		} `json:"faqs"`
		Links []struct {
			Href  string `json:"href"`
			Label string `json:"label"`
		} `json:"links"`
		SEO struct {
			Title       string   `json:"title"`
			Description string   `json:"description"`
			Keywords    []string `json:"keywords"`
			OGImage     string   `json:"og_image"`
		} `json:"seo"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return ContentPage{}, err
	}
	if strings.TrimSpace(payload.Body) == "" {
		return ContentPage{}, fmt.Errorf("cms: empty body for %s", slug)
	}
	page := ContentPage{
		Slug:         firstNonEmpty(payload.Slug, slug),
		Lang:         firstNonEmpty(payload.Lang, lang),
		Title:        payload.Title,
		Summary:      payload.Summary,
		Body:         payload.Body,
		Image:        payload.Image,
		UpdatedAt:    payload.UpdatedAt,
		NoIndex:      payload.NoIndex,
		EstimateForm: payload.Form,
		SEO: ContentSEO{
			Title:       payload.SEO.Title,
			Description: payload.SEO.Description,
			Keywords:    payload.SEO.Keywords,
			OGImage:     payload.SEO.OGImage,
		},
	}
	for _, qa := range payload.FAQs {
		page.FAQs = append(page.FAQs, content.FAQ{Question: qa.Question, Answer: qa.Answer})
	}
	for _, l := range payload.Links {
		page.Links = append(page.Links, content.Link{Href: l.Href, Label: l.Label})
	}
	if page.Title == "" {
		page.Title = prettifySlug(page.Slug)
	}
	return page, nil
}

func fallbackContentPage(fsys fs.FS, slug, lang string) (ContentPage, error) {
	if fsys == nil {
		return ContentPage{}, ErrNotFound
	}
	priority := []string{lang}
	if lang != "en" {
		priority = append(priority, "en")
	}
	if lang != "es" {
		priority = append(priority, "es")
	}
	for _, candidate := range priority {
		page, err := readContentMarkdown(fsys, slug, candidate)
		if err == nil {
			return page, nil
		}
		if errors.Is(err, ErrNotFound) {
			continue
		}
		// For other errors (parse issues), stop early.
		return ContentPage{}, err
	}
	return ContentPage{}, ErrNotFound
}

func readContentMarkdown(fsys fs.FS, slug, lang string) (ContentPage, error) {
	if slug == "" {
		return ContentPage{}, ErrNotFound
	}
	file := path.Join(lang, slug+".md")

	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ContentPage{}, ErrNotFound
		}
		return ContentPage{}, err
	}
	fm, body := splitFrontMatter(string(data))
	front := contentFrontMatter{}
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return ContentPage{}, fmt.Errorf("cms: parse front matter %s: %w", file, err)
		}
	}
	page := ContentPage{
		Slug:         slug,
		Lang:         firstNonEmpty(strings.TrimSpace(front.Lang), lang),
		Title:        strings.TrimSpace(front.Title),
		Summary:      strings.TrimSpace(front.Summary),
		Body:         body,
		Image:        strings.TrimSpace(front.Image),
		NoIndex:      front.NoIndex,
		EstimateForm: front.Form,
		SEO: ContentSEO{
			Title:       strings.TrimSpace(front.SEO.Title),
			Description: strings.TrimSpace(front.SEO.Description),
			Keywords:    front.SEO.Keywords,
			OGImage:     strings.TrimSpace(front.SEO.OGImage),
		},
	}
	for _, qa := range front.FAQs {
		page.FAQs = append(page.FAQs, content.FAQ{
			Question: strings.TrimSpace(qa.Question),
			Answer:   strings.TrimSpace(qa.Answer),
		})
	}
	for _, l := range front.Links {
		page.Links = append(page.Links, content.Link{
			Href:  strings.TrimSpace(l.Href),
			Label: strings.TrimSpace(l.Label),
		})
	}
	page.UpdatedAt = parseContentDate(front.UpdatedAt)
	if page.Title == "" {
		// fall back to slug prettified
		page.Title = prettifySlug(slug)
	}
	return page, nil
}

// Page converts the content page into the shared page model served at /<slug>.
func (p ContentPage) Page() content.Page {
	route := "/" + p.Slug
	title := firstNonEmpty(p.SEO.Title, p.Title)
	description := firstNonEmpty(p.SEO.Description, p.Summary)
	page := content.Page{
		Route: route,
		Kind:  content.KindContent,
		Lang:  p.Lang,
		Meta: content.Meta{
			Title:       title,
			Description: description,
			Keywords:    append([]string(nil), p.SEO.Keywords...),
			OGImage:     firstNonEmpty(p.SEO.OGImage, p.Image),
			NoIndex:     p.NoIndex,
		},
		Hero: content.Hero{
			Heading:    p.Title,
			Subheading: p.Summary,
			Image:      p.Image,
		},
		Sections:      []content.Section{{ID: "content", Body: p.Body}},
		FAQs:          append([]content.FAQ(nil), p.FAQs...),
		Breadcrumbs:   nav.Breadcrumbs(route, p.Title),
		InternalLinks: append([]content.Link(nil), p.Links...),
		Schemas: content.Schemas{
			Breadcrumb: true,
			FAQ:        len(p.FAQs) > 0,
		},
	}
	if p.EstimateForm {
		page.Form = &content.FormEmbed{Height: estimateFormHeight}
	}
	return page
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	lines := strings.Split(input, "\n")
	if len(lines) == 0 {
		return "", ""
	}
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}

func parseContentDate(v string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006/01/02",
		"2006-1-2",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func prettifySlug(slug string) string {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return slug
	}
	parts := strings.Split(slug, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		runes[0] = asciiUpper(runes[0])
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}

func sanitizeSlug(slug string) string {
	slug = strings.TrimSpace(strings.ToLower(slug))
	slug = strings.Trim(slug, "/")
	if slug == "" {
		return ""
	}
	if strings.Contains(slug, "..") {
		return ""
	}
	if strings.ContainsAny(slug, `/\`) {
		return ""
	}
	return slug
}

func normalizeLang(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i != -1 {
		lang = lang[:i]
	}
	if lang == "" {
		return defaultLang
	}
	return lang
}

func cachedContent(key string) (ContentPage, bool) {
	now := time.Now()
	contentCache.mu.RLock()
	entry, ok := contentCache.items[key]
	contentCache.mu.RUnlock()
	if !ok || now.After(entry.expires) {
		return ContentPage{}, false
	}
	return cloneContentPage(entry.page), true
}

func storeContent(key string, page ContentPage) {
	contentCache.mu.Lock()
	defer contentCache.mu.Unlock()
	contentCache.items[key] = contentCacheEntry{
		page:    cloneContentPage(page),
		expires: time.Now().Add(contentCacheTTL),
	}
}

func cloneContentPage(src ContentPage) ContentPage {
	cp := src
	cp.FAQs = append([]content.FAQ(nil), src.FAQs...)
	cp.Links = append([]content.Link(nil), src.Links...)
	cp.SEO.Keywords = append([]string(nil), src.SEO.Keywords...)
	return cp
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func asciiUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
