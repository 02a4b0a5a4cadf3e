// Package render turns page content into complete HTML documents using the shared
// layout and partial templates.
package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"ridgeline.build/ridgeline-web/internal/business"
	"ridgeline.build/ridgeline-web/internal/content"
	"ridgeline.build/ridgeline-web/internal/format"
	"ridgeline.build/ridgeline-web/internal/i18n"
	"ridgeline.build/ridgeline-web/internal/nav"
	"ridgeline.build/ridgeline-web/internal/seo"
)

// Analytics holds client instrumentation configuration surfaced to templates.
type Analytics struct {
	GA4MeasurementID string // e.g. G-XXXXXXXXXX
	GTMContainerID   string // e.g. GTM-XXXXXXX
	Debug            bool
}

// Options configures a Renderer.
type Options struct {
	// Templates holds base.tmpl, page.tmpl and partials/*.tmpl.
	Templates fs.FS
	// DevDir, when set, reparses templates from this directory on every render.
	DevDir string

	BaseURL  string
	SiteName string
	Business business.Info
	Bundle   *i18n.Bundle

	Analytics Analytics
	// FormURL is the embed URL of the estimate form. Empty renders a call button instead.
	FormURL string
	// InlineFAQSchema moves the FAQPage JSON-LD next to the accordion instead of the head.
	InlineFAQSchema bool

	Now func() time.Time
}

// Document is one rendered route.
type Document struct {
	Route  string
	Meta   seo.Meta
	JSONLD []string
	HTML   []byte
}

// View is the data every template executes against.
type View struct {
	Lang      string
	Meta      seo.Meta
	JSONLD    []template.JS
	FAQSchema template.JS
	Analytics Analytics
	Business  business.Info
	Nav       []nav.RenderedItem
	Year      int
	FormURL   string
	Page      content.Page
	NotFound  bool

	bundle *i18n.Bundle
	uiLang string
}

// T translates a UI string key in the view's language.
func (v View) T(key string) string {
	if v.bundle == nil {
		return key
	}
	return v.bundle.T(v.uiLang, key)
}

// Renderer executes the shared layout for pages. It is safe for concurrent use.
type Renderer struct {
	opts   Options
	md     goldmark.Markdown
	policy *bluemonday.Policy
	tmpl   *template.Template
}

// New parses the templates once. In dev mode parsing is deferred to each render.
func New(opts Options) (*Renderer, error) {
	if opts.Templates == nil && opts.DevDir == "" {
		return nil, errors.New("render: templates are required")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.SiteName == "" {
		opts.SiteName = opts.Business.Name
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")

	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnFullyQualifiedLinks(true)

	r := &Renderer{
		opts: opts,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
		policy: policy,
	}
	if opts.DevDir == "" {
		t, err := r.parse()
		if err != nil {
			return nil, err
		}
		r.tmpl = t
	}
	return r, nil
}

func (r *Renderer) funcMap() template.FuncMap {
	return template.FuncMap{
		"markdown":  r.markdown,
		"dict":      dict,
		"costRange": format.CostRange,
		"date":      format.ISODate,
		"last":      func(items []content.Crumb) int { return len(items) - 1 },
	}
}

func (r *Renderer) parse() (*template.Template, error) {
	fsys := r.opts.Templates
	if r.opts.DevDir != "" {
		fsys = os.DirFS(r.opts.DevDir)
	}
	// ParseFS doesn't recurse, so collect every .tmpl by walking.
	var files []string
	if err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && path.Ext(p) == ".tmpl" {
			files = append(files, p)
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("render: walk templates: %w", err)
	}
	if len(files) == 0 {
		return nil, errors.New("render: no templates found")
	}
	t, err := template.New("_root").Funcs(r.funcMap()).ParseFS(fsys, files...)
	if err != nil {
		return nil, fmt.Errorf("render: parse templates: %w", err)
	}
	return t, nil
}

func (r *Renderer) templates() (*template.Template, error) {
	if r.opts.DevDir != "" {
		return r.parse()
	}
	if r.tmpl == nil {
		return nil, errors.New("render: templates not initialized")
	}
	return r.tmpl, nil
}

// markdown renders authored markdown and strips anything outside the UGC policy.
func (r *Renderer) markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render: markdown: %w", err)
	}
	return template.HTML(r.policy.SanitizeBytes(buf.Bytes())), nil
}

func dict(kv ...any) (map[string]any, error) {
	if len(kv)%2 != 0 {
		return nil, errors.New("dict: odd number of arguments")
	}
	m := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", kv[i])
		}
		m[k] = kv[i+1]
	}
	return m, nil
}

func (r *Renderer) uiLang(ctx context.Context, fallback string) string {
	if lang, ok := i18n.LangFromContext(ctx); ok {
		if r.opts.Bundle == nil || r.opts.Bundle.IsSupported(lang) {
			return lang
		}
	}
	if fallback != "" {
		return fallback
	}
	if r.opts.Bundle != nil {
		return r.opts.Bundle.Fallback()
	}
	return "en"
}

func (r *Renderer) view(ctx context.Context, p content.Page) (View, []string) {
	schemas := seo.Schemas(p, r.opts.Business, r.opts.BaseURL)
	var (
		raw       []string
		head      []template.JS
		faqSchema template.JS
	)
	for _, s := range schemas {
		js := seo.JSON(s)
		if js == "" {
			continue
		}
		raw = append(raw, js)
		if r.opts.InlineFAQSchema && s["@type"] == "FAQPage" {
			faqSchema = template.JS(js)
			continue
		}
		head = append(head, template.JS(js))
	}
	lang := p.Lang
	if lang == "" {
		lang = "en"
	}
	return View{
		Lang:      lang,
		Meta:      seo.MetaFor(p, r.opts.SiteName, r.opts.BaseURL),
		JSONLD:    head,
		FAQSchema: faqSchema,
		Analytics: r.opts.Analytics,
		Business:  r.opts.Business,
		Nav:       nav.Build(p.Route),
		Year:      r.opts.Now().Year(),
		FormURL:   r.opts.FormURL,
		Page:      p,
		bundle:    r.opts.Bundle,
		uiLang:    r.uiLang(ctx, lang),
	}, raw
}

func (r *Renderer) execute(w io.Writer, v View) error {
	t, err := r.templates()
	if err != nil {
		return err
	}
	if err := t.ExecuteTemplate(w, "base", v); err != nil {
		return fmt.Errorf("render: %s: %w", v.Page.Route, err)
	}
	return nil
}

// Render produces the full HTML document for p.
func (r *Renderer) Render(ctx context.Context, p content.Page) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	v, raw := r.view(ctx, p)
	var buf bytes.Buffer
	if err := r.execute(&buf, v); err != nil {
		return Document{}, err
	}
	return Document{Route: p.Route, Meta: v.Meta, JSONLD: raw, HTML: buf.Bytes()}, nil
}

// RenderNotFound produces the 404 document for route.
func (r *Renderer) RenderNotFound(ctx context.Context, route string) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.NotFoundComponent(route).Render(ctx, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Component adapts p to a templ.Component so it can be served by templ.Handler.
func (r *Renderer) Component(p content.Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		v, _ := r.view(ctx, p)
		return r.execute(w, v)
	})
}

// NotFoundComponent renders the shared layout around the not-found message.
func (r *Renderer) NotFoundComponent(route string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := content.Page{
			Route: route,
			Lang:  "en",
			Meta:  content.Meta{NoIndex: true},
		}
		v, _ := r.view(ctx, p)
		v.NotFound = true
		v.JSONLD = nil
		v.Meta.Title = v.T("notfound.title") + " | " + r.opts.SiteName
		v.Meta.Description = v.T("notfound.body")
		v.Meta.OG.Title = v.Meta.Title
		return r.execute(w, v)
	})
}
