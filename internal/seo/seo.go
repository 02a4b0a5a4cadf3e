package seo

import (
	"strings"

	"ridgeline.build/ridgeline-web/internal/content"
)

const (
	// MaxTitle and MaxDescription are the search-result truncation budgets.
	MaxTitle       = 60
	MaxDescription = 160

	defaultOGImage = "/assets/img/og-default.jpg"
)

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
}

type Twitter struct {
	Card  string
	Site  string
	Image string
}

type Alternate struct {
	Href     string
	Hreflang string
}

type Meta struct {
	Title       string
	Description string
	Keywords    string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
	Alternates  []Alternate
}

// MetaFor derives document metadata for a page. baseURL has no trailing slash.
func MetaFor(p content.Page, siteName, baseURL string) Meta {
	canonical := AbsURL(baseURL, p.Route)
	image := p.Meta.OGImage
	if image == "" {
		image = p.Hero.Image
	}
	if image == "" {
		image = defaultOGImage
	}
	image = AbsURL(baseURL, image)

	ogType := "website"
	if p.Kind == content.KindArticle {
		ogType = "article"
	}
	robots := "index,follow"
	if p.Meta.NoIndex {
		robots = "noindex,follow"
	}
	return Meta{
		Title:       p.Meta.Title,
		Description: p.Meta.Description,
		Keywords:    strings.Join(p.Meta.Keywords, ", "),
		Canonical:   canonical,
		Robots:      robots,
		OG: OpenGraph{
			Title:       p.Meta.Title,
			Description: p.Meta.Description,
			Image:       image,
			Type:        ogType,
			URL:         canonical,
			SiteName:    siteName,
		},
		Twitter: Twitter{
			Card:  "summary_large_image",
			Image: image,
		},
	}
}

// AbsURL resolves a site-relative path against baseURL. Absolute URLs pass through.
func AbsURL(baseURL, p string) string {
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}
	base := strings.TrimRight(baseURL, "/")
	if p == "" || p == "/" {
		return base + "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return base + p
}
