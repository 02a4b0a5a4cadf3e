package site

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"time"

	"ridgeline.build/ridgeline-web/internal/content"
	"ridgeline.build/ridgeline-web/internal/seo"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Sitemap renders sitemap.xml for every indexable page. Articles use their own
// modified or published date; everything else uses lastmod.
func (s *Site) Sitemap(baseURL string, lastmod time.Time) ([]byte, error) {
	set := urlset{XMLNS: sitemapNS}
	for _, p := range s.pages {
		if p.Meta.NoIndex {
			continue
		}
		freq, prio := frequency(p.Kind)
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        seo.AbsURL(baseURL, p.Route),
			LastMod:    pageLastMod(p, lastmod),
			ChangeFreq: freq,
			Priority:   prio,
		})
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return nil, fmt.Errorf("site: encode sitemap: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func pageLastMod(p content.Page, fallback time.Time) string {
	if a := p.Schemas.ArticleInfo; a != nil {
		if a.Modified != "" {
			return a.Modified
		}
		if a.Published != "" {
			return a.Published
		}
	}
	if fallback.IsZero() {
		return ""
	}
	return fallback.UTC().Format("2006-01-02")
}

func frequency(k content.Kind) (string, string) {
	switch k {
	case content.KindHome:
		return "weekly", "1.0"
	case content.KindService:
		return "monthly", "0.9"
	case content.KindLocation:
		return "monthly", "0.8"
	case content.KindHub:
		return "weekly", "0.7"
	case content.KindArticle:
		return "yearly", "0.6"
	default:
		return "yearly", "0.4"
	}
}

// Robots renders robots.txt pointing crawlers at the sitemap.
func Robots(baseURL string) []byte {
	var buf bytes.Buffer
	buf.WriteString("User-agent: *\n")
	buf.WriteString("Allow: /\n")
	buf.WriteString("Disallow: /healthz\n\n")
	fmt.Fprintf(&buf, "Sitemap: %s\n", seo.AbsURL(baseURL, "/sitemap.xml"))
	return buf.Bytes()
}
