package seo

import (
	"encoding/json"
	"strconv"

	"ridgeline.build/ridgeline-web/internal/business"
	"ridgeline.build/ridgeline-web/internal/content"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Organization returns a minimal Organization schema.
func Organization(name, url, logoURL string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if logoURL != "" {
		m["logo"] = logoURL
	}
	return m
}

// WebSite returns a minimal WebSite schema.
func WebSite(name, url string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

func postalAddress(info business.Info) map[string]any {
	return map[string]any{
		"@type":           "PostalAddress",
		"streetAddress":   info.Street,
		"addressLocality": info.City,
		"addressRegion":   info.Region,
		"postalCode":      info.PostalCode,
		"addressCountry":  info.Country,
	}
}

func areaServed(cities []string) []map[string]any {
	out := make([]map[string]any, 0, len(cities))
	for _, c := range cities {
		out = append(out, map[string]any{"@type": "City", "name": c})
	}
	return out
}

// LocalBusiness returns a GeneralContractor schema for the business. When city is set
// the areaServed narrows to that city.
func LocalBusiness(info business.Info, pageURL, city string) map[string]any {
	m := map[string]any{
		"@context":  "https://schema.org",
		"@type":     "GeneralContractor",
		"@id":       info.URL + "/#business",
		"name":      info.Name,
		"legalName": info.LegalName,
		"url":       info.URL,
		"telephone": info.Phone,
		"address":   postalAddress(info),
		"geo": map[string]any{
			"@type":     "GeoCoordinates",
			"latitude":  info.Latitude,
			"longitude": info.Longitude,
		},
	}
	if info.Email != "" {
		m["email"] = info.Email
	}
	if info.Logo != "" {
		m["logo"] = info.Logo
	}
	if info.Image != "" {
		m["image"] = info.Image
	}
	if info.PriceRange != "" {
		m["priceRange"] = info.PriceRange
	}
	if info.FoundedYear > 0 {
		m["foundingDate"] = strconv.Itoa(info.FoundedYear)
	}
	if info.LicenseNumber != "" {
		m["identifier"] = map[string]any{
			"@type":      "PropertyValue",
			"propertyID": info.LicenseBoard,
			"value":      info.LicenseNumber,
		}
	}
	if len(info.Hours) > 0 {
		hours := make([]map[string]any, 0, len(info.Hours))
		for _, h := range info.Hours {
			hours = append(hours, map[string]any{
				"@type":     "OpeningHoursSpecification",
				"dayOfWeek": h.Days,
				"opens":     h.Opens,
				"closes":    h.Closes,
			})
		}
		m["openingHoursSpecification"] = hours
	}
	if city != "" {
		m["areaServed"] = areaServed([]string{city})
	} else if len(info.ServiceArea) > 0 {
		m["areaServed"] = areaServed(info.ServiceArea)
	}
	if len(info.SameAs) > 0 {
		m["sameAs"] = info.SameAs
	}
	if pageURL != "" && pageURL != info.URL+"/" {
		m["mainEntityOfPage"] = pageURL
	}
	return m
}

// Service returns a Service schema offered by the business.
func Service(info business.Info, name, serviceType, description, pageURL, city string) map[string]any {
	m := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Service",
		"name":        name,
		"description": description,
		"provider": map[string]any{
			"@type":     "GeneralContractor",
			"@id":       info.URL + "/#business",
			"name":      info.Name,
			"telephone": info.Phone,
		},
	}
	if serviceType != "" {
		m["serviceType"] = serviceType
	}
	if pageURL != "" {
		m["url"] = pageURL
	}
	if city != "" {
		m["areaServed"] = areaServed([]string{city})
	} else if len(info.ServiceArea) > 0 {
		m["areaServed"] = areaServed(info.ServiceArea)
	}
	return m
}

// FAQPage returns a FAQPage schema with one Question per item, in order.
func FAQPage(items []content.FAQ) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for _, it := range items {
		el = append(el, map[string]any{
			"@type": "Question",
			"name":  it.Question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  it.Answer,
			},
		})
	}
	return map[string]any{
		"@context":   "https://schema.org",
		"@type":      "FAQPage",
		"mainEntity": el,
	}
}

// Article returns a minimal Article schema payload.
func Article(headline, url, imageURL, authorName, datePublished, dateModified string, publisher business.Info) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Article",
		"headline": headline,
		"publisher": map[string]any{
			"@type": "Organization",
			"name":  publisher.Name,
			"logo": map[string]any{
				"@type": "ImageObject",
				"url":   publisher.Logo,
			},
		},
	}
	if url != "" {
		m["url"] = url
		m["mainEntityOfPage"] = url
	}
	if imageURL != "" {
		m["image"] = imageURL
	}
	if authorName != "" {
		m["author"] = map[string]any{"@type": "Person", "name": authorName}
	}
	if datePublished != "" {
		m["datePublished"] = datePublished
	}
	if dateModified != "" {
		m["dateModified"] = dateModified
	} else if datePublished != "" {
		m["dateModified"] = datePublished
	}
	return m
}

// Schemas assembles the JSON-LD payloads a page opted into, in a fixed order:
// LocalBusiness, Service, Article, FAQPage, BreadcrumbList. The home page also
// carries WebSite and Organization ahead of the rest.
func Schemas(p content.Page, info business.Info, baseURL string) []map[string]any {
	pageURL := AbsURL(baseURL, p.Route)
	var out []map[string]any
	if p.Kind == content.KindHome {
		out = append(out, WebSite(info.Name, AbsURL(baseURL, "/")), Organization(info.Name, info.URL, info.Logo))
	}
	if p.Schemas.LocalBusiness {
		out = append(out, LocalBusiness(info, pageURL, p.City))
	}
	if p.Schemas.Service {
		name := p.Schemas.ServiceName
		if name == "" {
			name = p.Hero.Heading
		}
		out = append(out, Service(info, name, p.Schemas.ServiceType, p.Meta.Description, pageURL, p.City))
	}
	if p.Schemas.Article && p.Schemas.ArticleInfo != nil {
		a := p.Schemas.ArticleInfo
		headline := a.Headline
		if headline == "" {
			headline = p.Hero.Heading
		}
		image := ""
		if a.Image != "" {
			image = AbsURL(baseURL, a.Image)
		}
		out = append(out, Article(headline, pageURL, image, a.Author, a.Published, a.Modified, info))
	}
	if p.Schemas.FAQ && len(p.FAQs) > 0 {
		out = append(out, FAQPage(p.FAQs))
	}
	if p.Schemas.Breadcrumb && len(p.Breadcrumbs) > 0 {
		items := make([]BreadcrumbItem, 0, len(p.Breadcrumbs))
		for _, c := range p.Breadcrumbs {
			items = append(items, BreadcrumbItem{Name: c.Name, Item: AbsURL(baseURL, c.Href)})
		}
		out = append(out, BreadcrumbList(items))
	}
	return out
}
