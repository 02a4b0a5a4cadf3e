// Package pages holds the Go-authored page content modules. Each file defines the
// static arrays for one route family and a constructor returning its content.Page.
package pages

import (
	"ridgeline.build/ridgeline-web/internal/content"
)

const (
	formHeight = 640
	mapHeight  = 420
)

var (
	homeCrumb  = content.Crumb{Name: "Home", Href: "/"}
	areasCrumb = content.Crumb{Name: "Service Areas", Href: "/service-areas"}
	blogCrumb  = content.Crumb{Name: "Blog", Href: "/blog"}

	estimateCTA = content.CTA{Label: "Get a Free Estimate", Href: "#estimate"}
)

// serviceLinks is the cross-link block every service page carries. The entry for the
// current route is omitted.
func serviceLinks(except string) []content.Link {
	all := []content.Link{
		{Href: "/kitchen-remodeling", Label: "Kitchen Remodeling"},
		{Href: "/bathroom-remodeling", Label: "Bathroom Remodeling"},
		{Href: "/room-additions", Label: "Room Additions"},
		{Href: "/adu-construction", Label: "ADU Construction"},
		{Href: "/general-contractor", Label: "General Contracting"},
		{Href: "/service-areas", Label: "Areas We Serve"},
	}
	out := make([]content.Link, 0, len(all))
	for _, l := range all {
		if l.Href == except {
			continue
		}
		out = append(out, l)
	}
	return out
}

func estimateForm() *content.FormEmbed {
	return &content.FormEmbed{Heading: "Request Your Free In-Home Estimate", Height: formHeight}
}

func serviceSchemas(name, serviceType string) content.Schemas {
	return content.Schemas{
		LocalBusiness: true,
		Service:       true,
		FAQ:           true,
		Breadcrumb:    true,
		ServiceName:   name,
		ServiceType:   serviceType,
	}
}

// Registry returns every Go-authored page in a stable order: home, services, the
// service-area hub and city pages, then the blog.
func Registry() []content.Page {
	pages := []content.Page{
		Home(),
		KitchenRemodeling(),
		BathroomRemodeling(),
		RoomAdditions(),
		ADUConstruction(),
		GeneralContractor(),
		ServiceAreas(),
	}
	pages = append(pages, Locations()...)
	pages = append(pages, BlogIndex())
	pages = append(pages, Articles()...)
	return pages
}
