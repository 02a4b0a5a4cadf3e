package pages

import "ridgeline.build/ridgeline-web/internal/content"

var kitchenServices = []content.Card{
	{Icon: "layout", Title: "Layout Redesign", Description: "Open walls, move plumbing and rework traffic flow with engineered plans."},
	{Icon: "cabinet", Title: "Custom Cabinetry", Description: "Semi-custom and custom lines with soft-close hardware and full-height storage."},
	{Icon: "counter", Title: "Countertops", Description: "Quartz, granite and porcelain slabs templated and installed by specialists."},
	{Icon: "light", Title: "Lighting & Electrical", Description: "Recessed, under-cabinet and pendant lighting on a code-compliant panel."},
}

var kitchenProcess = []content.Step{
	{Step: 1, Title: "Measure & Design", Description: "We measure, photograph and draft two layout options."},
	{Step: 2, Title: "Selections", Description: "Pick cabinets, counters, tile and fixtures with our designer."},
	{Step: 3, Title: "Demo & Rough-In", Description: "Demolition, framing changes, plumbing and electrical rough-in."},
	{Step: 4, Title: "Install", Description: "Cabinets, counters, backsplash, appliances and trim."},
}

var kitchenCosts = []content.CostRow{
	{Item: "Cosmetic refresh", Low: 2500000, High: 4500000, Note: "Cabinet refacing, counters, paint"},
	{Item: "Mid-range remodel", Low: 5000000, High: 9000000, Note: "New cabinets, same layout"},
	{Item: "Full custom remodel", Low: 9500000, High: 18000000, Note: "Layout changes, custom cabinetry"},
}

var kitchenFAQs = []content.FAQ{
	{Question: "How long does a kitchen remodel take?", Answer: "Most kitchens take eight to twelve weeks of construction after permits, depending on layout changes and cabinet lead times."},
	{Question: "Can we live at home during the remodel?", Answer: "Yes. We seal the work area with dust barriers and can set up a temporary kitchen station elsewhere in the house."},
	{Question: "Do I need a permit to remodel my kitchen?", Answer: "Any plumbing, electrical or structural change requires a permit in Los Angeles. We prepare and pull it for you."},
	{Question: "Do you offer design services?", Answer: "Yes. Our in-house designer prepares layouts, 3D renderings and a full selections list before construction starts."},
}

var kitchenRelated = []content.Article{
	{Href: "/blog/kitchen-remodel-cost-guide", Title: "Kitchen Remodel Cost Guide", Excerpt: "Line-item ranges for cabinets, counters, labor and permits."},
}

// KitchenRemodeling is the /kitchen-remodeling service page.
func KitchenRemodeling() content.Page {
	return content.Page{
		Route: "/kitchen-remodeling",
		Kind:  content.KindService,
		Lang:  "en",
		Meta: content.Meta{
			Title:       "Kitchen Remodeling in Los Angeles | Ridgeline Builders",
			Description: "Custom kitchen remodeling in Los Angeles: layout redesign, cabinetry, countertops and lighting from a licensed contractor. Get a free estimate.",
			Keywords:    []string{"kitchen remodeling los angeles", "kitchen contractor", "custom cabinets"},
		},
		Hero: content.Hero{
			Eyebrow:    "Kitchen Remodeling",
			Heading:    "Kitchen Remodeling in Los Angeles",
			Subheading: "Kitchens designed around how you cook, built by one accountable team.",
			Image:      "/assets/img/hero-kitchen.jpg",
			CTA:        estimateCTA,
		},
		Sections: []content.Section{
			{ID: "services", Heading: "Kitchen Services", Cards: kitchenServices},
			{ID: "process", Heading: "Our Kitchen Process", Steps: kitchenProcess},
			{ID: "costs", Heading: "Kitchen Remodel Costs", Intro: "Typical ranges for Los Angeles projects, including labor and permits.", Costs: kitchenCosts},
		},
		FAQs:          kitchenFAQs,
		Breadcrumbs:   []content.Crumb{homeCrumb, {Name: "Kitchen Remodeling", Href: "/kitchen-remodeling"}},
		InternalLinks: serviceLinks("/kitchen-remodeling"),
		Related:       kitchenRelated,
		Schemas:       serviceSchemas("Kitchen Remodeling", "Kitchen remodeling"),
		Form:          estimateForm(),
	}
}
