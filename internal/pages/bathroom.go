package pages

import "ridgeline.build/ridgeline-web/internal/content"

var bathroomServices = []content.Card{
	{Icon: "shower", Title: "Walk-In Showers", Description: "Curbless entries, linear drains and fully waterproofed tile assemblies."},
	{Icon: "tub", Title: "Tub Replacements", Description: "Freestanding and alcove tubs with new valves and surrounds."},
	{Icon: "vanity", Title: "Vanities & Storage", Description: "Floating vanities, medicine cabinets and built-in niches."},
	{Icon: "access", Title: "Accessible Bathrooms", Description: "Grab bars, wider doors and zero-threshold showers for aging in place."},
}

var bathroomProcess = []content.Step{
	{Step: 1, Title: "Consultation", Description: "We review the space, plumbing locations and your wish list."},
	{Step: 2, Title: "Design & Selections", Description: "Tile, fixtures and vanity choices locked in before demo."},
	{Step: 3, Title: "Waterproofing", Description: "Membrane systems flood-tested before any tile goes up."},
	{Step: 4, Title: "Finish", Description: "Tile, glass, fixtures and a final walkthrough."},
}

var bathroomCosts = []content.CostRow{
	{Item: "Shower conversion", Low: 1800000, High: 3200000, Note: "Tub-to-shower with new tile"},
	{Item: "Full hall bath", Low: 3000000, High: 5500000},
	{Item: "Primary suite bath", Low: 6000000, High: 12000000, Note: "Layout changes, double vanity"},
}

var bathroomFAQs = []content.FAQ{
	{Question: "How long does a bathroom remodel take?", Answer: "A hall bath typically takes four to six weeks; a primary suite with layout changes takes eight to ten."},
	{Question: "Can you convert my tub to a walk-in shower?", Answer: "Yes. Tub-to-shower conversions are one of our most common projects and usually keep the existing drain location."},
	{Question: "What waterproofing do you use?", Answer: "We install bonded sheet membranes or liquid-applied systems and flood-test every shower pan before tile."},
}

// BathroomRemodeling is the /bathroom-remodeling service page.
func BathroomRemodeling() content.Page {
	return content.Page{
		Route: "/bathroom-remodeling",
		Kind:  content.KindService,
		Lang:  "en",
		Meta: content.Meta{
			Title:       "Bathroom Remodeling Los Angeles | Ridgeline Builders",
			Description: "Bathroom remodeling in Los Angeles: walk-in showers, tub replacements, vanities and accessible baths by a licensed contractor.",
			Keywords:    []string{"bathroom remodel los angeles", "walk-in shower", "bathroom contractor"},
		},
		Hero: content.Hero{
			Eyebrow:    "Bathroom Remodeling",
			Heading:    "Bathroom Remodeling in Los Angeles",
			Subheading: "Waterproofed right, tiled beautifully, finished on schedule.",
			Image:      "/assets/img/hero-bath.jpg",
			CTA:        estimateCTA,
		},
		Sections: []content.Section{
			{ID: "services", Heading: "Bathroom Services", Cards: bathroomServices},
			{ID: "process", Heading: "Our Bathroom Process", Steps: bathroomProcess},
			{ID: "costs", Heading: "Bathroom Remodel Costs", Costs: bathroomCosts},
		},
		FAQs:          bathroomFAQs,
		Breadcrumbs:   []content.Crumb{homeCrumb, {Name: "Bathroom Remodeling", Href: "/bathroom-remodeling"}},
		InternalLinks: serviceLinks("/bathroom-remodeling"),
		Schemas:       serviceSchemas("Bathroom Remodeling", "Bathroom remodeling"),
		Form:          estimateForm(),
	}
}
