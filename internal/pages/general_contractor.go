package pages

import "ridgeline.build/ridgeline-web/internal/content"

var gcServices = []content.Card{
	{Icon: "home", Title: "Whole-Home Remodels", Description: "Multiple rooms renovated under one schedule and one contract."},
	{Icon: "structure", Title: "Structural Repairs", Description: "Foundation bolting, beam replacement and seismic retrofits."},
	{Icon: "roof", Title: "Exterior Renovations", Description: "Siding, windows, doors and stucco repair."},
	{Icon: "permit", Title: "Permit Expediting", Description: "Plan preparation and submittals for owner-managed projects."},
}

var gcFAQs = []content.FAQ{
	{Question: "What does a general contractor do?", Answer: "A general contractor manages the whole job: scheduling trades, buying materials, pulling permits and passing inspections."},
	{Question: "How do you price projects?", Answer: "We give a fixed-price, line-item contract after design is complete, with allowances clearly marked."},
	{Question: "How do payments work?", Answer: "Payments follow a milestone schedule tied to completed work, as required by California law."},
}

// GeneralContractor is the /general-contractor service page.
func GeneralContractor() content.Page {
	return content.Page{
		Route: "/general-contractor",
		Kind:  content.KindService,
		Lang:  "en",
		Meta: content.Meta{
			Title:       "General Contractor in Los Angeles | Ridgeline Builders",
			Description: "Licensed general contractor in Los Angeles for whole-home remodels, structural repairs and exterior renovations.",
			Keywords:    []string{"general contractor los angeles", "licensed contractor", "home renovation"},
		},
		Hero: content.Hero{
			Eyebrow:    "General Contracting",
			Heading:    "A General Contractor You Can Reach",
			Subheading: "One project lead, one schedule and one number to call.",
			Image:      "/assets/img/hero-gc.jpg",
			CTA:        estimateCTA,
		},
		Sections: []content.Section{
			{ID: "services", Heading: "General Contracting Services", Cards: gcServices},
			{
				ID:      "standards",
				Heading: "Our Job-Site Standards",
				Bullets: []string{
					"Daily cleanup and dust control",
					"Permits posted on site",
					"Weekly written progress updates",
					"Lien releases with every payment",
				},
			},
		},
		FAQs:          gcFAQs,
		Breadcrumbs:   []content.Crumb{homeCrumb, {Name: "General Contracting", Href: "/general-contractor"}},
		InternalLinks: serviceLinks("/general-contractor"),
		Schemas:       serviceSchemas("General Contracting", "General contractor"),
		Form:          estimateForm(),
	}
}
