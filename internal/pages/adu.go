package pages

import "ridgeline.build/ridgeline-web/internal/content"

var aduTypes = []content.Card{
	{Icon: "adu", Title: "Detached ADUs", Description: "Standalone backyard homes up to 1,200 square feet."},
	{Icon: "garage", Title: "Garage Conversions", Description: "Existing garages converted into legal living units."},
	{Icon: "attached", Title: "Attached ADUs", Description: "Units sharing a wall with the main house with separate entry."},
	{Icon: "jadu", Title: "Junior ADUs", Description: "Up to 500 square feet carved from the existing home."},
}

var aduProcess = []content.Step{
	{Step: 1, Title: "Site Review", Description: "Utilities, setbacks, fire access and easements evaluated."},
	{Step: 2, Title: "Plans", Description: "Architectural, structural and energy documents prepared."},
	{Step: 3, Title: "Permits", Description: "Submittal through LADBS or your city with corrections handled."},
	{Step: 4, Title: "Build", Description: "Foundation to finishes with utility connections."},
	{Step: 5, Title: "Certificate of Occupancy", Description: "Final inspection so the unit can be legally rented."},
}

var aduCosts = []content.CostRow{
	{Item: "Garage conversion", Low: 9000000, High: 15000000},
	{Item: "Detached ADU (600 sq ft)", Low: 18000000, High: 26000000},
	{Item: "Detached ADU (1,000 sq ft)", Low: 26000000, High: 38000000},
	{Item: "Utility upgrades", Low: 800000, High: 3000000, Note: "Sewer lateral, panel, water meter"},
}

var aduFAQs = []content.FAQ{
	{Question: "How big can an ADU be in Los Angeles?", Answer: "Detached ADUs can generally be up to 1,200 square feet, subject to lot size, setbacks and fire department access."},
	{Question: "How long does it take to build an ADU?", Answer: "Expect three to five months for plans and permits and five to seven months of construction."},
	{Question: "Can I rent out my ADU?", Answer: "Yes. Once the certificate of occupancy is issued, ADUs can be rented for terms of 30 days or longer."},
	{Question: "Do I need separate utility meters?", Answer: "Not usually. Most ADUs share the main meter, though a separate electrical meter is sometimes worth adding for rentals."},
}

var aduRelated = []content.Article{
	{Href: "/blog/adu-permits-explained", Title: "ADU Permits Explained", Excerpt: "What plan check looks for and how to avoid correction cycles."},
}

// ADUConstruction is the /adu-construction service page.
func ADUConstruction() content.Page {
	return content.Page{
		Route: "/adu-construction",
		Kind:  content.KindService,
		Lang:  "en",
		Meta: content.Meta{
			Title:       "ADU Builder in Los Angeles | Ridgeline Builders",
			Description: "Design-build ADU construction in Los Angeles: detached units, garage conversions and junior ADUs with permits handled end to end.",
			Keywords:    []string{"adu builder los angeles", "garage conversion", "accessory dwelling unit"},
		},
		Hero: content.Hero{
			Eyebrow:    "ADU Construction",
			Heading:    "ADU Construction in Los Angeles",
			Subheading: "Backyard homes for family, rental income or a home office.",
			Image:      "/assets/img/hero-adu.jpg",
			CTA:        estimateCTA,
		},
		Sections: []content.Section{
			{ID: "types", Heading: "ADU Types We Build", Cards: aduTypes},
			{ID: "process", Heading: "ADU Timeline", Steps: aduProcess},
			{ID: "costs", Heading: "ADU Costs", Costs: aduCosts},
		},
		FAQs:          aduFAQs,
		Breadcrumbs:   []content.Crumb{homeCrumb, {Name: "ADU Construction", Href: "/adu-construction"}},
		InternalLinks: serviceLinks("/adu-construction"),
		Related:       aduRelated,
		Schemas:       serviceSchemas("ADU Construction", "Accessory dwelling unit construction"),
		Form:          estimateForm(),
		Parallax: &content.Parallax{
			Image:   "/assets/img/parallax-adu.jpg",
			Heading: "Turn Your Backyard Into Income",
			Body:    "A permitted ADU can add rental income and long-term property value.",
			CTA:     content.CTA{Label: "Read the Permit Guide", Href: "/blog/adu-permits-explained"},
		},
	}
}
