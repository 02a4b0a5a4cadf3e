package pages

import "ridgeline.build/ridgeline-web/internal/content"

var homeServices = []content.Card{
	{Icon: "kitchen", Title: "Kitchen Remodeling", Description: "Layouts, cabinetry, counters and lighting built around how your family cooks."},
	{Icon: "bath", Title: "Bathroom Remodeling", Description: "Curbless showers, tile work and vanities finished to last decades."},
	{Icon: "addition", Title: "Room Additions", Description: "Second stories and bump-outs engineered, permitted and tied into your home."},
	{Icon: "adu", Title: "ADU Construction", Description: "Detached and garage-conversion ADUs from plans through final inspection."},
}

var homeReasons = []content.Card{
	{Icon: "license", Title: "Licensed & Insured", Description: "CSLB licensed general contractor with full liability and workers' comp coverage."},
	{Icon: "calendar", Title: "Fixed Schedules", Description: "A written timeline before demo day and weekly progress reports after."},
	{Icon: "shield", Title: "10-Year Workmanship Warranty", Description: "We stand behind framing, waterproofing and finish work in writing."},
}

var homeProcess = []content.Step{
	{Step: 1, Title: "Free Consultation", Description: "We walk the space with you, measure, and talk budget honestly."},
	{Step: 2, Title: "Design & Estimate", Description: "You get drawings, a line-item estimate and a realistic schedule."},
	{Step: 3, Title: "Permits", Description: "We prepare plans and handle plan check with the city."},
	{Step: 4, Title: "Build", Description: "A dedicated project lead runs the job site every day."},
	{Step: 5, Title: "Walkthrough", Description: "We close out the punch list with you before final payment."},
}

var homeFAQs = []content.FAQ{
	{Question: "What areas do you serve?", Answer: "We work throughout the San Fernando Valley and nearby cities including Sherman Oaks, Studio City, Encino, Burbank, Glendale, Pasadena and Woodland Hills."},
	{Question: "Are you licensed and insured?", Answer: "Yes. Ridgeline Builders holds an active California CSLB general contractor license and carries general liability and workers' compensation insurance."},
	{Question: "Do you handle permits?", Answer: "Yes. We prepare permit drawings, submit to the building department and schedule every inspection through final sign-off."},
	{Question: "How soon can you start?", Answer: "Most projects start four to eight weeks after signing, depending on permit timelines and material lead times."},
}

var homeLinks = []content.Link{
	{Href: "/kitchen-remodeling", Label: "Kitchen Remodeling"},
	{Href: "/bathroom-remodeling", Label: "Bathroom Remodeling"},
	{Href: "/room-additions", Label: "Room Additions"},
	{Href: "/adu-construction", Label: "ADU Construction"},
	{Href: "/service-areas", Label: "Service Areas"},
	{Href: "/about", Label: "About Ridgeline"},
}

var homeRelated = []content.Article{
	{Href: "/blog/kitchen-remodel-cost-guide", Title: "Kitchen Remodel Cost Guide", Excerpt: "What a kitchen remodel costs in Los Angeles and where the money goes."},
	{Href: "/blog/adu-permits-explained", Title: "ADU Permits Explained", Excerpt: "Setbacks, utilities and plan check for accessory dwelling units."},
}

// Home is the landing page at /.
func Home() content.Page {
	return content.Page{
		Route: "/",
		Kind:  content.KindHome,
		Lang:  "en",
		Meta: content.Meta{
			Title:       "Ridgeline Builders | Los Angeles Remodeling Contractor",
			Description: "Licensed Los Angeles general contractor for kitchen and bath remodels, room additions and ADUs. Free in-home estimates and fixed schedules.",
			Keywords:    []string{"general contractor los angeles", "home remodeling", "kitchen remodel", "adu builder"},
		},
		Hero: content.Hero{
			Eyebrow:    "Licensed General Contractor",
			Heading:    "Remodeling and Additions Built Right the First Time",
			Subheading: "Design-build construction across the San Fernando Valley since 2006.",
			Image:      "/assets/img/hero-home.jpg",
			CTA:        estimateCTA,
			Secondary:  content.CTA{Label: "See Our Services", Href: "/general-contractor"},
		},
		Sections: []content.Section{
			{ID: "services", Heading: "What We Build", Intro: "One team from first sketch to final inspection.", Cards: homeServices},
			{ID: "why", Heading: "Why Homeowners Choose Ridgeline", Cards: homeReasons},
			{ID: "process", Heading: "How a Project Runs", Steps: homeProcess},
		},
		FAQs:          homeFAQs,
		Breadcrumbs:   []content.Crumb{homeCrumb},
		InternalLinks: homeLinks,
		Related:       homeRelated,
		Schemas: content.Schemas{
			LocalBusiness: true,
			FAQ:           true,
			Breadcrumb:    true,
		},
		Form: estimateForm(),
		Parallax: &content.Parallax{
			Image:   "/assets/img/parallax-framing.jpg",
			Heading: "Built by Our Own Crews",
			Body:    "Framing, finish carpentry and project management stay in-house, so quality never gets subcontracted away.",
			CTA:     content.CTA{Label: "Meet the Team", Href: "/about"},
		},
	}
}
