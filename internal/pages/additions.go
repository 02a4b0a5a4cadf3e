package pages

import "ridgeline.build/ridgeline-web/internal/content"

var additionTypes = []content.Card{
	{Icon: "addition", Title: "Ground-Floor Additions", Description: "Bedroom, family room and kitchen bump-outs on new foundations."},
	{Icon: "stairs", Title: "Second-Story Additions", Description: "Engineered upper floors with new stairs and structural upgrades."},
	{Icon: "suite", Title: "Primary Suites", Description: "Bedroom, walk-in closet and bath added as one private wing."},
}

var additionProcess = []content.Step{
	{Step: 1, Title: "Feasibility", Description: "Zoning, setbacks and lot coverage checked before design."},
	{Step: 2, Title: "Architecture & Engineering", Description: "Plans, structural calcs and Title 24 energy reports."},
	{Step: 3, Title: "Plan Check", Description: "Submittal, corrections and permit issuance."},
	{Step: 4, Title: "Construction", Description: "Foundation, framing, roofing, systems and finishes."},
	{Step: 5, Title: "Final Inspection", Description: "City sign-off and certificate of completion."},
}

var additionCosts = []content.CostRow{
	{Item: "Ground-floor addition", Low: 35000, High: 50000, Note: "Per square foot"},
	{Item: "Second-story addition", Low: 45000, High: 65000, Note: "Per square foot"},
	{Item: "Architecture & engineering", Low: 1200000, High: 3500000},
}

var additionFAQs = []content.FAQ{
	{Question: "How long does a room addition take?", Answer: "Plan and permit work usually takes three to five months, and construction takes four to seven months depending on size."},
	{Question: "Can I add a second story to my house?", Answer: "Often yes, but the existing foundation and framing must be evaluated. Our engineer confirms what upgrades are needed."},
	{Question: "Will an addition raise my property taxes?", Answer: "In California the new square footage is reassessed, while the existing home keeps its current assessed value."},
}

var additionRelated = []content.Article{
	{Href: "/blog/room-addition-vs-moving", Title: "Room Addition vs. Moving", Excerpt: "Comparing the real cost of adding space against selling and buying."},
}

// RoomAdditions is the /room-additions service page.
func RoomAdditions() content.Page {
	return content.Page{
		Route: "/room-additions",
		Kind:  content.KindService,
		Lang:  "en",
		Meta: content.Meta{
			Title:       "Room Additions in Los Angeles | Ridgeline Builders",
			Description: "Ground-floor and second-story room additions in Los Angeles, from engineering and permits through final inspection.",
			Keywords:    []string{"room addition los angeles", "second story addition", "home addition contractor"},
		},
		Hero: content.Hero{
			Eyebrow:    "Room Additions",
			Heading:    "Room Additions in Los Angeles",
			Subheading: "More space without leaving the neighborhood you love.",
			Image:      "/assets/img/hero-addition.jpg",
			CTA:        estimateCTA,
		},
		Sections: []content.Section{
			{ID: "types", Heading: "Types of Additions", Cards: additionTypes},
			{ID: "process", Heading: "From Plans to Move-In", Steps: additionProcess},
			{ID: "costs", Heading: "Addition Costs", Intro: "Per-square-foot ranges exclude design fees, listed separately.", Costs: additionCosts},
		},
		FAQs:          additionFAQs,
		Breadcrumbs:   []content.Crumb{homeCrumb, {Name: "Room Additions", Href: "/room-additions"}},
		InternalLinks: serviceLinks("/room-additions"),
		Related:       additionRelated,
		Schemas:       serviceSchemas("Room Additions", "Home addition construction"),
		Form:          estimateForm(),
	}
}
