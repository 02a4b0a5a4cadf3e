package pages

import "ridgeline.build/ridgeline-web/internal/content"

type article struct {
	Slug        string
	Title       string
	MetaTitle   string
	Description string
	Excerpt     string
	Author      string
	Published   string
	Modified    string
	Image       string
	Body        string
	FAQs        []content.FAQ
	Links       []content.Link
	Related     []string // slugs
}

var articles = []article{
	{
		Slug:        "kitchen-remodel-cost-guide",
		Title:       "How Much Does a Kitchen Remodel Cost in Los Angeles?",
		MetaTitle:   "Kitchen Remodel Cost in Los Angeles (2025 Guide)",
		Description: "Real 2025 price ranges for Los Angeles kitchen remodels, from cosmetic refreshes to full custom layouts, and where the budget goes.",
		Excerpt:     "What a kitchen remodel costs in Los Angeles and where the money goes.",
		Author:      "Marco Delgado",
		Published:   "2025-01-14",
		Modified:    "2025-03-02",
		Image:       "/assets/img/blog-kitchen-cost.jpg",
		Body: `Most Los Angeles kitchen remodels land between **$50,000 and $90,000**.
The biggest swing factors are layout changes and cabinet grade.

## Where the money goes

- Cabinets: 30 to 35 percent
- Labor: 20 to 25 percent
- Counters and backsplash: 10 to 15 percent
- Appliances: 10 to 15 percent

## Saving without cutting corners

Keeping the sink and range where they are avoids new plumbing and gas runs.
See our [kitchen remodeling services](/kitchen-remodeling) for current pricing tiers.`,
		FAQs: []content.FAQ{
			{Question: "Is a kitchen remodel worth it?", Answer: "Mid-range kitchen remodels typically recover a large share of their cost at resale and improve daily living immediately."},
			{Question: "What is the most expensive part of a kitchen remodel?", Answer: "Cabinetry is usually the largest single line item, followed by labor."},
		},
		Links:   []content.Link{{Href: "/kitchen-remodeling", Label: "Kitchen remodeling services"}},
		Related: []string{"room-addition-vs-moving"},
	},
	{
		Slug:        "adu-permits-explained",
		Title:       "ADU Permits Explained: What Los Angeles Plan Check Wants",
		MetaTitle:   "ADU Permits in Los Angeles Explained",
		Description: "A plain-English walkthrough of ADU permits in Los Angeles: setbacks, fire access, utilities, plan check corrections and timelines.",
		Excerpt:     "Setbacks, utilities and plan check for accessory dwelling units.",
		Author:      "Dana Whitfield",
		Published:   "2025-02-03",
		Image:       "/assets/img/blog-adu-permits.jpg",
		Body: `California law makes ADUs easier to approve, but plan check still looks closely at a few items.

## Setbacks and height

Detached ADUs need four-foot side and rear setbacks in most zones.

## Fire access

Lots far from a fire hydrant may need sprinklers in the new unit.

## Utilities

Sewer lateral capacity and electrical panel size are the most common surprises.
Our [ADU construction team](/adu-construction) handles every correction cycle.`,
		FAQs: []content.FAQ{
			{Question: "How long does ADU plan check take in Los Angeles?", Answer: "Initial review typically takes four to eight weeks, plus time for any correction cycles."},
		},
		Links:   []content.Link{{Href: "/adu-construction", Label: "ADU construction"}, {Href: "/locations/woodland-hills", Label: "ADUs in Woodland Hills"}},
		Related: []string{"kitchen-remodel-cost-guide"},
	},
	{
		Slug:        "room-addition-vs-moving",
		Title:       "Room Addition vs. Moving: Which Costs Less?",
		MetaTitle:   "Room Addition vs. Moving: Cost Comparison",
		Description: "Compare the cost of a room addition with selling and buying in Los Angeles, including transaction costs, taxes and timelines.",
		Excerpt:     "Comparing the real cost of adding space against selling and buying.",
		Author:      "Marco Delgado",
		Published:   "2024-11-20",
		Image:       "/assets/img/blog-addition-vs-moving.jpg",
		Body: `Selling and buying in Los Angeles can cost **8 to 10 percent** of the home price in commissions, transfer taxes and moving.

## When an addition wins

If you like your neighborhood and your lot allows it, an addition usually costs less than the transaction costs of moving up.

## When moving wins

Small lots, steep hillsides and strict historic districts can make additions impractical.
Start with a feasibility review from our [room additions team](/room-additions).`,
		Links:   []content.Link{{Href: "/room-additions", Label: "Room additions"}},
		Related: []string{"kitchen-remodel-cost-guide", "adu-permits-explained"},
	},
}

func articleRoute(slug string) string {
	return "/blog/" + slug
}

func articleBySlug(slug string) (article, bool) {
	for _, a := range articles {
		if a.Slug == slug {
			return a, true
		}
	}
	return article{}, false
}

func articlePage(a article) content.Page {
	route := articleRoute(a.Slug)
	related := make([]content.Article, 0, len(a.Related))
	for _, slug := range a.Related {
		if other, ok := articleBySlug(slug); ok {
			related = append(related, content.Article{Href: articleRoute(other.Slug), Title: other.Title, Excerpt: other.Excerpt})
		}
	}
	return content.Page{
		Route: route,
		Kind:  content.KindArticle,
		Lang:  "en",
		Meta: content.Meta{
			Title:       a.MetaTitle,
			Description: a.Description,
			OGImage:     a.Image,
		},
		Hero: content.Hero{
			Eyebrow: "Blog",
			Heading: a.Title,
			Image:   a.Image,
			CTA:     estimateCTA,
		},
		Sections:      []content.Section{{ID: "article", Body: a.Body}},
		FAQs:          a.FAQs,
		Breadcrumbs:   []content.Crumb{homeCrumb, blogCrumb, {Name: a.Title, Href: route}},
		InternalLinks: a.Links,
		Related:       related,
		Schemas: content.Schemas{
			Article:    true,
			FAQ:        len(a.FAQs) > 0,
			Breadcrumb: true,
			ArticleInfo: &content.ArticleInfo{
				Headline:  a.Title,
				Author:    a.Author,
				Published: a.Published,
				Modified:  a.Modified,
				Image:     a.Image,
			},
		},
		Form: estimateForm(),
	}
}

// Articles returns every blog article page.
func Articles() []content.Page {
	out := make([]content.Page, 0, len(articles))
	for _, a := range articles {
		out = append(out, articlePage(a))
	}
	return out
}

// BlogIndex is the /blog hub listing every article.
func BlogIndex() content.Page {
	teasers := make([]content.Article, 0, len(articles))
	for _, a := range articles {
		teasers = append(teasers, content.Article{Href: articleRoute(a.Slug), Title: a.Title, Excerpt: a.Excerpt})
	}
	return content.Page{
		Route: "/blog",
		Kind:  content.KindHub,
		Lang:  "en",
		Meta: content.Meta{
			Title:       "Remodeling Blog | Ridgeline Builders",
			Description: "Cost guides, permit explainers and planning advice for Los Angeles homeowners from the Ridgeline Builders team.",
		},
		Hero: content.Hero{
			Eyebrow:    "Blog",
			Heading:    "Remodeling Advice From the Job Site",
			Subheading: "Costs, permits and planning, written by the people who build.",
			Image:      "/assets/img/hero-blog.jpg",
		},
		Breadcrumbs:   []content.Crumb{homeCrumb, blogCrumb},
		InternalLinks: serviceLinks(""),
		Related:       teasers,
		Schemas:       content.Schemas{Breadcrumb: true},
		Form:          estimateForm(),
	}
}
