package pages

import (
	"fmt"

	"ridgeline.build/ridgeline-web/internal/content"
)

// cityProfile is the per-city copy that varies across location pages.
type cityProfile struct {
	Slug          string
	Name          string
	Intro         string
	HousingNote   string
	Neighborhoods []string
	Nearby        []string // slugs of neighboring city pages
	PermitOffice  string
}

var cities = []cityProfile{
	{
		Slug:          "sherman-oaks",
		Name:          "Sherman Oaks",
		Intro:         "Our office is on Ventura Boulevard, so Sherman Oaks jobs get the shortest drive and the fastest response.",
		HousingNote:   "Post-war ranch homes south of the boulevard are prime candidates for open-plan kitchens and second stories.",
		Neighborhoods: []string{"Longridge Estates", "Chandler Estates", "Royal Woods", "Mulholland Corridor"},
		Nearby:        []string{"studio-city", "encino"},
		PermitOffice:  "LADBS Van Nuys",
	},
	{
		Slug:          "studio-city",
		Name:          "Studio City",
		Intro:         "From Colfax Meadows to the hillside streets above Ventura, we remodel Studio City homes of every era.",
		HousingNote:   "Hillside lots often need engineered retaining walls and soils reports before additions.",
		Neighborhoods: []string{"Colfax Meadows", "Silver Triangle", "Woodbridge Park", "Fryman Canyon"},
		Nearby:        []string{"sherman-oaks", "burbank"},
		PermitOffice:  "LADBS Van Nuys",
	},
	{
		Slug:          "encino",
		Name:          "Encino",
		Intro:         "Encino's large lots leave room for ADUs, pool houses and generous single-story additions.",
		HousingNote:   "Many Encino homes were built in the 1950s and benefit from electrical service upgrades during remodels.",
		Neighborhoods: []string{"Encino Hills", "Lake Balboa Border", "Amestoy Estates", "Rancho Estates"},
		Nearby:        []string{"sherman-oaks", "woodland-hills"},
		PermitOffice:  "LADBS Van Nuys",
	},
	{
		Slug:          "burbank",
		Name:          "Burbank",
		Intro:         "We work with Burbank's own building division on kitchens, baths and backyard ADUs across the city.",
		HousingNote:   "Burbank's Magnolia Park bungalows reward careful, period-appropriate remodeling.",
		Neighborhoods: []string{"Magnolia Park", "Rancho Equestrian", "Burbank Hills", "Media District"},
		Nearby:        []string{"glendale", "studio-city"},
		PermitOffice:  "Burbank Building Division",
	},
	{
		Slug:          "glendale",
		Name:          "Glendale",
		Intro:         "Glendale homeowners call us for hillside additions and kitchen remodels in historic districts.",
		HousingNote:   "Homes in Glendale's historic districts may need design review before exterior changes.",
		Neighborhoods: []string{"Rossmoyne", "Verdugo Woodlands", "Adams Hill", "Chevy Chase Canyon"},
		Nearby:        []string{"burbank", "pasadena"},
		PermitOffice:  "Glendale Building & Safety",
	},
	{
		Slug:          "pasadena",
		Name:          "Pasadena",
		Intro:         "Craftsman bungalows and mid-century homes in Pasadena deserve builders who respect original detail.",
		HousingNote:   "Landmark districts in Pasadena require historic preservation review for visible changes.",
		Neighborhoods: []string{"Bungalow Heaven", "Madison Heights", "Linda Vista", "San Rafael"},
		Nearby:        []string{"glendale"},
		PermitOffice:  "Pasadena Permit Center",
	},
	{
		Slug:          "woodland-hills",
		Name:          "Woodland Hills",
		Intro:         "In Woodland Hills we build ADUs and additions designed for the West Valley's summer heat.",
		HousingNote:   "Title 24 energy rules make insulation and HVAC sizing central to every West Valley addition.",
		Neighborhoods: []string{"Walnut Acres", "Woodland Hills Estates", "Warner Center", "Carlton Terrace"},
		Nearby:        []string{"encino"},
		PermitOffice:  "LADBS West Valley",
	},
}

var cityServices = []content.Card{
	{Icon: "kitchen", Title: "Kitchen Remodeling", Description: "Layouts, cabinetry and counters installed by our own crews."},
	{Icon: "bath", Title: "Bathroom Remodeling", Description: "Showers, tubs and vanities with waterproofing done right."},
	{Icon: "addition", Title: "Room Additions", Description: "Single and second-story additions with engineering included."},
	{Icon: "adu", Title: "ADUs", Description: "Detached units and garage conversions, fully permitted."},
}

func cityBySlug(slug string) (cityProfile, bool) {
	for _, c := range cities {
		if c.Slug == slug {
			return c, true
		}
	}
	return cityProfile{}, false
}

func cityRoute(slug string) string {
	return "/locations/" + slug
}

// Location builds the page for one city profile.
func Location(c cityProfile) content.Page {
	route := cityRoute(c.Slug)

	neighborhoods := make([]content.Card, 0, len(c.Neighborhoods))
	for _, n := range c.Neighborhoods {
		neighborhoods = append(neighborhoods, content.Card{
			Icon:        "pin",
			Title:       n,
			Description: fmt.Sprintf("Remodels, additions and ADUs in %s, %s.", n, c.Name),
		})
	}

	nearby := make([]content.Link, 0, len(c.Nearby))
	for _, slug := range c.Nearby {
		if other, ok := cityBySlug(slug); ok {
			nearby = append(nearby, content.Link{Href: cityRoute(other.Slug), Label: other.Name})
		}
	}

	faqs := []content.FAQ{
		{
			Question: fmt.Sprintf("Do you pull permits in %s?", c.Name),
			Answer:   fmt.Sprintf("Yes. We submit plans to %s and schedule every inspection for %s projects.", c.PermitOffice, c.Name),
		},
		{
			Question: fmt.Sprintf("How quickly can you start a project in %s?", c.Name),
			Answer:   "Consultations are usually scheduled within a week, and construction typically begins four to eight weeks after signing.",
		},
		{
			Question: fmt.Sprintf("Which %s neighborhoods do you work in?", c.Name),
			Answer:   fmt.Sprintf("All of them, including %s.", joinNames(c.Neighborhoods)),
		},
	}

	return content.Page{
		Route: route,
		Kind:  content.KindLocation,
		Lang:  "en",
		City:  c.Name,
		Meta: content.Meta{
			Title:       fmt.Sprintf("%s Remodeling Contractor | Ridgeline", c.Name),
			Description: fmt.Sprintf("Kitchen, bath, addition and ADU contractor serving %s. Licensed, insured and local. Free in-home estimates.", c.Name),
			Keywords: []string{
				fmt.Sprintf("%s contractor", c.Name),
				fmt.Sprintf("%s kitchen remodel", c.Name),
				fmt.Sprintf("%s adu builder", c.Name),
			},
		},
		Hero: content.Hero{
			Eyebrow:    c.Name,
			Heading:    fmt.Sprintf("Remodeling Contractor in %s", c.Name),
			Subheading: c.Intro,
			Image:      "/assets/img/hero-" + c.Slug + ".jpg",
			CTA:        estimateCTA,
		},
		Sections: []content.Section{
			{ID: "services", Heading: fmt.Sprintf("Services in %s", c.Name), Cards: cityServices},
			{ID: "neighborhoods", Heading: fmt.Sprintf("%s Neighborhoods We Serve", c.Name), Intro: c.HousingNote, Cards: neighborhoods},
		},
		FAQs:          faqs,
		Breadcrumbs:   []content.Crumb{homeCrumb, areasCrumb, {Name: c.Name, Href: route}},
		InternalLinks: serviceLinks("/service-areas"),
		Nearby:        nearby,
		Schemas: content.Schemas{
			LocalBusiness: true,
			FAQ:           true,
			Breadcrumb:    true,
		},
		Form: estimateForm(),
		Map:  &content.MapEmbed{City: c.Name + ", CA", Height: mapHeight},
	}
}

// Locations returns one page per city, in profile order.
func Locations() []content.Page {
	out := make([]content.Page, 0, len(cities))
	for _, c := range cities {
		out = append(out, Location(c))
	}
	return out
}

// ServiceAreas is the /service-areas hub linking every city page.
func ServiceAreas() content.Page {
	cards := make([]content.Card, 0, len(cities))
	links := make([]content.Link, 0, len(cities))
	for _, c := range cities {
		cards = append(cards, content.Card{Icon: "pin", Title: c.Name, Description: c.Intro})
		links = append(links, content.Link{Href: cityRoute(c.Slug), Label: c.Name + " Remodeling"})
	}
	return content.Page{
		Route: "/service-areas",
		Kind:  content.KindHub,
		Lang:  "en",
		Meta: content.Meta{
			Title:       "Service Areas | Ridgeline Builders",
			Description: "Ridgeline Builders serves Sherman Oaks, Studio City, Encino, Burbank, Glendale, Pasadena and Woodland Hills.",
			Keywords:    []string{"san fernando valley contractor", "remodeling near me"},
		},
		Hero: content.Hero{
			Eyebrow:    "Service Areas",
			Heading:    "Where We Build",
			Subheading: "Local crews across the San Fernando Valley and the foothill cities.",
			Image:      "/assets/img/hero-areas.jpg",
			CTA:        estimateCTA,
		},
		Sections: []content.Section{
			{ID: "cities", Heading: "Cities We Serve", Cards: cards},
		},
		Breadcrumbs:   []content.Crumb{homeCrumb, areasCrumb},
		InternalLinks: links,
		Schemas: content.Schemas{
			LocalBusiness: true,
			Breadcrumb:    true,
		},
		Form: estimateForm(),
		Map:  &content.MapEmbed{City: "San Fernando Valley, CA", Height: mapHeight},
	}
}

func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	}
	out := ""
	for i, n := range names {
		switch {
		case i == len(names)-1:
			out += "and " + n
		default:
			out += n + ", "
		}
	}
	return out
}
