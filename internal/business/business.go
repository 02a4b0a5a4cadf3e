package business

import (
	"fmt"
	"strings"
)

// Hours is an opening-hours entry in schema.org day notation.
type Hours struct {
	Days   []string // e.g. "Monday"
	Opens  string   // "07:00"
	Closes string   // "18:00"
}

// Info is the company identity shared by every page. Treat it as read-only.
type Info struct {
	Name          string
	LegalName     string
	URL           string
	Logo          string
	Image         string
	Phone         string // E.164, e.g. +18185550142
	Email         string
	LicenseNumber string
	LicenseBoard  string
	Street        string
	City          string
	Region        string
	PostalCode    string
	Country       string
	Latitude      float64
	Longitude     float64
	PriceRange    string
	FoundedYear   int
	Hours         []Hours
	ServiceArea   []string
	SameAs        []string
}

// Default is the production business profile.
var Default = Info{
	Name:          "Ridgeline Builders",
	LegalName:     "Ridgeline Builders, Inc.",
	URL:           "https://www.ridgelinebuilders.com",
	Logo:          "https://www.ridgelinebuilders.com/assets/img/logo.png",
	Image:         "https://www.ridgelinebuilders.com/assets/img/crew.jpg",
	Phone:         "+18185550142",
	Email:         "office@ridgelinebuilders.com",
	LicenseNumber: "1048291",
	LicenseBoard:  "CSLB",
	Street:        "14320 Ventura Blvd, Suite 210",
	City:          "Sherman Oaks",
	Region:        "CA",
	PostalCode:    "91423",
	Country:       "US",
	Latitude:      34.1508,
	Longitude:     -118.4490,
	PriceRange:    "$$$",
	FoundedYear:   2006,
	Hours: []Hours{
		{Days: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}, Opens: "07:00", Closes: "18:00"},
		{Days: []string{"Saturday"}, Opens: "08:00", Closes: "14:00"},
	},
	ServiceArea: []string{
		"Sherman Oaks", "Studio City", "Encino", "Burbank", "Glendale", "Pasadena", "Woodland Hills",
	},
	SameAs: []string{
		"https://www.facebook.com/ridgelinebuilders",
		"https://www.instagram.com/ridgelinebuilders",
		"https://www.houzz.com/pro/ridgelinebuilders",
	},
}

// TelHref returns the tel: URI for the business phone.
func (i Info) TelHref() string {
	return "tel:" + i.Phone
}

// PhoneDisplay formats a NANP E.164 number as (818) 555-0142. Other numbers are
// returned unchanged.
func (i Info) PhoneDisplay() string {
	return FormatPhone(i.Phone)
}

// LicenseLabel returns e.g. "CSLB Lic. #1048291".
func (i Info) LicenseLabel() string {
	if i.LicenseNumber == "" {
		return ""
	}
	if i.LicenseBoard == "" {
		return "Lic. #" + i.LicenseNumber
	}
	return fmt.Sprintf("%s Lic. #%s", i.LicenseBoard, i.LicenseNumber)
}

// FullAddress joins the postal address on one line.
func (i Info) FullAddress() string {
	parts := make([]string, 0, 3)
	if i.Street != "" {
		parts = append(parts, i.Street)
	}
	if i.City != "" {
		parts = append(parts, i.City)
	}
	regionZip := strings.TrimSpace(i.Region + " " + i.PostalCode)
	if regionZip != "" {
		parts = append(parts, regionZip)
	}
	return strings.Join(parts, ", ")
}

// Serves reports whether city is in the service area (case-insensitive).
func (i Info) Serves(city string) bool {
	for _, c := range i.ServiceArea {
		if strings.EqualFold(c, strings.TrimSpace(city)) {
			return true
		}
	}
	return false
}

// FormatPhone renders +1NXXNXXXXXX as (NXX) NXX-XXXX.
func FormatPhone(e164 string) string {
	digits := make([]rune, 0, len(e164))
	for _, r := range e164 {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) == 11 && digits[0] == '1' {
		digits = digits[1:]
	}
	if len(digits) != 10 {
		return e164
	}
	d := string(digits)
	return fmt.Sprintf("(%s) %s-%s", d[0:3], d[3:6], d[6:])
}
