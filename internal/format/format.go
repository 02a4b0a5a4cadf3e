package format

import (
	"fmt"
	"strings"
	"time"
)

// Currency formats an amount in minor units. Whole-dollar USD amounts drop the cents.
// Example: Currency(2500000, "USD") => "$25,000"
func Currency(minor int64, currency string) string {
	currency = strings.ToUpper(currency)
	switch currency {
	case "USD", "":
		neg := minor < 0
		if neg {
			minor = -minor
		}
		major := minor / 100
		cents := minor % 100
		out := "$" + thousandSep(major)
		if cents != 0 {
			out += fmt.Sprintf(".%02d", cents)
		}
		if neg {
			return "-" + out
		}
		return out
	default:
		// generic minor units
		return fmt.Sprintf("%s %s", currency, thousandSep(minor))
	}
}

// CostRange formats a low/high pair of USD cents, e.g. "$25,000 – $60,000".
// A zero high renders as "From $25,000"; equal bounds render once.
func CostRange(low, high int64) string {
	switch {
	case high == 0 && low == 0:
		return "Call for pricing"
	case high == 0:
		return "From " + Currency(low, "USD")
	case low == high:
		return Currency(low, "USD")
	default:
		return Currency(low, "USD") + " – " + Currency(high, "USD")
	}
}

func thousandSep(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var b strings.Builder
	for i, c := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// Date formats time in a locale-friendly short form.
func Date(t time.Time, lang string) string {
	if t.IsZero() {
		return ""
	}
	switch strings.ToLower(lang) {
	case "es":
		return fmt.Sprintf("%d de %s de %d", t.Day(), monthsES[t.Month()-1], t.Year())
	default:
		return t.Format("Jan 2, 2006")
	}
}

// ISODate parses a YYYY-MM-DD string and formats it for lang. Unparseable input is
// returned unchanged.
func ISODate(v, lang string) string {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(v))
	if err != nil {
		return v
	}
	return Date(t, lang)
}

var monthsES = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}
