package typemanager

import (
	"regexp"
	"strings"
)

var nonDigit = regexp.MustCompile(`\D`)

func digitsOf(s string) string {
	return nonDigit.ReplaceAllString(s, "")
}

// trunkDigits returns the national number with its leading trunk zero,
// removing an international prefix for country code cc.
func trunkDigits(s, cc string) string {
	d := digitsOf(s)
	switch {
	case strings.HasPrefix(d, "00"+cc):
		d = d[2+len(cc):]
	case strings.HasPrefix(strings.TrimSpace(s), "+") && strings.HasPrefix(d, cc):
		d = d[len(cc):]
	default:
		return d
	}
	return "0" + strings.TrimPrefix(d, "0")
}

func compactUpper(s string) string {
	return strings.ToUpper(strings.NewReplacer(" ", "", "-", "").Replace(s))
}

// splitAt joins the pieces of s cut at the given offsets with sep. s is
// returned unchanged when it is too short.
func splitAt(s, sep string, offsets ...int) string {
	if len(offsets) == 0 || len(s) <= offsets[len(offsets)-1] {
		return s
	}
	parts := make([]string, 0, len(offsets)+1)
	prev := 0
	for _, o := range offsets {
		parts = append(parts, s[prev:o])
		prev = o
	}
	parts = append(parts, s[prev:])
	return strings.Join(parts, sep)
}

func nanpPhone(region string) RegionRecord {
	return RegionRecord{
		Name:    region,
		Pattern: regexp.MustCompile(`^(?:\+?1[\s.-]?)?(?:\(\s*[2-9]\d{2}\s*\)|[2-9]\d{2})[\s.-]?[2-9]\d{2}[\s.-]?\d{4}$`),
		ToNeutral: func(s string) string {
			d := digitsOf(s)
			if len(d) == 11 && d[0] == '1' {
				d = d[1:]
			}
			return d
		},
		FromNeutral: func(s string) string {
			d := digitsOf(s)
			if len(d) != 10 {
				return s
			}
			return "(" + d[0:3] + ") " + d[3:6] + "-" + d[6:10]
		},
	}
}

// PhoneNumberTable holds phone number rules. Neutral form is the national
// number as digits with its trunk prefix; the default record keeps a
// leading "+".
var PhoneNumberTable = NewRegionTable("PhoneNumber",
	nanpPhone("US"),
	nanpPhone("CA"),
	RegionRecord{
		Name:      "GB",
		Pattern:   regexp.MustCompile(`^(?:(?:\+|00)44[\s-]?(?:\(0\)[\s-]?)?|0)\d(?:[\s-]?\d){8,9}$`),
		ToNeutral: func(s string) string { return trunkDigits(s, "44") },
		FromNeutral: func(s string) string {
			d := digitsOf(s)
			if len(d) != 11 {
				return s
			}
			if strings.HasPrefix(d, "02") {
				return splitAt(d, " ", 3, 7)
			}
			return splitAt(d, " ", 5)
		},
	},
	RegionRecord{
		Name:      "FR",
		Pattern:   regexp.MustCompile(`^(?:(?:\+|00)33[\s.-]?(?:\(0\)[\s.-]?)?|0)[1-9](?:[\s.-]?\d{2}){4}$`),
		ToNeutral: func(s string) string { return trunkDigits(s, "33") },
		FromNeutral: func(s string) string {
			d := digitsOf(s)
			if len(d) != 10 {
				return s
			}
			return splitAt(d, " ", 2, 4, 6, 8)
		},
	},
	RegionRecord{
		Name:    "DE",
		Pattern: regexp.MustCompile(`^(?:(?:\+|00)49[\s-]?(?:\(0\)[\s-]?)?|0)[1-9]\d*(?:[\s/-]?\d+)*$`),
		Validate: func(s string) bool {
			n := len(trunkDigits(s, "49"))
			return n >= 6 && n <= 13
		},
		ToNeutral: func(s string) string { return trunkDigits(s, "49") },
	},
	RegionRecord{
		Name:      "NL",
		Pattern:   regexp.MustCompile(`^(?:(?:\+|00)31[\s-]?(?:\(0\)[\s-]?)?|0)[1-9](?:[\s-]?\d){8}$`),
		ToNeutral: func(s string) string { return trunkDigits(s, "31") },
		FromNeutral: func(s string) string {
			d := digitsOf(s)
			switch {
			case len(d) != 10:
				return s
			case strings.HasPrefix(d, "06"):
				return splitAt(d, " ", 2)
			}
			return splitAt(d, " ", 3, 6)
		},
	},
	RegionRecord{
		Name:    "JP",
		Pattern: regexp.MustCompile(`^(?:(?:\+|00)81[\s-]?|0)\d{1,4}[\s-]?\d{1,4}[\s-]?\d{4}$`),
		Validate: func(s string) bool {
			n := len(trunkDigits(s, "81"))
			return n == 10 || n == 11
		},
		ToNeutral: func(s string) string { return trunkDigits(s, "81") },
		FromNeutral: func(s string) string {
			d := digitsOf(s)
			switch {
			case len(d) == 11:
				return splitAt(d, "-", 3, 7)
			case len(d) != 10:
				return s
			case strings.HasPrefix(d, "03"), strings.HasPrefix(d, "06"):
				return splitAt(d, "-", 2, 6)
			}
			return splitAt(d, "-", 3, 6)
		},
	},
	RegionRecord{
		Name:    DefaultRegion,
		Pattern: regexp.MustCompile(`^\+?[\d\s().-]{7,20}$`),
		// E.164 allows at most 15 digits.
		Validate: func(s string) bool {
			n := len(digitsOf(s))
			return n >= 7 && n <= 15
		},
		ToNeutral: func(s string) string {
			if strings.HasPrefix(s, "+") {
				return "+" + digitsOf(s)
			}
			return digitsOf(s)
		},
	},
)

func fiveDigitPostal(region string) RegionRecord {
	return RegionRecord{Name: region, Pattern: regexp.MustCompile(`^\d{5}$`)}
}

// PostalCodeTable holds postal code rules. Neutral form is upper case
// without spaces or dashes.
var PostalCodeTable = NewRegionTable("PostalCode",
	RegionRecord{
		Name:      "US",
		Pattern:   regexp.MustCompile(`^\d{5}(?:[\s-]?\d{4})?$`),
		ToNeutral: digitsOf,
		FromNeutral: func(s string) string {
			if d := digitsOf(s); len(d) == 9 {
				return d[0:5] + "-" + d[5:9]
			}
			return s
		},
	},
	RegionRecord{
		Name:      "CA",
		Pattern:   regexp.MustCompile(`^(?i)[ABCEGHJ-NPRSTVXY]\d[ABCEGHJ-NPRSTV-Z][\s-]?\d[ABCEGHJ-NPRSTV-Z]\d$`),
		ToNeutral: compactUpper,
		FromNeutral: func(s string) string {
			c := compactUpper(s)
			if len(c) != 6 {
				return s
			}
			return c[0:3] + " " + c[3:6]
		},
	},
	RegionRecord{
		Name:      "GB",
		Pattern:   regexp.MustCompile(`^(?i)(?:GIR\s?0AA|[A-Z]{1,2}\d[A-Z\d]?\s?\d[A-Z]{2})$`),
		ToNeutral: compactUpper,
		FromNeutral: func(s string) string {
			c := compactUpper(s)
			if len(c) < 5 {
				return s
			}
			return c[:len(c)-3] + " " + c[len(c)-3:]
		},
	},
	fiveDigitPostal("FR"),
	fiveDigitPostal("DE"),
	RegionRecord{
		Name:      "NL",
		Pattern:   regexp.MustCompile(`^[1-9]\d{3}\s?[A-Za-z]{2}$`),
		ToNeutral: compactUpper,
		FromNeutral: func(s string) string {
			c := compactUpper(s)
			if len(c) != 6 {
				return s
			}
			return c[0:4] + " " + c[4:6]
		},
	},
	RegionRecord{
		Name:      "JP",
		Pattern:   regexp.MustCompile(`^\d{3}-?\d{4}$`),
		ToNeutral: digitsOf,
		FromNeutral: func(s string) string {
			if d := digitsOf(s); len(d) == 7 {
				return d[0:3] + "-" + d[3:7]
			}
			return s
		},
	},
	RegionRecord{
		Name:    DefaultRegion,
		Pattern: regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9 -]{0,8}[A-Za-z0-9])?$`),
	},
)
