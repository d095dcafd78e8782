package culture

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// Invariant is the name of the culture-independent record. It backs the
// neutral formats used for storage.
const Invariant = "invariant"

// NumberFormat describes how numbers, currency or percent values are written
// in a culture. Patterns use "n" for the number, "$" for the currency symbol,
// "%" for the percent symbol and "-" for the negative symbol, for example
// "-n", "(n)", "($n)" or "-n %".
type NumberFormat struct {
	DecimalSep string `json:"decimalSep" yaml:"decimalSep" validate:"required"`
	GroupSep   string `json:"groupSep" yaml:"groupSep"`
	GroupSizes []int  `json:"groupSizes" yaml:"groupSizes" validate:"dive,min=0"`
	NegPattern string `json:"negPattern" yaml:"negPattern" validate:"required,numpattern"`
	PosPattern string `json:"posPattern" yaml:"posPattern" validate:"required,numpattern"`
	NegSymbol  string `json:"negSymbol" yaml:"negSymbol" validate:"required"`
	PosSymbol  string `json:"posSymbol" yaml:"posSymbol"`
	Symbol     string `json:"symbol" yaml:"symbol"`
	Decimals   int    `json:"decimals" yaml:"decimals" validate:"min=0,max=10"`
}

// UsesParentheses reports whether the negative pattern wraps the number in
// parentheses instead of using the negative symbol.
func (f NumberFormat) UsesParentheses() bool {
	return strings.ContainsRune(f.NegPattern, '(')
}

// DateTimeFormat holds the calendar patterns and names of a culture.
// Patterns use the .NET/Globalize letters: y M d for dates, H h m s t for
// times, "/" for the date separator and ":" for the time separator. Text in
// single or double quotes is literal.
type DateTimeFormat struct {
	ShortDatePattern string   `json:"shortDatePattern" yaml:"shortDatePattern" validate:"required"`
	LongDatePattern  string   `json:"longDatePattern" yaml:"longDatePattern" validate:"required"`
	AbbrDatePattern  string   `json:"abbrDatePattern" yaml:"abbrDatePattern" validate:"required"`
	YearMonthPattern string   `json:"yearMonthPattern" yaml:"yearMonthPattern" validate:"required"`
	MonthDayPattern  string   `json:"monthDayPattern" yaml:"monthDayPattern" validate:"required"`
	Months           []string `json:"months" yaml:"months" validate:"len=12,dive,required"`
	MonthsAbbr       []string `json:"monthsAbbr" yaml:"monthsAbbr" validate:"len=12,dive,required"`
	Days             []string `json:"days" yaml:"days" validate:"len=7,dive,required"`
	DaysAbbr         []string `json:"daysAbbr" yaml:"daysAbbr" validate:"len=7,dive,required"`
	ShortTimePattern string   `json:"shortTimePattern" yaml:"shortTimePattern" validate:"required"`
	LongTimePattern  string   `json:"longTimePattern" yaml:"longTimePattern" validate:"required"`
	AM               string   `json:"am" yaml:"am"`
	PM               string   `json:"pm" yaml:"pm"`
	TimeSep          string   `json:"timeSep" yaml:"timeSep" validate:"required"`
	ShortDateSep     string   `json:"shortDateSep" yaml:"shortDateSep" validate:"required"`
	TwoDigitYearMax  int      `json:"twoDigitYearMax" yaml:"twoDigitYearMax" validate:"min=100,max=9999"`
}

// Info is the complete record of one culture. Values returned by a Provider
// are shared and must be treated as read-only; use Clone to derive a new one.
type Info struct {
	Name     string         `json:"name" yaml:"name" validate:"required"`
	Number   NumberFormat   `json:"number" yaml:"number"`
	Currency NumberFormat   `json:"currency" yaml:"currency"`
	Percent  NumberFormat   `json:"percent" yaml:"percent"`
	DateTime DateTimeFormat `json:"dateTime" yaml:"dateTime"`
}

// Clone returns a deep copy of the record.
func (i *Info) Clone() *Info {
	c := *i
	c.Number.GroupSizes = slices.Clone(i.Number.GroupSizes)
	c.Currency.GroupSizes = slices.Clone(i.Currency.GroupSizes)
	c.Percent.GroupSizes = slices.Clone(i.Percent.GroupSizes)
	c.DateTime.Months = slices.Clone(i.DateTime.Months)
	c.DateTime.MonthsAbbr = slices.Clone(i.DateTime.MonthsAbbr)
	c.DateTime.Days = slices.Clone(i.DateTime.Days)
	c.DateTime.DaysAbbr = slices.Clone(i.DateTime.DaysAbbr)
	return &c
}

// Region returns the ISO 3166 region of the culture ("US" for en-US, "FR" for
// fr). It returns an empty string for the invariant culture or when no
// region can be inferred.
func (i *Info) Region() string {
	return RegionOf(i.Name)
}

// Tag returns the BCP 47 tag of the culture. The invariant culture and
// names that do not parse give language.Und.
func (i *Info) Tag() language.Tag {
	if i.Name == "" || strings.EqualFold(i.Name, Invariant) {
		return language.Und
	}
	tag, err := language.Parse(strings.ReplaceAll(i.Name, "_", "-"))
	if err != nil {
		return language.Und
	}
	return tag
}

// RegionOf infers the region of a culture name.
func RegionOf(name string) string {
	if name == "" || strings.EqualFold(name, Invariant) {
		return ""
	}
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return ""
	}
	region, conf := tag.Region()
	if conf == language.No || region.String() == "ZZ" {
		return ""
	}
	return region.String()
}

// Uses12HourClock reports whether the long time pattern has an AM/PM
// designator.
func (f DateTimeFormat) Uses12HourClock() bool {
	return strings.ContainsRune(f.LongTimePattern, 't')
}
