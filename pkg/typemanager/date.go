package typemanager

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/plblum/jTAC-sub002/pkg/culture"
)

// DateFormat selects the pattern used by ToString. ToValue accepts the
// selected pattern, the short pattern and the neutral pattern.
type DateFormat int

const (
	DateShort               DateFormat = 0
	DateShortAbbrMonth      DateFormat = 1
	DateShortAbbrMonthUpper DateFormat = 2
	DateAbbreviated         DateFormat = 10
	DateLong                DateFormat = 20
	DateNeutral             DateFormat = 100
)

var dateFormatNames = map[DateFormat]string{
	DateShort:               "Short",
	DateShortAbbrMonth:      "ShortAbbrMonth",
	DateShortAbbrMonthUpper: "ShortAbbrMonthUpper",
	DateAbbreviated:         "Abbreviated",
	DateLong:                "Long",
	DateNeutral:             "Neutral",
}

// String returns the format name.
func (f DateFormat) String() string {
	if name, ok := dateFormatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("DateFormat(%d)", int(f))
}

// ParseDateFormat accepts a DateFormat, its integer value or its name.
func ParseDateFormat(v any) (DateFormat, error) {
	if s, ok := v.(string); ok {
		for f, name := range dateFormatNames {
			if strings.EqualFold(name, strings.TrimSpace(s)) {
				return f, nil
			}
		}
	}
	if f, ok := v.(DateFormat); ok {
		v = int(f)
	}
	i, err := asInt(v)
	if err == nil {
		if _, ok := dateFormatNames[DateFormat(i)]; ok {
			return DateFormat(i), nil
		}
	}
	return 0, fmt.Errorf("unknown date format %v", v)
}

type dateKind int

const (
	kindDate dateKind = iota
	kindMonthYear
	kindDayMonth
)

// dayMonthYear is the leap year DayMonth values live in, so February 29 is
// always valid and comparable.
const dayMonthYear = 2004

var (
	errNoMatch = errors.New("no pattern matched")
	unixEpoch  = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
)

// dateCore implements Date, MonthYear and DayMonth.
type dateCore struct {
	base
	kind         dateKind
	dateFormat   DateFormat
	twoDigitYear bool

	neutral lazy[*dateCore]
}

func newDateCore(typeName string, provider culture.Provider, kind dateKind) dateCore {
	return dateCore{base: newBase(typeName, provider), kind: kind, twoDigitYear: true}
}

// NativeKind reports the kind of native value.
func (c *dateCore) NativeKind() NativeKind { return NativeDate }

// StorageKind reports how values are stored.
func (c *dateCore) StorageKind() StorageKind { return StorageDate }

// SetOption sets one option by name.
func (c *dateCore) SetOption(name string, value any) error { return setOption(c, name, value) }

func (c *dateCore) setOption(name string, value any) (bool, error) {
	switch name {
	case "dateFormat":
		f, err := ParseDateFormat(value)
		if err != nil {
			return true, err
		}
		c.dateFormat = f
		return true, nil
	case "twoDigitYear":
		return true, setBool(&c.twoDigitYear, value)
	}
	return c.base.setOption(name, value)
}

// sibling returns the manager bound to the invariant culture that reads and
// writes the neutral form.
func (c *dateCore) sibling() *dateCore {
	s, _ := c.neutral.get(func() (*dateCore, error) {
		n := newDateCore(c.typeName, culture.InvariantProvider(), c.kind)
		n.dateFormat = DateNeutral
		n.twoDigitYear = false
		return &n, nil
	})
	return s
}

func (c *dateCore) neutralPattern() string {
	switch c.kind {
	case kindMonthYear:
		return "yyyy-MM"
	case kindDayMonth:
		return "MM-dd"
	}
	return "yyyy-MM-dd"
}

func abbreviateMonth(pattern string) string {
	tokens := tokenize(pattern)
	for i, t := range tokens {
		if t.kind == tokField && t.letter == 'M' && t.count > 3 {
			tokens[i].count = 3
		}
	}
	return patternString(tokens)
}

// shortPattern derives the numeric pattern of the kind from the culture
// short date pattern.
func (c *dateCore) shortPattern(info *culture.Info) string {
	short := info.DateTime.ShortDatePattern
	switch c.kind {
	case kindMonthYear:
		return RemovePart(short, 'd')
	case kindDayMonth:
		return RemovePart(short, 'y')
	}
	return short
}

// longPattern is the culture pattern that spells out the month.
func (c *dateCore) longPattern(info *culture.Info) string {
	switch c.kind {
	case kindMonthYear:
		return info.DateTime.YearMonthPattern
	case kindDayMonth:
		return info.DateTime.MonthDayPattern
	}
	return info.DateTime.LongDatePattern
}

func (c *dateCore) pattern(info *culture.Info, format DateFormat) string {
	switch format {
	case DateShortAbbrMonth, DateShortAbbrMonthUpper:
		return withMonthName(c.shortPattern(info))
	case DateAbbreviated:
		if c.kind == kindDate {
			return info.DateTime.AbbrDatePattern
		}
		return abbreviateMonth(c.longPattern(info))
	case DateLong:
		return c.longPattern(info)
	case DateNeutral:
		return c.neutralPattern()
	}
	return c.shortPattern(info)
}

// ToValue parses text in the culture's format. Blank text is null.
func (c *dateCore) ToValue(text string) (any, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	t, err := c.parse(text)
	if err != nil {
		return nil, c.fail(err)
	}
	return t, nil
}

func (c *dateCore) parse(text string) (time.Time, error) {
	info, err := c.Culture()
	if err != nil {
		return time.Time{}, err
	}

	candidates := []string{c.pattern(info, c.dateFormat)}
	if c.dateFormat != DateNeutral {
		if short := c.shortPattern(info); short != candidates[0] {
			candidates = append(candidates, short)
		}
	}
	for _, pattern := range candidates {
		t, err := c.parseWith(text, info, pattern)
		if !errors.Is(err, errNoMatch) {
			return t, err
		}
	}

	if c.dateFormat != DateNeutral {
		s := c.sibling()
		sinfo, err := s.Culture()
		if err != nil {
			return time.Time{}, err
		}
		t, err := s.parseWith(text, sinfo, s.neutralPattern())
		if !errors.Is(err, errNoMatch) {
			return t, err
		}
	}
	return time.Time{}, inputErr(text, "does not match the date format")
}

// fields lists the pattern letters a text must carry for this kind.
func (c *dateCore) fields() string {
	switch c.kind {
	case kindMonthYear:
		return "yM"
	case kindDayMonth:
		return "Md"
	}
	return "yMd"
}

func (c *dateCore) parseWith(text string, info *culture.Info, pattern string) (time.Time, error) {
	// A culture pattern that misses a field cannot produce a value.
	if need := c.fields(); len(PatternOrder(pattern, need)) != len(need) {
		return time.Time{}, errNoMatch
	}
	cp, err := compileParsePattern(pattern, info, 2)
	if err != nil {
		return time.Time{}, err
	}
	parts, ok := cp.match(text)
	if !ok {
		return time.Time{}, errNoMatch
	}

	year := dayMonthYear
	if c.kind != kindDayMonth {
		digits, ok := parts['y']
		if !ok {
			return time.Time{}, errNoMatch
		}
		year, err = resolveYear(digits, info.DateTime.TwoDigitYearMax, c.twoDigitYear, text)
		if err != nil {
			return time.Time{}, err
		}
	}

	var month int
	if name, ok := parts['N']; ok {
		if month, ok = monthFromName(info, name); !ok {
			return time.Time{}, inputErr(text, "unknown month name %q", name)
		}
	} else if month, err = strconv.Atoi(parts['M']); err != nil {
		return time.Time{}, conversionErr(text, "illegal month")
	}

	day := 1
	if c.kind != kindMonthYear {
		if day, err = strconv.Atoi(parts['d']); err != nil {
			return time.Time{}, conversionErr(text, "illegal day")
		}
	}
	return validDate(year, month, day, text)
}

// native extracts the time of a native value. ok is false for null values.
func (c *dateCore) native(value any) (time.Time, bool, error) {
	switch t := value.(type) {
	case nil:
		return time.Time{}, false, nil
	case time.Time:
		return t, t.Year() > 1, nil
	case *time.Time:
		if t == nil {
			return time.Time{}, false, nil
		}
		return *t, t.Year() > 1, nil
	}
	return time.Time{}, false, c.unsupported(value)
}

// ToString formats value in the culture's format.
func (c *dateCore) ToString(value any) (string, error) {
	t, ok, err := c.native(value)
	if err != nil || !ok {
		return "", err
	}
	info, err := c.Culture()
	if err != nil {
		return "", c.fail(err)
	}
	style := formatStyle{upperMonth: c.dateFormat == DateShortAbbrMonthUpper}
	return formatPattern(c.pattern(info, c.dateFormat), fieldsOf(t), info, style), nil
}

// ToValueNeutral parses the culture-neutral form.
func (c *dateCore) ToValueNeutral(text string) (any, error) {
	return c.sibling().ToValue(text)
}

// ToStringNeutral formats value in the culture-neutral form.
func (c *dateCore) ToStringNeutral(value any) (string, error) {
	return c.sibling().ToString(value)
}

// IsNull reports whether value is null.
func (c *dateCore) IsNull(value any) bool {
	_, ok, err := c.native(value)
	return err == nil && !ok
}

// ordinal is the comparison value: days since 1970-01-01 for Date, months
// since year 0 for MonthYear and the day of year in a leap year for
// DayMonth.
func (c *dateCore) ordinal(t time.Time) int {
	switch c.kind {
	case kindMonthYear:
		return t.Year()*12 + int(t.Month()) - 1
	case kindDayMonth:
		return time.Date(dayMonthYear, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).YearDay()
	}
	// Unix seconds of a UTC midnight divide exactly by a day for any year.
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Unix() / secondsPerDay)
}

func (c *dateCore) coerce(v any) (time.Time, bool, error) {
	if s, ok := v.(string); ok {
		parsed, err := c.ToValue(s)
		if err != nil {
			return time.Time{}, false, err
		}
		v = parsed
	}
	return c.native(v)
}

// Compare orders a and b, converting strings first. Null sorts first.
func (c *dateCore) Compare(a, b any) (int, error) {
	ta, okA, err := c.coerce(a)
	if err != nil {
		return 0, err
	}
	tb, okB, err := c.coerce(b)
	if err != nil {
		return 0, err
	}
	switch {
	case !okA && !okB:
		return 0, nil
	case !okA:
		return -1, nil
	case !okB:
		return 1, nil
	}
	return compareOrdered(c.ordinal(ta), c.ordinal(tb)), nil
}

// ToNumber returns the days since 1970-01-01. MonthYear counts months
// since year 0 and DayMonth returns the day of a leap year.
func (c *dateCore) ToNumber(value any) (float64, bool, error) {
	t, ok, err := c.coerce(value)
	if err != nil || !ok {
		return 0, false, err
	}
	return float64(c.ordinal(t)), true, nil
}

// IsValidChar reports whether ch can appear in parsable text.
func (c *dateCore) IsValidChar(ch rune) bool {
	if ch >= '0' && ch <= '9' || ch == '-' || unicode.IsSpace(ch) {
		return true
	}
	info, err := c.Culture()
	if err != nil {
		return false
	}
	if strings.ContainsRune(info.DateTime.ShortDatePattern+info.DateTime.ShortDateSep, ch) && !unicode.IsLetter(ch) {
		return true
	}
	pattern := c.pattern(info, c.dateFormat)
	if hasNames(pattern) || strings.ContainsFunc(pattern, func(r rune) bool { return !strings.ContainsRune(fieldLetters, r) && unicode.IsLetter(r) }) {
		return unicode.IsLetter(ch) || unicode.IsMark(ch) || unicode.IsPunct(ch)
	}
	return false
}

// Date manages calendar dates. The native value is a time.Time at midnight
// UTC; year 1 (the zero time) is treated as null.
//
// Options: cultureName, dateFormat, twoDigitYear.
type Date struct {
	dateCore
}

// NewDate creates a Date manager.
func NewDate(provider culture.Provider, opts Options) (*Date, error) {
	m := &Date{dateCore: newDateCore("Date", provider, kindDate)}
	if err := m.Configure(opts); err != nil {
		return nil, err
	}
	return m, nil
}

// Configure applies each option in opts.
func (m *Date) Configure(opts Options) error { return configure(m, opts) }

// MonthYear manages a month of a year. The native value is the first day of
// the month.
type MonthYear struct {
	dateCore
}

// NewMonthYear creates a MonthYear manager.
func NewMonthYear(provider culture.Provider, opts Options) (*MonthYear, error) {
	m := &MonthYear{dateCore: newDateCore("MonthYear", provider, kindMonthYear)}
	if err := m.Configure(opts); err != nil {
		return nil, err
	}
	return m, nil
}

// Configure applies each option in opts.
func (m *MonthYear) Configure(opts Options) error { return configure(m, opts) }

// DayMonth manages a day of a month without a year, such as a birthday.
// The native value is that day in 2004 so February 29 is representable.
type DayMonth struct {
	dateCore
}

// NewDayMonth creates a DayMonth manager.
func NewDayMonth(provider culture.Provider, opts Options) (*DayMonth, error) {
	m := &DayMonth{dateCore: newDateCore("DayMonth", provider, kindDayMonth)}
	if err := m.Configure(opts); err != nil {
		return nil, err
	}
	return m, nil
}

// Configure applies each option in opts.
func (m *DayMonth) Configure(opts Options) error { return configure(m, opts) }
