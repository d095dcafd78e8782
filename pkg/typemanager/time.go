package typemanager

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/plblum/jTAC-sub002/pkg/culture"
)

// TimeFormat selects the pattern used by ToString.
type TimeFormat int

const (
	TimeLong                TimeFormat = 0
	TimeShort               TimeFormat = 1
	TimeLongOmitZeroSeconds TimeFormat = 2
	TimeNeutral             TimeFormat = 100
)

var timeFormatNames = map[TimeFormat]string{
	TimeLong:                "Long",
	TimeShort:               "Short",
	TimeLongOmitZeroSeconds: "LongOmitZeroSeconds",
	TimeNeutral:             "Neutral",
}

// String returns the format name.
func (f TimeFormat) String() string {
	if name, ok := timeFormatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("TimeFormat(%d)", int(f))
}

// ParseTimeFormat accepts a TimeFormat, its integer value or its name.
func ParseTimeFormat(v any) (TimeFormat, error) {
	if s, ok := v.(string); ok {
		for f, name := range timeFormatNames {
			if strings.EqualFold(name, strings.TrimSpace(s)) {
				return f, nil
			}
		}
	}
	if f, ok := v.(TimeFormat); ok {
		v = int(f)
	}
	i, err := asInt(v)
	if err == nil {
		if _, ok := timeFormatNames[TimeFormat(i)]; ok {
			return TimeFormat(i), nil
		}
	}
	return 0, fmt.Errorf("unknown time format %v", v)
}

const secondsPerDay = 24 * 60 * 60

// timeCore implements TimeOfDay and Duration. Values are handled as a
// whole number of seconds.
type timeCore struct {
	base
	duration bool

	timeFormat           TimeFormat
	valueAsNumber        bool
	timeOneEqualsSeconds float64
	parseStrict          bool
	parseTimeRequires    string
	maxHours             int

	lenient lazy[*regexp.Regexp]
	neutral lazy[*timeCore]
}

func newTimeCore(typeName string, provider culture.Provider, duration bool) timeCore {
	return timeCore{
		base:                 newBase(typeName, provider),
		duration:             duration,
		timeOneEqualsSeconds: 1,
		parseTimeRequires:    "hm",
		maxHours:             9999,
	}
}

// NativeKind is NativeNumber when valueAsNumber is set.
func (c *timeCore) NativeKind() NativeKind {
	if c.valueAsNumber {
		return NativeNumber
	}
	return NativeTime
}

// StorageKind reports how values are stored.
func (c *timeCore) StorageKind() StorageKind { return StorageTime }

// SetOption sets one option by name.
func (c *timeCore) SetOption(name string, value any) error { return setOption(c, name, value) }

func (c *timeCore) setOption(name string, value any) (bool, error) {
	switch name {
	case "timeFormat":
		f, err := ParseTimeFormat(value)
		if err != nil {
			return true, err
		}
		c.timeFormat = f
		return true, nil
	case "valueAsNumber":
		return true, setBool(&c.valueAsNumber, value)
	case "timeOneEqualsSeconds":
		f, err := asFloat(value)
		if err != nil {
			return true, err
		}
		if f <= 0 {
			return true, fmt.Errorf("must be greater than zero")
		}
		c.timeOneEqualsSeconds = f
		return true, nil
	case "parseStrict":
		return true, setBool(&c.parseStrict, value)
	case "parseTimeRequires":
		s, err := asString(value)
		if err != nil {
			return true, err
		}
		switch s {
		case "h", "hm", "hms":
			c.parseTimeRequires = s
			return true, nil
		}
		return true, fmt.Errorf("expected h, hm or hms")
	case "maxHours":
		if !c.duration {
			return false, nil
		}
		i, err := asInt(value)
		if err != nil {
			return true, err
		}
		if i < 1 {
			return true, fmt.Errorf("must be at least 1")
		}
		c.maxHours = i
		return true, nil
	}
	return c.base.setOption(name, value)
}

func (c *timeCore) invalidate() {
	c.base.invalidate()
	c.lenient.reset()
	c.neutral.reset()
}

func (c *timeCore) sibling() *timeCore {
	s, _ := c.neutral.get(func() (*timeCore, error) {
		n := newTimeCore(c.typeName, culture.InvariantProvider(), c.duration)
		n.timeFormat = TimeNeutral
		n.valueAsNumber = c.valueAsNumber
		n.timeOneEqualsSeconds = c.timeOneEqualsSeconds
		n.maxHours = c.maxHours
		n.parseTimeRequires = "h"
		return &n, nil
	})
	return s
}

func (c *timeCore) hourDigits() int {
	if !c.duration {
		return 2
	}
	return max(2, len(strconv.Itoa(c.maxHours)))
}

func (c *timeCore) longPattern(info *culture.Info) string {
	if c.duration {
		return "H:mm:ss"
	}
	return info.DateTime.LongTimePattern
}

func (c *timeCore) pattern(info *culture.Info, seconds int) string {
	switch c.timeFormat {
	case TimeShort:
		if c.duration {
			return "H:mm"
		}
		return info.DateTime.ShortTimePattern
	case TimeLongOmitZeroSeconds:
		if seconds%60 == 0 {
			return RemovePart(c.longPattern(info), 's')
		}
	case TimeNeutral:
		if c.duration {
			return "HHHH:mm:ss"
		}
		return "H:mm:ss"
	}
	return c.longPattern(info)
}

// lenientRegexp accepts hours with optional minutes and seconds separated
// by the culture time separator or ":", with an optional AM/PM designator
// before or after.
func (c *timeCore) lenientRegexp(info *culture.Info) (*regexp.Regexp, error) {
	return c.lenient.get(func() (*regexp.Regexp, error) {
		sep := `:`
		if ts := info.DateTime.TimeSep; ts != "" && ts != ":" {
			sep = `(?:` + regexp.QuoteMeta(ts) + `|:)`
		}
		digits := `(\d{1,` + strconv.Itoa(c.hourDigits()) + `})(?:` + sep + `(\d{1,2})(?:` + sep + `(\d{1,2}))?)?`
		if c.duration {
			return regexp.Compile(`^` + patternSpace + digits + patternSpace + `$`)
		}
		ampm := `(` + nameAlternation(designatorForms(info)) + `)`
		return regexp.Compile(`(?i)^` + patternSpace + `(?:` + ampm + patternSpace + `)?` + digits + patternSpace + ampm + `?` + patternSpace + `$`)
	})
}

type timeParts struct {
	hour, minute, second       string
	designator                 string
	hasMinute, hasSecond       bool
	twelveHour, hasDesignation bool
}

func (c *timeCore) match(text string, info *culture.Info) (timeParts, error) {
	if c.parseStrict {
		long := c.longPattern(info)
		for _, pattern := range []string{long, RemovePart(long, 's')} {
			cp, err := compileParsePattern(pattern, info, c.hourDigits())
			if err != nil {
				return timeParts{}, err
			}
			m, ok := cp.match(text)
			if !ok {
				continue
			}
			p := timeParts{minute: m['m'], second: m['s'], designator: m['t']}
			p.hour, p.twelveHour = m['h'], true
			if h, ok := m['H']; ok {
				p.hour, p.twelveHour = h, false
			}
			_, p.hasMinute = m['m']
			_, p.hasSecond = m['s']
			p.hasDesignation = p.designator != ""
			return p, nil
		}
		return timeParts{}, errNoMatch
	}

	re, err := c.lenientRegexp(info)
	if err != nil {
		return timeParts{}, err
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return timeParts{}, errNoMatch
	}
	var p timeParts
	if c.duration {
		p.hour, p.minute, p.second = m[1], m[2], m[3]
	} else {
		p.hour, p.minute, p.second = m[2], m[3], m[4]
		p.designator = m[1]
		if p.designator == "" {
			p.designator = m[5]
		} else if m[5] != "" {
			return timeParts{}, inputErr(text, "more than one AM/PM designator")
		}
		p.hasDesignation = p.designator != ""
		p.twelveHour = p.hasDesignation
	}
	p.hasMinute = p.minute != ""
	p.hasSecond = p.second != ""
	return p, nil
}

// parse returns the number of seconds described by text.
func (c *timeCore) parse(text string, info *culture.Info) (int, error) {
	p, err := c.match(text, info)
	if errors.Is(err, errNoMatch) {
		return 0, conversionErr(text, "not a valid time")
	}
	if err != nil {
		return 0, err
	}

	switch {
	case c.parseTimeRequires != "h" && !p.hasMinute:
		return 0, inputErr(text, "minutes are required")
	case c.parseTimeRequires == "hms" && !p.hasSecond:
		return 0, inputErr(text, "seconds are required")
	}

	h, err := strconv.Atoi(p.hour)
	if err != nil {
		return 0, conversionErr(text, "illegal hours")
	}
	m, s := 0, 0
	if p.hasMinute {
		m, _ = strconv.Atoi(p.minute)
	}
	if p.hasSecond {
		s, _ = strconv.Atoi(p.second)
	}

	if p.twelveHour && p.hasDesignation {
		if h < 1 || h > 12 {
			return 0, inputErr(text, "hours must be 1 to 12 with an AM/PM designator")
		}
		h %= 12
		if isPM(info, p.designator) {
			h += 12
		}
	}
	if m > 59 || s > 59 {
		return 0, inputErr(text, "minutes and seconds must be 0 to 59")
	}

	total := h*3600 + m*60 + s
	if c.duration {
		if total > c.maxHours*3600 {
			return 0, inputErr(text, "more than %d hours", c.maxHours)
		}
	} else if total >= secondsPerDay {
		return 0, inputErr(text, "must be less than 24 hours")
	}
	return total, nil
}

// ToValue parses text in the culture's format. Blank text is null.
func (c *timeCore) ToValue(text string) (any, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	info, err := c.Culture()
	if err != nil {
		return nil, c.fail(err)
	}
	total, err := c.parse(text, info)
	if err != nil {
		return nil, c.fail(err)
	}
	return c.fromSeconds(total), nil
}

func (c *timeCore) fromSeconds(total int) any {
	switch {
	case c.valueAsNumber:
		return float64(total) / c.timeOneEqualsSeconds
	case c.duration:
		return time.Duration(total) * time.Second
	}
	return unixEpoch.Add(time.Duration(total) * time.Second)
}

// seconds converts a native value. ok is false for null.
func (c *timeCore) seconds(value any) (int, bool, error) {
	switch v := value.(type) {
	case nil:
		return 0, false, nil
	case time.Time:
		if c.duration && !v.Before(unixEpoch) && v.Before(unixEpoch.AddDate(0, 0, 1+c.maxHours/24)) {
			return int(v.Sub(unixEpoch) / time.Second), true, nil
		}
		return v.Hour()*3600 + v.Minute()*60 + v.Second(), true, nil
	case *time.Time:
		if v == nil {
			return 0, false, nil
		}
		return c.seconds(*v)
	case time.Duration:
		if v < 0 {
			return 0, false, c.fail(conversionErr(v.String(), "negative times are not supported"))
		}
		return int(v / time.Second), true, nil
	}
	f, ok := toFloat64(value)
	if !ok {
		return 0, false, c.unsupported(value)
	}
	total := math.Round(f * c.timeOneEqualsSeconds)
	if total < 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return 0, false, c.fail(conversionErr(fmt.Sprint(value), "not a valid time"))
	}
	return int(total), true, nil
}

// ToString formats value in the culture's format.
func (c *timeCore) ToString(value any) (string, error) {
	total, ok, err := c.seconds(value)
	if err != nil || !ok {
		return "", err
	}
	if !c.duration && total >= secondsPerDay {
		return "", c.fail(conversionErr(fmt.Sprint(value), "must be less than 24 hours"))
	}
	info, err := c.Culture()
	if err != nil {
		return "", c.fail(err)
	}
	f := dtFields{hour: total / 3600, minute: total % 3600 / 60, second: total % 60}
	return formatPattern(c.pattern(info, total), f, info, formatStyle{}), nil
}

// ToValueNeutral parses the culture-neutral form.
func (c *timeCore) ToValueNeutral(text string) (any, error) {
	return c.sibling().ToValue(text)
}

// ToStringNeutral formats value in the culture-neutral form.
func (c *timeCore) ToStringNeutral(value any) (string, error) {
	return c.sibling().ToString(value)
}

// IsNull reports whether value is null.
func (c *timeCore) IsNull(value any) bool {
	_, ok, err := c.seconds(value)
	return err == nil && !ok
}

func (c *timeCore) coerce(v any) (int, bool, error) {
	if s, ok := v.(string); ok {
		parsed, err := c.ToValue(s)
		if err != nil {
			return 0, false, err
		}
		v = parsed
	}
	return c.seconds(v)
}

// Compare orders a and b, converting strings first. Null sorts first.
func (c *timeCore) Compare(a, b any) (int, error) {
	sa, okA, err := c.coerce(a)
	if err != nil {
		return 0, err
	}
	sb, okB, err := c.coerce(b)
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
	return compareOrdered(sa, sb), nil
}

// ToNumber returns the number of seconds.
func (c *timeCore) ToNumber(value any) (float64, bool, error) {
	s, ok, err := c.coerce(value)
	if err != nil || !ok {
		return 0, false, err
	}
	return float64(s), true, nil
}

// IsValidChar reports whether ch can appear in parsable text.
func (c *timeCore) IsValidChar(ch rune) bool {
	if ch >= '0' && ch <= '9' || ch == ':' || unicode.IsSpace(ch) {
		return true
	}
	info, err := c.Culture()
	if err != nil {
		return false
	}
	if strings.ContainsRune(info.DateTime.TimeSep, ch) {
		return true
	}
	if c.duration {
		return false
	}
	am, pm := designators(info)
	lower := unicode.ToLower(ch)
	return strings.ContainsRune(strings.ToLower(am+pm), lower)
}

// TimeOfDay manages a time of day. The native value is a time.Time on
// 1970-01-01 UTC, or a number of seconds divided by timeOneEqualsSeconds
// when valueAsNumber is set.
//
// Options: cultureName, timeFormat, valueAsNumber, timeOneEqualsSeconds,
// parseStrict, parseTimeRequires.
type TimeOfDay struct {
	timeCore
}

// NewTimeOfDay creates a TimeOfDay manager.
func NewTimeOfDay(provider culture.Provider, opts Options) (*TimeOfDay, error) {
	m := &TimeOfDay{timeCore: newTimeCore("TimeOfDay", provider, false)}
	if err := m.Configure(opts); err != nil {
		return nil, err
	}
	return m, nil
}

// Configure applies each option in opts.
func (m *TimeOfDay) Configure(opts Options) error { return configure(m, opts) }

// Duration manages elapsed time that may exceed 24 hours, up to maxHours.
// The native value is a time.Duration, or a number when valueAsNumber is
// set. The neutral form pads hours to four digits so it sorts as text.
//
// Options: those of TimeOfDay plus maxHours.
type Duration struct {
	timeCore
}

// NewDuration creates a Duration manager.
func NewDuration(provider culture.Provider, opts Options) (*Duration, error) {
	m := &Duration{timeCore: newTimeCore("Duration", provider, true)}
	if err := m.Configure(opts); err != nil {
		return nil, err
	}
	return m, nil
}

// Configure applies each option in opts.
func (m *Duration) Configure(opts Options) error { return configure(m, opts) }
