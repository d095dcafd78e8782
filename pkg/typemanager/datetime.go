package typemanager

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/plblum/jTAC-sub002/pkg/culture"
)

// DateTime manages a date with a time of day by delegating to a Date and a
// TimeOfDay child. The native value is a time.Time in UTC.
//
// Options: those of Date and TimeOfDay except valueAsNumber and
// timeOneEqualsSeconds, plus timeRequired.
type DateTime struct {
	base
	date         *Date
	time         *TimeOfDay
	timeRequired bool

	timeAtEnd lazy[*regexp.Regexp]
	neutral   lazy[*DateTime]
}

// NewDateTime creates a DateTime manager with its own children.
func NewDateTime(provider culture.Provider, opts Options) (*DateTime, error) {
	return NewDateTimeWithChildren(provider, nil, nil, opts)
}

// NewDateTimeWithChildren creates a DateTime manager that takes ownership of
// the given children. A nil child is created. Options are applied after the
// children are attached and override their settings.
func NewDateTimeWithChildren(provider culture.Provider, date *Date, tod *TimeOfDay, opts Options) (*DateTime, error) {
	m := &DateTime{base: newBase("DateTime", provider)}
	var err error
	if date == nil {
		if date, err = NewDate(m.provider, nil); err != nil {
			return nil, err
		}
	}
	if tod == nil {
		if tod, err = NewTimeOfDay(m.provider, nil); err != nil {
			return nil, err
		}
	}
	if tod.valueAsNumber {
		return nil, &ConfigError{TypeName: m.typeName, Option: "valueAsNumber", Value: true, Err: ErrInvalidOption}
	}
	m.date, m.time = date, tod
	if err := m.Configure(opts); err != nil {
		return nil, err
	}
	return m, nil
}

// DateManager returns the date child.
func (m *DateTime) DateManager() *Date { return m.date }

// TimeManager returns the time of day child.
func (m *DateTime) TimeManager() *TimeOfDay { return m.time }

// NativeKind reports the kind of native value.
func (m *DateTime) NativeKind() NativeKind { return NativeDateTime }

// StorageKind reports how values are stored.
func (m *DateTime) StorageKind() StorageKind { return StorageDateTime }

// SetOption sets one option by name.
func (m *DateTime) SetOption(name string, value any) error { return setOption(m, name, value) }

// Configure applies each option in opts.
func (m *DateTime) Configure(opts Options) error { return configure(m, opts) }

func (m *DateTime) setOption(name string, value any) (bool, error) {
	switch name {
	case "timeRequired":
		return true, setBool(&m.timeRequired, value)
	case "cultureName":
		if handled, err := m.base.setOption(name, value); err != nil || !handled {
			return handled, err
		}
		m.date.cultureName = m.cultureName
		m.time.cultureName = m.cultureName
		m.date.invalidate()
		m.time.invalidate()
		return true, nil
	case "dateFormat", "twoDigitYear":
		handled, err := m.date.setOption(name, value)
		if err == nil {
			m.date.invalidate()
		}
		return handled, err
	case "timeFormat", "parseStrict", "parseTimeRequires":
		handled, err := m.time.setOption(name, value)
		if err == nil {
			m.time.invalidate()
		}
		return handled, err
	}
	return false, nil
}

func (m *DateTime) invalidate() {
	m.base.invalidate()
	m.timeAtEnd.reset()
	m.neutral.reset()
}

func (m *DateTime) sibling() *DateTime {
	s, _ := m.neutral.get(func() (*DateTime, error) {
		p := culture.InvariantProvider()
		date := &Date{dateCore: newDateCore("Date", p, kindDate)}
		date.dateFormat = DateNeutral
		date.twoDigitYear = false
		tod := &TimeOfDay{timeCore: newTimeCore("TimeOfDay", p, false)}
		tod.timeFormat = TimeNeutral
		tod.parseTimeRequires = "h"
		return &DateTime{base: newBase(m.typeName, p), date: date, time: tod, timeRequired: m.timeRequired}, nil
	})
	return s
}

// timeAtEndRegexp finds a time at the end of text whose date part spells
// out month names, so spaces inside the date do not split it.
func (m *DateTime) timeAtEndRegexp(info *culture.Info) (*regexp.Regexp, error) {
	return m.timeAtEnd.get(func() (*regexp.Regexp, error) {
		sep := `:`
		if ts := info.DateTime.TimeSep; ts != "" && ts != ":" {
			sep = `(?:` + regexp.QuoteMeta(ts) + `|:)`
		}
		ampm := `(?:` + nameAlternation(designatorForms(info)) + `)`
		return regexp.Compile(`(?i)[\s\x{00a0}]+(?:` + ampm + patternSpace + `)?\d{1,2}(?:` + sep + `\d{1,2}){1,2}` +
			patternSpace + ampm + `?` + patternSpace + `$`)
	})
}

func (m *DateTime) split(text string, info *culture.Info) (string, string, error) {
	if hasNames(m.date.pattern(info, m.date.dateFormat)) {
		re, err := m.timeAtEndRegexp(info)
		if err != nil {
			return "", "", err
		}
		if loc := re.FindStringIndex(text); loc != nil {
			return strings.TrimSpace(text[:loc[0]]), strings.TrimSpace(text[loc[0]:]), nil
		}
		return text, "", nil
	}
	if i := strings.IndexFunc(text, unicode.IsSpace); i >= 0 {
		return text[:i], strings.TrimSpace(text[i:]), nil
	}
	return text, "", nil
}

// ToValue parses text in the culture's format. Blank text is null.
func (m *DateTime) ToValue(text string) (any, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	info, err := m.Culture()
	if err != nil {
		return nil, m.fail(err)
	}
	datePart, timePart, err := m.split(text, info)
	if err != nil {
		return nil, m.fail(err)
	}

	d, err := m.date.ToValue(datePart)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, m.fail(inputErr(text, "a date is required"))
	}
	date := d.(time.Time)

	if timePart == "" {
		if m.timeRequired {
			return nil, m.fail(inputErr(text, "a time is required"))
		}
		return date, nil
	}
	tv, err := m.time.ToValue(timePart)
	if err != nil {
		return nil, err
	}
	secs, _, err := m.time.seconds(tv)
	if err != nil {
		return nil, err
	}
	return date.Add(time.Duration(secs) * time.Second), nil
}

func (m *DateTime) native(value any) (time.Time, bool, error) {
	return m.date.native(value)
}

// ToString formats value in the culture's format.
func (m *DateTime) ToString(value any) (string, error) {
	t, ok, err := m.native(value)
	if err != nil || !ok {
		return "", err
	}
	d, err := m.date.ToString(t)
	if err != nil {
		return "", err
	}
	tod, err := m.time.ToString(t)
	if err != nil {
		return "", err
	}
	return d + " " + tod, nil
}

// ToValueNeutral parses the culture-neutral form.
func (m *DateTime) ToValueNeutral(text string) (any, error) {
	return m.sibling().ToValue(text)
}

// ToStringNeutral formats value in the culture-neutral form.
func (m *DateTime) ToStringNeutral(value any) (string, error) {
	return m.sibling().ToString(value)
}

// IsNull reports whether value is null.
func (m *DateTime) IsNull(value any) bool {
	_, ok, err := m.native(value)
	return err == nil && !ok
}

func (m *DateTime) coerce(v any) (time.Time, bool, error) {
	if s, ok := v.(string); ok {
		parsed, err := m.ToValue(s)
		if err != nil {
			return time.Time{}, false, err
		}
		v = parsed
	}
	return m.native(v)
}

// Compare orders a and b, converting strings first. Null sorts first.
func (m *DateTime) Compare(a, b any) (int, error) {
	ta, okA, err := m.coerce(a)
	if err != nil {
		return 0, err
	}
	tb, okB, err := m.coerce(b)
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
	return ta.Compare(tb), nil
}

// ToNumber returns the seconds since the Unix epoch.
func (m *DateTime) ToNumber(value any) (float64, bool, error) {
	t, ok, err := m.coerce(value)
	if err != nil || !ok {
		return 0, false, err
	}
	return float64(t.Unix()), true, nil
}

// IsValidChar reports whether ch can appear in parsable text.
func (m *DateTime) IsValidChar(ch rune) bool {
	return m.date.IsValidChar(ch) || m.time.IsValidChar(ch)
}

// String describes the configuration, for logs.
func (m *DateTime) String() string {
	return m.typeName + "(" + m.date.dateFormat.String() + ", " + m.time.timeFormat.String() + ", timeRequired=" + strconv.FormatBool(m.timeRequired) + ")"
}
