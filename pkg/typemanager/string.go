package typemanager

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/collate"

	"github.com/plblum/jTAC-sub002/pkg/culture"
)

// stringCore holds the options shared by the string family.
type stringCore struct {
	base
	trim            bool
	caseInsensitive bool
	maxLength       int
}

func newStringCore(typeName string, provider culture.Provider) stringCore {
	return stringCore{base: newBase(typeName, provider), trim: true}
}

// NativeKind reports the kind of native value.
func (m *stringCore) NativeKind() NativeKind { return NativeString }

// StorageKind reports how values are stored.
func (m *stringCore) StorageKind() StorageKind { return StorageString }

func (m *stringCore) setOption(name string, value any) (bool, error) {
	switch name {
	case "trim":
		b, err := asBool(value)
		if err != nil {
			return true, err
		}
		m.trim = b
		return true, nil
	case "caseInsensitive":
		b, err := asBool(value)
		if err != nil {
			return true, err
		}
		m.caseInsensitive = b
		return true, nil
	case "maxLength":
		i, err := asInt(value)
		if err != nil {
			return true, err
		}
		if i < 0 {
			return true, fmt.Errorf("must not be negative")
		}
		m.maxLength = i
		return true, nil
	}
	return m.base.setOption(name, value)
}

// clean trims the text and applies the length limit. ok is false when no
// text remains.
func (m *stringCore) clean(text string) (string, bool, error) {
	if m.trim {
		text = strings.TrimSpace(text)
	}
	if text == "" {
		return "", false, nil
	}
	if m.maxLength > 0 && utf8.RuneCountInString(text) > m.maxLength {
		return "", false, m.fail(inputErr(text, "longer than %d characters", m.maxLength))
	}
	return text, true, nil
}

func (m *stringCore) native(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	}
	return "", m.unsupported(value)
}

// collateStrings orders two strings by the rules of the culture's language.
func (m *stringCore) collateStrings(a, b string) (int, error) {
	info, err := m.Culture()
	if err != nil {
		return 0, m.fail(err)
	}
	var opts []collate.Option
	if m.caseInsensitive {
		opts = append(opts, collate.IgnoreCase)
	}
	// Collators keep scratch buffers and are not safe for concurrent use.
	return collate.New(info.Tag(), opts...).CompareString(a, b), nil
}

func (m *stringCore) compareStrings(a, b any) (int, error) {
	if c, ok := compareNil(a, b); ok {
		return c, nil
	}
	sa, err := m.native(a)
	if err != nil {
		return 0, err
	}
	sb, err := m.native(b)
	if err != nil {
		return 0, err
	}
	return m.collateStrings(sa, sb)
}

// ToString formats value in the culture's format.
func (m *stringCore) ToString(value any) (string, error) {
	if value == nil {
		return "", nil
	}
	return m.native(value)
}

// IsNull reports whether value is null.
func (m *stringCore) IsNull(value any) bool {
	if value == nil {
		return true
	}
	s, ok := value.(string)
	return ok && s == ""
}

// IsValidChar reports whether ch can appear in parsable text.
func (m *stringCore) IsValidChar(ch rune) bool {
	return unicode.IsPrint(ch) || unicode.IsSpace(ch)
}

// ToNumber fails for any non-nil value. Strings have no numeric projection.
func (m *stringCore) ToNumber(value any) (float64, bool, error) {
	if value == nil {
		return 0, false, nil
	}
	return 0, false, m.fail(conversionErr(fmt.Sprint(value), "text has no numeric value"))
}

// String manages free text.
//
// Options: cultureName, trim, caseInsensitive, maxLength.
type String struct {
	stringCore
}

// NewString creates a String manager.
func NewString(provider culture.Provider, opts Options) (*String, error) {
	m := &String{stringCore: newStringCore("String", provider)}
	if err := m.Configure(opts); err != nil {
		return nil, err
	}
	return m, nil
}

// SetOption sets one option by name.
func (m *String) SetOption(name string, value any) error { return setOption(m, name, value) }

// Configure applies each option in opts.
func (m *String) Configure(opts Options) error { return configure(m, opts) }

// ToValue trims text as configured. Blank text is null.
func (m *String) ToValue(text string) (any, error) {
	s, ok, err := m.clean(text)
	if err != nil || !ok {
		return nil, err
	}
	return s, nil
}

// ToValueNeutral parses the culture-neutral form.
func (m *String) ToValueNeutral(text string) (any, error) { return m.ToValue(text) }

// ToStringNeutral formats value in the culture-neutral form.
func (m *String) ToStringNeutral(value any) (string, error) { return m.ToString(value) }

// Compare orders a and b, converting strings first. Null sorts first.
func (m *String) Compare(a, b any) (int, error) { return m.compareStrings(a, b) }

// Patterns used by the EmailAddress and URL managers.
const (
	EmailPattern = `^[A-Za-z0-9._%+\-]+@[A-Za-z0-9](?:[A-Za-z0-9\-]*[A-Za-z0-9])?(?:\.[A-Za-z0-9](?:[A-Za-z0-9\-]*[A-Za-z0-9])?)*\.[A-Za-z]{2,}$`
	URLPattern   = `^(?i:https?|ftp)://[^\s/?#]+[^\s]*$`
)

// Pattern manages text that must match a regular expression. The
// expression is used as given, so anchor it to match the whole value.
//
// Options: cultureName, trim, caseInsensitive, maxLength, pattern.
type Pattern struct {
	stringCore
	pattern string
	re      lazy[*regexp.Regexp]
	// accept runs after the expression matches.
	accept func(s string) bool
}

// NewPattern creates a Pattern manager. Without a pattern option it accepts
// any text.
func NewPattern(provider culture.Provider, opts Options) (*Pattern, error) {
	return newPattern("Pattern", "", provider, opts)
}

// NewEmailAddress creates a Pattern manager preset with EmailPattern.
func NewEmailAddress(provider culture.Provider, opts Options) (*Pattern, error) {
	return newPattern("EmailAddress", EmailPattern, provider, opts)
}

// NewURL creates a Pattern manager preset with URLPattern. Matching text
// must also parse as an absolute URL with a host.
func NewURL(provider culture.Provider, opts Options) (*Pattern, error) {
	m, err := newPattern("URL", URLPattern, provider, nil)
	if err != nil {
		return nil, err
	}
	m.accept = func(s string) bool {
		u, err := url.Parse(s)
		return err == nil && u.IsAbs() && u.Host != ""
	}
	if err := m.Configure(opts); err != nil {
		return nil, err
	}
	return m, nil
}

func newPattern(typeName, pattern string, provider culture.Provider, opts Options) (*Pattern, error) {
	m := &Pattern{stringCore: newStringCore(typeName, provider), pattern: pattern}
	if err := m.Configure(opts); err != nil {
		return nil, err
	}
	return m, nil
}

// SetOption sets one option by name.
func (m *Pattern) SetOption(name string, value any) error { return setOption(m, name, value) }

// Configure applies each option in opts.
func (m *Pattern) Configure(opts Options) error { return configure(m, opts) }

func (m *Pattern) setOption(name string, value any) (bool, error) {
	if name == "pattern" {
		s, err := asString(value)
		if err != nil {
			return true, err
		}
		if _, err := regexp.Compile(s); err != nil {
			return true, err
		}
		m.pattern = s
		return true, nil
	}
	return m.stringCore.setOption(name, value)
}

func (m *Pattern) invalidate() {
	m.base.invalidate()
	m.re.reset()
}

// Expression returns the configured regular expression.
func (m *Pattern) Expression() string { return m.pattern }

func (m *Pattern) compiled() (*regexp.Regexp, error) {
	return m.re.get(func() (*regexp.Regexp, error) {
		if m.pattern == "" {
			return nil, nil
		}
		expr := m.pattern
		if m.caseInsensitive {
			expr = "(?i)" + expr
		}
		return regexp.Compile(expr)
	})
}

func (m *Pattern) check(s string) error {
	re, err := m.compiled()
	if err != nil {
		return m.fail(err)
	}
	if re != nil && !re.MatchString(s) {
		return m.fail(inputErr(s, "does not match the pattern"))
	}
	if m.accept != nil && !m.accept(s) {
		return m.fail(inputErr(s, "is not a valid %s", m.typeName))
	}
	return nil
}

// ToValue trims text as configured and checks it against the pattern.
// Blank text is null.
func (m *Pattern) ToValue(text string) (any, error) {
	s, ok, err := m.clean(text)
	if err != nil || !ok {
		return nil, err
	}
	if err := m.check(s); err != nil {
		return nil, err
	}
	return s, nil
}

// ToValueNeutral parses the culture-neutral form.
func (m *Pattern) ToValueNeutral(text string) (any, error) { return m.ToValue(text) }

// ToStringNeutral formats value in the culture-neutral form.
func (m *Pattern) ToStringNeutral(value any) (string, error) { return m.ToString(value) }

// Compare orders a and b, converting strings first. Null sorts first.
func (m *Pattern) Compare(a, b any) (int, error) { return m.compareStrings(a, b) }
