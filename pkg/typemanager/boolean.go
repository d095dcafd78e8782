package typemanager

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"github.com/plblum/jTAC-sub002/pkg/culture"
)

// Boolean manages true/false values. Text is matched case-insensitively
// against the trueText and falseText lists; the first entry of each list is
// used by ToString.
//
// Options: cultureName, trueText, falseText.
type Boolean struct {
	base
	trueText  []string
	falseText []string
}

// NewBoolean creates a Boolean manager.
func NewBoolean(provider culture.Provider, opts Options) (*Boolean, error) {
	m := &Boolean{
		base:      newBase("Boolean", provider),
		trueText:  []string{"true", "yes", "on", "1"},
		falseText: []string{"false", "no", "off", "0"},
	}
	if err := m.Configure(opts); err != nil {
		return nil, err
	}
	return m, nil
}

// NativeKind reports the kind of native value.
func (m *Boolean) NativeKind() NativeKind { return NativeBoolean }

// StorageKind reports how values are stored.
func (m *Boolean) StorageKind() StorageKind { return StorageBoolean }

// SetOption sets one option by name.
func (m *Boolean) SetOption(name string, value any) error { return setOption(m, name, value) }

// Configure applies each option in opts.
func (m *Boolean) Configure(opts Options) error { return configure(m, opts) }

func (m *Boolean) setOption(name string, value any) (bool, error) {
	switch name {
	case "trueText", "falseText":
		list, err := asStrings(value)
		if err != nil {
			return true, err
		}
		if len(list) == 0 {
			return true, errors.New("at least one text is required")
		}
		if name == "trueText" {
			m.trueText = list
		} else {
			m.falseText = list
		}
		return true, nil
	}
	return m.base.setOption(name, value)
}

// ToValue parses text in the culture's format. Blank text is null.
func (m *Boolean) ToValue(text string) (any, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	info, err := m.Culture()
	if err != nil {
		return nil, m.fail(err)
	}
	lower := cases.Lower(info.Tag())
	folded := lower.String(text)
	for _, t := range m.trueText {
		if lower.String(t) == folded {
			return true, nil
		}
	}
	for _, f := range m.falseText {
		if lower.String(f) == folded {
			return false, nil
		}
	}
	return nil, m.fail(conversionErr(text, "expected %s or %s", m.trueText[0], m.falseText[0]))
}

func (m *Boolean) native(value any) (bool, error) {
	if b, ok := value.(bool); ok {
		return b, nil
	}
	return false, m.unsupported(value)
}

// ToString formats value in the culture's format.
func (m *Boolean) ToString(value any) (string, error) {
	if value == nil {
		return "", nil
	}
	b, err := m.native(value)
	if err != nil {
		return "", err
	}
	if b {
		return m.trueText[0], nil
	}
	return m.falseText[0], nil
}

// ToValueNeutral parses the culture-neutral form.
func (m *Boolean) ToValueNeutral(text string) (any, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(text)
	if err != nil {
		return nil, m.fail(conversionErr(text, "expected true or false"))
	}
	return b, nil
}

// ToStringNeutral formats value in the culture-neutral form.
func (m *Boolean) ToStringNeutral(value any) (string, error) {
	if value == nil {
		return "", nil
	}
	b, err := m.native(value)
	if err != nil {
		return "", err
	}
	return strconv.FormatBool(b), nil
}

// Compare orders false before true.
func (m *Boolean) Compare(a, b any) (int, error) {
	var err error
	if s, ok := a.(string); ok {
		if a, err = m.ToValue(s); err != nil {
			return 0, err
		}
	}
	if s, ok := b.(string); ok {
		if b, err = m.ToValue(s); err != nil {
			return 0, err
		}
	}
	if c, ok := compareNil(a, b); ok {
		return c, nil
	}
	ba, err := m.native(a)
	if err != nil {
		return 0, err
	}
	bb, err := m.native(b)
	if err != nil {
		return 0, err
	}
	return compareOrdered(boolToInt(ba), boolToInt(bb)), nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// IsNull reports whether value is null.
func (m *Boolean) IsNull(value any) bool { return value == nil }

// IsValidChar reports whether ch can appear in parsable text.
func (m *Boolean) IsValidChar(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch)
}

// ToNumber returns 1 for true and 0 for false.
func (m *Boolean) ToNumber(value any) (float64, bool, error) {
	if value == nil {
		return 0, false, nil
	}
	b, err := m.native(value)
	if err != nil {
		return 0, false, err
	}
	return float64(boolToInt(b)), true, nil
}
