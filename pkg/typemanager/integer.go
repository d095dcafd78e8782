package typemanager

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/plblum/jTAC-sub002/pkg/culture"
)

// Integer range limits. Values outside are a ConversionError.
const (
	MinInteger = math.MinInt32
	MaxInteger = math.MaxInt32
)

// Integer manages whole numbers. The native value is int64 restricted to
// the 32-bit signed range.
//
// Options: cultureName, allowNegatives, showGroupSep, allowGroupSep,
// strictSymbols, fillLeadZeros.
type Integer struct {
	number
	fillLeadZeros int
}

// NewInteger creates an Integer manager. A nil provider selects the
// built-in cultures.
func NewInteger(provider culture.Provider, opts Options) (*Integer, error) {
	m := &Integer{number: newNumber("Integer", provider, recordNumber)}
	m.integerOnly = true
	if err := m.Configure(opts); err != nil {
		return nil, err
	}
	return m, nil
}

// NativeKind reports the kind of native value.
func (m *Integer) NativeKind() NativeKind { return NativeInteger }

// StorageKind reports how values are stored.
func (m *Integer) StorageKind() StorageKind { return StorageInteger }

// SetOption sets one option by name.
func (m *Integer) SetOption(name string, value any) error { return setOption(m, name, value) }

// Configure applies each option in opts.
func (m *Integer) Configure(opts Options) error { return configure(m, opts) }

func (m *Integer) setOption(name string, value any) (bool, error) {
	if name == "fillLeadZeros" {
		i, err := asInt(value)
		if err != nil {
			return true, err
		}
		if i < 0 {
			return true, fmt.Errorf("must not be negative")
		}
		m.fillLeadZeros = i
		return true, nil
	}
	return m.number.setOption(name, value)
}

// ToValue parses text in the culture's format. Blank text is null.
func (m *Integer) ToValue(text string) (any, error) {
	if trimSpaces(text) == "" {
		return nil, nil
	}
	d, err := m.parse(text)
	if err != nil {
		return nil, m.fail(err)
	}
	return m.review(d, text)
}

// ToValueNeutral parses the culture-neutral form.
func (m *Integer) ToValueNeutral(text string) (any, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	d, err := m.parseNeutral(text)
	if err != nil {
		return nil, m.fail(err)
	}
	return m.review(d, text)
}

func (m *Integer) review(d decimal.Decimal, text string) (any, error) {
	if err := m.checkNegative(d, text); err != nil {
		return nil, m.fail(err)
	}
	if d.LessThan(decimal.NewFromInt(MinInteger)) || d.GreaterThan(decimal.NewFromInt(MaxInteger)) {
		return nil, m.fail(conversionErr(text, "outside the range %d to %d", MinInteger, MaxInteger))
	}
	return d.IntPart(), nil
}

// native converts any Go numeric value holding a whole number.
func (m *Integer) native(value any) (int64, error) {
	d, ok := toDecimal(value)
	if !ok {
		return 0, m.unsupported(value)
	}
	if !d.Equal(d.Truncate(0)) {
		return 0, m.fail(conversionErr(fmt.Sprint(value), "not a whole number"))
	}
	return d.IntPart(), nil
}

// ToString formats value in the culture's format.
func (m *Integer) ToString(value any) (string, error) {
	if value == nil {
		return "", nil
	}
	i, err := m.native(value)
	if err != nil {
		return "", err
	}
	f, err := m.format()
	if err != nil {
		return "", m.fail(err)
	}

	digits := strconv.FormatInt(i, 10)
	neg := i < 0
	if neg {
		digits = digits[1:]
	}
	if m.fillLeadZeros > 0 {
		if len(digits) < m.fillLeadZeros {
			digits = strings.Repeat("0", m.fillLeadZeros-len(digits)) + digits
		}
		return m.formatDigits(f, digits, neg, false), nil
	}
	return m.formatDigits(f, digits, neg, true), nil
}

// ToStringNeutral formats value in the culture-neutral form.
func (m *Integer) ToStringNeutral(value any) (string, error) {
	if value == nil {
		return "", nil
	}
	i, err := m.native(value)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(i, 10), nil
}

// Compare orders a and b, converting strings first. Null sorts first.
func (m *Integer) Compare(a, b any) (int, error) { return compareNumbers(m, a, b) }

// IsNull reports whether value is null.
func (m *Integer) IsNull(value any) bool { return value == nil }

// ToNumber returns the value as a float64.
func (m *Integer) ToNumber(value any) (float64, bool, error) { return numberToNumber(m, value) }
