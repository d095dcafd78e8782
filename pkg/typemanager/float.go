package typemanager

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/plblum/jTAC-sub002/pkg/culture"
)

// floatCore implements the decimal place policy shared by Float, Currency
// and Percent. All arithmetic happens on exact decimals; the float64 native
// value is produced last.
type floatCore struct {
	number

	maxDecimalPlaces          *int
	trailingZeroDecimalPlaces *int
	maxSet                    bool
	trailingSet               bool
	roundMode                 RoundMode

	// cultureDecimals makes unset decimal options default to the
	// culture record's Decimals.
	cultureDecimals     bool
	hideDecimalWhenZero bool
	// shift moves the decimal point: the native value is the displayed
	// value times 10^-shift.
	shift int32
}

func newFloatCore(typeName string, provider culture.Provider, record numberRecord) floatCore {
	return floatCore{number: newNumber(typeName, provider, record)}
}

func (c *floatCore) setOption(name string, value any) (bool, error) {
	switch name {
	case "maxDecimalPlaces":
		p, err := asOptionalInt(value)
		if err != nil {
			return true, err
		}
		if p != nil && *p < 0 {
			return true, fmt.Errorf("must not be negative")
		}
		c.maxDecimalPlaces, c.maxSet = p, true
		return true, nil
	case "trailingZeroDecimalPlaces":
		p, err := asOptionalInt(value)
		if err != nil {
			return true, err
		}
		if p != nil && *p < 0 {
			return true, fmt.Errorf("must not be negative")
		}
		c.trailingZeroDecimalPlaces, c.trailingSet = p, true
		return true, nil
	case "roundMode":
		mode, err := ParseRoundMode(value)
		if err != nil {
			return true, err
		}
		c.roundMode = mode
		return true, nil
	case "acceptPeriodAsDecSep":
		return true, setBool(&c.acceptPeriodAsDecSep, value)
	}
	return c.number.setOption(name, value)
}

// places returns the effective maximum and trailing zero settings.
func (c *floatCore) places() (max, trailing *int, err error) {
	max, trailing = c.maxDecimalPlaces, c.trailingZeroDecimalPlaces
	if c.cultureDecimals && (!c.maxSet || !c.trailingSet) {
		f, err := c.format()
		if err != nil {
			return nil, nil, err
		}
		d := f.Decimals
		if !c.maxSet {
			max = &d
		}
		if !c.trailingSet {
			trailing = &d
		}
	}
	return max, trailing, nil
}

func (c *floatCore) toValue(text string) (any, error) {
	if trimSpaces(text) == "" {
		return nil, nil
	}
	d, err := c.parse(text)
	if err != nil {
		return nil, c.fail(err)
	}
	return c.review(d, text)
}

// review applies the negative and decimal place rules to the displayed
// value, then shifts it into the native value.
func (c *floatCore) review(d decimal.Decimal, text string) (any, error) {
	if err := c.checkNegative(d, text); err != nil {
		return nil, c.fail(err)
	}
	max, _, err := c.places()
	if err != nil {
		return nil, c.fail(err)
	}
	if max != nil && decimalPlaces(d) > *max {
		if c.roundMode == RoundNone {
			return nil, c.fail(inputErr(text, "more than %d decimal places", *max))
		}
		d = c.roundMode.Round(d, int32(*max))
	}
	if c.shift != 0 {
		d = d.Shift(-c.shift)
	}
	return c.toFloat(d, text)
}

func (c *floatCore) toFloat(d decimal.Decimal, text string) (any, error) {
	f, _ := d.Float64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, c.fail(conversionErr(text, "outside the range of a float"))
	}
	return f, nil
}

func (c *floatCore) decimalOf(value any) (decimal.Decimal, error) {
	d, ok := toDecimal(value)
	if !ok {
		if f, isNum := toFloat64(value); isNum && (math.IsNaN(f) || math.IsInf(f, 0)) {
			return decimal.Zero, c.fail(conversionErr(fmt.Sprint(value), "not a finite number"))
		}
		return decimal.Zero, c.unsupported(value)
	}
	return d, nil
}

func (c *floatCore) toString(value any) (string, error) {
	if value == nil {
		return "", nil
	}
	d, err := c.decimalOf(value)
	if err != nil {
		return "", err
	}
	f, err := c.format()
	if err != nil {
		return "", c.fail(err)
	}
	max, trailing, err := c.places()
	if err != nil {
		return "", c.fail(err)
	}

	if c.shift != 0 {
		d = d.Shift(c.shift)
	}
	if max != nil && decimalPlaces(d) > *max {
		mode := c.roundMode
		if mode == RoundNone {
			mode = RoundPoint5
		}
		d = mode.Round(d, int32(*max))
	}

	digits := ApplyTrailingZeroPolicy(localDigits(d, f.DecimalSep), f.DecimalSep, trailing)
	if c.hideDecimalWhenZero {
		if intPart, frac, ok := strings.Cut(digits, f.DecimalSep); ok && strings.Trim(frac, "0") == "" {
			digits = intPart
		}
	}
	return c.formatDigits(f, digits, d.IsNegative(), true), nil
}

func (c *floatCore) toValueNeutral(text string) (any, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	d, err := c.parseNeutral(text)
	if err != nil {
		return nil, c.fail(err)
	}
	if err := c.checkNegative(d, text); err != nil {
		return nil, c.fail(err)
	}
	return c.toFloat(d, text)
}

func (c *floatCore) toStringNeutral(value any) (string, error) {
	if value == nil {
		return "", nil
	}
	d, err := c.decimalOf(value)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

// Float manages floating point numbers formatted with the culture number
// record. The native value is float64.
//
// Options: cultureName, allowNegatives, showGroupSep, allowGroupSep,
// strictSymbols, maxDecimalPlaces, trailingZeroDecimalPlaces, roundMode,
// acceptPeriodAsDecSep.
type Float struct {
	floatCore
}

// NewFloat creates a Float manager. A nil provider selects the built-in
// cultures.
func NewFloat(provider culture.Provider, opts Options) (*Float, error) {
	m := &Float{floatCore: newFloatCore("Float", provider, recordNumber)}
	if err := m.Configure(opts); err != nil {
		return nil, err
	}
	return m, nil
}

// NativeKind reports the kind of native value.
func (m *Float) NativeKind() NativeKind { return NativeNumber }

// StorageKind reports how values are stored.
func (m *Float) StorageKind() StorageKind { return StorageFloat }

// SetOption sets one option by name.
func (m *Float) SetOption(name string, value any) error { return setOption(m, name, value) }

// Configure applies each option in opts.
func (m *Float) Configure(opts Options) error { return configure(m, opts) }

// ToValue parses text in the culture's format. Blank text is null.
func (m *Float) ToValue(text string) (any, error) { return m.toValue(text) }

// ToString formats value in the culture's format.
func (m *Float) ToString(value any) (string, error) { return m.toString(value) }

// ToValueNeutral parses the culture-neutral form.
func (m *Float) ToValueNeutral(text string) (any, error) { return m.toValueNeutral(text) }

// ToStringNeutral formats value in the culture-neutral form.
func (m *Float) ToStringNeutral(value any) (string, error) { return m.toStringNeutral(value) }

// Compare orders a and b, converting strings first. Null sorts first.
func (m *Float) Compare(a, b any) (int, error) { return compareNumbers(m, a, b) }

// IsNull reports whether value is null.
func (m *Float) IsNull(value any) bool { return value == nil }

// ToNumber returns the value as a float64.
func (m *Float) ToNumber(value any) (float64, bool, error) { return numberToNumber(m, value) }
