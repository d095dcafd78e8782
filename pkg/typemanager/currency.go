package typemanager

import "github.com/plblum/jTAC-sub002/pkg/culture"

// Currency manages money amounts formatted with the culture currency
// record. maxDecimalPlaces and trailingZeroDecimalPlaces default to the
// culture's currency decimals and values with more decimals are rejected
// unless a roundMode is set.
//
// Options: those of Float plus hideDecimalWhenZero, showCurrencySymbol,
// allowCurrencySymbol.
type Currency struct {
	floatCore
}

// NewCurrency creates a Currency manager.
func NewCurrency(provider culture.Provider, opts Options) (*Currency, error) {
	m := &Currency{floatCore: newFloatCore("Currency", provider, recordCurrency)}
	m.cultureDecimals = true
	m.roundMode = RoundNone
	if err := m.Configure(opts); err != nil {
		return nil, err
	}
	return m, nil
}

// NativeKind reports the kind of native value.
func (m *Currency) NativeKind() NativeKind { return NativeNumber }

// StorageKind reports how values are stored.
func (m *Currency) StorageKind() StorageKind { return StorageFloat }

// SetOption sets one option by name.
func (m *Currency) SetOption(name string, value any) error { return setOption(m, name, value) }

// Configure applies each option in opts.
func (m *Currency) Configure(opts Options) error { return configure(m, opts) }

func (m *Currency) setOption(name string, value any) (bool, error) {
	switch name {
	case "hideDecimalWhenZero":
		return true, setBool(&m.hideDecimalWhenZero, value)
	case "showCurrencySymbol":
		return true, setBool(&m.showSymbol, value)
	case "allowCurrencySymbol":
		return true, setBool(&m.allowSymbol, value)
	}
	return m.floatCore.setOption(name, value)
}

// ToValue parses text in the culture's format. Blank text is null.
func (m *Currency) ToValue(text string) (any, error) { return m.toValue(text) }

// ToString formats value in the culture's format.
func (m *Currency) ToString(value any) (string, error) { return m.toString(value) }

// ToValueNeutral parses the culture-neutral form.
func (m *Currency) ToValueNeutral(text string) (any, error) { return m.toValueNeutral(text) }

// ToStringNeutral formats value in the culture-neutral form.
func (m *Currency) ToStringNeutral(value any) (string, error) { return m.toStringNeutral(value) }

// Compare orders a and b, converting strings first. Null sorts first.
func (m *Currency) Compare(a, b any) (int, error) { return compareNumbers(m, a, b) }

// IsNull reports whether value is null.
func (m *Currency) IsNull(value any) bool { return value == nil }

// ToNumber returns the value as a float64.
func (m *Currency) ToNumber(value any) (float64, bool, error) { return numberToNumber(m, value) }
