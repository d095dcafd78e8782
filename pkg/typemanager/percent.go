package typemanager

import "github.com/plblum/jTAC-sub002/pkg/culture"

// Percent manages percentages formatted with the culture percent record.
// With oneEqualsOneHundred (the default) the native value 0.075 is shown as
// "7.5 %". The shift is done on exact decimals and the decimal place rules
// apply to the displayed value.
//
// Options: those of Float plus oneEqualsOneHundred, showPercentSymbol,
// allowPercentSymbol.
type Percent struct {
	floatCore
}

// NewPercent creates a Percent manager.
func NewPercent(provider culture.Provider, opts Options) (*Percent, error) {
	m := &Percent{floatCore: newFloatCore("Percent", provider, recordPercent)}
	zero := 0
	m.trailingZeroDecimalPlaces = &zero
	m.shift = 2
	if err := m.Configure(opts); err != nil {
		return nil, err
	}
	return m, nil
}

// NativeKind reports the kind of native value.
func (m *Percent) NativeKind() NativeKind { return NativeNumber }

// StorageKind reports how values are stored.
func (m *Percent) StorageKind() StorageKind { return StorageFloat }

// SetOption sets one option by name.
func (m *Percent) SetOption(name string, value any) error { return setOption(m, name, value) }

// Configure applies each option in opts.
func (m *Percent) Configure(opts Options) error { return configure(m, opts) }

func (m *Percent) setOption(name string, value any) (bool, error) {
	switch name {
	case "oneEqualsOneHundred":
		var on bool
		if err := setBool(&on, value); err != nil {
			return true, err
		}
		m.shift = 0
		if on {
			m.shift = 2
		}
		return true, nil
	case "showPercentSymbol":
		return true, setBool(&m.showSymbol, value)
	case "allowPercentSymbol":
		return true, setBool(&m.allowSymbol, value)
	}
	return m.floatCore.setOption(name, value)
}

// ToValue parses text in the culture's format. Blank text is null.
func (m *Percent) ToValue(text string) (any, error) { return m.toValue(text) }

// ToString formats value in the culture's format.
func (m *Percent) ToString(value any) (string, error) { return m.toString(value) }

// ToValueNeutral parses the culture-neutral form.
func (m *Percent) ToValueNeutral(text string) (any, error) { return m.toValueNeutral(text) }

// ToStringNeutral formats value in the culture-neutral form.
func (m *Percent) ToStringNeutral(value any) (string, error) { return m.toStringNeutral(value) }

// Compare orders a and b, converting strings first. Null sorts first.
func (m *Percent) Compare(a, b any) (int, error) { return compareNumbers(m, a, b) }

// IsNull reports whether value is null.
func (m *Percent) IsNull(value any) bool { return value == nil }

// ToNumber returns the value as a float64.
func (m *Percent) ToNumber(value any) (float64, bool, error) { return numberToNumber(m, value) }
