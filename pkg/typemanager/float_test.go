package typemanager_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plblum/jTAC-sub002/pkg/typemanager"
)

func TestFloatToValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     typemanager.Options
		text     string
		expected any
		errCheck func(error) bool
	}{
		{name: "grouped", text: "1,234.5", expected: 1234.5},
		{name: "negative", text: "-0.25", expected: -0.25},
		{name: "leading decimal separator", text: ".5", expected: 0.5},
		{name: "null", text: " ", expected: nil},
		{name: "two decimal separators", text: "1.2.3", errCheck: typemanager.IsConversionError},
		{name: "exponent", text: "1e5", errCheck: typemanager.IsConversionError},
		{name: "point5 rounds half away from zero", opts: typemanager.Options{"maxDecimalPlaces": 2}, text: "1.005", expected: 1.01},
		{name: "currency rounding to even", opts: typemanager.Options{"maxDecimalPlaces": 2, "roundMode": "Currency"}, text: "1.005", expected: 1.0},
		{name: "currency rounding up to even", opts: typemanager.Options{"maxDecimalPlaces": 2, "roundMode": "Currency"}, text: "1.015", expected: 1.02},
		{name: "truncate", opts: typemanager.Options{"maxDecimalPlaces": 2, "roundMode": typemanager.RoundTruncate}, text: "1.009", expected: 1.0},
		{name: "ceiling on negative", opts: typemanager.Options{"maxDecimalPlaces": 2, "roundMode": "Ceiling"}, text: "-1.001", expected: -1.0},
		{name: "next whole", opts: typemanager.Options{"maxDecimalPlaces": 2, "roundMode": "NextWhole"}, text: "1.001", expected: 1.01},
		{name: "too many decimals", opts: typemanager.Options{"maxDecimalPlaces": 2, "roundMode": "None"}, text: "1.005", errCheck: typemanager.IsInputError},
		{name: "trailing zeros do not count", opts: typemanager.Options{"maxDecimalPlaces": 2, "roundMode": "None"}, text: "1.5000", expected: 1.5},
		{name: "german decimal comma", opts: typemanager.Options{"cultureName": "de-DE"}, text: "1.234,5", expected: 1234.5},
		{name: "german period is a group separator", opts: typemanager.Options{"cultureName": "de-DE"}, text: "1.5", expected: 15.0},
		{name: "period accepted as decimal separator", opts: typemanager.Options{"cultureName": "de-DE", "acceptPeriodAsDecSep": true}, text: "1.5", expected: 1.5},
		{name: "french spaces", opts: typemanager.Options{"cultureName": "fr-FR"}, text: "1 234,5", expected: 1234.5},
		{name: "negatives not allowed", opts: typemanager.Options{"allowNegatives": false}, text: "-1.5", errCheck: typemanager.IsInputError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tm, err := typemanager.NewFloat(nil, tt.opts)
			require.NoError(t, err)
			v, err := tm.ToValue(tt.text)
			if tt.errCheck != nil {
				require.Error(t, err)
				assert.True(t, tt.errCheck(err), "unexpected error kind: %v", err)
				return
			}
			require.NoError(t, err)
			if tt.expected == nil {
				assert.Nil(t, v)
				return
			}
			assert.InDelta(t, tt.expected, v, 1e-9)
		})
	}
}

func TestFloatToString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     typemanager.Options
		value    any
		expected string
	}{
		{name: "grouped", value: 1234.5, expected: "1,234.5"},
		{name: "whole number keeps one decimal", value: 12.0, expected: "12.0"},
		{name: "integer input", value: 7, expected: "7.0"},
		{name: "negative", value: -0.5, expected: "-0.5"},
		{name: "french", opts: typemanager.Options{"cultureName": "fr-FR"}, value: 1234.5, expected: "1\u00a0234,5"},
		{name: "german", opts: typemanager.Options{"cultureName": "de-DE"}, value: -1234.5, expected: "-1.234,5"},
		{name: "trailing zeros", opts: typemanager.Options{"trailingZeroDecimalPlaces": 2}, value: 3.1, expected: "3.10"},
		{name: "no trailing zeros", opts: typemanager.Options{"trailingZeroDecimalPlaces": 0}, value: 3.0, expected: "3"},
		{name: "rounded for display", opts: typemanager.Options{"maxDecimalPlaces": 2}, value: 3.14159, expected: "3.14"},
		{name: "no grouping", opts: typemanager.Options{"showGroupSep": false}, value: 1234567.25, expected: "1234567.25"},
		{name: "null", value: nil, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tm, err := typemanager.NewFloat(nil, tt.opts)
			require.NoError(t, err)
			s, err := tm.ToString(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, s)
		})
	}

	t.Run("not finite", func(t *testing.T) {
		t.Parallel()
		tm, err := typemanager.NewFloat(nil, nil)
		require.NoError(t, err)
		_, err = tm.ToString(math.NaN())
		assert.True(t, typemanager.IsConversionError(err))
		_, err = tm.ToString(math.Inf(1))
		assert.True(t, typemanager.IsConversionError(err))
	})
}

func TestFloatNeutral(t *testing.T) {
	t.Parallel()

	for _, cultureName := range []string{"en-US", "de-DE", "fr-FR"} {
		tm, err := typemanager.NewFloat(nil, typemanager.Options{"cultureName": cultureName})
		require.NoError(t, err)

		s, err := tm.ToStringNeutral(1234.5)
		require.NoError(t, err)
		assert.Equal(t, "1234.5", s)

		v, err := tm.ToValueNeutral("-1234.5")
		require.NoError(t, err)
		assert.Equal(t, -1234.5, v)

		_, err = tm.ToValueNeutral("1,234.5")
		assert.True(t, typemanager.IsConversionError(err))
	}
}

func TestFloatRoundTrip(t *testing.T) {
	t.Parallel()

	for _, cultureName := range []string{"en-US", "en-GB", "fr-FR", "de-DE", "nl-NL", "hi-IN", "sv-SE", "invariant"} {
		tm, err := typemanager.NewFloat(nil, typemanager.Options{"cultureName": cultureName})
		require.NoError(t, err)
		for _, v := range []float64{0, 0.5, -0.5, 1.25, -1234.5, 1234567.125, 98765.4321} {
			s, err := tm.ToString(v)
			require.NoError(t, err)
			back, err := tm.ToValue(s)
			require.NoError(t, err, "culture %s text %q", cultureName, s)
			assert.Equal(t, v, back, "culture %s text %q", cultureName, s)
		}
	}
}

func TestFloatCultureChange(t *testing.T) {
	t.Parallel()

	tm, err := typemanager.NewFloat(nil, nil)
	require.NoError(t, err)

	s, err := tm.ToString(1234.5)
	require.NoError(t, err)
	assert.Equal(t, "1,234.5", s)

	require.NoError(t, tm.SetOption("cultureName", "de-DE"))
	s, err = tm.ToString(1234.5)
	require.NoError(t, err)
	assert.Equal(t, "1.234,5", s)

	v, err := tm.ToValue("1.234,5")
	require.NoError(t, err)
	assert.Equal(t, 1234.5, v)
}

func TestCurrency(t *testing.T) {
	t.Parallel()

	t.Run("negative uses parentheses", func(t *testing.T) {
		t.Parallel()
		tm, err := typemanager.NewCurrency(nil, nil)
		require.NoError(t, err)

		s, err := tm.ToString(-1234.5)
		require.NoError(t, err)
		assert.Equal(t, "($1,234.50)", s)

		v, err := tm.ToValue(s)
		require.NoError(t, err)
		assert.Equal(t, -1234.5, v)

		v, err = tm.ToValue("-1234.5")
		require.NoError(t, err)
		assert.Equal(t, -1234.5, v)
	})

	t.Run("too many decimals", func(t *testing.T) {
		t.Parallel()
		tm, err := typemanager.NewCurrency(nil, nil)
		require.NoError(t, err)
		_, err = tm.ToValue("1234.567")
		assert.True(t, typemanager.IsInputError(err))
	})

	t.Run("rounding", func(t *testing.T) {
		t.Parallel()
		tm, err := typemanager.NewCurrency(nil, typemanager.Options{"roundMode": "Currency"})
		require.NoError(t, err)
		v, err := tm.ToValue("1234.565")
		require.NoError(t, err)
		assert.InDelta(t, 1234.56, v, 1e-9)
	})

	t.Run("symbol hidden", func(t *testing.T) {
		t.Parallel()
		tm, err := typemanager.NewCurrency(nil, typemanager.Options{"showCurrencySymbol": false})
		require.NoError(t, err)
		s, err := tm.ToString(5)
		require.NoError(t, err)
		assert.Equal(t, "5.00", s)
	})

	t.Run("decimals hidden when zero", func(t *testing.T) {
		t.Parallel()
		tm, err := typemanager.NewCurrency(nil, typemanager.Options{"hideDecimalWhenZero": true})
		require.NoError(t, err)
		s, err := tm.ToString(5)
		require.NoError(t, err)
		assert.Equal(t, "$5", s)
		s, err = tm.ToString(5.5)
		require.NoError(t, err)
		assert.Equal(t, "$5.50", s)
	})

	t.Run("symbol not allowed", func(t *testing.T) {
		t.Parallel()
		tm, err := typemanager.NewCurrency(nil, typemanager.Options{"allowCurrencySymbol": false})
		require.NoError(t, err)
		_, err = tm.ToValue("$5")
		assert.True(t, typemanager.IsInputError(err))
		v, err := tm.ToValue("5")
		require.NoError(t, err)
		assert.Equal(t, 5.0, v)
	})

	t.Run("french euro", func(t *testing.T) {
		t.Parallel()
		tm, err := typemanager.NewCurrency(nil, typemanager.Options{"cultureName": "fr-FR"})
		require.NoError(t, err)
		s, err := tm.ToString(1234.5)
		require.NoError(t, err)
		assert.Equal(t, "1\u00a0234,50 €", s)
		v, err := tm.ToValue("1 234,50 €")
		require.NoError(t, err)
		assert.Equal(t, 1234.5, v)
	})

	t.Run("yen has no decimals", func(t *testing.T) {
		t.Parallel()
		tm, err := typemanager.NewCurrency(nil, typemanager.Options{"cultureName": "ja-JP"})
		require.NoError(t, err)
		s, err := tm.ToString(1234)
		require.NoError(t, err)
		assert.Equal(t, "¥1,234", s)
		_, err = tm.ToValue("¥12.5")
		assert.True(t, typemanager.IsInputError(err))
	})

	t.Run("strict symbols", func(t *testing.T) {
		t.Parallel()
		tm, err := typemanager.NewCurrency(nil, typemanager.Options{"strictSymbols": true})
		require.NoError(t, err)
		_, err = tm.ToValue("(1,234.50$)")
		assert.True(t, typemanager.IsInputError(err))
		v, err := tm.ToValue("($1,234.50)")
		require.NoError(t, err)
		assert.Equal(t, -1234.5, v)
	})
}

func TestPercent(t *testing.T) {
	t.Parallel()

	tm, err := typemanager.NewPercent(nil, nil)
	require.NoError(t, err)

	tests := []struct {
		value any
		text  string
	}{
		{value: 0.075, text: "7.5 %"},
		{value: 0.5, text: "50 %"},
		{value: -0.25, text: "-25 %"},
		{value: 1.0, text: "100 %"},
	}
	for _, tt := range tests {
		s, err := tm.ToString(tt.value)
		require.NoError(t, err)
		assert.Equal(t, tt.text, s)

		v, err := tm.ToValue(tt.text)
		require.NoError(t, err)
		assert.Equal(t, tt.value, v)
	}

	v, err := tm.ToValue("12")
	require.NoError(t, err)
	assert.Equal(t, 0.12, v)

	neutral, err := tm.ToStringNeutral(0.075)
	require.NoError(t, err)
	assert.Equal(t, "0.075", neutral)

	t.Run("rounded on the displayed value", func(t *testing.T) {
		t.Parallel()
		tm, err := typemanager.NewPercent(nil, typemanager.Options{"maxDecimalPlaces": 2})
		require.NoError(t, err)
		v, err := tm.ToValue("12.345 %")
		require.NoError(t, err)
		assert.Equal(t, 0.1235, v)
	})

	t.Run("one equals one", func(t *testing.T) {
		t.Parallel()
		tm, err := typemanager.NewPercent(nil, typemanager.Options{"oneEqualsOneHundred": false})
		require.NoError(t, err)
		v, err := tm.ToValue("50")
		require.NoError(t, err)
		assert.Equal(t, 50.0, v)
		s, err := tm.ToString(50)
		require.NoError(t, err)
		assert.Equal(t, "50 %", s)
	})

	t.Run("symbol hidden", func(t *testing.T) {
		t.Parallel()
		tm, err := typemanager.NewPercent(nil, typemanager.Options{"showPercentSymbol": false})
		require.NoError(t, err)
		s, err := tm.ToString(0.5)
		require.NoError(t, err)
		assert.Equal(t, "50", s)
	})
}

func TestParseRoundMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       any
		expected typemanager.RoundMode
		wantErr  bool
	}{
		{in: "currency", expected: typemanager.RoundCurrency},
		{in: " Truncate ", expected: typemanager.RoundTruncate},
		{in: 3, expected: typemanager.RoundCeiling},
		{in: "4", expected: typemanager.RoundNextWhole},
		{in: typemanager.RoundNone, expected: typemanager.RoundNone},
		{in: "sideways", wantErr: true},
		{in: 9, wantErr: true},
		{in: 1.5, wantErr: true},
	}
	for _, tt := range tests {
		mode, err := typemanager.ParseRoundMode(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %v", tt.in)
			continue
		}
		require.NoError(t, err, "input %v", tt.in)
		assert.Equal(t, tt.expected, mode)
	}

	assert.Equal(t, "NextWhole", typemanager.RoundNextWhole.String())
	assert.Equal(t, "RoundMode(42)", typemanager.RoundMode(42).String())
}

func TestFloatOptionErrors(t *testing.T) {
	t.Parallel()

	_, err := typemanager.NewFloat(nil, typemanager.Options{"maxDecimalPlaces": -1})
	assert.ErrorIs(t, err, typemanager.ErrInvalidOption)

	_, err = typemanager.NewFloat(nil, typemanager.Options{"roundMode": "sideways"})
	assert.ErrorIs(t, err, typemanager.ErrInvalidOption)

	_, err = typemanager.NewFloat(nil, typemanager.Options{"fillLeadZeros": 2})
	assert.ErrorIs(t, err, typemanager.ErrUnknownOption)

	tm, err := typemanager.NewFloat(nil, typemanager.Options{"maxDecimalPlaces": "null"})
	require.NoError(t, err)
	v, err := tm.ToValue("1.23456")
	require.NoError(t, err)
	assert.Equal(t, 1.23456, v)
}
