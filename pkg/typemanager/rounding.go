package typemanager

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RoundMode selects how values with too many decimal places are reduced.
type RoundMode int

const (
	// RoundPoint5 rounds half away from zero.
	RoundPoint5 RoundMode = iota
	// RoundCurrency rounds half to even (banker's rounding).
	RoundCurrency
	// RoundTruncate drops the extra digits.
	RoundTruncate
	// RoundCeiling rounds toward positive infinity.
	RoundCeiling
	// RoundNextWhole rounds away from zero.
	RoundNextWhole
	// RoundNone rejects values with too many decimal places.
	RoundNone
)

var roundModeNames = map[RoundMode]string{
	RoundPoint5:    "Point5",
	RoundCurrency:  "Currency",
	RoundTruncate:  "Truncate",
	RoundCeiling:   "Ceiling",
	RoundNextWhole: "NextWhole",
	RoundNone:      "None",
}

func (m RoundMode) String() string {
	if name, ok := roundModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("RoundMode(%d)", int(m))
}

// ParseRoundMode accepts a RoundMode, its integer value or its name.
func ParseRoundMode(v any) (RoundMode, error) {
	switch m := v.(type) {
	case RoundMode:
		if _, ok := roundModeNames[m]; ok {
			return m, nil
		}
	case string:
		for mode, name := range roundModeNames {
			if strings.EqualFold(name, strings.TrimSpace(m)) {
				return mode, nil
			}
		}
		if i, err := asInt(m); err == nil {
			return ParseRoundMode(i)
		}
	default:
		if i, err := asInt(v); err == nil {
			mode := RoundMode(i)
			if _, ok := roundModeNames[mode]; ok {
				return mode, nil
			}
		}
	}
	return 0, fmt.Errorf("unknown round mode %v", v)
}

// Round reduces d to places decimal places. RoundNone returns d unchanged.
func (m RoundMode) Round(d decimal.Decimal, places int32) decimal.Decimal {
	switch m {
	case RoundPoint5:
		return d.Round(places)
	case RoundCurrency:
		return d.RoundBank(places)
	case RoundTruncate:
		return d.Truncate(places)
	case RoundCeiling:
		return d.RoundCeil(places)
	case RoundNextWhole:
		return d.RoundUp(places)
	}
	return d
}

// decimalPlaces counts the significant decimal places of d.
func decimalPlaces(d decimal.Decimal) int {
	s := d.String()
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(strings.TrimRight(s[i+1:], "0"))
	}
	return 0
}
