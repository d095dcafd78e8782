package typemanager

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Option values arrive from Go code, JSON documents or command line flags,
// so the coercions below accept the natural spellings of each.

func asString(v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case fmt.Stringer:
		return s.String(), nil
	case nil:
		return "", nil
	}
	return "", fmt.Errorf("expected string, got %T", v)
}

func asBool(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		if err != nil {
			return false, fmt.Errorf("expected boolean, got %q", b)
		}
		return parsed, nil
	}
	return false, fmt.Errorf("expected boolean, got %T", v)
}

func asInt(v any) (int, error) {
	switch n := v.(type) {
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("expected integer, got %q", n)
		}
		return i, nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, fmt.Errorf("expected integer, got %q", n.String())
		}
		return int(i), nil
	}
	f, ok := toFloat64(v)
	if !ok || f != math.Trunc(f) {
		return 0, fmt.Errorf("expected integer, got %v", v)
	}
	return int(f), nil
}

// asOptionalInt maps nil (and the string "null") to a nil pointer.
func asOptionalInt(v any) (*int, error) {
	if v == nil {
		return nil, nil
	}
	if s, ok := v.(string); ok && (strings.EqualFold(strings.TrimSpace(s), "null") || strings.TrimSpace(s) == "") {
		return nil, nil
	}
	if p, ok := v.(*int); ok {
		if p == nil {
			return nil, nil
		}
		i := *p
		return &i, nil
	}
	i, err := asInt(v)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func asFloat(v any) (float64, error) {
	if s, ok := v.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, fmt.Errorf("expected number, got %q", s)
		}
		return f, nil
	}
	f, ok := toFloat64(v)
	if !ok {
		return 0, fmt.Errorf("expected number, got %T", v)
	}
	return f, nil
}

// asStrings accepts a string slice or a single "|" delimited string.
func asStrings(v any) ([]string, error) {
	switch s := v.(type) {
	case []string:
		return append([]string(nil), s...), nil
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			str, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected string list, got element %T", item)
			}
			out = append(out, str)
		}
		return out, nil
	case string:
		if s == "" {
			return nil, nil
		}
		return strings.Split(s, "|"), nil
	}
	return nil, fmt.Errorf("expected string list, got %T", v)
}

// toFloat64 converts any Go numeric value.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case decimal.Decimal:
		f, _ := n.Float64()
		return f, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case time.Duration:
		return n.Seconds(), true
	}
	return 0, false
}

// toDecimal converts a Go numeric value without losing the digits of
// integers. Floats use their shortest round-tripping representation.
func toDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int8:
		return decimal.NewFromInt(int64(n)), true
	case int16:
		return decimal.NewFromInt(int64(n)), true
	case int32:
		return decimal.NewFromInt(int64(n)), true
	case int64:
		return decimal.NewFromInt(n), true
	case uint:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(n)), 0), true
	case uint8:
		return decimal.NewFromInt(int64(n)), true
	case uint16:
		return decimal.NewFromInt(int64(n)), true
	case uint32:
		return decimal.NewFromInt(int64(n)), true
	case uint64:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(n), 0), true
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		return d, err == nil
	case float32:
		if math.IsNaN(float64(n)) || math.IsInf(float64(n), 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat32(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(n), true
	}
	return decimal.Zero, false
}
