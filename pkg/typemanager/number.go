package typemanager

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/plblum/jTAC-sub002/pkg/culture"
)

// numberRecord selects the culture block a numeric manager formats with.
type numberRecord int

const (
	recordNumber numberRecord = iota
	recordCurrency
	recordPercent
)

var (
	neutralNumber  = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
	neutralInteger = regexp.MustCompile(`^-?\d+$`)

	hideSymbol = strings.NewReplacer("$ ", "", " $", "", "$", "", "% ", "", " %", "", "%", "")
)

// number holds the parsing and formatting rules shared by every numeric
// type manager.
type number struct {
	base
	record      numberRecord
	integerOnly bool

	allowNegatives       bool
	showGroupSep         bool
	allowGroupSep        bool
	strictSymbols        bool
	acceptPeriodAsDecSep bool

	showSymbol  bool
	allowSymbol bool
}

func newNumber(typeName string, provider culture.Provider, record numberRecord) number {
	return number{
		base:           newBase(typeName, provider),
		record:         record,
		allowNegatives: true,
		showGroupSep:   true,
		allowGroupSep:  true,
		showSymbol:     true,
		allowSymbol:    true,
	}
}

func (n *number) format() (culture.NumberFormat, error) {
	info, err := n.Culture()
	if err != nil {
		return culture.NumberFormat{}, err
	}
	switch n.record {
	case recordCurrency:
		return info.Currency, nil
	case recordPercent:
		return info.Percent, nil
	}
	return info.Number, nil
}

func setBool(field *bool, v any) error {
	b, err := asBool(v)
	if err != nil {
		return err
	}
	*field = b
	return nil
}

func (n *number) setOption(name string, value any) (bool, error) {
	switch name {
	case "allowNegatives":
		return true, setBool(&n.allowNegatives, value)
	case "showGroupSep":
		return true, setBool(&n.showGroupSep, value)
	case "allowGroupSep":
		return true, setBool(&n.allowGroupSep, value)
	case "strictSymbols":
		return true, setBool(&n.strictSymbols, value)
	}
	return n.base.setOption(name, value)
}

// parse converts culture formatted text into a decimal. The text must not
// be empty.
func (n *number) parse(text string) (decimal.Decimal, error) {
	f, err := n.format()
	if err != nil {
		return decimal.Zero, err
	}
	original := text
	text = trimSpaces(text)

	if n.strictSymbols {
		err := EnforceStrictSymbolPositions(text, SymbolPattern{
			NegPattern: f.NegPattern,
			PosPattern: f.PosPattern,
			NegSymbol:  f.NegSymbol,
			Symbol:     f.Symbol,
			GroupSep:   f.GroupSep,
			DecimalSep: f.DecimalSep,
		})
		if err != nil {
			return decimal.Zero, err
		}
	}

	neg, err := DetectNegative(text, f.NegSymbol, f.UsesParentheses())
	if err != nil {
		return decimal.Zero, err
	}
	if neg {
		text = strings.NewReplacer("(", "", ")", "").Replace(text)
		if f.NegSymbol != "" {
			text = strings.ReplaceAll(text, f.NegSymbol, "")
		}
	}

	if f.Symbol != "" && strings.Contains(text, f.Symbol) {
		if !n.allowSymbol {
			return decimal.Zero, inputErr(original, "the symbol %q is not allowed", f.Symbol)
		}
		text = strings.Replace(text, f.Symbol, "", 1)
	}
	text = trimSpaces(text)
	if text == "" {
		return decimal.Zero, conversionErr(original, "no digits found")
	}

	decSep := f.DecimalSep
	if n.acceptPeriodAsDecSep && decSep != "." && !strings.Contains(text, decSep) && strings.Count(text, ".") == 1 {
		text = strings.Replace(text, ".", decSep, 1)
	}
	if strings.Count(text, decSep) > 1 {
		return decimal.Zero, conversionErr(original, "more than one decimal separator")
	}

	intPart, frac, hasFrac := strings.Cut(text, decSep)
	if hasFrac && n.integerOnly {
		return decimal.Zero, conversionErr(original, "decimal values are not allowed")
	}
	if f.GroupSep != "" {
		stripped := StripGroupSeparators(intPart, f.GroupSep)
		if stripped != intPart && !n.allowGroupSep {
			return decimal.Zero, conversionErr(original, "group separators are not allowed")
		}
		intPart = stripped
	}
	if !isDigits(intPart) || !isDigits(frac) || intPart+frac == "" {
		return decimal.Zero, conversionErr(original, "illegal characters")
	}

	s := intPart
	if s == "" {
		s = "0"
	}
	if hasFrac && frac != "" {
		s += "." + frac
	}
	if neg {
		s = "-" + s
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, conversionErr(original, "%v", err)
	}
	return d, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// parseNeutral converts the culture independent form: digits, one period
// and an optional leading minus.
func (n *number) parseNeutral(text string) (decimal.Decimal, error) {
	re := neutralNumber
	if n.integerOnly {
		re = neutralInteger
	}
	if !re.MatchString(text) {
		return decimal.Zero, conversionErr(text, "not a neutral number")
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, conversionErr(text, "%v", err)
	}
	return d, nil
}

func (n *number) checkNegative(d decimal.Decimal, text string) error {
	if d.IsNegative() && !n.allowNegatives {
		return inputErr(text, "negative values are not allowed")
	}
	return nil
}

// formatDigits applies group separators and the positive or negative
// pattern to an unsigned digit string that uses the culture decimal
// separator.
func (n *number) formatDigits(f culture.NumberFormat, digits string, neg, group bool) string {
	if group && n.showGroupSep {
		digits = InsertGroupSeparators(digits, f.GroupSizes, f.GroupSep, f.DecimalSep)
	}
	pattern := f.PosPattern
	if neg {
		pattern = f.NegPattern
	}
	if !n.showSymbol || f.Symbol == "" {
		pattern = hideSymbol.Replace(pattern)
	}

	var b strings.Builder
	for _, r := range pattern {
		switch r {
		case 'n':
			b.WriteString(digits)
		case '$', '%':
			b.WriteString(f.Symbol)
		case '-':
			b.WriteString(f.NegSymbol)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// localDigits renders |d| with the culture decimal separator.
func localDigits(d decimal.Decimal, decSep string) string {
	s := d.Abs().String()
	if decSep != "." {
		s = strings.Replace(s, ".", decSep, 1)
	}
	return s
}

// IsValidChar reports whether ch may appear in text given to ToValue.
func (n *number) IsValidChar(ch rune) bool {
	if ch >= '0' && ch <= '9' {
		return true
	}
	f, err := n.format()
	if err != nil {
		return false
	}
	switch {
	case strings.ContainsRune(f.DecimalSep, ch):
		return !n.integerOnly
	case ch == '.' && n.acceptPeriodAsDecSep:
		return !n.integerOnly
	case n.allowGroupSep && (strings.ContainsRune(f.GroupSep, ch) || (isSpaceSeparator(f.GroupSep) && ch == ' ')):
		return true
	case n.allowNegatives && strings.ContainsRune(f.NegSymbol, ch):
		return true
	case n.allowNegatives && f.UsesParentheses() && (ch == '(' || ch == ')'):
		return true
	case n.allowSymbol && f.Symbol != "" && strings.ContainsRune(f.Symbol, ch):
		return true
	case ch == ' ':
		return strings.ContainsRune(f.PosPattern+f.NegPattern, ' ')
	}
	return false
}

// coerceNumber converts a Compare or ToNumber argument into a float. Text
// goes through toValue.
func coerceNumber(toValue func(string) (any, error), v any) (any, error) {
	if s, ok := v.(string); ok {
		return toValue(s)
	}
	return v, nil
}

func compareNumbers(tm TypeManager, a, b any) (int, error) {
	var err error
	if a, err = coerceNumber(tm.ToValue, a); err != nil {
		return 0, err
	}
	if b, err = coerceNumber(tm.ToValue, b); err != nil {
		return 0, err
	}
	if c, ok := compareNil(a, b); ok {
		return c, nil
	}
	da, ok := toDecimal(a)
	if !ok {
		return 0, &ConversionError{TypeName: tm.TypeName(), Reason: "not a number"}
	}
	db, ok := toDecimal(b)
	if !ok {
		return 0, &ConversionError{TypeName: tm.TypeName(), Reason: "not a number"}
	}
	return da.Cmp(db), nil
}

func numberToNumber(tm TypeManager, v any) (float64, bool, error) {
	v, err := coerceNumber(tm.ToValue, v)
	if err != nil {
		return 0, false, err
	}
	if v == nil {
		return 0, false, nil
	}
	f, ok := toFloat64(v)
	if !ok {
		return 0, false, &ConversionError{TypeName: tm.TypeName(), Reason: "not a number"}
	}
	return f, true, nil
}
