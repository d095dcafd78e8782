package typemanager

import (
	"regexp"
	"slices"
	"strings"
	"sync"
	"unicode"
)

const (
	nbsp       = "\u00a0"
	narrowNBSP = "\u202f"
)

// InsertGroupSeparators inserts sep into the integer part of digits. Group
// sizes are read from the least significant digit; the last size repeats
// and a size of 0 leaves the remaining digits in one group. Anything from
// decSep onwards and a leading "-" are kept as they are.
func InsertGroupSeparators(digits string, groupSizes []int, sep, decSep string) string {
	if sep == "" || len(groupSizes) == 0 {
		return digits
	}

	intPart, suffix := digits, ""
	if decSep != "" {
		if i := strings.Index(digits, decSep); i >= 0 {
			intPart, suffix = digits[:i], digits[i:]
		}
	}
	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign, intPart = "-", intPart[1:]
	}

	var groups []string
	rest := intPart
	idx := 0
	for {
		size := groupSizes[idx]
		if size <= 0 || len(rest) <= size {
			groups = append(groups, rest)
			break
		}
		groups = append(groups, rest[len(rest)-size:])
		rest = rest[:len(rest)-size]
		if idx < len(groupSizes)-1 {
			idx++
		}
	}
	slices.Reverse(groups)
	return sign + strings.Join(groups, sep) + suffix
}

// StripGroupSeparators removes every occurrence of sep. When sep is a space
// character, regular, non-breaking and narrow non-breaking spaces are all
// removed, since users rarely type the exact space a culture uses.
func StripGroupSeparators(text, sep string) string {
	if sep == "" {
		return text
	}
	text = strings.ReplaceAll(text, sep, "")
	if isSpaceSeparator(sep) {
		text = strings.NewReplacer(" ", "", nbsp, "", narrowNBSP, "").Replace(text)
	}
	return text
}

func isSpaceSeparator(sep string) bool {
	if sep == "" {
		return false
	}
	for _, r := range sep {
		if !unicode.IsSpace(r) && r != '\u202f' {
			return false
		}
	}
	return true
}

func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

func trimSpaces(s string) string {
	return strings.TrimFunc(s, func(r rune) bool { return unicode.IsSpace(r) || r == '\u202f' })
}

// DetectNegative reports whether text is negative: it contains negSymbol or,
// when allowParens is set, an opening parenthesis. Parentheses found while
// the culture does not use them are an InputError. Only one negative
// notation is allowed and the symbol may not split the digits.
func DetectNegative(text, negSymbol string, allowParens bool) (bool, error) {
	hasSymbol := negSymbol != "" && strings.Contains(text, negSymbol)
	open := strings.Contains(text, "(")
	closing := strings.Contains(text, ")")
	if open || closing {
		if !allowParens {
			return false, inputErr(text, "parentheses are not a negative notation of this culture")
		}
		if !open || !closing || strings.Count(text, "(") > 1 || strings.Count(text, ")") > 1 {
			return false, inputErr(text, "unbalanced parentheses")
		}
		if hasSymbol {
			return false, inputErr(text, "more than one negative notation")
		}
		return true, nil
	}
	if !hasSymbol {
		return false, nil
	}
	if strings.Count(text, negSymbol) > 1 {
		return false, inputErr(text, "more than one negative symbol")
	}
	before, after, _ := strings.Cut(text, negSymbol)
	if strings.ContainsFunc(before, isASCIIDigit) && strings.ContainsFunc(after, isASCIIDigit) {
		return false, inputErr(text, "negative symbol inside the number")
	}
	return true, nil
}

// SymbolPattern describes the culture patterns that strict symbol checking
// enforces.
type SymbolPattern struct {
	NegPattern string
	PosPattern string
	NegSymbol  string
	Symbol     string
	GroupSep   string
	DecimalSep string
}

// EnforceStrictSymbolPositions requires text to match either the positive
// or the negative pattern. The pattern is turned into a regular expression
// where "n" matches the digits with their separators, "$" and "%" match an
// optional symbol, "-" matches the negative symbol and whitespace is
// optional between every element.
func EnforceStrictSymbolPositions(text string, p SymbolPattern) error {
	for _, pattern := range []string{p.PosPattern, p.NegPattern} {
		if pattern == "" {
			continue
		}
		re, err := strictPatternRegexp(pattern, p)
		if err != nil {
			return err
		}
		if re.MatchString(text) {
			return nil
		}
	}
	return inputErr(text, "symbols do not match the culture pattern %q", p.NegPattern)
}

var strictCache sync.Map

func strictPatternRegexp(pattern string, p SymbolPattern) (*regexp.Regexp, error) {
	key := pattern + "\x00" + p.NegSymbol + "\x00" + p.Symbol + "\x00" + p.GroupSep + "\x00" + p.DecimalSep
	if re, ok := strictCache.Load(key); ok {
		return re.(*regexp.Regexp), nil
	}

	const ws = `[\s\x{00a0}\x{202f}]*`
	digit := []string{`\d`}
	if p.GroupSep != "" {
		digit = append(digit, regexp.QuoteMeta(p.GroupSep))
		if isSpaceSeparator(p.GroupSep) {
			digit = append(digit, `[ \x{00a0}\x{202f}]`)
		}
	}
	if p.DecimalSep != "" {
		digit = append(digit, regexp.QuoteMeta(p.DecimalSep))
	}

	var parts []string
	for _, r := range pattern {
		switch r {
		case 'n':
			parts = append(parts, `(?:`+strings.Join(digit, "|")+`)+`)
		case '$', '%':
			if p.Symbol != "" {
				parts = append(parts, `(?:`+regexp.QuoteMeta(p.Symbol)+`)?`)
			}
		case '-':
			parts = append(parts, regexp.QuoteMeta(p.NegSymbol))
		case ' ', '\u00a0', '\u202f':
		default:
			parts = append(parts, regexp.QuoteMeta(string(r)))
		}
	}

	re, err := regexp.Compile(`^` + ws + strings.Join(parts, ws) + ws + `$`)
	if err != nil {
		return nil, err
	}
	strictCache.Store(key, re)
	return re, nil
}

// ApplyTrailingZeroPolicy normalizes the fraction of digits. A nil count
// keeps the fraction but adds ".0" to whole numbers; 0 drops the decimal
// separator of whole numbers; N pads with zeros to N places and removes
// trailing zeros beyond N. Significant digits are never removed.
func ApplyTrailingZeroPolicy(digits, decSep string, count *int) string {
	intPart, frac := digits, ""
	if i := strings.Index(digits, decSep); decSep != "" && i >= 0 {
		intPart, frac = digits[:i], digits[i+len(decSep):]
	}

	if count == nil {
		if frac == "" {
			return intPart + decSep + "0"
		}
		return digits
	}

	n := *count
	for len(frac) > n && strings.HasSuffix(frac, "0") {
		frac = frac[:len(frac)-1]
	}
	if len(frac) < n {
		frac += strings.Repeat("0", n-len(frac))
	}
	if frac == "" {
		return intPart
	}
	return intPart + decSep + frac
}
