package typemanager

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/plblum/jTAC-sub002/pkg/culture"
)

type prefixRange struct{ lo, hi int }

// CardBrand identifies card numbers by issuer prefix and length.
type CardBrand struct {
	Name     string
	prefixes []prefixRange
	lengths  []int
	// groups is the display grouping of the digits.
	groups []int
}

func (b CardBrand) matches(digits string) bool {
	if !slices.Contains(b.lengths, len(digits)) {
		return false
	}
	for _, p := range b.prefixes {
		n := len(strconv.Itoa(p.lo))
		v, err := strconv.Atoi(digits[:n])
		if err == nil && v >= p.lo && v <= p.hi {
			return true
		}
	}
	return false
}

var (
	fours   = []int{4, 4, 4, 4, 4}
	fourSix = []int{4, 6, 5}
)

// CardBrands lists the recognized brands in match order.
var CardBrands = []CardBrand{
	{Name: "visa", prefixes: []prefixRange{{4, 4}}, lengths: []int{13, 16, 19}, groups: fours},
	{Name: "mastercard", prefixes: []prefixRange{{51, 55}, {2221, 2720}}, lengths: []int{16}, groups: fours},
	{Name: "amex", prefixes: []prefixRange{{34, 34}, {37, 37}}, lengths: []int{15}, groups: fourSix},
	{Name: "discover", prefixes: []prefixRange{{6011, 6011}, {644, 649}, {65, 65}}, lengths: []int{16, 19}, groups: fours},
	{Name: "diners", prefixes: []prefixRange{{300, 305}, {36, 36}, {38, 39}}, lengths: []int{14, 16, 19}, groups: []int{4, 6, 4, 5}},
	{Name: "jcb", prefixes: []prefixRange{{3528, 3589}}, lengths: []int{16, 17, 18, 19}, groups: fours},
}

func brandOf(digits string) (CardBrand, bool) {
	for _, b := range CardBrands {
		if b.matches(digits) {
			return b, true
		}
	}
	return CardBrand{}, false
}

// luhn reports whether digits pass the mod 10 checksum.
func luhn(digits string) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// CreditCardNumber manages payment card numbers. The native value is the
// digits without separators; ToString groups them the way the brand prints
// them.
//
// Options: cultureName, trim, maxLength, acceptedBrands.
type CreditCardNumber struct {
	stringCore
	acceptedBrands []string
}

// NewCreditCardNumber creates a CreditCardNumber manager accepting every
// brand in CardBrands.
func NewCreditCardNumber(provider culture.Provider, opts Options) (*CreditCardNumber, error) {
	m := &CreditCardNumber{stringCore: newStringCore("CreditCardNumber", provider)}
	if err := m.Configure(opts); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *CreditCardNumber) SetOption(name string, value any) error { return setOption(m, name, value) }
func (m *CreditCardNumber) Configure(opts Options) error           { return configure(m, opts) }

func (m *CreditCardNumber) setOption(name string, value any) (bool, error) {
	if name == "acceptedBrands" {
		list, err := asStrings(value)
		if err != nil {
			return true, err
		}
		brands := make([]string, 0, len(list))
		for _, s := range list {
			s = strings.ToLower(strings.TrimSpace(s))
			if !slices.ContainsFunc(CardBrands, func(b CardBrand) bool { return b.Name == s }) {
				return true, fmt.Errorf("unknown card brand %q", s)
			}
			brands = append(brands, s)
		}
		m.acceptedBrands = brands
		return true, nil
	}
	return m.stringCore.setOption(name, value)
}

// Brand returns the brand name of a card number.
func (m *CreditCardNumber) Brand(text string) (string, error) {
	_, b, err := m.parse(text)
	if err != nil {
		return "", err
	}
	return b.Name, nil
}

func (m *CreditCardNumber) parse(text string) (string, CardBrand, error) {
	for _, r := range text {
		if !m.IsValidChar(r) {
			return "", CardBrand{}, m.fail(conversionErr(text, "illegal character %q", r))
		}
	}
	digits := digitsOf(text)
	if len(digits) < 12 || len(digits) > 19 {
		return "", CardBrand{}, m.fail(conversionErr(text, "card numbers have 12 to 19 digits"))
	}
	b, ok := brandOf(digits)
	if !ok {
		return "", CardBrand{}, m.fail(inputErr(text, "unknown card brand"))
	}
	if len(m.acceptedBrands) > 0 && !slices.Contains(m.acceptedBrands, b.Name) {
		return "", CardBrand{}, m.fail(inputErr(text, "%s cards are not accepted", b.Name))
	}
	if !luhn(digits) {
		return "", CardBrand{}, m.fail(inputErr(text, "checksum failed"))
	}
	return digits, b, nil
}

func (m *CreditCardNumber) ToValue(text string) (any, error) {
	s, ok, err := m.clean(text)
	if err != nil || !ok {
		return nil, err
	}
	digits, _, err := m.parse(s)
	if err != nil {
		return nil, err
	}
	return digits, nil
}

func (m *CreditCardNumber) ToString(value any) (string, error) {
	if value == nil {
		return "", nil
	}
	s, err := m.native(value)
	if err != nil || s == "" {
		return "", err
	}
	digits, b, err := m.parse(s)
	if err != nil {
		return "", err
	}
	return groupDigits(digits, b.groups), nil
}

func groupDigits(digits string, groups []int) string {
	var sb strings.Builder
	pos := 0
	for _, g := range groups {
		if pos >= len(digits) {
			break
		}
		if pos > 0 {
			sb.WriteByte(' ')
		}
		end := min(pos+g, len(digits))
		sb.WriteString(digits[pos:end])
		pos = end
	}
	if pos < len(digits) {
		sb.WriteByte(' ')
		sb.WriteString(digits[pos:])
	}
	return sb.String()
}

func (m *CreditCardNumber) ToValueNeutral(text string) (any, error) { return m.ToValue(text) }

func (m *CreditCardNumber) ToStringNeutral(value any) (string, error) {
	if value == nil {
		return "", nil
	}
	s, err := m.native(value)
	if err != nil || s == "" {
		return "", err
	}
	digits, _, err := m.parse(s)
	return digits, err
}

func (m *CreditCardNumber) Compare(a, b any) (int, error) {
	if c, ok := compareNil(a, b); ok {
		return c, nil
	}
	sa, err := m.native(a)
	if err != nil {
		return 0, err
	}
	sb, err := m.native(b)
	if err != nil {
		return 0, err
	}
	return compareOrdered(digitsOf(sa), digitsOf(sb)), nil
}

func (m *CreditCardNumber) IsValidChar(ch rune) bool {
	return (ch >= '0' && ch <= '9') || ch == ' ' || ch == '-'
}
