package typemanager

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/plblum/jTAC-sub002/pkg/culture"
)

// Pattern letters: y year, M month, d day, H 24-hour, h 12-hour, m minute,
// s second, t AM/PM designator. "/" is the culture date separator and ":"
// the culture time separator. Quoted text and backslash escapes are
// literal.
const fieldLetters = "yMdHhmst"

// literalBase is the first private use rune used as a literal placeholder.
const literalBase = '\uE000'

type tokenKind int

const (
	tokLiteral tokenKind = iota
	tokField
	tokDateSep
	tokTimeSep
)

type token struct {
	kind   tokenKind
	letter rune
	count  int
	text   string
}

func tokenize(pattern string) []token {
	var tokens []token
	addLiteral := func(s string) {
		if s == "" {
			return
		}
		if n := len(tokens); n > 0 && tokens[n-1].kind == tokLiteral {
			tokens[n-1].text += s
			return
		}
		tokens = append(tokens, token{kind: tokLiteral, text: s})
	}

	rs := []rune(pattern)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		switch {
		case r == '\'' || r == '"':
			j := i + 1
			for j < len(rs) && rs[j] != r {
				j++
			}
			addLiteral(string(rs[i+1 : j]))
			i = j
		case r == '\\':
			if i+1 < len(rs) {
				addLiteral(string(rs[i+1]))
				i++
			}
		case r == '/':
			tokens = append(tokens, token{kind: tokDateSep})
		case r == ':':
			tokens = append(tokens, token{kind: tokTimeSep})
		case strings.ContainsRune(fieldLetters, r):
			j := i
			for j < len(rs) && rs[j] == r {
				j++
			}
			tokens = append(tokens, token{kind: tokField, letter: r, count: j - i})
			i = j - 1
		default:
			addLiteral(string(r))
		}
	}
	return tokens
}

// patternString serializes tokens back into a pattern, quoting literals
// that would otherwise be read as fields or separators.
func patternString(tokens []token) string {
	var b strings.Builder
	for _, t := range tokens {
		switch t.kind {
		case tokField:
			b.WriteString(strings.Repeat(string(t.letter), t.count))
		case tokDateSep:
			b.WriteByte('/')
		case tokTimeSep:
			b.WriteByte(':')
		default:
			if strings.ContainsFunc(t.text, func(r rune) bool {
				return unicode.IsLetter(r) || strings.ContainsRune(`/:'"\`, r)
			}) {
				quote := "'"
				if strings.Contains(t.text, "'") {
					quote = `"`
				}
				b.WriteString(quote + t.text + quote)
			} else {
				b.WriteString(t.text)
			}
		}
	}
	return b.String()
}

// PatternOrder returns the field letters of pattern that appear in letters,
// in the order they are first seen. Quoted literals are ignored. The date
// parser uses it to skip patterns that lack a required field.
func PatternOrder(pattern, letters string) []rune {
	var order []rune
	for _, t := range tokenize(pattern) {
		if t.kind == tokField && strings.ContainsRune(letters, t.letter) && !slices.Contains(order, t.letter) {
			order = append(order, t.letter)
		}
	}
	return order
}

// ExtractLiterals replaces quoted text and escaped characters of pattern
// with placeholder runes and returns the literals in placeholder order.
func ExtractLiterals(pattern string) (string, []string) {
	var b strings.Builder
	var literals []string
	rs := []rune(pattern)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		switch {
		case r == '\'' || r == '"':
			j := i + 1
			for j < len(rs) && rs[j] != r {
				j++
			}
			b.WriteRune(literalBase + rune(len(literals)))
			literals = append(literals, string(rs[i+1:min(j, len(rs))]))
			i = j
		case r == '\\' && i+1 < len(rs):
			b.WriteRune(literalBase + rune(len(literals)))
			literals = append(literals, string(rs[i+1]))
			i++
		default:
			b.WriteRune(r)
		}
	}
	return b.String(), literals
}

// RestoreLiterals puts the literals removed by ExtractLiterals back.
func RestoreLiterals(text string, literals []string) string {
	if len(literals) == 0 {
		return text
	}
	var b strings.Builder
	for _, r := range text {
		if idx := int(r - literalBase); idx >= 0 && idx < len(literals) {
			b.WriteString(literals[idx])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func addLiteral(literals *[]string, s string) rune {
	*literals = append(*literals, s)
	return literalBase + rune(len(*literals)-1)
}

// ReplacePart substitutes value for the first run of letter in text, left
// padded with zeros to the run length.
func ReplacePart(letter rune, value int, text string) string {
	rs := []rune(text)
	start := slices.Index(rs, letter)
	if start < 0 {
		return text
	}
	end := start
	for end < len(rs) && rs[end] == letter {
		end++
	}
	s := strconv.Itoa(value)
	if pad := end - start - len(s); pad > 0 {
		s = strings.Repeat("0", pad) + s
	}
	return string(rs[:start]) + s + string(rs[end:])
}

func runLength(text string, letter rune) int {
	rs := []rune(text)
	start := slices.Index(rs, letter)
	if start < 0 {
		return 0
	}
	end := start
	for end < len(rs) && rs[end] == letter {
		end++
	}
	return end - start
}

// RemovePart drops the first field of letter from pattern along with one
// adjacent separator or literal, preferring the one that precedes it.
func RemovePart(pattern string, letter rune) string {
	tokens := tokenize(pattern)
	idx := slices.IndexFunc(tokens, func(t token) bool { return t.kind == tokField && t.letter == letter })
	if idx < 0 {
		return pattern
	}
	isGlue := func(i int) bool {
		return i >= 0 && i < len(tokens) && tokens[i].kind != tokField
	}
	switch {
	case isGlue(idx - 1):
		tokens = slices.Delete(tokens, idx-1, idx+1)
	case isGlue(idx + 1):
		tokens = slices.Delete(tokens, idx, idx+2)
	default:
		tokens = slices.Delete(tokens, idx, idx+1)
	}
	return patternString(tokens)
}

// withMonthName rewrites the numeric month field of pattern as "MMM".
func withMonthName(pattern string) string {
	tokens := tokenize(pattern)
	for i, t := range tokens {
		if t.kind == tokField && t.letter == 'M' && t.count < 3 {
			tokens[i].count = 3
		}
	}
	return patternString(tokens)
}

// hasNames reports whether the pattern spells out month names.
func hasNames(pattern string) bool {
	for _, t := range tokenize(pattern) {
		if t.kind == tokField && t.letter == 'M' && t.count >= 3 {
			return true
		}
	}
	return false
}

// dtFields are the calendar and clock fields of a value. hour holds the
// total hour count for durations.
type dtFields struct {
	year, month, day     int
	hour, minute, second int
	weekday              time.Weekday
}

func fieldsOf(t time.Time) dtFields {
	return dtFields{
		year: t.Year(), month: int(t.Month()), day: t.Day(),
		hour: t.Hour(), minute: t.Minute(), second: t.Second(),
		weekday: t.Weekday(),
	}
}

type formatStyle struct {
	upperMonth bool
}

func designators(info *culture.Info) (am, pm string) {
	am, pm = info.DateTime.AM, info.DateTime.PM
	if am == "" || pm == "" {
		return "AM", "PM"
	}
	return am, pm
}

// designatorForms lists the accepted spellings of AM and PM: the full
// designator and, when the two differ in their first letter, that letter.
func designatorForms(info *culture.Info) (am, pm []string) {
	a, p := designators(info)
	am, pm = []string{a}, []string{p}
	fa, fp := string([]rune(a)[:1]), string([]rune(p)[:1])
	if !strings.EqualFold(fa, fp) {
		am = append(am, fa)
		pm = append(pm, fp)
	}
	return am, pm
}

// isPM reports whether a matched designator means PM.
func isPM(info *culture.Info, designator string) bool {
	_, pm := designatorForms(info)
	for _, form := range pm {
		if strings.EqualFold(form, designator) {
			return true
		}
	}
	return false
}

// formatPattern renders f with pattern. Names, designators and separators
// are turned into literals first so their letters are never substituted.
func formatPattern(pattern string, f dtFields, info *culture.Info, style formatStyle) string {
	text, literals := ExtractLiterals(pattern)
	dt := info.DateTime

	var b strings.Builder
	rs := []rune(text)
	for i := 0; i < len(rs); {
		r := rs[i]
		j := i
		for j < len(rs) && rs[j] == r {
			j++
		}
		n := j - i
		switch {
		case r == 'M' && n >= 3:
			name := dt.MonthsAbbr[f.month-1]
			if n > 3 {
				name = dt.Months[f.month-1]
			}
			if style.upperMonth {
				name = strings.ToUpper(name)
			}
			b.WriteRune(addLiteral(&literals, name))
		case r == 'd' && n >= 3:
			name := dt.DaysAbbr[f.weekday]
			if n > 3 {
				name = dt.Days[f.weekday]
			}
			b.WriteRune(addLiteral(&literals, name))
		case r == 't':
			am, pm := designators(info)
			d := am
			if f.hour >= 12 {
				d = pm
			}
			if n == 1 {
				d = string([]rune(d)[:1])
			}
			b.WriteRune(addLiteral(&literals, d))
		case r == '/':
			b.WriteRune(addLiteral(&literals, strings.Repeat(dt.ShortDateSep, n)))
		case r == ':':
			b.WriteRune(addLiteral(&literals, strings.Repeat(dt.TimeSep, n)))
		default:
			b.WriteString(string(rs[i:j]))
		}
		i = j
	}
	text = b.String()

	for strings.ContainsRune(text, 'y') {
		year := f.year
		if runLength(text, 'y') == 2 {
			year %= 100
		}
		text = ReplacePart('y', year, text)
	}
	hour12 := f.hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	for _, part := range []struct {
		letter rune
		value  int
	}{
		{'M', f.month}, {'d', f.day}, {'H', f.hour}, {'h', hour12}, {'m', f.minute}, {'s', f.second},
	} {
		for strings.ContainsRune(text, part.letter) {
			text = ReplacePart(part.letter, part.value, text)
		}
	}
	return strings.TrimSpace(RestoreLiterals(text, literals))
}

// parsePattern is a compiled culture pattern. groups names the field of
// each capture group; 'N' marks a month name.
type parsePattern struct {
	re     *regexp.Regexp
	groups []rune
}

const patternSpace = `[\s\x{00a0}\x{202f}]*`

// parsePatternCache is keyed by record pointer: providers hand out stable
// records and a replaced culture is a new record.
var parsePatternCache sync.Map

type parsePatternKey struct {
	info       *culture.Info
	pattern    string
	hourDigits int
}

func nameAlternation(lists ...[]string) string {
	seen := map[string]bool{}
	var names []string
	for _, list := range lists {
		for _, name := range list {
			for _, v := range []string{name, strings.TrimSuffix(name, ".")} {
				lower := strings.ToLower(v)
				if v != "" && !seen[lower] {
					seen[lower] = true
					names = append(names, v)
				}
			}
		}
	}
	slices.SortStableFunc(names, func(a, b string) int { return len(b) - len(a) })
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = regexp.QuoteMeta(n)
	}
	return strings.Join(quoted, "|")
}

func literalExpr(text string) string {
	var b strings.Builder
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			b.WriteString(patternSpace)
		case r == ',' || r == '.':
			b.WriteString(regexp.QuoteMeta(string(r)) + "?")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	return b.String()
}

// compileParsePattern builds a case-insensitive regular expression for a
// culture pattern. hourDigits limits the digits of the H field; durations
// allow more than two.
func compileParsePattern(pattern string, info *culture.Info, hourDigits int) (*parsePattern, error) {
	key := parsePatternKey{info: info, pattern: pattern, hourDigits: hourDigits}
	if cached, ok := parsePatternCache.Load(key); ok {
		return cached.(*parsePattern), nil
	}

	dt := info.DateTime
	ampm := nameAlternation(designatorForms(info))

	var b strings.Builder
	var groups []rune
	b.WriteString(`(?i)^` + patternSpace)
	for _, t := range tokenize(pattern) {
		switch t.kind {
		case tokLiteral:
			b.WriteString(literalExpr(t.text))
		case tokDateSep:
			b.WriteString(regexp.QuoteMeta(dt.ShortDateSep))
		case tokTimeSep:
			b.WriteString(regexp.QuoteMeta(dt.TimeSep))
		case tokField:
			switch {
			case t.letter == 'y':
				b.WriteString(`(\d{1,4})`)
				groups = append(groups, 'y')
			case t.letter == 'M' && t.count >= 3:
				b.WriteString(`(` + nameAlternation(dt.Months, dt.MonthsAbbr) + `)`)
				groups = append(groups, 'N')
			case t.letter == 'd' && t.count >= 3:
				b.WriteString(`(?:` + nameAlternation(dt.Days, dt.DaysAbbr) + `)?`)
			case t.letter == 't':
				b.WriteString(`(` + ampm + `)`)
				groups = append(groups, 't')
			case t.letter == 'H' && hourDigits > 2:
				b.WriteString(`(\d{1,` + strconv.Itoa(hourDigits) + `})`)
				groups = append(groups, 'H')
			default:
				b.WriteString(`(\d{1,2})`)
				groups = append(groups, t.letter)
			}
		}
	}
	b.WriteString(patternSpace + `$`)

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, err
	}
	p := &parsePattern{re: re, groups: groups}
	parsePatternCache.Store(key, p)
	return p, nil
}

// match returns the captured text of each field letter.
func (p *parsePattern) match(text string) (map[rune]string, bool) {
	m := p.re.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	out := make(map[rune]string, len(p.groups))
	for i, letter := range p.groups {
		if _, seen := out[letter]; !seen {
			out[letter] = m[i+1]
		}
	}
	return out, true
}

// monthFromName resolves a full or abbreviated month name.
func monthFromName(info *culture.Info, name string) (int, bool) {
	name = strings.ToLower(name)
	for _, list := range [][]string{info.DateTime.Months, info.DateTime.MonthsAbbr} {
		for i, n := range list {
			if strings.ToLower(n) == name || strings.ToLower(strings.TrimSuffix(n, ".")) == name {
				return i + 1, true
			}
		}
	}
	return 0, false
}

// resolveYear applies the two-digit year pivot: the year is placed in the
// century of TwoDigitYearMax and moved back 100 years when it would pass
// the pivot.
func resolveYear(digits string, twoDigitYearMax int, allowTwoDigits bool, text string) (int, error) {
	year, err := strconv.Atoi(digits)
	if err != nil {
		return 0, conversionErr(text, "illegal year")
	}
	switch {
	case len(digits) <= 2:
		if !allowTwoDigits {
			return 0, inputErr(text, "four digit year required")
		}
		year += (twoDigitYearMax / 100) * 100
		if year > twoDigitYearMax {
			year -= 100
		}
	case len(digits) == 3:
		return 0, inputErr(text, "three digit years are not supported")
	}
	return year, nil
}

// validDate checks the fields against the real calendar.
func validDate(year, month, day int, text string) (time.Time, error) {
	if year < 1 || year > 9999 {
		return time.Time{}, inputErr(text, "year out of range")
	}
	if month < 1 || month > 12 {
		return time.Time{}, inputErr(text, "month out of range")
	}
	if day < 1 || day > 31 {
		return time.Time{}, inputErr(text, "day out of range")
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, inputErr(text, "not a valid calendar date")
	}
	return t, nil
}
