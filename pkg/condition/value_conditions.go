package condition

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/plblum/jTAC-sub002/pkg/typemanager"
)

// Required succeeds when the connection has non-blank text. Connections
// that are not editable cannot be evaluated.
type Required struct {
	Conn     Connection
	Disabled bool
}

func (c *Required) Evaluate() (Result, error) {
	if c.Disabled {
		return CannotEvaluate, nil
	}
	if c.Conn == nil {
		return CannotEvaluate, ErrNoConnection
	}
	if !c.Conn.IsEditable() {
		return CannotEvaluate, nil
	}
	text, err := c.Conn.Text()
	if err != nil {
		return CannotEvaluate, err
	}
	return boolResult(strings.TrimSpace(text) != ""), nil
}

func (c *Required) Describe(field string) ValidationError {
	return ValidationError{
		Field:          field,
		Message:        "field is required",
		TranslationKey: "condition.required",
		TranslationValues: map[string]any{
			"field": field,
		},
	}
}

// DataTypeCheck succeeds when the text converts through the type manager.
// Blank text cannot be evaluated. A rejected text returns Failed with the
// conversion or input error.
type DataTypeCheck struct {
	Conn        Connection
	TypeManager typemanager.TypeManager
	Disabled    bool
}

func (c *DataTypeCheck) Evaluate() (Result, error) {
	if c.Disabled {
		return CannotEvaluate, nil
	}
	_, ok, err := readValue(c.Conn, c.TypeManager)
	switch {
	case typemanager.IsConversionError(err), typemanager.IsInputError(err):
		return Failed, err
	case err != nil:
		return CannotEvaluate, err
	case !ok:
		return CannotEvaluate, nil
	}
	return Success, nil
}

func (c *DataTypeCheck) Describe(field string) ValidationError {
	typeName := ""
	if c.TypeManager != nil {
		typeName = c.TypeManager.TypeName()
	}
	return ValidationError{
		Field:          field,
		Message:        fmt.Sprintf("must be a valid %s", typeName),
		TranslationKey: "condition.data_type",
		TranslationValues: map[string]any{
			"field": field,
			"type":  typeName,
		},
	}
}

// Range succeeds when the value lies between Min and Max inclusive. A nil
// bound is open. Bounds are native values or text the type manager
// converts.
type Range struct {
	Conn        Connection
	TypeManager typemanager.TypeManager
	Min, Max    any
	Disabled    bool
}

func (c *Range) Evaluate() (Result, error) {
	if c.Disabled {
		return CannotEvaluate, nil
	}
	v, ok, err := readValue(c.Conn, c.TypeManager)
	if !ok {
		return CannotEvaluate, err
	}
	if c.Min != nil {
		n, err := c.TypeManager.Compare(v, c.Min)
		if err != nil {
			return CannotEvaluate, err
		}
		if n < 0 {
			return Failed, nil
		}
	}
	if c.Max != nil {
		n, err := c.TypeManager.Compare(v, c.Max)
		if err != nil {
			return CannotEvaluate, err
		}
		if n > 0 {
			return Failed, nil
		}
	}
	return Success, nil
}

func (c *Range) Describe(field string) ValidationError {
	lo, hi := c.bound(c.Min), c.bound(c.Max)
	var msg string
	switch {
	case c.Min != nil && c.Max != nil:
		msg = fmt.Sprintf("must be between %s and %s", lo, hi)
	case c.Min != nil:
		msg = fmt.Sprintf("must be at least %s", lo)
	default:
		msg = fmt.Sprintf("must be at most %s", hi)
	}
	return ValidationError{
		Field:          field,
		Message:        msg,
		TranslationKey: "condition.range",
		TranslationValues: map[string]any{
			"field": field,
			"min":   lo,
			"max":   hi,
		},
	}
}

// bound formats a bound for messages through the type manager.
func (c *Range) bound(v any) string {
	return display(c.TypeManager, v)
}

func display(tm typemanager.TypeManager, v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	if tm != nil {
		if s, err := tm.ToString(v); err == nil {
			return s
		}
	}
	return fmt.Sprint(v)
}

// CompareToValue compares the value of a connection with a fixed value.
type CompareToValue struct {
	Conn        Connection
	TypeManager typemanager.TypeManager
	Operator    Operator
	Value       any
	Disabled    bool
}

func (c *CompareToValue) Evaluate() (Result, error) {
	if c.Disabled {
		return CannotEvaluate, nil
	}
	v, ok, err := readValue(c.Conn, c.TypeManager)
	if !ok {
		return CannotEvaluate, err
	}
	if c.TypeManager.IsNull(c.Value) {
		return CannotEvaluate, nil
	}
	return compareWith(c.TypeManager, c.Operator, v, c.Value)
}

func compareWith(tm typemanager.TypeManager, op Operator, a, b any) (Result, error) {
	n, err := tm.Compare(a, b)
	if err != nil {
		return CannotEvaluate, err
	}
	ok, err := op.holds(n)
	if err != nil {
		return CannotEvaluate, err
	}
	return boolResult(ok), nil
}

func (c *CompareToValue) Describe(field string) ValidationError {
	value := display(c.TypeManager, c.Value)
	return ValidationError{
		Field:          field,
		Message:        fmt.Sprintf("must be %s %s", operatorPhrase(c.Operator), value),
		TranslationKey: "condition.compare",
		TranslationValues: map[string]any{
			"field":    field,
			"operator": c.Operator.String(),
			"value":    value,
		},
	}
}

func operatorPhrase(op Operator) string {
	switch op {
	case Equal:
		return "equal to"
	case NotEqual:
		return "different from"
	case LessThan:
		return "less than"
	case LessThanEqual:
		return "at most"
	case GreaterThan:
		return "greater than"
	case GreaterThanEqual:
		return "at least"
	}
	return op.String()
}

// CompareTwoConnections compares the values of two connections through one
// type manager.
type CompareTwoConnections struct {
	Conn        Connection
	Conn2       Connection
	TypeManager typemanager.TypeManager
	Operator    Operator
	Disabled    bool
}

func (c *CompareTwoConnections) Evaluate() (Result, error) {
	if c.Disabled {
		return CannotEvaluate, nil
	}
	a, ok, err := readValue(c.Conn, c.TypeManager)
	if !ok {
		return CannotEvaluate, err
	}
	b, ok, err := readValue(c.Conn2, c.TypeManager)
	if !ok {
		return CannotEvaluate, err
	}
	return compareWith(c.TypeManager, c.Operator, a, b)
}

func (c *CompareTwoConnections) Describe(field string) ValidationError {
	return ValidationError{
		Field:          field,
		Message:        fmt.Sprintf("must be %s the other value", operatorPhrase(c.Operator)),
		TranslationKey: "condition.compare_two",
		TranslationValues: map[string]any{
			"field":    field,
			"operator": c.Operator.String(),
		},
	}
}

// Difference compares the distance between two values with Difference.
// The distance is the absolute difference of TypeManager.ToNumber, so it
// is in days for dates and seconds for times.
type Difference struct {
	Conn        Connection
	Conn2       Connection
	TypeManager typemanager.TypeManager
	Operator    Operator
	Difference  float64
	Disabled    bool
}

func (c *Difference) Evaluate() (Result, error) {
	if c.Disabled {
		return CannotEvaluate, nil
	}
	a, ok, err := c.number(c.Conn)
	if !ok {
		return CannotEvaluate, err
	}
	b, ok, err := c.number(c.Conn2)
	if !ok {
		return CannotEvaluate, err
	}
	holds, err := c.Operator.holds(cmp.Compare(math.Abs(a-b), c.Difference))
	if err != nil {
		return CannotEvaluate, err
	}
	return boolResult(holds), nil
}

func (c *Difference) number(conn Connection) (float64, bool, error) {
	v, ok, err := readValue(conn, c.TypeManager)
	if !ok {
		return 0, false, err
	}
	return c.TypeManager.ToNumber(v)
}

func (c *Difference) Describe(field string) ValidationError {
	return ValidationError{
		Field:          field,
		Message:        fmt.Sprintf("difference must be %s %v", operatorPhrase(c.Operator), c.Difference),
		TranslationKey: "condition.difference",
		TranslationValues: map[string]any{
			"field":      field,
			"operator":   c.Operator.String(),
			"difference": c.Difference,
		},
	}
}

// Regex succeeds when the text matches an expression. Blank text cannot be
// evaluated. Create it with NewRegex.
type Regex struct {
	Conn     Connection
	Disabled bool
	re       *regexp.Regexp
	expr     string
}

// NewRegex compiles expr. The expression is used as given, so anchor it to
// match the whole text.
func NewRegex(conn Connection, expr string, caseInsensitive bool) (*Regex, error) {
	full := expr
	if caseInsensitive {
		full = "(?i)" + expr
	}
	re, err := regexp.Compile(full)
	if err != nil {
		return nil, errors.Join(ErrInvalidExpression, err)
	}
	return &Regex{Conn: conn, re: re, expr: expr}, nil
}

// Expression returns the expression given to NewRegex.
func (c *Regex) Expression() string { return c.expr }

func (c *Regex) Evaluate() (Result, error) {
	if c.Disabled {
		return CannotEvaluate, nil
	}
	if c.Conn == nil {
		return CannotEvaluate, ErrNoConnection
	}
	if c.re == nil {
		return CannotEvaluate, ErrInvalidExpression
	}
	text, err := c.Conn.Text()
	if err != nil {
		return CannotEvaluate, err
	}
	if strings.TrimSpace(text) == "" {
		return CannotEvaluate, nil
	}
	return boolResult(c.re.MatchString(text)), nil
}

func (c *Regex) Describe(field string) ValidationError {
	return ValidationError{
		Field:          field,
		Message:        "has an invalid format",
		TranslationKey: "condition.regex",
		TranslationValues: map[string]any{
			"field":   field,
			"pattern": c.expr,
		},
	}
}
