package condition

import (
	"fmt"
	"strings"

	"github.com/plblum/jTAC-sub002/pkg/typemanager"
)

// Result is the outcome of evaluating a condition.
type Result int

const (
	Failed Result = iota
	Success
	CannotEvaluate
)

func (r Result) String() string {
	switch r {
	case Success:
		return "Success"
	case Failed:
		return "Failed"
	case CannotEvaluate:
		return "CannotEvaluate"
	}
	return fmt.Sprintf("Result(%d)", int(r))
}

// Condition is a rule that can be evaluated repeatedly. A non-nil error
// comes with CannotEvaluate, except for DataTypeCheck which returns the
// conversion error with Failed.
type Condition interface {
	Evaluate() (Result, error)
}

// Func adapts a function to a Condition.
type Func func() (Result, error)

func (f Func) Evaluate() (Result, error) { return f() }

// Describer is implemented by conditions that can explain a failure.
type Describer interface {
	Describe(field string) ValidationError
}

// NotCondition swaps Success and Failed of the wrapped condition.
// CannotEvaluate passes through.
type NotCondition struct {
	Condition Condition
	Disabled  bool
}

// Not wraps c in a NotCondition.
func Not(c Condition) *NotCondition {
	return &NotCondition{Condition: c}
}

func (c *NotCondition) Evaluate() (Result, error) {
	if c.Disabled || c.Condition == nil {
		return CannotEvaluate, nil
	}
	r, err := c.Condition.Evaluate()
	switch r {
	case Success:
		return Failed, err
	case Failed:
		return Success, err
	}
	return r, err
}

func (c *NotCondition) Describe(field string) ValidationError {
	inner := "condition"
	if d, ok := c.Condition.(Describer); ok {
		inner = d.Describe(field).TranslationKey
	}
	return ValidationError{
		Field:          field,
		Message:        "value is not allowed",
		TranslationKey: "condition.not",
		TranslationValues: map[string]any{
			"field": field,
			"inner": inner,
		},
	}
}

// Operator compares a value with another.
type Operator int

const (
	Equal Operator = iota
	NotEqual
	LessThan
	LessThanEqual
	GreaterThan
	GreaterThanEqual
)

var operatorNames = map[Operator]string{
	Equal:            "Equal",
	NotEqual:         "NotEqual",
	LessThan:         "LessThan",
	LessThanEqual:    "LessThanEqual",
	GreaterThan:      "GreaterThan",
	GreaterThanEqual: "GreaterThanEqual",
}

func (o Operator) String() string {
	if name, ok := operatorNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Operator(%d)", int(o))
}

// ParseOperator accepts the operator names and the symbols =, <>, !=, <,
// <=, > and >=.
func ParseOperator(s string) (Operator, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "=", "==":
		return Equal, nil
	case "<>", "!=":
		return NotEqual, nil
	case "<":
		return LessThan, nil
	case "<=":
		return LessThanEqual, nil
	case ">":
		return GreaterThan, nil
	case ">=":
		return GreaterThanEqual, nil
	}
	for op, name := range operatorNames {
		if strings.EqualFold(name, s) {
			return op, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrInvalidOperator)
}

// holds reports whether a comparison result c satisfies the operator.
func (o Operator) holds(c int) (bool, error) {
	switch o {
	case Equal:
		return c == 0, nil
	case NotEqual:
		return c != 0, nil
	case LessThan:
		return c < 0, nil
	case LessThanEqual:
		return c <= 0, nil
	case GreaterThan:
		return c > 0, nil
	case GreaterThanEqual:
		return c >= 0, nil
	}
	return false, fmt.Errorf("%v: %w", o, ErrInvalidOperator)
}

// readValue reads the text of conn and converts it. ok is false when the
// result is CannotEvaluate, with err set when the text did not convert.
func readValue(conn Connection, tm typemanager.TypeManager) (any, bool, error) {
	if conn == nil {
		return nil, false, ErrNoConnection
	}
	if tm == nil {
		return nil, false, ErrNoTypeManager
	}
	text, err := conn.Text()
	if err != nil {
		return nil, false, err
	}
	v, err := tm.ToValue(text)
	if err != nil {
		return nil, false, err
	}
	if tm.IsNull(v) {
		return nil, false, nil
	}
	return v, true, nil
}

func boolResult(ok bool) Result {
	if ok {
		return Success
	}
	return Failed
}
