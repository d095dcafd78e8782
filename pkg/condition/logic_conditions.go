package condition

import "fmt"

// Unbounded disables the Max limit of CountTrueConditions.
const Unbounded = -1

// CountTrueConditions succeeds when the number of children returning
// Success lies between Min and Max inclusive. Children that cannot be
// evaluated are not counted; when none can be evaluated neither can this.
type CountTrueConditions struct {
	Conditions []Condition
	Min        int
	Max        int
	Disabled   bool
}

func (c *CountTrueConditions) Evaluate() (Result, error) {
	if c.Disabled {
		return CannotEvaluate, nil
	}
	count, evaluated := 0, 0
	for _, child := range c.Conditions {
		r, _ := child.Evaluate()
		switch r {
		case Success:
			count++
			evaluated++
		case Failed:
			evaluated++
		}
	}
	if evaluated == 0 {
		return CannotEvaluate, nil
	}
	return boolResult(count >= c.Min && (c.Max < 0 || count <= c.Max)), nil
}

func (c *CountTrueConditions) Describe(field string) ValidationError {
	msg := fmt.Sprintf("between %d and %d conditions must be met", c.Min, c.Max)
	if c.Max < 0 {
		msg = fmt.Sprintf("at least %d conditions must be met", c.Min)
	}
	return ValidationError{
		Field:          field,
		Message:        msg,
		TranslationKey: "condition.count",
		TranslationValues: map[string]any{
			"field": field,
			"min":   c.Min,
			"max":   c.Max,
		},
	}
}

// LogicOperator combines the results of BooleanLogic children.
type LogicOperator int

const (
	And LogicOperator = iota
	Or
	XOr
)

func (o LogicOperator) String() string {
	switch o {
	case And:
		return "And"
	case Or:
		return "Or"
	case XOr:
		return "XOr"
	}
	return fmt.Sprintf("LogicOperator(%d)", int(o))
}

// BooleanLogic combines child conditions, which may themselves be
// BooleanLogic. Children that cannot be evaluated are skipped; when none
// can be evaluated neither can this. XOr succeeds when exactly one child
// succeeds.
type BooleanLogic struct {
	Operator   LogicOperator
	Conditions []Condition
	Disabled   bool
}

func (c *BooleanLogic) Evaluate() (Result, error) {
	if c.Disabled {
		return CannotEvaluate, nil
	}
	if c.Operator < And || c.Operator > XOr {
		return CannotEvaluate, fmt.Errorf("%v: %w", c.Operator, ErrInvalidOperator)
	}
	succeeded, failed := 0, 0
	for _, child := range c.Conditions {
		r, _ := child.Evaluate()
		switch r {
		case Success:
			succeeded++
		case Failed:
			failed++
		}
		if c.Operator == And && failed > 0 {
			return Failed, nil
		}
		if c.Operator == Or && succeeded > 0 {
			return Success, nil
		}
	}
	if succeeded+failed == 0 {
		return CannotEvaluate, nil
	}
	switch c.Operator {
	case And:
		return Success, nil
	case Or:
		return Failed, nil
	}
	return boolResult(succeeded == 1), nil
}

func (c *BooleanLogic) Describe(field string) ValidationError {
	return ValidationError{
		Field:          field,
		Message:        "conditions are not met",
		TranslationKey: "condition.logic",
		TranslationValues: map[string]any{
			"field":    field,
			"operator": c.Operator.String(),
		},
	}
}
