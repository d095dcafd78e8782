package condition_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plblum/jTAC-sub002/pkg/condition"
	"github.com/plblum/jTAC-sub002/pkg/typemanager"
)

func fixed(r condition.Result) condition.Condition {
	return condition.Func(func() (condition.Result, error) { return r, nil })
}

func integer(t *testing.T) typemanager.TypeManager {
	t.Helper()
	tm, err := typemanager.NewInteger(nil, nil)
	require.NoError(t, err)
	return tm
}

func date(t *testing.T) typemanager.TypeManager {
	t.Helper()
	tm, err := typemanager.NewDate(nil, nil)
	require.NoError(t, err)
	return tm
}

func TestResultString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Success", condition.Success.String())
	assert.Equal(t, "Failed", condition.Failed.String())
	assert.Equal(t, "CannotEvaluate", condition.CannotEvaluate.String())
	assert.Equal(t, "Result(7)", condition.Result(7).String())
}

func TestConnections(t *testing.T) {
	t.Parallel()

	c := condition.Static("abc")
	text, err := c.Text()
	require.NoError(t, err)
	assert.Equal(t, "abc", text)
	assert.True(t, c.IsEditable())

	calls := 0
	fc := condition.FuncConnection{Fn: func() (string, error) {
		calls++
		return "x", nil
	}, ReadOnly: true}
	_, _ = fc.Text()
	_, _ = fc.Text()
	assert.Equal(t, 2, calls)
	assert.False(t, fc.IsEditable())

	_, err = condition.FuncConnection{}.Text()
	assert.ErrorIs(t, err, condition.ErrNoConnection)
}

func TestRequired(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	tests := []struct {
		name     string
		cond     *condition.Required
		expected condition.Result
		err      error
	}{
		{name: "text", cond: &condition.Required{Conn: condition.Static("x")}, expected: condition.Success},
		{name: "blank", cond: &condition.Required{Conn: condition.Static("   ")}, expected: condition.Failed},
		{name: "read only", cond: &condition.Required{Conn: condition.StaticConnection{ReadOnly: true}}, expected: condition.CannotEvaluate},
		{name: "disabled", cond: &condition.Required{Conn: condition.Static(""), Disabled: true}, expected: condition.CannotEvaluate},
		{name: "no connection", cond: &condition.Required{}, expected: condition.CannotEvaluate, err: condition.ErrNoConnection},
		{name: "read error", cond: &condition.Required{Conn: condition.FuncConnection{Fn: func() (string, error) { return "", boom }}}, expected: condition.CannotEvaluate, err: boom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, err := tt.cond.Evaluate()
			assert.Equal(t, tt.expected, r)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDataTypeCheck(t *testing.T) {
	t.Parallel()

	tm := integer(t)

	r, err := (&condition.DataTypeCheck{Conn: condition.Static("1,234"), TypeManager: tm}).Evaluate()
	require.NoError(t, err)
	assert.Equal(t, condition.Success, r)

	r, err = (&condition.DataTypeCheck{Conn: condition.Static("12a"), TypeManager: tm}).Evaluate()
	assert.Equal(t, condition.Failed, r)
	assert.True(t, typemanager.IsConversionError(err))

	r, err = (&condition.DataTypeCheck{Conn: condition.Static(""), TypeManager: tm}).Evaluate()
	require.NoError(t, err)
	assert.Equal(t, condition.CannotEvaluate, r)

	r, err = (&condition.DataTypeCheck{Conn: condition.Static("1")}).Evaluate()
	assert.Equal(t, condition.CannotEvaluate, r)
	assert.ErrorIs(t, err, condition.ErrNoTypeManager)
}

func TestRange(t *testing.T) {
	t.Parallel()

	tm := integer(t)
	tests := []struct {
		name     string
		text     string
		min, max any
		expected condition.Result
		convErr  bool
	}{
		{name: "inside", text: "5", min: 1, max: 10, expected: condition.Success},
		{name: "at minimum", text: "1", min: 1, max: 10, expected: condition.Success},
		{name: "at maximum", text: "10", min: 1, max: 10, expected: condition.Success},
		{name: "below", text: "0", min: 1, max: 10, expected: condition.Failed},
		{name: "above", text: "11", min: 1, max: 10, expected: condition.Failed},
		{name: "open maximum", text: "1,000,000", min: 1, expected: condition.Success},
		{name: "text bound", text: "999", min: "1,000", expected: condition.Failed},
		{name: "blank", text: "", min: 1, max: 10, expected: condition.CannotEvaluate},
		{name: "not a number", text: "ten", min: 1, max: 10, expected: condition.CannotEvaluate, convErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, err := (&condition.Range{Conn: condition.Static(tt.text), TypeManager: tm, Min: tt.min, Max: tt.max}).Evaluate()
			assert.Equal(t, tt.expected, r)
			if tt.convErr {
				assert.True(t, typemanager.IsConversionError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("dates", func(t *testing.T) {
		t.Parallel()
		cond := &condition.Range{Conn: condition.Static("6/1/2021"), TypeManager: date(t), Min: "1/1/2021", Max: "12/31/2021"}
		r, err := cond.Evaluate()
		require.NoError(t, err)
		assert.Equal(t, condition.Success, r)

		cond.Conn = condition.Static("1/1/2022")
		r, err = cond.Evaluate()
		require.NoError(t, err)
		assert.Equal(t, condition.Failed, r)
	})
}

func TestCompareToValue(t *testing.T) {
	t.Parallel()

	tm := integer(t)
	tests := []struct {
		op       condition.Operator
		text     string
		expected condition.Result
	}{
		{condition.Equal, "5", condition.Success},
		{condition.Equal, "6", condition.Failed},
		{condition.NotEqual, "6", condition.Success},
		{condition.LessThan, "4", condition.Success},
		{condition.LessThan, "5", condition.Failed},
		{condition.LessThanEqual, "5", condition.Success},
		{condition.GreaterThan, "6", condition.Success},
		{condition.GreaterThanEqual, "4", condition.Failed},
	}
	for _, tt := range tests {
		r, err := (&condition.CompareToValue{Conn: condition.Static(tt.text), TypeManager: tm, Operator: tt.op, Value: 5}).Evaluate()
		require.NoError(t, err)
		assert.Equal(t, tt.expected, r, "%v %s", tt.op, tt.text)
	}

	r, err := (&condition.CompareToValue{Conn: condition.Static("5"), TypeManager: tm}).Evaluate()
	require.NoError(t, err)
	assert.Equal(t, condition.CannotEvaluate, r)

	r, err = (&condition.CompareToValue{Conn: condition.Static("5"), TypeManager: tm, Operator: condition.Operator(42), Value: 5}).Evaluate()
	assert.Equal(t, condition.CannotEvaluate, r)
	assert.ErrorIs(t, err, condition.ErrInvalidOperator)
}

func TestCompareTwoConnections(t *testing.T) {
	t.Parallel()

	cond := &condition.CompareTwoConnections{
		Conn:        condition.Static("1/1/2021"),
		Conn2:       condition.Static("2/1/2021"),
		TypeManager: date(t),
		Operator:    condition.LessThan,
	}
	r, err := cond.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, condition.Success, r)

	cond.Operator = condition.GreaterThanEqual
	r, err = cond.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, condition.Failed, r)

	cond.Conn2 = condition.Static("")
	r, err = cond.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, condition.CannotEvaluate, r)

	cond.Conn2 = condition.Static("2/30/2021")
	r, err = cond.Evaluate()
	assert.Equal(t, condition.CannotEvaluate, r)
	assert.True(t, typemanager.IsInputError(err))
}

func TestDifference(t *testing.T) {
	t.Parallel()

	cond := &condition.Difference{
		Conn:        condition.Static("1/31/2021"),
		Conn2:       condition.Static("1/1/2021"),
		TypeManager: date(t),
		Operator:    condition.LessThanEqual,
		Difference:  30,
	}
	r, err := cond.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, condition.Success, r)

	cond.Operator = condition.LessThan
	r, err = cond.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, condition.Failed, r)

	centuries := &condition.Difference{
		Conn:        condition.Static("1/1/2300"),
		Conn2:       condition.Static("1/1/2400"),
		TypeManager: date(t),
		Operator:    condition.Equal,
		Difference:  36524,
	}
	r, err = centuries.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, condition.Success, r)

	numbers := &condition.Difference{
		Conn:        condition.Static("10"),
		Conn2:       condition.Static("25"),
		TypeManager: integer(t),
		Operator:    condition.GreaterThan,
		Difference:  10,
	}
	r, err = numbers.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, condition.Success, r)
}

func TestRegex(t *testing.T) {
	t.Parallel()

	cond, err := condition.NewRegex(condition.Static("ABC-123"), `^[a-z]{3}-\d+$`, true)
	require.NoError(t, err)
	assert.Equal(t, `^[a-z]{3}-\d+$`, cond.Expression())
	r, err := cond.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, condition.Success, r)

	strict, err := condition.NewRegex(condition.Static("ABC-123"), `^[a-z]{3}-\d+$`, false)
	require.NoError(t, err)
	r, err = strict.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, condition.Failed, r)

	strict.Conn = condition.Static("  ")
	r, err = strict.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, condition.CannotEvaluate, r)

	_, err = condition.NewRegex(condition.Static("x"), `(`, false)
	assert.ErrorIs(t, err, condition.ErrInvalidExpression)

	r, err = (&condition.Regex{Conn: condition.Static("x")}).Evaluate()
	assert.Equal(t, condition.CannotEvaluate, r)
	assert.ErrorIs(t, err, condition.ErrInvalidExpression)
}

func TestNot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, out condition.Result
	}{
		{condition.Success, condition.Failed},
		{condition.Failed, condition.Success},
		{condition.CannotEvaluate, condition.CannotEvaluate},
	}
	for _, tt := range tests {
		r, err := condition.Not(fixed(tt.in)).Evaluate()
		require.NoError(t, err)
		assert.Equal(t, tt.out, r)
	}

	r, err := (&condition.NotCondition{Condition: fixed(condition.Success), Disabled: true}).Evaluate()
	require.NoError(t, err)
	assert.Equal(t, condition.CannotEvaluate, r)

	verr := condition.Not(&condition.Required{}).Describe("name")
	assert.Equal(t, "condition.not", verr.TranslationKey)
	assert.Equal(t, "condition.required", verr.TranslationValues["inner"])
}

func TestCountTrueConditions(t *testing.T) {
	t.Parallel()

	children := []condition.Condition{fixed(condition.Success), fixed(condition.Failed), fixed(condition.CannotEvaluate), fixed(condition.Success)}
	tests := []struct {
		name     string
		min, max int
		expected condition.Result
	}{
		{name: "exact", min: 2, max: 2, expected: condition.Success},
		{name: "too few", min: 3, max: 4, expected: condition.Failed},
		{name: "too many", min: 0, max: 1, expected: condition.Failed},
		{name: "unbounded", min: 1, max: condition.Unbounded, expected: condition.Success},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, err := (&condition.CountTrueConditions{Conditions: children, Min: tt.min, Max: tt.max}).Evaluate()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, r)
		})
	}

	r, err := (&condition.CountTrueConditions{Conditions: []condition.Condition{fixed(condition.CannotEvaluate)}, Min: 0, Max: 1}).Evaluate()
	require.NoError(t, err)
	assert.Equal(t, condition.CannotEvaluate, r)
}

func TestBooleanLogic(t *testing.T) {
	t.Parallel()

	s, f, c := fixed(condition.Success), fixed(condition.Failed), fixed(condition.CannotEvaluate)
	tests := []struct {
		name     string
		op       condition.LogicOperator
		children []condition.Condition
		expected condition.Result
	}{
		{name: "and all", op: condition.And, children: []condition.Condition{s, s}, expected: condition.Success},
		{name: "and one failed", op: condition.And, children: []condition.Condition{s, f}, expected: condition.Failed},
		{name: "and skips unknown", op: condition.And, children: []condition.Condition{s, c}, expected: condition.Success},
		{name: "or one", op: condition.Or, children: []condition.Condition{f, s}, expected: condition.Success},
		{name: "or none", op: condition.Or, children: []condition.Condition{f, c, f}, expected: condition.Failed},
		{name: "xor one", op: condition.XOr, children: []condition.Condition{f, s, c}, expected: condition.Success},
		{name: "xor two", op: condition.XOr, children: []condition.Condition{s, s}, expected: condition.Failed},
		{name: "nothing to evaluate", op: condition.Or, children: []condition.Condition{c, c}, expected: condition.CannotEvaluate},
		{name: "empty", op: condition.And, expected: condition.CannotEvaluate},
		{name: "nested", op: condition.And, children: []condition.Condition{
			s,
			&condition.BooleanLogic{Operator: condition.Or, Conditions: []condition.Condition{f, condition.Not(f)}},
		}, expected: condition.Success},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, err := (&condition.BooleanLogic{Operator: tt.op, Conditions: tt.children}).Evaluate()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, r)
		})
	}

	r, err := (&condition.BooleanLogic{Operator: condition.LogicOperator(9), Conditions: []condition.Condition{s}}).Evaluate()
	assert.Equal(t, condition.CannotEvaluate, r)
	assert.ErrorIs(t, err, condition.ErrInvalidOperator)

	r, err = (&condition.BooleanLogic{Operator: condition.And, Conditions: []condition.Condition{s}, Disabled: true}).Evaluate()
	require.NoError(t, err)
	assert.Equal(t, condition.CannotEvaluate, r)
}

func TestParseOperator(t *testing.T) {
	t.Parallel()

	tests := map[string]condition.Operator{
		"=":                condition.Equal,
		"<>":               condition.NotEqual,
		"!=":               condition.NotEqual,
		"<":                condition.LessThan,
		" <= ":             condition.LessThanEqual,
		">":                condition.GreaterThan,
		">=":               condition.GreaterThanEqual,
		"greaterthanequal": condition.GreaterThanEqual,
		"Equal":            condition.Equal,
	}
	for in, expected := range tests {
		op, err := condition.ParseOperator(in)
		require.NoError(t, err, in)
		assert.Equal(t, expected, op, in)
	}

	_, err := condition.ParseOperator("~")
	assert.ErrorIs(t, err, condition.ErrInvalidOperator)
	assert.Equal(t, "LessThanEqual", condition.LessThanEqual.String())
}
