package condition

import "errors"

var (
	// ErrNoConnection is returned when a condition has no connection to read.
	ErrNoConnection = errors.New("condition: connection is required")

	// ErrNoTypeManager is returned when a condition needs a type manager to
	// interpret the text and has none.
	ErrNoTypeManager = errors.New("condition: type manager is required")

	// ErrInvalidOperator is returned for an unknown comparison or logic operator.
	ErrInvalidOperator = errors.New("condition: invalid operator")

	// ErrInvalidExpression is returned by NewRegex for an expression that
	// does not compile.
	ErrInvalidExpression = errors.New("condition: invalid regular expression")
)
