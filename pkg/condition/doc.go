// Package condition evaluates business rules over values read through a
// Connection and interpreted by a typemanager.TypeManager.
//
// A Condition returns one of three results: Success, Failed or
// CannotEvaluate. CannotEvaluate means the rule has nothing to say, usually
// because the value is empty, the text could not be converted or the
// condition is disabled. Value conditions return the conversion error
// alongside CannotEvaluate so callers can report it.
//
// # Conditions
//
//   - Required: the connection has text.
//   - DataTypeCheck: the text converts through the TypeManager.
//   - Range, CompareToValue, CompareTwoConnections: ordering through
//     TypeManager.Compare.
//   - Difference: the distance between two values through
//     TypeManager.ToNumber.
//   - Regex: the text matches an expression.
//   - CountTrueConditions, BooleanLogic and NotCondition: composition.
//
// # Usage
//
//	qty, _ := typemanager.NewInteger(nil, nil)
//	err := condition.Apply("quantity",
//	    &condition.Required{Conn: conn},
//	    &condition.Range{Conn: conn, TypeManager: qty, Min: 1, Max: 99},
//	)
//	if verrs := condition.ExtractValidationErrors(err); verrs != nil {
//	    // translate verrs[i].TranslationKey with verrs[i].TranslationValues
//	}
//
// Apply turns Failed results into ValidationErrors carrying translation
// keys. Conversion errors from the TypeManager keep their own keys
// (typemanager.conversion and typemanager.input).
package condition
