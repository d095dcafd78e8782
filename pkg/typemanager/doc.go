// Package typemanager converts typed values to and from culture formatted
// text. Each TypeManager handles one type: it parses user input, formats
// values for display, converts to and from a culture independent "neutral"
// form used for storage, compares values and projects them onto numbers
// for range checks.
//
// # Types
//
//   - Integer, Float, Currency and Percent: decimal arithmetic through
//     shopspring/decimal, culture group and decimal separators, negative
//     and symbol patterns, optional strict symbol positions, rounding.
//   - Date, MonthYear, DayMonth: pattern driven parsing with month and day
//     names, two-digit year pivot and calendar validation.
//   - TimeOfDay, Duration and DateTime: 12 and 24 hour clocks, durations
//     beyond 24 hours, a date and time composed from child managers.
//   - String, Pattern (EmailAddress, URL), RegionString (PhoneNumber,
//     PostalCode), CreditCardNumber and Boolean.
//
// # Null and errors
//
// A nil value means "no value". ToValue("") returns (nil, nil) and
// ToString(nil) returns ("", nil). Text of the wrong shape returns a
// *ConversionError; text that breaks a culture or business rule returns an
// *InputError. Both carry translation keys. Rejected options return a
// *ConfigError at the setter.
//
//	tm, err := typemanager.NewCurrency(nil, typemanager.Options{"cultureName": "fr-FR"})
//	if err != nil {
//		return err
//	}
//	v, err := tm.ToValue("1 234,50 €") // 1234.5
//	if typemanager.IsInputError(err) {
//		// show err to the user
//	}
//
// # Registry
//
// A Registry creates managers by class name or alias ("Date.Long",
// "Currency.Positive"). Aliases are checked when registered.
//
//	reg := typemanager.NewRegistry(store, typemanager.WithLogger(logger))
//	tm, err := reg.Create("Integer.Positive", nil)
//
// # Concurrency
//
// Setters are not safe for concurrent use. Once configured a manager may be
// shared; derived artifacts such as compiled expressions are computed on
// first use and dropped when an option changes.
package typemanager
