package typemanager

import (
	"errors"
	"fmt"
)

var (
	// ErrConversion is wrapped by every ConversionError.
	ErrConversion = errors.New("conversion failed")

	// ErrInput is wrapped by every InputError.
	ErrInput = errors.New("invalid input")

	// ErrInvalidOption is returned when an option value is rejected.
	ErrInvalidOption = errors.New("invalid option value")

	// ErrUnknownOption is returned when a type manager does not know an option.
	ErrUnknownOption = errors.New("unknown option")

	// ErrUnknownType is returned by the registry for unregistered names.
	ErrUnknownType = errors.New("unknown type manager")

	// ErrDuplicateType is returned when a name is registered twice.
	ErrDuplicateType = errors.New("type manager already registered")
)

// Translation keys carried by the conversion and input errors.
const (
	ConversionTranslationKey = "typemanager.conversion"
	InputTranslationKey      = "typemanager.input"
)

// ConversionError reports text that has the wrong shape for the type:
// illegal characters, wrong number of fields, numeric overflow or a fraction
// given to an integer type.
type ConversionError struct {
	TypeName string
	Text     string
	Reason   string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s: cannot convert %q: %s", e.TypeName, e.Text, e.Reason)
}

func (e *ConversionError) Unwrap() error { return ErrConversion }

// TranslationKey returns the message key for localized error messages.
func (e *ConversionError) TranslationKey() string { return ConversionTranslationKey }

// TranslationValues returns the placeholders of the localized message.
func (e *ConversionError) TranslationValues() map[string]any {
	return map[string]any{"type": e.TypeName, "text": e.Text, "reason": e.Reason}
}

// InputError reports text that has the right shape but breaks a culture
// pattern or a business rule: symbol in the wrong place, disallowed
// negative, too many decimal places, impossible calendar date.
type InputError struct {
	TypeName string
	Text     string
	Reason   string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: invalid input %q: %s", e.TypeName, e.Text, e.Reason)
}

func (e *InputError) Unwrap() error { return ErrInput }

// TranslationKey returns the message key for localized error messages.
func (e *InputError) TranslationKey() string { return InputTranslationKey }

// TranslationValues returns the placeholders of the localized message.
func (e *InputError) TranslationValues() map[string]any {
	return map[string]any{"type": e.TypeName, "text": e.Text, "reason": e.Reason}
}

// ConfigError is returned by SetOption and Configure. It wraps
// ErrInvalidOption or ErrUnknownOption.
type ConfigError struct {
	TypeName string
	Option   string
	Value    any
	Err      error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: option %q = %v: %v", e.TypeName, e.Option, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

func conversionErr(text, format string, args ...any) error {
	return &ConversionError{Text: text, Reason: fmt.Sprintf(format, args...)}
}

func inputErr(text, format string, args ...any) error {
	return &InputError{Text: text, Reason: fmt.Sprintf(format, args...)}
}

// stampTypeName fills the type name of errors produced by shared helpers.
func stampTypeName(err error, typeName string) error {
	var ce *ConversionError
	if errors.As(err, &ce) && ce.TypeName == "" {
		ce.TypeName = typeName
		return err
	}
	var ie *InputError
	if errors.As(err, &ie) && ie.TypeName == "" {
		ie.TypeName = typeName
	}
	return err
}

// IsConversionError reports whether err is a ConversionError.
func IsConversionError(err error) bool {
	return errors.Is(err, ErrConversion)
}

// IsInputError reports whether err is an InputError.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInput)
}
