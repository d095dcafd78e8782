package condition

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a single failed condition with translation support.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages of field.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// translatable is implemented by typemanager.ConversionError and
// typemanager.InputError.
type translatable interface {
	error
	TranslationKey() string
	TranslationValues() map[string]any
}

// Apply evaluates conditions for one field. Failed results become
// ValidationErrors described by the condition; text the type manager
// rejected is reported with the type manager's translation key. Other
// evaluation errors, such as a missing connection, are joined to the result.
func Apply(field string, conditions ...Condition) error {
	var verrs ValidationErrors
	var errs []error

	for _, c := range conditions {
		r, err := c.Evaluate()
		var tr translatable
		switch {
		case err != nil && errors.As(err, &tr):
			verrs.Add(fromTranslatable(field, tr))
		case r == Failed:
			verrs.Add(describe(field, c))
		case err != nil:
			errs = append(errs, err)
		}
	}

	if !verrs.IsEmpty() {
		errs = append(errs, verrs)
	}
	return errors.Join(errs...)
}

func fromTranslatable(field string, tr translatable) ValidationError {
	values := map[string]any{"field": field}
	for k, v := range tr.TranslationValues() {
		values[k] = v
	}
	msg, _ := values["reason"].(string)
	if msg == "" {
		msg = tr.Error()
	}
	return ValidationError{
		Field:             field,
		Message:           msg,
		TranslationKey:    tr.TranslationKey(),
		TranslationValues: values,
	}
}

func describe(field string, c Condition) ValidationError {
	if d, ok := c.(Describer); ok {
		return d.Describe(field)
	}
	return ValidationError{
		Field:          field,
		Message:        "condition failed",
		TranslationKey: "condition.failed",
		TranslationValues: map[string]any{
			"field": field,
		},
	}
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
