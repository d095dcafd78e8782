package culture

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// v returns the shared validator with the culture specific rules registered.
func v() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("numpattern", numberPatternValidator)
	})
	return validate
}

// numberPatternValidator checks that a number pattern contains exactly one
// "n" placeholder and at most one currency or percent placeholder.
func numberPatternValidator(fl validator.FieldLevel) bool {
	p := fl.Field().String()
	if strings.Count(p, "n") != 1 {
		return false
	}
	return strings.Count(p, "$")+strings.Count(p, "%") <= 1
}

// Validate checks that every required field of the record is present and
// well-formed.
func Validate(info *Info) error {
	if info == nil {
		return errors.Join(ErrInvalidCulture, errors.New("nil record"))
	}
	if err := v().Struct(info); err != nil {
		return errors.Join(ErrInvalidCulture, err)
	}
	return nil
}
