// Package validator adapts the shared validation rules to Echo's
// request-validation hook.
package validator

import (
	"sokoo/internal/validation"
)

// Validator implements echo.Validator by delegating to the shared field
// rules, so handler Bind+Validate and use-case validation agree on both
// the rules and the field-keyed error shape.
type Validator struct{}

// New creates an Echo request validator.
func New() *Validator {
	return &Validator{}
}

// Validate checks a bound request payload.
func (v *Validator) Validate(i any) error {
	return validation.Struct(i)
}
