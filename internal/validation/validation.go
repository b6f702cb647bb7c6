// Package validation turns struct tags into field-keyed validation errors.
// Each failing field reports an independent message so a form can highlight
// every invalid field in one round trip.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "sokoo/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Required-string fields must be non-empty after trimming.
	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(err)
	}

	// Report fields by their json name so errors line up with request bodies.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}

		return name
	})

	return v
}

// Struct validates a tagged input struct. It returns nil when every rule
// passes, otherwise a *domainerrors.ValidationError keyed by json field name.
func Struct(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Non-validation failures (e.g. passing a non-struct) are caller bugs.
		return err
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields[fieldErr.Field()] = messageFor(fieldErr)
	}

	return domainerrors.NewValidationError(fields)
}

func messageFor(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required", "notblank":
		return "This field is required"
	case "email":
		return "Please enter a valid email address"
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fieldErr.Param())
	case "eqfield":
		return "Passwords do not match"
	case "eq":
		return "You must accept the terms and conditions"
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fieldErr.Param())
	default:
		return "Invalid value"
	}
}
