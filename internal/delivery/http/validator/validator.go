// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator runs struct tag validation for echo.Context.Validate.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates a validator that reads `validate` struct tags.
func New() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}
