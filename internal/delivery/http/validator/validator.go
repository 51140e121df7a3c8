// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	domainerrors "forno/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// Validator wraps a validator instance for echo.
type Validator struct {
	validate *validator.Validate
}

// New creates the echo request validator.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate checks the bound request struct against its validate tags and
// surfaces failures as the standard validation error.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
