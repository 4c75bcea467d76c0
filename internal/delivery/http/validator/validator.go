// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	domainerrors "petclinic/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a single validator instance shared by every request.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the validator echo will call for every bound request payload.
func New() *CustomValidator {
	return &CustomValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks struct tags and surfaces failures as a domain validation
// error so the central error handler renders a 400 envelope.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
