// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "campustrace/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *playground.Validate
}

// New creates an Echo-compatible request validator.
func New() *echoValidator {
	return &echoValidator{validate: playground.New()}
}

// Validate runs struct tag validation and maps failures to the shared
// validation error so the error handler renders a consistent envelope.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
