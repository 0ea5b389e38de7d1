// Package validator wraps go-playground/validator with the project's custom rules
// and turns the first failed rule into a readable message.
package validator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Adarshcode-012/ActivityHub/internal/domain"
	"github.com/go-playground/validator/v10"
)

var global = New()

const (
	msgFieldRequired      = "field is required"
	msgFieldExceedsMaxLen = "field exceeds maximum length"
	msgFieldBelowMinLen   = "field is below minimum length"
	msgFieldBelowMinVal   = "field must be greater than zero"
	msgInvalidEmail       = "invalid email address"
	msgInvalidRole        = "role must be one of: user, admin"
	msgUnknownValidation  = "invalid value"
)

func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("role", validateRole)
	_ = v.RegisterValidation("notblank", validateNotBlank)
	_ = v.RegisterValidation("notzero", validateNotZeroTime)
	return v
}

func validateRole(fl validator.FieldLevel) bool {
	return domain.Role(fl.Field().String()).Valid()
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateNotZeroTime(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	return ok && !t.IsZero()
}

// Validate checks the struct and returns an error wrapping domain.ErrValidation.
func Validate(ctx context.Context, s any) error {
	return parseValidationErrors(global.StructCtx(ctx, s))
}

func parseValidationErrors(err error) error {
	if err == nil {
		return nil
	}

	var vErrors validator.ValidationErrors
	if !errors.As(err, &vErrors) || len(vErrors) == 0 {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	ve := vErrors[0]
	var msg string
	switch ve.Tag() {
	case "required", "notblank", "notzero":
		msg = msgFieldRequired
	case "max":
		msg = msgFieldExceedsMaxLen
	case "min":
		msg = msgFieldBelowMinLen
	case "gt", "gte":
		msg = msgFieldBelowMinVal
	case "email":
		msg = msgInvalidEmail
	case "role":
		msg = msgInvalidRole
	default:
		msg = msgUnknownValidation
	}

	return fmt.Errorf("%w: %s: %s", domain.ErrValidation, strings.ToLower(ve.Field()), msg)
}
