package validators

import (
	"context"

	"github.com/Zathsiri/Api/models"
)

// Field names accepted by [UserValidator] for scoped validation.
const (
	FieldEmail = "email"
)

// UserValidator enforces the business rules of user payloads. The only rule
// the contract requires is presence of the email field; the remaining fields
// are accepted as-is.
type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	// no scoping means every known field is checked
	if len(fields) == 0 {
		fields = []string{FieldEmail}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			if user.Email == "" {
				return ErrEmptyEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
