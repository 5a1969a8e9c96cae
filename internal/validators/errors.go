package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrEmptyEmail is returned when a user payload carries no email address.
	ErrEmptyEmail = errors.New("email is required")
)
