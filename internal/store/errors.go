package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when a lookup, update, or delete targets
	// an id that is not present in the store.
	ErrUserNotFound = errors.New("user was not found")

	// ErrEmailAlreadyExists is returned when an attempt to create a new user
	// fails because another record already holds the same email address.
	ErrEmailAlreadyExists = errors.New("email already exists")
)
