// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Zathsiri

package models

// User is a single directory record. IDs are assigned by the store on
// creation and are never taken from the client payload.
type User struct {
	// ID is the unique identifier of the record, assigned as
	// max(existing ids) + 1 on creation.
	ID int `json:"id"`

	// FirstName is the user's given name.
	FirstName string `json:"firstName"`

	// LastName is the user's family name.
	LastName string `json:"lastName"`

	// Email is the user's email address. It must be unique across the
	// store; uniqueness is enforced on creation only.
	Email string `json:"email"`

	// Department is the organisational unit the user belongs to.
	Department string `json:"department"`
}

// UserUpdate is the partial-update payload accepted by PUT /api/users/{id}.
// A nil field was absent from the request body and leaves the stored value
// untouched; a non-nil field overwrites it, even with an empty string.
type UserUpdate struct {
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	Email      *string `json:"email"`
	Department *string `json:"department"`
}
