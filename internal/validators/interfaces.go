// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Zathsiri

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Implementations of [Validator] are injected into services so that
// validation logic stays decoupled from transport and storage layers.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
