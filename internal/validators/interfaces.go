// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of incoming requests before the
// services act on them.
//
// A [Validator] accepts a value and an optional list of field names; with no
// fields every rule for the value's type is applied, otherwise only the named
// ones, in order. The first failing rule is returned.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
