// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks credential lists before they are sealed into a
// vault.
//
// Loading never validates: whatever a vault holds is shown as is. Sealing
// does, so that every vault written by this repository renders cleanly in
// the line-oriented viewer.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may restrict validation to the named fields.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
