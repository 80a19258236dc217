// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName          = errors.New("credential name is required")
	ErrInvalidName        = errors.New("credential name contains control characters")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
