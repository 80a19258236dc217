// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when configuration values cannot be used.
var (
	// ErrInvalidVaultConfigs indicates invalid vault settings
	// (for example, an unknown cipher name).
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidLogConfigs indicates invalid logger settings
	// (for example, an unknown level name).
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
