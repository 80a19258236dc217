// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by [VaultStorage]. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrHomeDirUnresolved is returned when no explicit vault path is
	// configured and the user's home directory cannot be determined.
	ErrHomeDirUnresolved = errors.New("home directory could not be resolved")

	// ErrVaultNotFound is returned when the vault file does not exist.
	ErrVaultNotFound = errors.New("vault file not found")

	// ErrVaultRead is returned when the vault file exists but cannot be read.
	ErrVaultRead = errors.New("vault file could not be read")

	// ErrVaultWrite is returned when the vault file cannot be written.
	ErrVaultWrite = errors.New("vault file could not be written")
)
