// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Vault errors. Every [VaultLoader] failure wraps exactly one of the first
// three so the UI can tell a missing file from a wrong passphrase.
var (
	// ErrVaultStorage: the vault file is missing or unreadable, or its
	// location cannot be resolved.
	ErrVaultStorage = errors.New("vault storage error")
	// ErrVaultDecryption: wrong passphrase or corrupted ciphertext.
	ErrVaultDecryption = errors.New("vault decryption error")
	// ErrVaultParse: the plaintext is not a list of credential records.
	ErrVaultParse = errors.New("vault parse error")

	// ErrEmptyPassphrase is returned by [VaultSealer.Seal] for "".
	ErrEmptyPassphrase = errors.New("passphrase must not be empty")
)

// Clipboard errors.
var (
	// ErrClipboardUnavailable: no clipboard on this platform, or the single
	// handle is already in use.
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
	// ErrClipboardWrite: writing to an acquired clipboard failed.
	ErrClipboardWrite = errors.New("clipboard write failed")
	// ErrClipboardReleased: the handle was used after Release.
	ErrClipboardReleased = errors.New("clipboard handle released")
)
