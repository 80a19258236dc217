// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/rsd-tui/internal/crypto"
	"github.com/MKhiriev/rsd-tui/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// VaultLoader turns a passphrase into the ordered credential list of the
// vault. It never returns partial results.
type VaultLoader interface {
	// Load reads the vault file, decrypts it with passphrase and parses the
	// records. Failures wrap exactly one of [ErrVaultStorage],
	// [ErrVaultDecryption] or [ErrVaultParse].
	Load(ctx context.Context, passphrase string) ([]models.Credential, error)
}

// VaultSealer is the inverse of [VaultLoader]: it encrypts a credential list
// and replaces the vault file with the result.
type VaultSealer interface {
	// Seal encodes credentials in file order, encrypts them with c under
	// passphrase and writes the vault. An empty passphrase is rejected with
	// [ErrEmptyPassphrase].
	Seal(ctx context.Context, passphrase string, credentials []models.Credential, c crypto.Cipher) error
}

// ClipboardService hands out the exclusive clipboard handle.
type ClipboardService interface {
	// Acquire returns the clipboard handle. It fails with
	// [ErrClipboardUnavailable] when the platform has no clipboard or a
	// handle is already live.
	Acquire() (Clipboard, error)
}

// Clipboard is the exclusive capability to write the system clipboard.
// Exactly one value is live at a time; it is carried from state to state
// and released when the viewer terminates.
type Clipboard interface {
	// WriteText replaces the clipboard contents. Failures wrap
	// [ErrClipboardWrite], or [ErrClipboardReleased] after Release.
	WriteText(text string) error

	// Release gives the handle back to the service. Idempotent.
	Release()
}
