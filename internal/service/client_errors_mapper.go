// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/rsd-tui/internal/crypto"
)

// mapStoreError translates a storage error into [ErrVaultStorage] while
// keeping the original error (store sentinel, context error) in the chain.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrVaultStorage, err)
}

// mapCipherError translates a cipher failure into [ErrVaultDecryption].
// Errors that do not already carry [crypto.ErrDecryption] get it attached so
// callers can match on either layer.
func mapCipherError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, crypto.ErrDecryption) {
		return fmt.Errorf("%w: %w", ErrVaultDecryption, err)
	}
	return fmt.Errorf("%w: %w: %w", ErrVaultDecryption, crypto.ErrDecryption, err)
}
