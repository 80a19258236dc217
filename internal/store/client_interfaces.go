// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// VaultStorage persists the opaque ciphertext blob of the vault.
//
// The storage never interprets the blob: decryption and parsing happen in
// the service layer.
type VaultStorage interface {
	// Path returns the resolved location of the vault file.
	// Returns [ErrHomeDirUnresolved] when the default location is used and
	// the user's home directory cannot be determined.
	Path() (string, error)

	// ReadVault returns the raw vault blob. A missing file wraps
	// [ErrVaultNotFound]; any other I/O failure wraps [ErrVaultRead].
	ReadVault(ctx context.Context) ([]byte, error)

	// WriteVault atomically replaces the vault file with blob, creating
	// parent directories as needed.
	WriteVault(ctx context.Context, blob []byte) error
}
