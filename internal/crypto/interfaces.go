// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_mock.go -package=mock

// Cipher is the passphrase-based encryption oracle of the vault file.
//
// Implementations are opaque to the rest of the application: the loader only
// needs Open to either return plaintext or fail, and the sealer only needs
// Seal to produce a blob Open accepts. Blobs are text so the vault file can
// be read as a string.
type Cipher interface {
	// Name returns the registry name of the cipher ("keychain", "age").
	Name() string

	// Seal encrypts plaintext under a key derived from passphrase and
	// returns the text blob to persist.
	Seal(passphrase string, plaintext []byte) ([]byte, error)

	// Open decrypts a blob produced by Seal. A wrong passphrase and a
	// corrupted blob are indistinguishable and both wrap [ErrDecryption].
	Open(passphrase string, blob []byte) ([]byte, error)
}
