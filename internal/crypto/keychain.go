// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// KeychainCipherName is the registry name of [keychainCipher].
const KeychainCipherName = "keychain"

const (
	keychainSaltSize = 16
	keychainKeySize  = 32 // AES-256
)

// keychainCipher derives a key from the passphrase with Argon2id and
// encrypts with AES-256-GCM.
//
// Blob layout before base64 (standard encoding):
//
//	salt (16 bytes) ‖ nonce (12 bytes) ‖ ciphertext+tag
type keychainCipher struct {
	// Argon2id tuning parameters, kept in the struct so tests can use
	// cheaper settings.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

// NewKeychainCipher constructs the Argon2id/AES-GCM cipher with the
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeychainCipher() Cipher {
	return &keychainCipher{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
	}
}

func (k *keychainCipher) Name() string {
	return KeychainCipherName
}

func (k *keychainCipher) deriveKey(passphrase string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(passphrase),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		keychainKeySize,
	)
}

// Seal implements [Cipher]. A fresh random salt and nonce are generated on
// every call, so sealing the same plaintext twice yields different blobs.
func (k *keychainCipher) Seal(passphrase string, plaintext []byte) ([]byte, error) {
	salt := make([]byte, keychainSaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("%w: generate salt: %w", ErrEncryption, err)
	}

	gcm, err := newGCM(k.deriveKey(passphrase, salt))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncryption, err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("%w: generate nonce: %w", ErrEncryption, err)
	}

	blob := make([]byte, 0, len(salt)+len(nonce)+len(plaintext)+gcm.Overhead())
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = gcm.Seal(blob, nonce, plaintext, nil)

	out := make([]byte, base64.StdEncoding.EncodedLen(len(blob)))
	base64.StdEncoding.Encode(out, blob)
	return append(out, '\n'), nil
}

// Open implements [Cipher]. Surrounding whitespace is ignored.
func (k *keychainCipher) Open(passphrase string, encoded []byte) ([]byte, error) {
	encoded = bytes.TrimSpace(encoded)
	blob := make([]byte, base64.StdEncoding.DecodedLen(len(encoded)))
	n, err := base64.StdEncoding.Decode(blob, encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %w", ErrDecryption, err)
	}
	blob = blob[:n]

	if len(blob) < keychainSaltSize {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrDecryption)
	}
	salt, rest := blob[:keychainSaltSize], blob[keychainSaltSize:]

	gcm, err := newGCM(k.deriveKey(passphrase, salt))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	nonceSize := gcm.NonceSize()
	if len(rest) < nonceSize {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrDecryption)
	}
	nonce, ciphertext := rest[:nonceSize], rest[nonceSize:]

	// An authentication failure here almost always means a wrong passphrase.
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
