// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrDecryption is wrapped by every Open failure: wrong passphrase,
	// truncated or tampered blob, malformed encoding.
	ErrDecryption = errors.New("decryption failed")

	// ErrEncryption is wrapped by Seal failures.
	ErrEncryption = errors.New("encryption failed")

	// ErrUnknownCipher is returned by [NewCipher] for unregistered names.
	ErrUnknownCipher = errors.New("unknown cipher")
)
