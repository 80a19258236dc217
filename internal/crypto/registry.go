// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "fmt"

var constructors = map[string]func() Cipher{
	KeychainCipherName: NewKeychainCipher,
	AgeCipherName:      NewAgeCipher,
}

// NewCipher returns the cipher registered under name.
func NewCipher(name string) (Cipher, error) {
	newCipher, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCipher, name)
	}
	return newCipher(), nil
}

// IsKnownCipher reports whether name is registered.
func IsKnownCipher(name string) bool {
	_, ok := constructors[name]
	return ok
}

// CipherNames lists the registered cipher names in a stable order.
func CipherNames() []string {
	return []string{KeychainCipherName, AgeCipherName}
}

// Detect picks the cipher able to open blob by looking at its header: age
// files (armored or binary) go to age, everything else is treated as a
// keychain blob.
func Detect(blob []byte) Cipher {
	if isArmored(blob) || isAgeBinary(blob) {
		return NewAgeCipher()
	}
	return NewKeychainCipher()
}
