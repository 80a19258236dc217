// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"fmt"
	"io"

	"filippo.io/age"
	"filippo.io/age/armor"
)

// AgeCipherName is the registry name of [ageCipher].
const AgeCipherName = "age"

// ageHeader starts every binary age file.
const ageHeader = "age-encryption.org/v1"

// ageCipher wraps filippo.io/age with a scrypt passphrase recipient. Sealed
// blobs are ASCII-armored; Open accepts armored and binary files, so a vault
// produced by the age command line tool (`age -p -a`) opens as well.
type ageCipher struct {
	// workFactor is the scrypt log2(N) used when sealing; 0 keeps the age
	// default.
	workFactor int
}

// NewAgeCipher constructs the age scrypt cipher with age's default work
// factor.
func NewAgeCipher() Cipher {
	return &ageCipher{}
}

func (a *ageCipher) Name() string {
	return AgeCipherName
}

// Seal implements [Cipher].
func (a *ageCipher) Seal(passphrase string, plaintext []byte) ([]byte, error) {
	recipient, err := age.NewScryptRecipient(passphrase)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncryption, err)
	}
	if a.workFactor > 0 {
		recipient.SetWorkFactor(a.workFactor)
	}

	var out bytes.Buffer
	armorWriter := armor.NewWriter(&out)
	writer, err := age.Encrypt(armorWriter, recipient)
	if err != nil {
		return nil, fmt.Errorf("%w: creating age encryptor: %w", ErrEncryption, err)
	}
	if _, err := writer.Write(plaintext); err != nil {
		return nil, fmt.Errorf("%w: writing plaintext to age encryptor: %w", ErrEncryption, err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("%w: finalizing age encryption: %w", ErrEncryption, err)
	}
	if err := armorWriter.Close(); err != nil {
		return nil, fmt.Errorf("%w: finalizing armor: %w", ErrEncryption, err)
	}

	return out.Bytes(), nil
}

// Open implements [Cipher].
func (a *ageCipher) Open(passphrase string, blob []byte) ([]byte, error) {
	identity, err := age.NewScryptIdentity(passphrase)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	var src io.Reader = bytes.NewReader(blob)
	if isArmored(blob) {
		src = armor.NewReader(bytes.NewReader(blob))
	}

	reader, err := age.Decrypt(src, identity)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	plaintext, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading decrypted plaintext: %w", ErrDecryption, err)
	}

	return plaintext, nil
}

func isArmored(blob []byte) bool {
	return bytes.HasPrefix(bytes.TrimSpace(blob), []byte(armor.Header))
}

func isAgeBinary(blob []byte) bool {
	return bytes.HasPrefix(blob, []byte(ageHeader))
}
