// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCipher(t *testing.T) {
	for _, name := range CipherNames() {
		c, err := NewCipher(name)
		require.NoError(t, err)
		assert.Equal(t, name, c.Name())
		assert.True(t, IsKnownCipher(name))
	}

	_, err := NewCipher("rot13")
	assert.ErrorIs(t, err, ErrUnknownCipher)
	assert.False(t, IsKnownCipher("rot13"))
}

func TestDetect(t *testing.T) {
	armored, err := newTestAge().Seal("pw", []byte("x"))
	require.NoError(t, err)

	keychainBlob, err := newTestKeychain().Seal("pw", []byte("x"))
	require.NoError(t, err)

	assert.Equal(t, AgeCipherName, Detect(armored).Name())
	assert.Equal(t, AgeCipherName, Detect([]byte(ageHeader+"\n-> scrypt")).Name())
	assert.Equal(t, KeychainCipherName, Detect(keychainBlob).Name())
	assert.Equal(t, KeychainCipherName, Detect(nil).Name())
}
