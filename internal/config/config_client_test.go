// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientConfig_Defaults(t *testing.T) {
	cfg, err := GetClientConfig()
	require.NoError(t, err)

	assert.Equal(t, zerolog.InfoLevel, cfg.Log.Level)
	assert.Equal(t, DefaultCipher, cfg.Vault.Cipher)
	assert.Empty(t, cfg.Vault.Path)
}

func TestGetClientConfig_BadLevel(t *testing.T) {
	t.Setenv("RSD_LOG_LEVEL", "loud")

	_, err := GetClientConfig()
	assert.ErrorIs(t, err, ErrInvalidLogConfigs)
}

func TestGetClientConfig_BadCipher(t *testing.T) {
	t.Setenv("RSD_VAULT_CIPHER", "rot13")

	_, err := GetClientConfig()
	assert.ErrorIs(t, err, ErrInvalidVaultConfigs)
}
