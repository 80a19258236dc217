// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	p := writeTempConfig(t, `{
		/* vault file */
		"vault": {
			"path": "/data/psd.bin",
			"cipher": "age", // sealing only
		},
		"log": {"file": "/tmp/rsd.log", "level": "error"}
	}`)

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, "/data/psd.bin", cfg.Vault.Path)
	assert.Equal(t, "age", cfg.Vault.Cipher)
	assert.Equal(t, "/tmp/rsd.log", cfg.Log.File)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_Malformed(t *testing.T) {
	p := writeTempConfig(t, `{"vault": [}`)

	cfg, err := parseJSON(p)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}
