// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// ClientVault holds the vault settings used by the viewer and the sealer.
type ClientVault struct {
	// Path is the vault file path; empty means the per-user default.
	Path string
	// Cipher is the cipher name used when sealing.
	Cipher string
}

// ClientLog holds resolved logger settings.
type ClientLog struct {
	File  string
	Level zerolog.Level
}

// ClientConfig is the configuration view consumed by the binaries.
type ClientConfig struct {
	Vault ClientVault
	Log   ClientLog
}

// GetClientConfig builds and validates the client configuration from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg.client()
}

func (cfg *StructuredConfig) client() (*ClientConfig, error) {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return &ClientConfig{
		Vault: ClientVault{
			Path:   cfg.Vault.Path,
			Cipher: cfg.Vault.Cipher,
		},
		Log: ClientLog{
			File:  cfg.Log.File,
			Level: level,
		},
	}, nil
}
