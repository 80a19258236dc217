// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/rsd-tui/internal/crypto"
	"github.com/rs/zerolog"
)

// validate checks that the merged [StructuredConfig] can be used at startup.
// Empty values are accepted: they fall back to defaults downstream.
func (cfg *StructuredConfig) validate() error {
	if cfg.Vault.Cipher != "" && !crypto.IsKnownCipher(cfg.Vault.Cipher) {
		return fmt.Errorf("%w: unknown cipher %q", ErrInvalidVaultConfigs, cfg.Vault.Cipher)
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
		}
	}

	return nil
}
