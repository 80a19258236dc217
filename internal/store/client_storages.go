// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/rsd-tui/internal/config"
	"github.com/MKhiriev/rsd-tui/internal/logger"
)

// ClientStorages groups the storage backends of the client into a single
// value that can be passed to the service layer.
type ClientStorages struct {
	// Vault is the encrypted credential file.
	Vault VaultStorage
}

// NewClientStorages initialises the storage layer from configuration.
// Nothing is touched on disk here; the vault file is opened lazily.
func NewClientStorages(cfg config.ClientVault, logger *logger.Logger) *ClientStorages {
	logger.Debug().Str("configured_path", cfg.Path).Msg("creating client storages")

	return &ClientStorages{
		Vault: NewVaultFileStorage(cfg.Path, logger),
	}
}
