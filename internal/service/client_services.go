// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/rsd-tui/internal/logger"
	"github.com/MKhiriev/rsd-tui/internal/store"
)

// ClientServices groups the services used by the viewer and the sealer.
type ClientServices struct {
	VaultLoader VaultLoader
	VaultSealer VaultSealer
	Clipboard   ClipboardService
}

// NewClientServices wires the services on top of the storage layer.
func NewClientServices(storages *store.ClientStorages, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		VaultLoader: NewVaultLoader(storages.Vault, logger.GetChildLogger()),
		VaultSealer: NewVaultSealer(storages.Vault, logger.GetChildLogger()),
		Clipboard:   NewClipboardService(logger.GetChildLogger()),
	}
}
