// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/rsd-tui/internal/crypto"
	"github.com/MKhiriev/rsd-tui/internal/logger"
	"github.com/MKhiriev/rsd-tui/internal/store"
	"github.com/MKhiriev/rsd-tui/models"
)

type vaultLoader struct {
	storage store.VaultStorage
	detect  func(blob []byte) crypto.Cipher
	logger  *logger.Logger
}

// NewVaultLoader constructs a [VaultLoader] reading from storage. The cipher
// is picked per file with [crypto.Detect].
func NewVaultLoader(storage store.VaultStorage, logger *logger.Logger) VaultLoader {
	return &vaultLoader{
		storage: storage,
		detect:  crypto.Detect,
		logger:  logger,
	}
}

func (v *vaultLoader) Load(ctx context.Context, passphrase string) ([]models.Credential, error) {
	blob, err := v.storage.ReadVault(ctx)
	if err != nil {
		v.logger.Warn().Err(err).Msg("vault read failed")
		return nil, mapStoreError(err)
	}

	c := v.detect(blob)
	plaintext, err := c.Open(passphrase, blob)
	if err != nil {
		v.logger.Warn().Str("cipher", c.Name()).Msg("vault decryption failed")
		return nil, mapCipherError(err)
	}

	credentials, err := ParseCredentials(plaintext)
	if err != nil {
		v.logger.Warn().Err(err).Msg("vault parse failed")
		return nil, err
	}

	v.logger.Info().
		Str("cipher", c.Name()).
		Int("credentials", len(credentials)).
		Msg("vault unlocked")

	return credentials, nil
}

// recordJSON mirrors [models.Record] with pointer fields so that a missing
// key can be told apart from an empty value.
type recordJSON struct {
	Name     *string `json:"Name"`
	Password *string `json:"Password"`
}

// ParseCredentials decodes a JSON array of {"Name","Password"} records.
// Both keys are required on every record; unknown keys are ignored. The
// order of the array is preserved. Failures wrap [ErrVaultParse].
func ParseCredentials(data []byte) ([]models.Credential, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: expected a JSON array of records", ErrVaultParse)
	}

	var records []recordJSON
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVaultParse, err)
	}

	credentials := make([]models.Credential, 0, len(records))
	for i, r := range records {
		switch {
		case r.Name == nil:
			return nil, fmt.Errorf("%w: record %d: missing field Name", ErrVaultParse, i)
		case r.Password == nil:
			return nil, fmt.Errorf("%w: record %d: missing field Password", ErrVaultParse, i)
		}
		credentials = append(credentials, models.Record{Name: *r.Name, Password: *r.Password}.ToCredential())
	}

	return credentials, nil
}

type vaultSealer struct {
	storage store.VaultStorage
	logger  *logger.Logger
}

// NewVaultSealer constructs a [VaultSealer] writing to storage.
func NewVaultSealer(storage store.VaultStorage, logger *logger.Logger) VaultSealer {
	return &vaultSealer{storage: storage, logger: logger}
}

func (v *vaultSealer) Seal(ctx context.Context, passphrase string, credentials []models.Credential, c crypto.Cipher) error {
	if passphrase == "" {
		return ErrEmptyPassphrase
	}

	records := make([]models.Record, 0, len(credentials))
	for _, cred := range credentials {
		records = append(records, models.NewRecord(cred))
	}

	plaintext, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}

	blob, err := c.Seal(passphrase, plaintext)
	if err != nil {
		return fmt.Errorf("seal vault with %s: %w", c.Name(), err)
	}

	if err := v.storage.WriteVault(ctx, blob); err != nil {
		return mapStoreError(err)
	}

	v.logger.Info().
		Str("cipher", c.Name()).
		Int("credentials", len(credentials)).
		Msg("vault sealed")

	return nil
}
