// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/rsd-tui/internal/logger"
)

// DefaultVaultRelPath is the vault location relative to the user's home
// directory. It is shared with vault files written by earlier releases.
var DefaultVaultRelPath = filepath.Join(".local", "share", "rsd-tui", "psd.bin")

// vaultFileStorage is the file-system implementation of [VaultStorage].
type vaultFileStorage struct {
	path    string
	homeDir func() (string, error)
	logger  *logger.Logger
}

// NewVaultFileStorage constructs a [VaultStorage] backed by a single file.
//
// An empty path selects $HOME/[DefaultVaultRelPath]; the home directory is
// resolved on every access, so a missing $HOME surfaces as an error of the
// unlock attempt rather than at startup.
func NewVaultFileStorage(path string, logger *logger.Logger) VaultStorage {
	return &vaultFileStorage{
		path:    path,
		homeDir: os.UserHomeDir,
		logger:  logger,
	}
}

func (v *vaultFileStorage) Path() (string, error) {
	if v.path != "" {
		return v.path, nil
	}

	home, err := v.homeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHomeDirUnresolved, err)
	}
	if home == "" {
		return "", ErrHomeDirUnresolved
	}

	return filepath.Join(home, DefaultVaultRelPath), nil
}

func (v *vaultFileStorage) ReadVault(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := v.Path()
	if err != nil {
		return nil, err
	}

	blob, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrVaultNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVaultRead, err)
	}

	v.logger.Debug().Str("path", path).Int("bytes", len(blob)).Msg("vault file read")
	return blob, nil
}

// WriteVault writes into a temporary file in the target directory and
// renames it over the vault, so an interrupted write never leaves a
// truncated vault behind.
func (v *vaultFileStorage) WriteVault(ctx context.Context, blob []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := v.Path()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("%w: %w", ErrVaultWrite, err)
	}

	tmp, err := os.CreateTemp(dir, ".psd-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrVaultWrite, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(blob); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrVaultWrite, err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrVaultWrite, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrVaultWrite, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: %w", ErrVaultWrite, err)
	}

	v.logger.Info().Str("path", path).Int("bytes", len(blob)).Msg("vault file written")
	return nil
}
