// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/rsd-tui/internal/config"
	"github.com/MKhiriev/rsd-tui/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(path string, home func() (string, error)) *vaultFileStorage {
	s := NewVaultFileStorage(path, logger.Nop()).(*vaultFileStorage)
	if home != nil {
		s.homeDir = home
	}
	return s
}

func TestPath_Explicit(t *testing.T) {
	s := newTestStorage("/srv/vault.bin", func() (string, error) {
		t.Fatal("home dir must not be resolved for explicit paths")
		return "", nil
	})

	path, err := s.Path()
	require.NoError(t, err)
	assert.Equal(t, "/srv/vault.bin", path)
}

func TestPath_DefaultUnderHome(t *testing.T) {
	s := newTestStorage("", func() (string, error) { return "/home/alice", nil })

	path, err := s.Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/alice", ".local", "share", "rsd-tui", "psd.bin"), path)
}

func TestPath_HomeUnresolved(t *testing.T) {
	t.Run("lookup error", func(t *testing.T) {
		s := newTestStorage("", func() (string, error) { return "", errors.New("$HOME is not defined") })
		_, err := s.Path()
		assert.ErrorIs(t, err, ErrHomeDirUnresolved)
	})

	t.Run("empty home", func(t *testing.T) {
		s := newTestStorage("", func() (string, error) { return "", nil })
		_, err := s.ReadVault(context.Background())
		assert.ErrorIs(t, err, ErrHomeDirUnresolved)
	})
}

func TestReadVault_Missing(t *testing.T) {
	s := newTestStorage(filepath.Join(t.TempDir(), "psd.bin"), nil)

	blob, err := s.ReadVault(context.Background())
	assert.Nil(t, blob)
	assert.ErrorIs(t, err, ErrVaultNotFound)
}

func TestReadVault_Unreadable(t *testing.T) {
	// a directory cannot be read as a file
	s := newTestStorage(t.TempDir(), nil)

	_, err := s.ReadVault(context.Background())
	assert.ErrorIs(t, err, ErrVaultRead)
}

func TestReadVault_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestStorage("/unused", nil).ReadVault(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteThenRead(t *testing.T) {
	home := t.TempDir()
	s := newTestStorage("", func() (string, error) { return home, nil })
	ctx := context.Background()

	require.NoError(t, s.WriteVault(ctx, []byte("blob-1")))
	require.NoError(t, s.WriteVault(ctx, []byte("blob-2")))

	got, err := s.ReadVault(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("blob-2"), got)

	path, err := s.Path()
	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must be cleaned up")
}

func TestWriteVault_ParentIsFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	s := newTestStorage(filepath.Join(blocker, "psd.bin"), nil)
	err := s.WriteVault(context.Background(), []byte("x"))
	assert.ErrorIs(t, err, ErrVaultWrite)
}

func TestNewClientStorages(t *testing.T) {
	storages := NewClientStorages(config.ClientVault{Path: "/srv/vault.bin"}, logger.Nop())
	require.NotNil(t, storages.Vault)

	path, err := storages.Vault.Path()
	require.NoError(t, err)
	assert.Equal(t, "/srv/vault.bin", path)
}
