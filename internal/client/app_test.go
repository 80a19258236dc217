// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/rsd-tui/internal/logger"
	"github.com/MKhiriev/rsd-tui/internal/mock"
	"github.com/MKhiriev/rsd-tui/internal/service"
	"github.com/MKhiriev/rsd-tui/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubRunner struct {
	err   error
	calls int
}

func (s *stubRunner) Run(ctx context.Context) error {
	s.calls++
	return s.err
}

func TestNewApp_MissingServices(t *testing.T) {
	_, err := NewApp(nil, models.AppBuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, ErrMissingServices)

	_, err = NewApp(&service.ClientServices{}, models.AppBuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, ErrMissingServices)
}

func TestNewApp(t *testing.T) {
	ctrl := gomock.NewController(t)
	services := &service.ClientServices{
		VaultLoader: mock.NewMockVaultLoader(ctrl),
		Clipboard:   mock.NewMockClipboardService(ctrl),
	}

	app, err := NewApp(services, models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, app.ui)

	var _ Client = app
}

func TestApp_Run(t *testing.T) {
	ui := &stubRunner{}
	app := &App{ui: ui, logger: logger.Nop()}

	require.NoError(t, app.Run())
	assert.Equal(t, 1, ui.calls)
}

func TestApp_RunError(t *testing.T) {
	runErr := errors.New("could not open a new TTY")
	app := &App{ui: &stubRunner{err: runErr}, logger: logger.Nop()}

	err := app.Run()
	assert.ErrorIs(t, err, runErr)
}
