// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/rsd-tui/internal/logger"
	"github.com/MKhiriev/rsd-tui/internal/service"
	"github.com/MKhiriev/rsd-tui/internal/state"
	"github.com/MKhiriev/rsd-tui/internal/tui"
	"github.com/MKhiriev/rsd-tui/models"
)

// runner is the part of [tui.TUI] the App depends on.
type runner interface {
	Run(ctx context.Context) error
}

// App is the vault viewer process: one TUI session over one state machine.
type App struct {
	ui     runner
	logger *logger.Logger
}

// NewApp wires the state machine on top of services and builds the TUI.
func NewApp(services *service.ClientServices, info models.AppBuildInfo, log *logger.Logger) (*App, error) {
	if services == nil || services.VaultLoader == nil || services.Clipboard == nil {
		return nil, ErrMissingServices
	}

	machine := state.NewMachine(services.VaultLoader, services.Clipboard)

	return &App{
		ui:     tui.New(machine, info, log.GetChildLogger()),
		logger: log,
	}, nil
}

// Run blocks until the user leaves the viewer or the process receives
// SIGTERM or SIGHUP.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	a.logger.Info().Msg("viewer started")

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}

	a.logger.Info().Msg("viewer stopped")
	return nil
}
