// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/rsd-tui/internal/logger"
	"github.com/MKhiriev/rsd-tui/internal/state"
	"github.com/MKhiriev/rsd-tui/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the viewer on the terminal.
type TUI struct {
	machine *state.Machine
	info    models.AppBuildInfo
	logger  *logger.Logger

	// options are appended to the defaults; tests use them to swap the
	// terminal for pipes.
	options []tea.ProgramOption
}

// New creates a TUI driving machine.
func New(machine *state.Machine, info models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{machine: machine, info: info, logger: logger}
}

// Run starts the program on the alternate screen and blocks until the
// viewer terminates or ctx is canceled.
func (t *TUI) Run(ctx context.Context) error {
	ctx = t.logger.WithContext(ctx)

	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, t.options...)
	final, err := tea.NewProgram(NewModel(ctx, t.machine, t.info), opts...).Run()

	model, ok := final.(Model)
	if !ok {
		if err != nil {
			return fmt.Errorf("run terminal program: %w", err)
		}
		return ErrUnexpectedModel
	}

	// a killed program can stop while the vault is open; release it
	if _, done := model.State().(state.Terminated); !done {
		t.machine.Transition(ctx, model.State(), state.Press(state.KeyInterrupt))
	}

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run terminal program: %w", err)
	}
	return nil
}
