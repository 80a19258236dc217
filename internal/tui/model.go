// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/rsd-tui/internal/state"
	"github.com/MKhiriev/rsd-tui/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the Bubble Tea model of the viewer. It keeps the current state
// and the terminal width; every key press is one machine transition.
type Model struct {
	ctx     context.Context
	machine *state.Machine
	state   state.State
	width   int
	info    models.AppBuildInfo
}

// NewModel creates a Model in the machine's initial state. ctx carries the
// logger used by the machine.
func NewModel(ctx context.Context, machine *state.Machine, info models.AppBuildInfo) Model {
	return Model{
		ctx:     ctx,
		machine: machine,
		state:   machine.Initial(),
		info:    info,
	}
}

// State returns the current state.
func (m Model) State() state.State {
	return m.state
}

// Init implements [tea.Model].
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements [tea.Model]. Handled messages:
//   - [tea.WindowSizeMsg] stores the width for rendering.
//   - [tea.KeyMsg] runs one transition; [state.Terminated] quits.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		m.state = m.machine.Transition(m.ctx, m.state, toKey(msg))
		if _, done := m.state.(state.Terminated); done {
			return m, tea.Quit
		}
		return m, nil
	}

	return m, nil
}

// View implements [tea.Model].
func (m Model) View() string {
	view := Render(m.state, m.width)
	if _, locked := m.state.(state.LoggedOut); locked {
		view += "\n" + renderBuildInfo(m.info)
	}
	return view
}
