// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"io"
	"os"
	"testing"
	"time"

	"github.com/MKhiriev/rsd-tui/internal/logger"
	"github.com/MKhiriev/rsd-tui/internal/mock"
	"github.com/MKhiriev/rsd-tui/internal/service"
	"github.com/MKhiriev/rsd-tui/internal/state"
	"github.com/MKhiriev/rsd-tui/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const runTimeout = 5 * time.Second

// newPipedTUI returns a TUI reading keys from a pipe and rendering nowhere,
// together with the write end of the pipe.
func newPipedTUI(t *testing.T, machine *state.Machine, extra ...tea.ProgramOption) (*TUI, *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = w.Close()
		_ = r.Close()
	})

	ui := New(machine, models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())
	ui.options = append([]tea.ProgramOption{tea.WithInput(r), tea.WithOutput(io.Discard)}, extra...)
	return ui, w
}

func runAsync(ctx context.Context, ui *TUI) <-chan error {
	done := make(chan error, 1)
	go func() { done <- ui.Run(ctx) }()
	return done
}

func waitRun(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(runTimeout):
		t.Fatal("Run did not return")
		return nil
	}
}

func waitSignal(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(runTimeout):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestRun_KilledWhileUnlockedReleasesClipboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mock.NewMockVaultLoader(ctrl)
	clip := mock.NewMockClipboardService(ctrl)

	cb := &fakeClipboard{}
	unlocked := make(chan struct{})
	loader.EXPECT().Load(gomock.Any(), "pw").Return([]models.Credential{{Name: "a", Secret: "1"}}, nil)
	clip.EXPECT().Acquire().DoAndReturn(func() (service.Clipboard, error) {
		close(unlocked)
		return cb, nil
	})

	ui, keys := newPipedTUI(t, state.NewMachine(loader, clip))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := runAsync(ctx, ui)
	_, err := keys.WriteString("pw\r")
	require.NoError(t, err)

	waitSignal(t, unlocked, "unlock")
	cancel()

	require.NoError(t, waitRun(t, done))
	assert.True(t, cb.released)
}

func TestRun_KilledWhileLockedReturnsNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	// no unlock happens, so neither mock may be called
	machine := state.NewMachine(mock.NewMockVaultLoader(ctrl), mock.NewMockClipboardService(ctrl))

	seen := make(chan struct{})
	var once bool
	filter := tea.WithFilter(func(_ tea.Model, msg tea.Msg) tea.Msg {
		if _, ok := msg.(tea.KeyMsg); ok && !once {
			once = true
			close(seen)
		}
		return msg
	})

	ui, keys := newPipedTUI(t, machine, filter)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := runAsync(ctx, ui)
	_, err := keys.WriteString("x")
	require.NoError(t, err)

	waitSignal(t, seen, "key press")
	cancel()

	assert.NoError(t, waitRun(t, done))
}

func TestRun_InterruptKeyQuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	machine := state.NewMachine(mock.NewMockVaultLoader(ctrl), mock.NewMockClipboardService(ctrl))

	ui, keys := newPipedTUI(t, machine)
	done := runAsync(context.Background(), ui)

	// ctrl+c
	_, err := keys.Write([]byte{0x03})
	require.NoError(t, err)

	assert.NoError(t, waitRun(t, done))
}
