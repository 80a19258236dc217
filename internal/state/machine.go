// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"context"
	"errors"

	"github.com/MKhiriev/rsd-tui/internal/app"
	"github.com/MKhiriev/rsd-tui/internal/logger"
	"github.com/MKhiriev/rsd-tui/internal/service"
	"github.com/MKhiriev/rsd-tui/models"
)

// Machine computes state transitions. It holds no state of its own; the
// current [State] is owned by the caller.
type Machine struct {
	loader    service.VaultLoader
	clipboard service.ClipboardService
}

// NewMachine constructs a Machine that unlocks with loader and takes the
// clipboard handle from clipboard.
func NewMachine(loader service.VaultLoader, clipboard service.ClipboardService) *Machine {
	return &Machine{loader: loader, clipboard: clipboard}
}

// Initial returns the state the viewer starts in.
func (m *Machine) Initial() State {
	return LoggedOut{}
}

// Transition returns the state that follows s after key. The logger is taken
// from ctx.
func (m *Machine) Transition(ctx context.Context, s State, key Key) State {
	if key.Kind == KeyInterrupt {
		return m.terminate(ctx, s)
	}

	switch s := s.(type) {
	case LoggedOut:
		return m.loggedOut(ctx, s, key)
	case Unlocked:
		switch mode := s.Mode.(type) {
		case Submenu:
			return m.submenu(ctx, s, mode, key)
		default:
			return m.browsing(ctx, s, key)
		}
	case Terminated:
		return s
	default:
		logger.FromContext(ctx).Error().Msgf("unexpected state %T", s)
		return s
	}
}

func (m *Machine) loggedOut(ctx context.Context, s LoggedOut, key Key) State {
	switch key.Kind {
	case KeyRunes:
		return LoggedOut{Passphrase: s.Passphrase + string(key.Runes), Message: s.Message}
	case KeyBackspace:
		runes := []rune(s.Passphrase)
		if len(runes) == 0 {
			return s
		}
		return LoggedOut{Passphrase: string(runes[:len(runes)-1]), Message: s.Message}
	case KeyConfirm:
		return m.unlock(ctx, s.Passphrase)
	case KeyCancel:
		return m.terminate(ctx, s)
	default:
		return s
	}
}

// unlock loads the vault and takes the clipboard. Every failure returns to an
// empty LoggedOut with an error message.
func (m *Machine) unlock(ctx context.Context, passphrase string) State {
	log := logger.FromContext(ctx)

	credentials, err := m.loader.Load(ctx, passphrase)
	if err != nil {
		log.Info().Err(err).Msg("unlock failed")
		if errors.Is(err, service.ErrVaultStorage) {
			return LoggedOut{Message: models.Error(app.MsgVaultUnavailable + err.Error())}
		}
		return LoggedOut{Message: models.Error(app.MsgPasswordIncorrect + err.Error())}
	}

	cb, err := m.clipboard.Acquire()
	if err != nil {
		log.Error().Err(err).Msg("clipboard acquire failed")
		return LoggedOut{Message: models.Error(app.MsgClipboardInit + err.Error())}
	}

	log.Info().Int("credentials", len(credentials)).Msg("unlocked")

	u := Unlocked{
		Clipboard:   cb,
		Credentials: credentials,
		Mode:        Browsing{},
	}
	if u.Empty() {
		u.Message = models.Info(app.MsgEmptyVault)
	}
	return u
}

func (m *Machine) browsing(ctx context.Context, s Unlocked, key Key) State {
	if key.Kind == KeyCancel {
		return m.terminate(ctx, s)
	}
	if s.Empty() {
		return s
	}

	s.Mode = Browsing{}
	s.Message = nil

	switch {
	case key.Kind == KeyConfirm:
		s.Mode = Submenu{Command: models.CopyPassword}
	case key.Kind == KeyUp:
		if s.Hovering == 0 {
			s.Hovering = len(s.Credentials) - 1
		} else {
			s.Hovering--
		}
	case key.Kind == KeyDown:
		s.Hovering = (s.Hovering + 1) % len(s.Credentials)
	case key.isQuickCopy():
		if err := m.copyHovered(ctx, s); err != nil {
			s.Message = models.Error(app.MsgCopyFailed + err.Error())
		}
	}

	return s
}

func (m *Machine) submenu(ctx context.Context, s Unlocked, mode Submenu, key Key) State {
	if s.Empty() {
		// unreachable through Transition; recover to the list
		s.Mode = Browsing{}
		return s
	}

	s.Message = nil

	switch key.Kind {
	case KeyConfirm:
		s.Message = m.execute(ctx, s, mode.Command)
	case KeyUp:
		s.Mode = Submenu{Command: mode.Command.Prev()}
	case KeyDown:
		s.Mode = Submenu{Command: mode.Command.Next()}
	case KeyCancel:
		s.Mode = Browsing{}
	}

	return s
}

// execute runs cmd on the hovered credential and returns the message to show.
func (m *Machine) execute(ctx context.Context, s Unlocked, cmd models.Command) *models.UserMessage {
	switch cmd {
	case models.CopyPassword:
		if err := m.copyHovered(ctx, s); err != nil {
			return models.Error(app.MsgCopyFailed + err.Error())
		}
		return models.Info(app.MsgCopied)
	default:
		logger.FromContext(ctx).Debug().Stringer("command", cmd).Msg("command not implemented")
		return models.Error(cmd.String() + app.MsgNotImplemented)
	}
}

func (m *Machine) copyHovered(ctx context.Context, s Unlocked) error {
	c, ok := s.Hovered()
	if !ok {
		return nil
	}

	log := logger.FromContext(ctx)
	if err := s.Clipboard.WriteText(c.Secret); err != nil {
		log.Warn().Err(err).Str("account", c.Name).Msg("copy failed")
		return err
	}
	log.Info().Str("account", c.Name).Msg("secret copied")
	return nil
}

// terminate releases everything s owns and returns [Terminated].
func (m *Machine) terminate(ctx context.Context, s State) State {
	if u, ok := s.(Unlocked); ok && u.Clipboard != nil {
		u.Clipboard.Release()
	}
	if _, ok := s.(Terminated); !ok {
		logger.FromContext(ctx).Info().Msg("terminating")
	}
	return Terminated{}
}
