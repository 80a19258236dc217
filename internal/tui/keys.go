// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/rsd-tui/internal/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Letters are never bound: while locked they are passphrase input.
type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	backspace key.Binding
	interrupt key.Binding
	copy      key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
	down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
	enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	esc:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete")),
	interrupt: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	// matched by the state machine, listed for help only
	copy: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
}

// toKey translates a terminal key press into machine input. Alt-modified
// runes are not text; a paste loses the line break that usually ends it.
func toKey(msg tea.KeyMsg) state.Key {
	switch {
	case key.Matches(msg, keys.interrupt):
		return state.Press(state.KeyInterrupt)
	case key.Matches(msg, keys.enter):
		return state.Press(state.KeyConfirm)
	case key.Matches(msg, keys.esc):
		return state.Press(state.KeyCancel)
	case key.Matches(msg, keys.backspace):
		return state.Press(state.KeyBackspace)
	case key.Matches(msg, keys.up):
		return state.Press(state.KeyUp)
	case key.Matches(msg, keys.down):
		return state.Press(state.KeyDown)
	}

	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		if msg.Alt {
			return state.Press(state.KeyOther)
		}
		runes := msg.Runes
		if msg.Paste {
			runes = []rune(strings.TrimRight(string(runes), "\r\n"))
		}
		if len(runes) == 0 {
			return state.Press(state.KeyOther)
		}
		return state.Key{Kind: state.KeyRunes, Runes: runes}
	default:
		return state.Press(state.KeyOther)
	}
}

func helpLine(bindings ...key.Binding) string {
	out := ""
	for i, b := range bindings {
		if i > 0 {
			out += "  "
		}
		h := b.Help()
		out += h.Key + " " + h.Desc
	}
	return out
}
