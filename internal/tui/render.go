// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/rsd-tui/internal/state"
	"github.com/MKhiriev/rsd-tui/models"
)

const (
	appTitle       = "RSD-TUI"
	passwordPrompt = "Enter password: "
	exitingText    = "Exiting..."
)

// Render draws s into a bordered frame. width is the terminal width; zero
// lets the frame size to its content. Render never modifies s and never
// prints secrets or the passphrase.
func Render(s state.State, width int) string {
	var body []string

	switch s := s.(type) {
	case state.LoggedOut:
		body = renderLoggedOut(s)
	case state.Unlocked:
		if sub, ok := s.Mode.(state.Submenu); ok {
			body = renderSubmenu(s, sub)
		} else {
			body = renderBrowsing(s)
		}
	case state.Terminated:
		body = []string{exitingText}
	}

	return renderFrame(body, width)
}

func renderLoggedOut(s state.LoggedOut) []string {
	masked := strings.Repeat("*", utf8.RuneCountInString(s.Passphrase))
	lines := []string{passwordPrompt + masked}
	lines = appendMessage(lines, s.Message)
	return append(lines, "", helpStyle.Render(helpLine(keys.enter, keys.backspace, keys.esc)))
}

func renderBrowsing(s state.Unlocked) []string {
	lines := make([]string, 0, len(s.Credentials)+3)
	for i, c := range s.Credentials {
		line := fmt.Sprintf("%d) %s", i, displayName(c.Name))
		if i == s.Hovering {
			line = hoverStyle.Render(line)
		}
		lines = append(lines, line)
	}
	lines = appendMessage(lines, s.Message)

	if s.Empty() {
		return append(lines, "", helpStyle.Render(helpLine(keys.esc)))
	}
	return append(lines, "", helpStyle.Render(helpLine(keys.up, keys.down, keys.enter, keys.copy, keys.esc)))
}

func renderSubmenu(s state.Unlocked, sub state.Submenu) []string {
	c, _ := s.Hovered()
	lines := []string{headingStyle.Render("For Account: " + displayName(c.Name))}

	for _, cmd := range models.Commands() {
		line := cmd.String()
		if cmd == sub.Command {
			line = hoverStyle.Render(line)
		}
		lines = append(lines, line)
	}
	lines = appendMessage(lines, s.Message)

	return append(lines, "", helpStyle.Render(helpLine(keys.up, keys.down, keys.enter, keys.esc)))
}

// displayName drops control runes from a vault name so it cannot move the
// cursor or inject escape sequences. Vaults are not always sealed by rsd-seal.
func displayName(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, name)
}

func appendMessage(lines []string, msg *models.UserMessage) []string {
	if msg == nil {
		return lines
	}
	if msg.IsError() {
		return append(lines, errorStyle.Render(msg.Text))
	}
	return append(lines, infoStyle.Render(msg.Text))
}

func renderFrame(body []string, width int) string {
	content := titleStyle.Render(appTitle) + "\n" + strings.Join(body, "\n")

	style := frameStyle
	if width > frameStyle.GetHorizontalFrameSize() {
		style = style.Width(width - frameStyle.GetHorizontalBorderSize())
	}
	return style.Render(content)
}
