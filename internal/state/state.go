// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"github.com/MKhiriev/rsd-tui/internal/service"
	"github.com/MKhiriev/rsd-tui/models"
)

// State is one of [LoggedOut], [Unlocked] or [Terminated].
type State interface {
	isState()
}

// LoggedOut is the locked screen. Passphrase is the text typed so far.
type LoggedOut struct {
	Passphrase string
	Message    *models.UserMessage
}

// Unlocked holds the decrypted vault and the live clipboard handle.
//
// Hovering is always a valid index into Credentials when the list is not
// empty, and 0 when it is.
type Unlocked struct {
	Clipboard   service.Clipboard
	Credentials []models.Credential
	Hovering    int
	Mode        Mode
	Message     *models.UserMessage
}

// Terminated is the final state.
type Terminated struct{}

func (LoggedOut) isState()  {}
func (Unlocked) isState()   {}
func (Terminated) isState() {}

// Hovered returns the credential under the cursor. ok is false for an empty
// vault.
func (u Unlocked) Hovered() (c models.Credential, ok bool) {
	if u.Hovering < 0 || u.Hovering >= len(u.Credentials) {
		return models.Credential{}, false
	}
	return u.Credentials[u.Hovering], true
}

// Empty reports whether the vault holds no credentials.
func (u Unlocked) Empty() bool {
	return len(u.Credentials) == 0
}

// Mode is the sub-mode of [Unlocked]: [Browsing] or [Submenu].
type Mode interface {
	isMode()
}

// Browsing moves the cursor over the credential list.
type Browsing struct{}

// Submenu picks a command for the hovered credential.
type Submenu struct {
	Command models.Command
}

func (Browsing) isMode() {}
func (Submenu) isMode()  {}
