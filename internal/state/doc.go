// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package state implements the input-driven state machine of the vault
// viewer.
//
// The viewer is always in exactly one [State]:
//
//   - [LoggedOut] collects the passphrase and shows the last unlock error.
//   - [Unlocked] owns the decrypted credentials and the clipboard handle; its
//     [Mode] is either [Browsing] the list or a [Submenu] for the hovered
//     credential.
//   - [Terminated] is absorbing; the event loop stops when it sees it.
//
// [Machine.Transition] is total: every (State, Key) pair yields a new State
// and failures of the collaborators surface as user messages, never as
// returned errors. States are values and are replaced wholesale on every
// key, so the passphrase buffer and the credentials are dropped as soon as
// the state that holds them is left.
package state
