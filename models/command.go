// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Command is an action offered in the per-credential submenu.
//
// The set is closed and ordered: CopyPassword, EditAccount, DeleteAccount.
// Navigation wraps around in both directions.
type Command int

const (
	CopyPassword Command = iota
	EditAccount
	DeleteAccount

	commandCount = 3
)

var commandNames = [commandCount]string{
	CopyPassword:  "Copy Password",
	EditAccount:   "Edit Account",
	DeleteAccount: "Delete Account",
}

// Commands returns every command in menu order.
func Commands() []Command {
	return []Command{CopyPassword, EditAccount, DeleteAccount}
}

// Next returns the command below c, wrapping to the first one.
func (c Command) Next() Command {
	return Command((int(c) + 1) % commandCount)
}

// Prev returns the command above c, wrapping to the last one.
func (c Command) Prev() Command {
	return Command((int(c) + commandCount - 1) % commandCount)
}

// Valid reports whether c is one of the fixed commands.
func (c Command) Valid() bool {
	return c >= CopyPassword && c < commandCount
}

// String returns the menu label of the command.
func (c Command) String() string {
	if !c.Valid() {
		return "Unknown Command"
	}
	return commandNames[c]
}
