// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is a runnable viewer session. cmd/rsd-tui depends on this rather
// than on [App] so the entry point stays trivial.
type Client interface {
	// Run blocks until the viewer exits. A nil error means the user left
	// normally.
	Run() error
}
