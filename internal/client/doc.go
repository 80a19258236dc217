// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the vault viewer application runtime.
//
// It wires the state machine to the vault and clipboard services and runs
// the terminal UI for a single session.
package client
