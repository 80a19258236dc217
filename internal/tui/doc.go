// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the vault viewer.
//
// It owns nothing but the current [state.State]: a Bubble Tea [Model] maps
// key presses to [state.Key] values, hands them to the [state.Machine] and
// renders whatever state comes back with [Render]. The program quits as
// soon as the machine reports [state.Terminated].
package tui
