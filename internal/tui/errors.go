// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

// ErrUnexpectedModel is returned by [TUI.Run] when Bubble Tea hands back a
// model of a foreign type.
var ErrUnexpectedModel = errors.New("tui: unexpected final model")
