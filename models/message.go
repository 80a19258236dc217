// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageLevel distinguishes informational messages from errors.
type MessageLevel int

const (
	// LevelInfo marks a successful outcome, e.g. a completed copy.
	LevelInfo MessageLevel = iota
	// LevelError marks a failure the user should see.
	LevelError
)

// String implements fmt.Stringer.
func (l MessageLevel) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// UserMessage is a one-shot notice shown under the current screen.
// A nil *UserMessage means there is nothing to show.
type UserMessage struct {
	Level MessageLevel
	Text  string
}

// Info returns an informational message.
func Info(text string) *UserMessage {
	return &UserMessage{Level: LevelInfo, Text: text}
}

// Error returns an error message.
func Error(text string) *UserMessage {
	return &UserMessage{Level: LevelError, Text: text}
}

// IsError reports whether m is a non-nil error message.
func (m *UserMessage) IsError() bool {
	return m != nil && m.Level == LevelError
}
