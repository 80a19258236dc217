// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// formatter colors CLI output and falls back to plain text when color is
// disabled.
type formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

func (f formatter) Sprintf(format string, a ...any) string {
	text := fmt.Sprintf(format, a...)
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// noColor honors NO_COLOR and fatih/color's terminal detection.
func noColor() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

var (
	successText = formatter{color.New(color.FgGreen), "", ""}
	errorText   = formatter{color.New(color.FgRed), "", ""}
	pathText    = formatter{color.New(color.FgYellow), "", ""}
	flagText    = formatter{color.New(color.FgYellow), "", ""}
)
