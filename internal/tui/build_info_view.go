// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/rsd-tui/models"
)

// renderBuildInfo returns the one-line version footer of the lock screen.
func renderBuildInfo(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("version ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString(" (")
	b.WriteString(valueOrNA(info.BuildCommit()))
	b.WriteString(", ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString(")")

	return helpStyle.Render(b.String())
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
