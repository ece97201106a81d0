// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-login-bridge/models"
)

const appName = "go-login-bridge"

// renderBuildInfoWindow shows the build metadata the client was linked with.
func renderBuildInfoWindow(info models.AppBuildInfo) string {
	rows := [][2]string{
		{"Application", appName},
		{"Version", info.BuildVersion()},
		{"Date", info.BuildDate()},
		{"Commit", info.BuildCommit()},
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		value := strings.TrimSpace(row[1])
		if value == "" {
			value = "N/A"
		}
		lines = append(lines, titleStyle.Render(row[0]+":")+" "+value)
	}

	return renderPage("BUILD INFO", strings.Join(lines, "\n"), "esc: back │ ctrl+b: close")
}
