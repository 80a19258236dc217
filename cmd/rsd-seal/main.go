// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"os"

	"github.com/MKhiriev/rsd-tui/internal/cli"
	"github.com/MKhiriev/rsd-tui/internal/config"
	"github.com/MKhiriev/rsd-tui/internal/logger"
	"github.com/MKhiriev/rsd-tui/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	// a config error is reported by the command itself
	log := logger.Nop()
	if cfg, err := config.GetClientConfig(); err == nil {
		log = logger.NewClientLogger("rsd-seal", cfg.Log.File, cfg.Log.Level)
	}

	err := cli.NewRootCmd(info, log).Execute()
	log.Close()

	if err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
