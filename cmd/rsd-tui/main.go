// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/rsd-tui/internal/client"
	"github.com/MKhiriev/rsd-tui/internal/config"
	"github.com/MKhiriev/rsd-tui/internal/logger"
	"github.com/MKhiriev/rsd-tui/internal/service"
	"github.com/MKhiriev/rsd-tui/internal/store"
	"github.com/MKhiriev/rsd-tui/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "rsd-tui: error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("rsd-tui", cfg.Log.File, cfg.Log.Level)
	defer log.Close()

	log.Info().
		Str("version", info.BuildVersion()).
		Str("date", info.BuildDate()).
		Str("commit", info.BuildCommit()).
		Msg("starting")

	storages := store.NewClientStorages(cfg.Vault, log.GetChildLogger())
	services := service.NewClientServices(storages, log)

	var app client.Client
	app, err = client.NewApp(services, info, log)
	if err != nil {
		fail(log, err, "init client app error")
	}

	if err = app.Run(); err != nil {
		fail(log, err, "client run error")
	}
}

// fail reports a startup error on stderr and in the log, then exits 1.
func fail(log *logger.Logger, err error, msg string) {
	log.Error().Err(err).Msg(msg)
	log.Close()
	fmt.Fprintf(os.Stderr, "rsd-tui: %s: %v\n", msg, err)
	os.Exit(1)
}
