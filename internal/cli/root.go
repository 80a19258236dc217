// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"github.com/MKhiriev/rsd-tui/internal/config"
	"github.com/MKhiriev/rsd-tui/internal/logger"
	"github.com/MKhiriev/rsd-tui/models"
	"github.com/spf13/cobra"
)

// deps are the collaborators of the commands; tests replace them.
type deps struct {
	info           models.AppBuildInfo
	loadConfig     func() (*config.ClientConfig, error)
	readPassphrase passphraseReader
	logger         *logger.Logger
}

// NewRootCmd builds the rsd-seal command tree.
func NewRootCmd(info models.AppBuildInfo, log *logger.Logger) *cobra.Command {
	return newRootCmd(deps{
		info:           info,
		loadConfig:     config.GetClientConfig,
		readPassphrase: readPassphrase,
		logger:         log,
	})
}

func newRootCmd(d deps) *cobra.Command {
	root := &cobra.Command{
		Use:   "rsd-seal",
		Short: "Create vault files for rsd-tui",
		Long: `rsd-seal encrypts a JSON list of {"Name","Password"} records into the
vault file that rsd-tui unlocks.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newSealCmd(d))
	root.AddCommand(newPathCmd(d))
	root.AddCommand(newVersionCmd(d))

	return root
}

func newVersionCmd(d deps) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(d.info.String())
		},
	}
}
