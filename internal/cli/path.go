// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/MKhiriev/rsd-tui/internal/store"
	"github.com/spf13/cobra"
)

func newPathCmd(d deps) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the vault location rsd-tui reads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := d.loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			path, err := store.NewVaultFileStorage(cfg.Vault.Path, d.logger).Path()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
