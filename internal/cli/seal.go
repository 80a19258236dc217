// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/rsd-tui/internal/crypto"
	"github.com/MKhiriev/rsd-tui/internal/service"
	"github.com/MKhiriev/rsd-tui/internal/store"
	"github.com/MKhiriev/rsd-tui/internal/validators"
	"github.com/spf13/cobra"
)

type sealOptions struct {
	in             string
	out            string
	cipher         string
	passphraseFile string
}

func newSealCmd(d deps) *cobra.Command {
	var opts sealOptions

	cmd := &cobra.Command{
		Use:   "seal",
		Short: "Encrypt a credentials file into a vault",
		Long: `Reads a JSON array of {"Name","Password"} records and writes it,
encrypted under a passphrase, to the vault file. The existing vault is
replaced atomically.`,
		Example: `  rsd-seal seal --in accounts.json
  rsd-seal seal --in accounts.json --cipher age --out ./psd.bin
  cat accounts.json | rsd-seal seal --in - --passphrase-file ./passphrase.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeal(cmd, d, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.in, "in", "i", "", `credentials JSON file ("-" for stdin)`)
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "vault file to write (default: configured vault path)")
	cmd.Flags().StringVarP(&opts.cipher, "cipher", "c", "",
		fmt.Sprintf("cipher to seal with: %s (default: configured cipher)", strings.Join(crypto.CipherNames(), "|")))
	cmd.Flags().StringVarP(&opts.passphraseFile, "passphrase-file", "p", "",
		"read the passphrase from this file instead of prompting")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}

func runSeal(cmd *cobra.Command, d deps, opts sealOptions) error {
	cfg, err := d.loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	cipherName := cfg.Vault.Cipher
	if opts.cipher != "" {
		cipherName = opts.cipher
	}
	c, err := crypto.NewCipher(cipherName)
	if err != nil {
		return fmt.Errorf("%w (use %s)", err, flagText.Sprintf("--cipher %s", strings.Join(crypto.CipherNames(), "|")))
	}

	data, err := readInput(cmd.InOrStdin(), opts.in)
	if err != nil {
		return err
	}
	credentials, err := service.ParseCredentials(data)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.in, err)
	}
	// an empty list is allowed: it seals an empty vault
	if err := validators.NewCredentialValidator().Validate(cmd.Context(), credentials, validators.FieldName); err != nil {
		return fmt.Errorf("%s: %w", opts.in, err)
	}

	var passphrase string
	if opts.passphraseFile != "" {
		passphrase, err = readPassphraseFile(opts.passphraseFile)
	} else {
		passphrase, err = d.readPassphrase(cmd.InOrStdin(), cmd.ErrOrStderr(), opts.in == "-")
	}
	if err != nil {
		return err
	}

	outPath := cfg.Vault.Path
	if opts.out != "" {
		outPath = opts.out
	}
	storage := store.NewVaultFileStorage(outPath, d.logger)
	sealer := service.NewVaultSealer(storage, d.logger)

	if err := sealer.Seal(cmd.Context(), passphrase, credentials, c); err != nil {
		if errors.Is(err, service.ErrEmptyPassphrase) {
			return err
		}
		return fmt.Errorf("seal vault: %w", err)
	}

	written, _ := storage.Path()
	fmt.Fprintln(cmd.OutOrStdout(), successText.Sprintf("sealed %d credentials with %s into", len(credentials), c.Name()),
		pathText.Sprintf("%s", written))
	return nil
}

func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: stdin: %w", ErrReadInput, err)
		}
		return data, nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	return data, nil
}

// PrintError writes err to w the way the commands format failures.
func PrintError(w io.Writer, err error) {
	fmt.Fprintln(w, errorText.Sprintf("Error: %v", err))
}
