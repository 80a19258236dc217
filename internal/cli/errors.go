// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"

	"github.com/MKhiriev/rsd-tui/internal/app"
)

var (
	// ErrPassphraseMismatch is returned when the confirmation prompt does
	// not repeat the passphrase.
	ErrPassphraseMismatch = errors.New(app.MsgPassphraseMismatch)
	// ErrReadInput is returned when the credentials file cannot be read.
	ErrReadInput = errors.New("cannot read credentials input")
	// ErrReadPassphrase is returned when the passphrase file cannot be used.
	ErrReadPassphrase = errors.New("cannot read passphrase file")
	// ErrNoPassphraseSource is returned when stdin carries the credentials
	// and no terminal or passphrase file is left to read the passphrase from.
	ErrNoPassphraseSource = errors.New("stdin is used by --in -; pass --passphrase-file or run on a terminal")
)
