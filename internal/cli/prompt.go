// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// passphraseReader returns the passphrase to seal with. stdinUsed reports
// that the credentials were already read from stdin.
type passphraseReader func(stdin io.Reader, stderr io.Writer, stdinUsed bool) (string, error)

// readPassphrase prompts twice on the terminal with echo disabled. When
// stdin is not a terminal it reads a single line instead, so the command can
// be scripted. A piped stdin that carried the credentials has nothing left
// to read, which is reported as ErrNoPassphraseSource.
func readPassphrase(stdin io.Reader, stderr io.Writer, stdinUsed bool) (string, error) {
	f, ok := stdin.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		if stdinUsed {
			return "", ErrNoPassphraseSource
		}
		line, err := bufio.NewReader(stdin).ReadString('\n')
		if err != nil && err != io.EOF {
			return "", fmt.Errorf("reading passphrase: %w", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	fd := int(f.Fd())

	fmt.Fprint(stderr, "Passphrase: ")
	first, err := term.ReadPassword(fd)
	fmt.Fprintln(stderr)
	if err != nil {
		return "", fmt.Errorf("reading passphrase: %w", err)
	}

	fmt.Fprint(stderr, "Confirm passphrase: ")
	second, err := term.ReadPassword(fd)
	fmt.Fprintln(stderr)
	if err != nil {
		return "", fmt.Errorf("reading passphrase confirmation: %w", err)
	}

	if string(first) != string(second) {
		return "", ErrPassphraseMismatch
	}
	return string(first), nil
}

// readPassphraseFile reads the passphrase from path, stripping trailing
// newlines left by echo and editors.
func readPassphraseFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadPassphrase, err)
	}

	data = bytes.TrimRight(data, "\r\n")
	if len(data) == 0 {
		return "", fmt.Errorf("%w: %s is empty", ErrReadPassphrase, path)
	}
	return string(data), nil
}
