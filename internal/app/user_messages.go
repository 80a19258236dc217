// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable message strings shown by the
// vault viewer and the seal command.
//
// Prefix constants end in ": " and are followed by the underlying error text.
package app

const (
	// MsgEmptyVault is shown after unlocking a vault with no records.
	MsgEmptyVault = "vault contains no credentials"

	// MsgCopied confirms that the hovered secret is on the clipboard.
	MsgCopied = "copied password to clipboard"

	// MsgVaultUnavailable prefixes storage failures: missing file,
	// unreadable file, unresolved home directory.
	MsgVaultUnavailable = "vault unavailable: "

	// MsgPasswordIncorrect prefixes decryption and parse failures. A wrong
	// passphrase and a corrupted vault look the same.
	MsgPasswordIncorrect = "password likely incorrect: "

	// MsgClipboardInit prefixes a failed clipboard acquisition.
	MsgClipboardInit = "clipboard initialization failed: "

	// MsgCopyFailed prefixes a failed clipboard write.
	MsgCopyFailed = "copy to clipboard failed: "

	// MsgNotImplemented follows the command name of a stub command.
	MsgNotImplemented = " is not implemented yet"

	// MsgPassphraseMismatch is printed by the seal command when the two
	// passphrase prompts differ.
	MsgPassphraseMismatch = "passphrases do not match"
)
