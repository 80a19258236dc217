// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level configuration container. It is populated
// by merging defaults, environment variables and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//
// The global RSD_ prefix is applied by [parseEnv].
type StructuredConfig struct {
	// Vault holds the location and format of the encrypted credential file.
	Vault Vault `envPrefix:"VAULT_"`

	// Log holds the destination and verbosity of the application log.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: RSD_CONFIG
	JSONFilePath string `env:"CONFIG"`
}

// Vault holds settings of the vault file.
type Vault struct {
	// Path overrides the default $HOME/.local/share/rsd-tui/psd.bin.
	// Empty means "resolve the default lazily when the vault is opened".
	// Env: RSD_VAULT_PATH
	Path string `env:"PATH"`

	// Cipher is the cipher used when sealing a new vault ("keychain" or
	// "age"). Opening always detects the cipher from the file itself.
	// Env: RSD_VAULT_CIPHER
	Cipher string `env:"CIPHER"`
}

// Log holds logger settings.
type Log struct {
	// File is the log file path. Empty means a "logs" file next to the
	// executable.
	// Env: RSD_LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name (debug, info, warn, error, disabled).
	// Env: RSD_LOG_LEVEL
	Level string `env:"LEVEL"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Vault: Vault{Cipher: DefaultCipher},
		Log:   Log{Level: DefaultLogLevel},
	}
}

const (
	// DefaultCipher is used for sealing when nothing else is configured.
	DefaultCipher = "keychain"
	// DefaultLogLevel is the zerolog level used when nothing else is configured.
	DefaultLogLevel = "info"
)

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withJSON().
		build()
}
