// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from the following sources (later sources
// override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables prefixed with RSD_
//  3. JSON config file (comments allowed), located via RSD_CONFIG
//
// Every setting is optional: with an empty environment the viewer reads the
// vault from the default per-user location and logs next to the executable.
//
// The main entry points are [GetStructuredConfig] and [GetClientConfig].
package config
