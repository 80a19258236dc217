// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the rsd-seal command line, which turns a plain JSON
// list of credentials into a vault file the viewer can unlock.
package cli
