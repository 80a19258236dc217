// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

// ErrMissingServices is returned by [NewApp] when a required service is nil.
var ErrMissingServices = errors.New("client: vault loader and clipboard services are required")
