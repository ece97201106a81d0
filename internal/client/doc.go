// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the login client process lifecycle.
//
// It starts the I/O worker pool, shows the login screen and releases the
// local storage once the screen is left.
package client
