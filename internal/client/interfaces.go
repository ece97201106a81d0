// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// LoginUI shows the login screen and returns the token obtained on it.
type LoginUI interface {
	LoginFlow(ctx context.Context) (string, error)
}
