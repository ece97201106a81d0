// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-login-bridge binaries. It is populated by merging values from
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the address and timeout of the remote login service.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local token database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds the sizing of the background I/O pool.
	Workers Workers `envPrefix:"WORKERS_"`

	// Login holds settings of the login operation itself.
	Login Login `envPrefix:"LOGIN_"`

	// StubServer holds settings of the development login backend.
	StubServer StubServer `envPrefix:"STUB_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string shown on the login screen.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds configuration of the outbound login service transport.
type Adapter struct {
	// HTTPAddress is the base address of the login service
	// (e.g. "localhost:8080" or "https://auth.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single HTTP login request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path (e.g. "./login.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds configuration for the background I/O pool.
type Workers struct {
	// IOPoolSize is the number of goroutines serving blocking work.
	// Env: WORKERS_IO_POOL_SIZE
	IOPoolSize int `env:"IO_POOL_SIZE"`

	// QueueSize is the capacity of the pool's task queue.
	// Env: WORKERS_QUEUE_SIZE
	QueueSize int `env:"QUEUE_SIZE"`
}

// Login holds settings of a single login attempt.
type Login struct {
	// Timeout bounds how long the screen waits for the login service to
	// report a result. Zero means wait until the screen is closed.
	// Env: LOGIN_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// TokenKey is the secret the stored tokens are sealed with.
	// Env: LOGIN_TOKEN_KEY
	TokenKey string `env:"TOKEN_KEY"`
}

// StubServer holds settings of the development login backend.
type StubServer struct {
	// Address is the TCP address the stub server listens on.
	// Env: STUB_ADDRESS
	Address string `env:"ADDRESS"`

	// TokenSignKey signs the issued JWT tokens.
	// Env: STUB_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: STUB_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of issued tokens.
	// Env: STUB_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Accounts is a comma-separated list of "login:password" pairs seeded at
	// startup.
	// Env: STUB_ACCOUNTS
	Accounts []string `env:"ACCOUNTS"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
