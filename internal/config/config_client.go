package config

import (
	"fmt"
	"time"
)

const (
	defaultRequestTimeout = 15 * time.Second
	defaultIOPoolSize     = 4
	defaultQueueSize      = 64
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// Version is shown in the build info window of the login screen.
	Version string
}

// ClientAdapter holds network settings used by the login service transport.
type ClientAdapter struct {
	// HTTPAddress is the login service endpoint address.
	HTTPAddress string
	// RequestTimeout is the timeout of a single login request.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains the I/O pool settings.
type ClientWorkers struct {
	// IOPoolSize is the number of background workers.
	IOPoolSize int
	// QueueSize is the pool's task queue capacity.
	QueueSize int
}

// ClientLogin contains login operation settings.
type ClientLogin struct {
	// Timeout bounds a login attempt; zero disables the bound.
	Timeout time.Duration
	// TokenKey seals tokens at rest.
	TokenKey string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Login   ClientLogin
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// newClientConfig maps the fields relevant to the client runtime and fills in
// defaults for the optional ones.
func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{
			IOPoolSize: cfg.Workers.IOPoolSize,
			QueueSize:  cfg.Workers.QueueSize,
		},
		Login: ClientLogin{
			Timeout:  cfg.Login.Timeout,
			TokenKey: cfg.Login.TokenKey,
		},
	}

	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if clientCfg.Workers.IOPoolSize == 0 {
		clientCfg.Workers.IOPoolSize = defaultIOPoolSize
	}
	if clientCfg.Workers.QueueSize == 0 {
		clientCfg.Workers.QueueSize = defaultQueueSize
	}

	return clientCfg
}
