package config

import (
	"fmt"
	"time"
)

const (
	defaultStubAddress       = "localhost:8080"
	defaultStubTokenIssuer   = "go-login-bridge-stub"
	defaultStubTokenDuration = time.Hour
)

// StubServerConfig is the configuration view of the development login
// backend.
type StubServerConfig struct {
	App           App
	Address       string
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
	Accounts      []string
}

// GetStubServerConfig builds and validates the stub server config view from
// the merged structured configuration.
func GetStubServerConfig() (*StubServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	stubCfg := newStubServerConfig(cfg)
	return stubCfg, stubCfg.validate()
}

func newStubServerConfig(cfg *StructuredConfig) *StubServerConfig {
	stubCfg := &StubServerConfig{
		App:           cfg.App,
		Address:       cfg.StubServer.Address,
		TokenSignKey:  cfg.StubServer.TokenSignKey,
		TokenIssuer:   cfg.StubServer.TokenIssuer,
		TokenDuration: cfg.StubServer.TokenDuration,
		Accounts:      cfg.StubServer.Accounts,
	}

	if stubCfg.Address == "" {
		stubCfg.Address = defaultStubAddress
	}
	if stubCfg.TokenIssuer == "" {
		stubCfg.TokenIssuer = defaultStubTokenIssuer
	}
	if stubCfg.TokenDuration == 0 {
		stubCfg.TokenDuration = defaultStubTokenDuration
	}

	return stubCfg
}
