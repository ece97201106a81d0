package service

import (
	"fmt"

	"github.com/MKhiriev/go-login-bridge/internal/adapter"
	"github.com/MKhiriev/go-login-bridge/internal/config"
	"github.com/MKhiriev/go-login-bridge/internal/dispatch"
	"github.com/MKhiriev/go-login-bridge/internal/logger"
	"github.com/MKhiriev/go-login-bridge/internal/store"
)

type ClientServices struct {
	AuthService ClientAuthService
}

// NewClientServices wires the client services. Blocking login work is
// submitted to io; storages may be nil to keep tokens in memory only.
func NewClientServices(
	storages *store.ClientStorages,
	loginService adapter.LoginService,
	io dispatch.Executor,
	loginCfg config.ClientLogin,
	logger *logger.Logger,
) (*ClientServices, error) {
	var tokens store.TokenRepository
	if storages != nil {
		tokens = storages.TokenRepository
	}

	authSvc, err := NewClientAuthService(loginService, tokens, io, loginCfg.Timeout, logger)
	if err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}

	return &ClientServices{AuthService: authSvc}, nil
}
