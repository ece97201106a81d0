package service

import (
	"fmt"

	"github.com/MKhiriev/go-login-bridge/internal/config"
	"github.com/MKhiriev/go-login-bridge/internal/logger"
	"github.com/MKhiriev/go-login-bridge/models"
)

// Services is the service layer of the development login backend.
type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService
}

func NewServices(cfg *config.StubServerConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	logger.Info().Msg("creating new services...")

	authService, err := NewAuthService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	return &Services{
		AuthService:    authService,
		AppInfoService: appInfoService,
	}, nil
}
