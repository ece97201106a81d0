package http

import (
	"github.com/MKhiriev/go-login-bridge/internal/logger"
	"github.com/MKhiriev/go-login-bridge/internal/service"
)

// Handler serves the login backend routes on top of the service layer.
type Handler struct {
	auth    service.AuthService
	appInfo service.AppInfoService

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{logger: logger}
	if services != nil {
		h.auth = services.AuthService
		h.appInfo = services.AppInfoService
	}

	logger.Info().Msg("http handler created")
	return h
}
