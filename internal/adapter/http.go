package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-login-bridge/internal/config"
	"github.com/MKhiriev/go-login-bridge/internal/logger"
	"github.com/MKhiriev/go-login-bridge/internal/utils"
	"github.com/MKhiriev/go-login-bridge/models"
)

const (
	loginPath       = "/api/auth/login"
	requestIDHeader = "X-Request-ID"
)

type httpLoginService struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPLoginService constructs an HTTP/REST implementation of
// [LoginService]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPLoginService(adapterCfg config.ClientAdapter, logger *logger.Logger) (ContextLoginService, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpLoginService{client: client, ids: utils.NewUUIDGenerator(), logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [LoginService]. It is LoginContext with a background
// context: the attempt is bounded only by the client request timeout.
func (h *httpLoginService) Login(identifier, secret string, handler LoginHandler) {
	h.LoginContext(context.Background(), identifier, secret, handler)
}

// LoginContext implements [ContextLoginService]. It POSTs the credentials to
// POST /api/auth/login on a new goroutine and returns immediately. A 2xx
// response carrying "Authorization: Bearer <token>" ends in OnLoginSuccess;
// anything else, including a cancelled ctx, ends in OnLoginFailure. The
// handler is called exactly once.
func (h *httpLoginService) LoginContext(ctx context.Context, identifier, secret string, handler LoginHandler) {
	requestID := h.ids.Generate()
	log := h.logger.WithStr("request_id", requestID)

	go func() {
		token, err := h.login(ctx, requestID, models.Credentials{Identifier: identifier, Secret: secret})
		if err != nil {
			switch {
			case errors.Is(err, context.Canceled):
				log.Debug().Msg("login request aborted")
			case errors.Is(err, ErrRejected):
				log.Info().Err(err).Msg("login rejected")
			default:
				log.Warn().Err(err).Msg("login request failed")
			}
			handler.OnLoginFailure()
			return
		}

		log.Info().Msg("login request succeeded")
		handler.OnLoginSuccess(token)
	}()
}

func (h *httpLoginService) login(ctx context.Context, requestID string, creds models.Credentials) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(requestIDHeader, requestID).
		SetBody(creds).
		Post(loginPath)
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapLoginResponse(resp); err != nil {
		return "", err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoToken, err)
	}

	return token, nil
}
