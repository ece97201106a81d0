package service

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-login-bridge/internal/lifecycle"
	"github.com/MKhiriev/go-login-bridge/models"
)

// LoginView is the UI state surface a login operation drives. Every call is
// made on the screen's home executor, never concurrently with another view
// call, and never after the owning scope was cancelled.
type LoginView interface {
	// SetProgressVisible shows or hides the progress indicator.
	SetProgressVisible(visible bool)

	// ReportOutcome presents the final result of a login attempt. It is
	// called at most once per operation.
	ReportOutcome(result models.LoginResult)
}

// ClientAuthService starts login attempts on behalf of a screen.
type ClientAuthService interface {
	// Login spawns a login operation in scope and returns it. It returns nil
	// and touches neither the view nor the login service when the scope is
	// already cancelled.
	Login(scope *lifecycle.Scope, creds models.Credentials, view LoginView) *LoginOperation

	// Token returns the token of the last successful login in this process,
	// or an empty string.
	Token() string

	// LastLogin returns the token most recently stored on this device for
	// identifier. It returns store.ErrTokenNotFound when nothing was stored
	// or tokens are kept in memory only.
	LastLogin(ctx context.Context, identifier string) (models.StoredToken, error)
}

// AppInfoService exposes static application metadata.
type AppInfoService interface {
	// GetAppVersion returns the configured application version.
	GetAppVersion(ctx context.Context) string

	// GetBuildInfo returns the linker-injected build metadata.
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
