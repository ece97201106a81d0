package store

import (
	"context"

	"github.com/MKhiriev/go-login-bridge/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// TokenRepository keeps tokens received from the login service on the client
// device. Tokens are sealed at rest.
type TokenRepository interface {
	// Save stores token and returns its row ID.
	Save(ctx context.Context, token models.StoredToken) (int64, error)

	// Latest returns the most recently stored token for identifier, or
	// ErrTokenNotFound.
	Latest(ctx context.Context, identifier string) (models.StoredToken, error)
}
