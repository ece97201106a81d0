package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-login-bridge/models"
)

// AuthService authenticates accounts on the development login backend and
// issues the tokens the client receives.
type AuthService interface {
	// Login checks creds against the known accounts. It returns
	// ErrInvalidDataProvided for malformed credentials and ErrWrongPassword
	// for an unknown login or a wrong password.
	Login(ctx context.Context, creds models.Credentials) (models.Account, error)

	// CreateToken signs a token for account.
	CreateToken(ctx context.Context, account models.Account) (models.Token, error)

	// ParseToken validates a signed token and returns its claims.
	ParseToken(ctx context.Context, token string) (models.Token, error)
}
