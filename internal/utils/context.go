// Package utils provides general-purpose helpers shared across the
// application: type-safe context keys, JSON responses, the HTTP client,
// JWT generation and parsing, and UUID generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-login-bridge/models"
)

// contextKey is a private type for context keys, so keys from other packages
// cannot collide with ours.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// TokenCtxKey is the key the validated token of a request is stored under.
var TokenCtxKey = contextKey("token")

// WithToken returns a copy of ctx carrying token.
func WithToken(ctx context.Context, token models.Token) context.Context {
	return context.WithValue(ctx, TokenCtxKey, token)
}

// GetTokenFromContext returns the token stored by WithToken. ok is false
// when there is none.
func GetTokenFromContext(ctx context.Context) (models.Token, bool) {
	token, ok := ctx.Value(TokenCtxKey).(models.Token)
	return token, ok
}
