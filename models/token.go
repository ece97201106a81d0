package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT issued by the login service.
//
// It embeds [jwt.RegisteredClaims] for standard claim access (subject,
// expiry, issuer). SignedString holds the compact serialized form of the
// token as it travels in the Authorization header.
type Token struct {
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

// StoredToken is a token persisted in the local token database after a
// successful login.
type StoredToken struct {
	// ID is the row identifier assigned by the database.
	ID int64

	// Identifier is the account login the token was issued for.
	Identifier string

	// Token is the compact JWT string.
	Token string

	// Subject is the "sub" claim, empty if the token carries none.
	Subject string

	// ExpiresAt is the "exp" claim, zero if the token carries none.
	ExpiresAt time.Time

	// CreatedAt is when the token was stored.
	CreatedAt time.Time
}
