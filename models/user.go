package models

// Account is a login account known to the development stub server.
type Account struct {
	// UserID is the numeric identifier placed in the token subject.
	UserID int64

	// Login is the unique account identifier.
	Login string

	// PasswordHash is the bcrypt hash of the account password.
	PasswordHash []byte
}
