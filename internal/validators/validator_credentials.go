package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-login-bridge/models"
)

const (
	FieldIdentifier = "identifier"
	FieldSecret     = "secret"
)

// MinSecretLength is the shortest password a login form accepts.
const MinSecretLength = 5

type CredentialsValidator struct {
	// secretRequired rejects an empty password instead of skipping the
	// length check.
	secretRequired bool
}

// NewFormValidator returns the validator of the login form, which lets an
// empty password through to the login service.
func NewFormValidator() Validator {
	return &CredentialsValidator{}
}

// NewCredentialsValidator returns a validator that requires both fields.
func NewCredentialsValidator() Validator {
	return &CredentialsValidator{secretRequired: true}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIdentifier, FieldSecret}
	}

	for _, f := range fields {
		switch f {
		case FieldIdentifier:
			identifier := strings.TrimSpace(creds.Identifier)
			if identifier == "" {
				return ErrEmptyIdentifier
			}
			if !strings.Contains(identifier, "@") {
				return ErrInvalidIdentifier
			}
		case FieldSecret:
			if creds.Secret == "" {
				if v.secretRequired {
					return ErrEmptySecret
				}
				continue
			}
			if len(creds.Secret) < MinSecretLength {
				return ErrShortSecret
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
