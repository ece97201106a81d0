package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyIdentifier   = errors.New("identifier is required")
	ErrInvalidIdentifier = errors.New("identifier is not an email address")
	ErrEmptySecret       = errors.New("password is required")
	ErrShortSecret       = errors.New("password is too short")
)
