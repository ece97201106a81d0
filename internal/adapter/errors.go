package adapter

import "errors"

var (
	// ErrBadRequest means the login service could not read the request.
	ErrBadRequest = errors.New("bad request")
	// ErrRejected means the login service refused the credentials.
	ErrRejected = errors.New("credentials rejected")
	// ErrTooManyRequests means the login service throttled the client.
	ErrTooManyRequests = errors.New("too many requests")
	// ErrServiceUnavailable covers 5xx answers.
	ErrServiceUnavailable = errors.New("login service unavailable")

	ErrNoToken = errors.New("login response carries no bearer token")
)
