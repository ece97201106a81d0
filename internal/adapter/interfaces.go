// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the login service contract.
//
// The contract is callback based: [LoginService.Login] returns immediately and
// later reports the outcome by calling exactly one method of the supplied
// [LoginHandler]. The package ships an HTTP/REST implementation
// ([NewHTTPLoginService]) that performs the request on its own goroutine.
//
// Transport errors are mapped from HTTP status codes by mapLoginResponse to the
// sentinel values in errors.go; they are logged and collapsed into
// OnLoginFailure, since the handler contract carries no error details.
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/login_service_mock.go -package=mock

// LoginService authenticates a user with an identifier and a secret.
//
// Login must not block. Exactly one of the handler methods is expected to be
// called once, from any goroutine, at some later point. Callers must still
// tolerate implementations that call the handler twice or never.
type LoginService interface {
	Login(identifier, secret string, handler LoginHandler)
}

// ContextLoginService is a [LoginService] whose in-flight attempts can be
// aborted. Cancelling ctx ends the attempt with OnLoginFailure.
type ContextLoginService interface {
	LoginService
	LoginContext(ctx context.Context, identifier, secret string, handler LoginHandler)
}

// LoginHandler receives the outcome of a single [LoginService.Login] call.
type LoginHandler interface {
	// OnLoginSuccess is called with the issued token.
	OnLoginSuccess(token string)

	// OnLoginFailure is called when authentication did not produce a token.
	OnLoginFailure()
}

// LoginHandlerFuncs adapts a pair of functions to [LoginHandler].
type LoginHandlerFuncs struct {
	Success func(token string)
	Failure func()
}

func (h LoginHandlerFuncs) OnLoginSuccess(token string) {
	if h.Success != nil {
		h.Success(token)
	}
}

func (h LoginHandlerFuncs) OnLoginFailure() {
	if h.Failure != nil {
		h.Failure()
	}
}
