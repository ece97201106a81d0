// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is what the login form collects.
type Credentials struct {
	// Identifier is the account login (an e-mail address).
	Identifier string `json:"login"`

	// Secret is the plaintext password. It only lives for the duration of a
	// single login attempt and is never persisted.
	Secret string `json:"password"`
}

// FailureReason tells why a login attempt produced no token.
type FailureReason string

const (
	// FailureRejected means the login service reported failure.
	FailureRejected FailureReason = "rejected"
	// FailureTimeout means the login service did not answer in time.
	FailureTimeout FailureReason = "timeout"
	// FailureUnavailable means the attempt could not be started, for example
	// because the I/O pool was already stopped.
	FailureUnavailable FailureReason = "unavailable"
)

// LoginResult is the outcome of one login attempt: either a non-empty token
// or an explicit failure marker. There are no partial states.
type LoginResult struct {
	Token  string
	Failed bool
	Reason FailureReason
}

// LoginSucceeded builds a successful result carrying token.
func LoginSucceeded(token string) LoginResult {
	return LoginResult{Token: token}
}

// LoginFailed builds a failed result for the given reason.
func LoginFailed(reason FailureReason) LoginResult {
	return LoginResult{Failed: true, Reason: reason}
}

// Succeeded reports whether the result carries a usable token.
func (r LoginResult) Succeeded() bool {
	return !r.Failed && r.Token != ""
}
