// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package callback adapts single-shot callback APIs into blocking calls that
// honour context cancellation.
//
// The heart of the package is a three-state resumption cell
// guarded by compare-and-swap. However the external service behaves, the
// caller is resumed at most once, with the first completion, and never after
// it was cancelled.
//
//	token, ok, err := callback.Adapt(ctx, func(c callback.Completion[string]) {
//	    svc.Login(id, secret, handler{onSuccess: c.Succeed, onFailure: c.Fail})
//	})
package callback
