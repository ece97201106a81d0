// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package callback

import (
	"context"

	"github.com/MKhiriev/go-login-bridge/internal/logger"
)

// Completion is handed to the register function of [Adapt]. The external
// service must eventually call exactly one of Succeed or Fail; the first call
// resumes the waiter and every later call is discarded.
//
// A Completion is safe for concurrent use.
type Completion[T any] struct {
	s *slot[T]
}

// Succeed delivers v to the waiter. It reports whether the value was
// accepted; false means the waiter was already resumed or cancelled.
func (c Completion[T]) Succeed(v T) bool {
	return c.complete(v, true)
}

// Fail delivers the failure marker to the waiter. It reports whether the
// marker was accepted.
func (c Completion[T]) Fail() bool {
	var zero T
	return c.complete(zero, false)
}

// OnCancel registers fn to run once if the waiter is cancelled before any
// completion arrives. It is the place to abort the underlying call when the
// external service supports that. If the waiter is already cancelled, fn runs
// immediately.
func (c Completion[T]) OnCancel(fn func()) {
	c.s.onCancel(fn)
}

func (c Completion[T]) complete(v T, ok bool) bool {
	if c.s.fill(v, ok) {
		return true
	}

	c.s.log.Warn().
		Str("slot_state", c.s.stateName()).
		Bool("success", ok).
		Msg("discarded redundant callback completion")
	return false
}

// Adapt converts a single-shot callback-style call into a blocking call.
//
// register receives a [Completion] and must arrange for the external service
// to call Succeed or Fail once. Adapt returns:
//   - (value, true, nil) when Succeed won;
//   - (zero, false, nil) when Fail won;
//   - (zero, false, ctx.Err()) when ctx was done before a completion was
//     consumed. A completion arriving afterwards is dropped.
//
// If the service never completes, Adapt blocks until ctx is done.
// Adapt panics if register is nil.
func Adapt[T any](ctx context.Context, register func(c Completion[T])) (T, bool, error) {
	if register == nil {
		panic("callback: Adapt called with nil register func")
	}

	var zero T
	if err := ctx.Err(); err != nil {
		return zero, false, err
	}

	s := newSlot[T](logger.FromContext(ctx))
	register(Completion[T]{s: s})

	return s.await(ctx)
}
