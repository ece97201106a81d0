// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-login-bridge/internal/lifecycle"
	"github.com/MKhiriev/go-login-bridge/models"
)

// Stage is the progress of a login operation. Stages only move forward.
type Stage int32

const (
	StageIdle Stage = iota
	StageShowingProgress
	StageAwaitingResult
	StageResolved
	StageDone
	StageCancelled
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageShowingProgress:
		return "showing_progress"
	case StageAwaitingResult:
		return "awaiting_result"
	case StageResolved:
		return "resolved"
	case StageDone:
		return "done"
	case StageCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition is possible.
func (s Stage) Terminal() bool {
	return s == StageDone || s == StageCancelled
}

// LoginOperation is one login attempt running in a lifecycle scope.
type LoginOperation struct {
	creds  models.Credentials
	handle *lifecycle.Handle

	stage atomic.Int32

	mu       sync.Mutex
	result   models.LoginResult
	resolved bool

	done chan struct{}
}

func newLoginOperation(creds models.Credentials) *LoginOperation {
	return &LoginOperation{
		creds: creds,
		done:  make(chan struct{}),
	}
}

// Stage returns the current stage.
func (op *LoginOperation) Stage() Stage {
	return Stage(op.stage.Load())
}

// Result returns the resolved result. ok is false until the operation has
// been resolved. A resolved operation cancelled before it reported its
// outcome keeps its result.
func (op *LoginOperation) Result() (models.LoginResult, bool) {
	op.mu.Lock()
	defer op.mu.Unlock()
	return op.result, op.resolved
}

// Done is closed once the operation reached Done or Cancelled.
func (op *LoginOperation) Done() <-chan struct{} {
	return op.done
}

// Cancel cancels this operation only. It has no effect once the operation is
// resolved.
func (op *LoginOperation) Cancel() {
	if op.handle != nil {
		op.handle.Cancel()
	}
}

// advance moves the operation from one stage to the next. It fails if the
// operation is not in from, so a stage is never entered twice and never
// left backwards.
func (op *LoginOperation) advance(from, to Stage) bool {
	if to <= from {
		return false
	}
	return op.stage.CompareAndSwap(int32(from), int32(to))
}

func (op *LoginOperation) resolve(result models.LoginResult) bool {
	op.mu.Lock()
	defer op.mu.Unlock()

	if !op.advance(StageAwaitingResult, StageResolved) {
		return false
	}
	op.result = result
	op.resolved = true
	return true
}

// markCancelled moves any non-terminal stage to Cancelled.
func (op *LoginOperation) markCancelled() bool {
	for {
		cur := op.Stage()
		if cur.Terminal() {
			return false
		}
		if op.stage.CompareAndSwap(int32(cur), int32(StageCancelled)) {
			return true
		}
	}
}
