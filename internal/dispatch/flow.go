// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dispatch

import (
	"context"
	"sync"
)

// Flow is a sequential unit of work confined to a home executor.
//
// The flow body runs on its own goroutine, but only while a task on the home
// executor is parked waiting for it. Control is handed back and forth with
// unbuffered channels, so at any moment either the home executor or the flow
// body runs, never both. Suspension points (see [RunOn]) release the home
// executor and reacquire it by submitting a new handshake task.
type Flow struct {
	ctx  context.Context
	home Executor

	resume chan struct{}
	yield  chan struct{}

	detached   chan struct{}
	detachOnce sync.Once

	// owned by the flow goroutine
	onHome bool

	done chan struct{}
	err  error
}

// Start schedules fn as a new flow on home. The returned error only reports
// that home refused the start task; the result of fn is reported by Err once
// Done is closed.
//
// If ctx is already done by the time the start task runs, fn is never called
// and Err returns ctx.Err().
func Start(ctx context.Context, home Executor, fn func(f *Flow) error) (*Flow, error) {
	f := &Flow{
		ctx:      ctx,
		home:     home,
		resume:   make(chan struct{}),
		yield:    make(chan struct{}),
		detached: make(chan struct{}),
		done:     make(chan struct{}),
	}

	err := home.Submit(func() {
		if err := ctx.Err(); err != nil {
			f.finish(err)
			return
		}

		f.onHome = true
		go func() {
			f.finish(fn(f))
		}()
		f.park()
	})
	if err != nil {
		return nil, err
	}

	return f, nil
}

// Context returns the context the flow was started with.
func (f *Flow) Context() context.Context {
	return f.ctx
}

// Done is closed when the flow has finished.
func (f *Flow) Done() <-chan struct{} {
	return f.done
}

// Err returns the flow result. It is only meaningful after Done is closed.
func (f *Flow) Err() error {
	select {
	case <-f.done:
		return f.err
	default:
		return nil
	}
}

func (f *Flow) finish(err error) {
	f.err = err
	close(f.done)
}

// park blocks the calling home task until the flow yields or finishes.
func (f *Flow) park() {
	select {
	case <-f.yield:
	case <-f.done:
	}
}

// release hands the home executor back. It is a no-op when the flow does not
// currently hold it.
func (f *Flow) release() {
	if !f.onHome {
		return
	}
	f.onHome = false
	f.yield <- struct{}{}
}

// reacquire waits until the home executor is parked on the flow again.
func (f *Flow) reacquire() error {
	if f.isDetached() {
		return ErrDetached
	}

	err := f.home.Submit(func() {
		select {
		case f.resume <- struct{}{}:
			f.park()
		case <-f.detached:
		}
	})
	if err != nil {
		f.detach()
		return ErrDetached
	}

	select {
	case <-f.resume:
		f.onHome = true
		return nil
	case <-f.ctx.Done():
		f.detach()
		return f.ctx.Err()
	}
}

func (f *Flow) detach() {
	f.detachOnce.Do(func() {
		close(f.detached)
	})
}

func (f *Flow) isDetached() bool {
	select {
	case <-f.detached:
		return true
	default:
		return false
	}
}
