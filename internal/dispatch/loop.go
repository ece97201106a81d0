// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dispatch

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-login-bridge/internal/logger"
)

const (
	loopAwake int32 = iota
	loopRunning
	loopTerminating
	loopTerminated
)

// Loop is a serial executor. Tasks run one at a time, in submission order, on
// the goroutine that called Run.
//
// Tasks may be submitted before Run is called; they are queued and run once
// the loop starts. When the loop stops, either through Shutdown or because the
// context passed to Run is done, it rejects new tasks with ErrLoopTerminated
// and runs the tasks already queued before returning.
type Loop struct {
	state atomic.Int32

	mu    sync.Mutex
	queue []func()

	wakeup chan struct{}
	done   chan struct{}

	logger *logger.Logger
}

// NewLoop returns a Loop ready to be run.
func NewLoop(log *logger.Logger) *Loop {
	return &Loop{
		wakeup: make(chan struct{}, 1),
		done:   make(chan struct{}),
		logger: log,
	}
}

// Run runs queued tasks until the loop is shut down or ctx is done. It blocks
// the calling goroutine for the lifetime of the loop.
//
// Run returns nil after Shutdown and ctx.Err() when ctx ended the loop.
func (l *Loop) Run(ctx context.Context) error {
	l.mu.Lock()
	if !l.state.CompareAndSwap(loopAwake, loopRunning) {
		st := l.state.Load()
		l.mu.Unlock()
		if st >= loopTerminating {
			return ErrLoopTerminated
		}
		return ErrLoopAlreadyRunning
	}
	l.mu.Unlock()

	defer close(l.done)
	l.logger.Debug().Msg("loop started")

	var runErr error
	for {
		l.runQueued()

		if l.state.Load() == loopTerminating {
			break
		}

		select {
		case <-l.wakeup:
		case <-ctx.Done():
			runErr = ctx.Err()
			l.mu.Lock()
			l.state.Store(loopTerminating)
			l.mu.Unlock()
		}
	}

	// no new tasks can be queued from here on
	l.runQueued()
	l.state.Store(loopTerminated)
	l.logger.Debug().Msg("loop terminated")

	return runErr
}

// Submit queues task to run on the loop goroutine.
func (l *Loop) Submit(task func()) error {
	l.mu.Lock()
	if l.state.Load() >= loopTerminating {
		l.mu.Unlock()
		return ErrLoopTerminated
	}
	l.queue = append(l.queue, task)
	l.mu.Unlock()

	select {
	case l.wakeup <- struct{}{}:
	default:
	}
	return nil
}

// Shutdown stops the loop from accepting tasks and waits until the tasks
// already queued have run, or until ctx is done.
//
// Shutting down a loop that was never run discards its queue.
func (l *Loop) Shutdown(ctx context.Context) error {
	l.mu.Lock()
	switch l.state.Load() {
	case loopAwake:
		l.state.Store(loopTerminated)
		l.queue = nil
		close(l.done)
		l.mu.Unlock()
		return nil
	case loopTerminated:
		l.mu.Unlock()
		return ErrLoopTerminated
	case loopRunning:
		l.state.Store(loopTerminating)
	}
	l.mu.Unlock()

	select {
	case l.wakeup <- struct{}{}:
	default:
	}

	select {
	case <-l.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done is closed once the loop has terminated.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

func (l *Loop) runQueued() {
	for {
		l.mu.Lock()
		if len(l.queue) == 0 {
			l.mu.Unlock()
			return
		}
		task := l.queue[0]
		l.queue[0] = nil
		l.queue = l.queue[1:]
		l.mu.Unlock()

		task()
	}
}
