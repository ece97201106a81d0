// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package lifecycle

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-login-bridge/internal/dispatch"
	"github.com/MKhiriev/go-login-bridge/internal/logger"
	"github.com/MKhiriev/go-login-bridge/internal/utils"
)

// Scope owns the asynchronous work started on behalf of a screen.
//
// Every spawned unit gets its own context derived from the scope context;
// that context is the unit's cancellation token. CancelAll cancels the scope
// and walks every outstanding token. Once cancelled a scope stays cancelled
// and Spawn becomes a no-op.
//
// Units are supervised independently: an error returned by one unit is
// logged and recorded on its Handle but does not affect its siblings.
type Scope struct {
	ctx    context.Context
	cancel context.CancelFunc
	home   dispatch.Executor

	cancelled  atomic.Bool
	cancelOnce sync.Once

	mu      sync.Mutex
	handles map[uuid.UUID]*Handle

	logger *logger.Logger
}

// NewScope returns a scope whose units run as flows on home.
// Cancelling parent has the same effect on running units as CancelAll,
// except that Cancelled only reports CancelAll.
func NewScope(parent context.Context, home dispatch.Executor, log *logger.Logger) *Scope {
	ctx, cancel := context.WithCancel(parent)

	return &Scope{
		ctx:     ctx,
		cancel:  cancel,
		home:    home,
		handles: make(map[uuid.UUID]*Handle),
		logger:  log,
	}
}

// Spawn starts work as a flow on the scope's home executor and returns its
// handle. It returns nil, and runs nothing, when the scope is cancelled or
// the home executor refuses the flow.
//
// The flow context carries a child logger with "op_id" and "op" fields.
func (s *Scope) Spawn(name string, work func(f *dispatch.Flow) error) *Handle {
	if s.cancelled.Load() {
		s.logger.Debug().Str("op", name).Msg("spawn dropped: scope cancelled")
		return nil
	}

	id := utils.NewUUID()
	log := s.logger.WithStr("op_id", id.String()).WithStr("op", name)

	ctx, cancel := context.WithCancel(s.ctx)
	ctx = log.WithContext(ctx)

	h := &Handle{
		id:     id,
		name:   name,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	s.mu.Lock()
	if s.cancelled.Load() {
		s.mu.Unlock()
		cancel()
		s.logger.Debug().Str("op", name).Msg("spawn dropped: scope cancelled")
		return nil
	}
	s.handles[id] = h
	s.mu.Unlock()

	f, err := dispatch.Start(ctx, s.home, work)
	if err != nil {
		s.forget(id)
		cancel()
		log.Warn().Err(err).Msg("spawn dropped: home executor refused the flow")
		return nil
	}

	go s.supervise(h, f, log)
	return h
}

func (s *Scope) supervise(h *Handle, f *dispatch.Flow, log *logger.Logger) {
	<-f.Done()

	err := f.Err()
	switch {
	case err == nil:
		log.Debug().Msg("operation finished")
	case errors.Is(err, context.Canceled):
		log.Debug().Msg("operation cancelled")
	default:
		log.Error().Err(err).Msg("operation failed")
	}

	s.forget(h.id)
	h.finish(err)
}

func (s *Scope) forget(id uuid.UUID) {
	s.mu.Lock()
	delete(s.handles, id)
	s.mu.Unlock()
}

// CancelAll cancels the scope and every unit still running in it. It is
// idempotent and does not wait for the units to stop.
func (s *Scope) CancelAll() {
	s.cancelOnce.Do(func() {
		s.mu.Lock()
		s.cancelled.Store(true)
		outstanding := len(s.handles)
		for _, h := range s.handles {
			h.cancel()
		}
		s.mu.Unlock()

		s.cancel()
		s.logger.Debug().Int("outstanding", outstanding).Msg("scope cancelled")
	})
}

// Cancelled reports whether CancelAll has been called.
func (s *Scope) Cancelled() bool {
	return s.cancelled.Load()
}

// Active returns the number of units that have not finished yet.
func (s *Scope) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handles)
}

// Context returns the scope context. It is done once the scope is cancelled.
func (s *Scope) Context() context.Context {
	return s.ctx
}

// Wait blocks until every unit of the scope has finished, or until ctx is
// done.
func (s *Scope) Wait(ctx context.Context) error {
	for {
		s.mu.Lock()
		var next *Handle
		for _, h := range s.handles {
			next = h
			break
		}
		s.mu.Unlock()

		if next == nil {
			return nil
		}

		select {
		case <-next.Done():
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
