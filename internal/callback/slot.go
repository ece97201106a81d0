package callback

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-login-bridge/internal/logger"
)

const (
	slotEmpty int32 = iota
	slotFilled
	slotConsumed
)

// slot is a single-assignment resumption cell. State only moves forward:
// empty -> filled -> consumed, or empty -> consumed when the waiter gives up.
// The first compare-and-swap out of empty wins; value and ok are written by
// that winner only and published to the waiter by closing ready.
type slot[T any] struct {
	state atomic.Int32
	ready chan struct{}

	value T
	ok    bool

	mu        sync.Mutex
	cancelled bool
	hooks     []func()

	discarded atomic.Int64
	log       *logger.Logger
}

func newSlot[T any](log *logger.Logger) *slot[T] {
	return &slot[T]{
		ready: make(chan struct{}),
		log:   log,
	}
}

func (s *slot[T]) fill(v T, ok bool) bool {
	if !s.state.CompareAndSwap(slotEmpty, slotFilled) {
		s.discarded.Add(1)
		return false
	}

	s.value, s.ok = v, ok
	close(s.ready)
	return true
}

func (s *slot[T]) await(ctx context.Context) (T, bool, error) {
	var zero T

	select {
	case <-s.ready:
		// a cancellation that raced with the completion still wins
		if err := ctx.Err(); err != nil {
			s.state.Store(slotConsumed)
			return zero, false, err
		}
		s.state.Store(slotConsumed)
		return s.value, s.ok, nil
	case <-ctx.Done():
		s.cancel()
		return zero, false, ctx.Err()
	}
}

// cancel retires the slot on behalf of a waiter that stopped waiting. Hooks
// only run if no completion had arrived yet, since only then is the
// underlying call still outstanding.
func (s *slot[T]) cancel() {
	if !s.state.CompareAndSwap(slotEmpty, slotConsumed) {
		s.state.Store(slotConsumed)
		return
	}

	s.mu.Lock()
	s.cancelled = true
	hooks := s.hooks
	s.hooks = nil
	s.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
}

func (s *slot[T]) onCancel(fn func()) {
	if fn == nil {
		return
	}

	s.mu.Lock()
	if s.cancelled {
		s.mu.Unlock()
		fn()
		return
	}
	s.hooks = append(s.hooks, fn)
	s.mu.Unlock()
}

func (s *slot[T]) stateName() string {
	switch s.state.Load() {
	case slotEmpty:
		return "empty"
	case slotFilled:
		return "filled"
	default:
		return "consumed"
	}
}
