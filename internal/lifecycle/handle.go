package lifecycle

import (
	"context"

	"github.com/google/uuid"
)

// Handle refers to one unit of work spawned in a Scope.
type Handle struct {
	id     uuid.UUID
	name   string
	cancel context.CancelFunc

	done chan struct{}
	err  error
}

func (h *Handle) ID() uuid.UUID {
	return h.id
}

func (h *Handle) Name() string {
	return h.name
}

// Done is closed when the unit has finished, whatever the outcome.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Err returns the error the unit finished with. It is nil until Done is
// closed.
func (h *Handle) Err() error {
	select {
	case <-h.done:
		return h.err
	default:
		return nil
	}
}

// Cancel cancels this unit only.
func (h *Handle) Cancel() {
	h.cancel()
}

func (h *Handle) finish(err error) {
	h.err = err
	h.cancel()
	close(h.done)
}
