package workers

import "errors"

var ErrPoolStopped = errors.New("worker pool is stopped")
