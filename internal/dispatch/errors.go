package dispatch

import "errors"

var (
	ErrLoopAlreadyRunning = errors.New("loop is already running")
	ErrLoopTerminated     = errors.New("loop has been terminated")

	// ErrDetached is returned to a flow that could not get back onto its home
	// executor, either because the executor stopped accepting work or because
	// the flow was cancelled while away from it.
	ErrDetached = errors.New("flow detached from its home executor")
)
