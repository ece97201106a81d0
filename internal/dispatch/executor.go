// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dispatch

// Executor accepts tasks for execution. An error means the task was not
// accepted and will never run.
type Executor interface {
	Submit(task func()) error
}

// ExecutorFunc adapts an ordinary function to the Executor interface.
type ExecutorFunc func(task func()) error

// Submit calls e(task).
func (e ExecutorFunc) Submit(task func()) error {
	return e(task)
}
