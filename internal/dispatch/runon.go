package dispatch

import (
	"context"
	"fmt"
)

// RunOn runs block on target and resumes the flow on its home executor with
// block's result. The home executor is free to run other tasks while block
// runs.
//
// If the flow's context is done before RunOn resumes, the resumption is
// suppressed: RunOn returns the context error and whatever block produces is
// dropped. block receives the same context and should stop early when it can.
func RunOn[T any](f *Flow, target Executor, block func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if err := f.ctx.Err(); err != nil {
		return zero, err
	}

	type result struct {
		value T
		err   error
	}
	finished := make(chan result, 1)

	f.release()

	err := target.Submit(func() {
		v, err := block(f.ctx)
		finished <- result{value: v, err: err}
	})
	if err != nil {
		if rerr := f.reacquire(); rerr != nil {
			return zero, rerr
		}
		return zero, fmt.Errorf("submit to target executor: %w", err)
	}

	var res result
	select {
	case res = <-finished:
	case <-f.ctx.Done():
		f.detach()
		return zero, f.ctx.Err()
	}

	if err = f.reacquire(); err != nil {
		return zero, err
	}
	if err = f.ctx.Err(); err != nil {
		return zero, err
	}

	return res.value, res.err
}

// Go runs fn on target without a result. It is RunOn for side effects.
func Go(f *Flow, target Executor, fn func(ctx context.Context) error) error {
	_, err := RunOn(f, target, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}
