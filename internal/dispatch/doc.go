// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package dispatch confines logical flows to a home executor and lets them hop
// to other executors and back.
//
// A [Loop] is a serial executor owning a single goroutine, the equivalent of
// a UI thread. A [Flow] started on a loop runs its code only while the loop is
// parked on it, so between suspension points it never interleaves with other
// loop tasks. [RunOn] releases the loop, runs a blocking function on another
// executor (typically a worker pool), and resumes the flow on the loop once
// the function returns:
//
//	f, err := dispatch.Start(ctx, loop, func(f *dispatch.Flow) error {
//	    view.SetProgressVisible(true) // on loop
//	    res, err := dispatch.RunOn(f, pool, doIO)
//	    if err != nil {
//	        return err
//	    }
//	    view.Show(res) // on loop again
//	    return nil
//	})
//
// Cancelling the flow's context suppresses the resumption: RunOn returns the
// context error and the result of the blocking function is dropped.
package dispatch
