// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"sync"

	"github.com/MKhiriev/go-login-bridge/internal/logger"
)

// Pool runs submitted tasks on a fixed number of goroutines fed from a
// bounded queue. It is the background executor for blocking I/O: login
// requests and token storage.
//
// Submit blocks while the queue is full. Tasks submitted before Run are
// queued and picked up once the pool runs. Stop stops accepting tasks, lets
// the workers finish everything already queued and waits for them. A pool
// stopped before Run starts its workers only to drain the queue.
type Pool struct {
	size  int
	tasks chan func()
	done  chan struct{}

	mu      sync.RWMutex
	stopped bool

	runOnce  sync.Once
	stopOnce sync.Once
	wg       sync.WaitGroup

	logger *logger.Logger
}

// NewPool returns a pool of size workers with a queue of queueSize tasks.
// Non-positive values fall back to one worker and an unbuffered queue.
func NewPool(size, queueSize int, log *logger.Logger) *Pool {
	if size <= 0 {
		size = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}

	return &Pool{
		size:   size,
		tasks:  make(chan func(), queueSize),
		done:   make(chan struct{}),
		logger: log,
	}
}

// Run starts the pool goroutines. Calling it more than once has no effect.
func (p *Pool) Run() {
	p.runOnce.Do(func() {
		p.wg.Add(p.size)
		for id := range p.size {
			go p.work(id)
		}
		p.logger.Debug().Int("size", p.size).Int("queue", cap(p.tasks)).Msg("worker pool started")
	})
}

// Submit queues task for execution on one of the pool goroutines.
func (p *Pool) Submit(task func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		return ErrPoolStopped
	}
	p.tasks <- task
	return nil
}

// Stop stops the pool and waits for queued tasks to finish.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		// workers also free submitters blocked on a full queue
		p.Run()

		p.mu.Lock()
		p.stopped = true
		close(p.done)
		p.mu.Unlock()

		p.wg.Wait()
		p.logger.Debug().Msg("worker pool stopped")
	})
}

func (p *Pool) work(id int) {
	defer p.wg.Done()

	for {
		select {
		case task := <-p.tasks:
			task()
		case <-p.done:
			for {
				select {
				case task := <-p.tasks:
					task()
				default:
					p.logger.Debug().Int("worker_id", id).Msg("worker exited")
					return
				}
			}
		}
	}
}
