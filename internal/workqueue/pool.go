// Copyright 2020 Ahmad Sameh(asmsh)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package workqueue implements a small fixed-size worker pool over a
// ring-buffered task queue, used as the backing for future.PoolExecutor.
package workqueue

import (
	"sync"

	"github.com/eapache/queue"
)

// Pool runs submitted tasks on a fixed number of worker goroutines,
// draining them off a ring-buffered FIFO queue in submission order.
type Pool struct {
	mu     sync.Mutex
	cond   *sync.Cond
	tasks  *queue.Queue
	closed bool
	wg     sync.WaitGroup
}

// NewPool starts a Pool with the given number of worker goroutines.
// workers is clamped to at least 1.
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}

	p := &Pool{tasks: queue.New()}
	p.cond = sync.NewCond(&p.mu)

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}

	return p
}

// Submit enqueues task to run on the next available worker. It panics
// if the pool has already been closed.
func (p *Pool) Submit(task func()) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		panic("workqueue: Submit called on a closed pool")
	}
	p.tasks.Add(task)
	p.mu.Unlock()
	p.cond.Signal()
}

// Close stops accepting new tasks, lets every already-queued task
// drain, and waits for all workers to exit.
func (p *Pool) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.cond.Broadcast()
	p.wg.Wait()
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		task, ok := p.next()
		if !ok {
			return
		}
		task()
	}
}

// next blocks until a task is available, or the pool is closed and
// drained, in which case ok is false.
func (p *Pool) next() (task func(), ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for p.tasks.Length() == 0 {
		if p.closed {
			return nil, false
		}
		p.cond.Wait()
	}

	task = p.tasks.Peek().(func())
	p.tasks.Remove()
	return task, true
}
