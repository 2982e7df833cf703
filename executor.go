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

package future

import "github.com/asmsh/future/internal/workqueue"

// Executor dispatches tasks handed to it by a Core. The Core makes no
// ordering guarantee between tasks it hands to the same Executor, and
// requires only that a task eventually runs.
//
// An Executor's lifetime must cover every task a Core ever hands it;
// a Core never checks whether an Executor is still accepting work.
type Executor interface {
	// Add schedules task to run. It may run task before returning, as
	// InlineExecutor does, or hand it to another goroutine.
	Add(task func())
}

// InlineExecutor runs every task synchronously, on the goroutine that
// calls Add. It's the zero-value behaviour of a Core with no executor
// installed, exposed as a concrete Executor for callers who want to
// pass it explicitly (for example, to switch a Future between inline
// and pooled dispatch at runtime without a nil check).
type InlineExecutor struct{}

// Add runs task immediately, on the calling goroutine.
func (InlineExecutor) Add(task func()) {
	task()
}

// PoolExecutor dispatches tasks onto a small fixed pool of worker
// goroutines, draining a ring-buffered FIFO queue. Use it when
// callbacks may block or run long enough that they shouldn't hold up
// the goroutine that published the result.
type PoolExecutor struct {
	pool *workqueue.Pool
}

// NewPoolExecutor starts a PoolExecutor with the given number of
// worker goroutines. workers must be at least 1.
func NewPoolExecutor(workers int) *PoolExecutor {
	return &PoolExecutor{pool: workqueue.NewPool(workers)}
}

// Add enqueues task for execution by one of the pool's workers.
func (e *PoolExecutor) Add(task func()) {
	e.pool.Submit(task)
}

// Close stops accepting new tasks and waits for queued and in-flight
// tasks to finish. It's safe to call once, after the last task this
// executor will ever receive has been submitted.
func (e *PoolExecutor) Close() {
	e.pool.Close()
}
