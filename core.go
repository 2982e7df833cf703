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

import "sync"

// noopCallback is installed by detachFuture when the consumer never
// registered a callback of its own, so the dispatch rule still has
// something to run and invariant 5 (calledBack must be true by the
// time both sides detach) is preserved.
func noopCallback[T any](Try[T]) {}

// Core is the shared state object between a Promise[T] and a Future[T].
// It must be created with newCore, and is jointly owned by exactly two
// parties: the Promise, which publishes a result, and the Future,
// which registers a callback. Each side relinquishes its share with
// exactly one call to detachPromise or detachFuture; the second of the
// two calls is responsible for making sure the dispatch rule has fired.
//
// A Core must not be copied after use.
type Core[T any] struct {
	mu sync.Mutex

	res *Try[T]
	cb  func(Try[T])

	calledBack bool
	detached   uint8
	active     bool

	executor Executor
}

// newCore returns a Core ready to coordinate one Promise/Future pair.
func newCore[T any]() *Core[T] {
	return &Core[T]{active: true}
}

// getTry returns the published result. It returns ErrNotReady if
// setResult has not been called yet.
//
// It's safe to call concurrently with setResult; a caller that races
// this against setResult gets either ErrNotReady or the value, never
// a torn read.
func (c *Core[T]) getTry() (Try[T], error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.res == nil {
		return Try[T]{}, ErrNotReady
	}
	return *c.res, nil
}

// ready reports whether a result has been published. A true result is
// stable; a false result is racy, since a result may be published by
// another goroutine immediately after this call returns.
func (c *Core[T]) ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.res != nil
}

// setResult publishes t as this Core's result. It returns a
// *LogicError if a result has already been published.
func (c *Core[T]) setResult(t Try[T]) error {
	c.mu.Lock()
	if c.res != nil {
		c.mu.Unlock()
		return newLogicError("setResult")
	}
	c.res = &t
	c.mu.Unlock()

	c.maybeCallback()
	return nil
}

// setCallback registers f as this Core's continuation. It returns a
// *LogicError if a callback has already been registered.
func (c *Core[T]) setCallback(f func(Try[T])) error {
	c.mu.Lock()
	if c.cb != nil {
		c.mu.Unlock()
		return newLogicError("setCallback")
	}
	c.cb = f
	c.mu.Unlock()

	c.maybeCallback()
	return nil
}

// activate marks the Core active and re-evaluates the dispatch rule.
func (c *Core[T]) activate() {
	c.mu.Lock()
	c.active = true
	c.mu.Unlock()

	c.maybeCallback()
}

// deactivate marks the Core inactive. It does not, by itself, undo a
// dispatch that already fired.
func (c *Core[T]) deactivate() {
	c.mu.Lock()
	c.active = false
	c.mu.Unlock()
}

// isActive reports the current active flag.
func (c *Core[T]) isActive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// setExecutor installs ex as the dispatcher used the next time the
// dispatch rule fires. If the rule has already fired, ex is never
// used.
func (c *Core[T]) setExecutor(ex Executor) {
	c.mu.Lock()
	c.executor = ex
	c.mu.Unlock()
}

// detachFuture is called by a departing Future. If no callback was
// ever registered, a no-op one is installed so the dispatch rule can
// still fire. The Core is then forced active, and this side's detach
// is recorded.
func (c *Core[T]) detachFuture() {
	c.mu.Lock()
	if c.cb == nil {
		c.cb = noopCallback[T]
	}
	c.mu.Unlock()

	c.activate()
	c.detachOne()
}

// detachPromise is called by a departing Promise. If no result was
// ever published, ErrBrokenPromise is published in its place, so the
// callback observes a definite failure instead of never running. This
// side's detach is then recorded.
func (c *Core[T]) detachPromise() {
	c.mu.Lock()
	installed := c.res == nil
	if installed {
		t := Err[T](ErrBrokenPromise)
		c.res = &t
	}
	c.mu.Unlock()

	if installed {
		c.maybeCallback()
	}
	c.detachOne()
}

// maybeCallback is the dispatch rule: if the result, the callback, and
// the active flag are all present, and no dispatch has happened yet,
// exactly one of them fires, either through the installed Executor or
// synchronously on the calling goroutine.
func (c *Core[T]) maybeCallback() {
	c.mu.Lock()

	if c.calledBack || c.res == nil || c.cb == nil || !c.active {
		c.mu.Unlock()
		return
	}
	c.calledBack = true

	// res and cb stay in place: they're already immutable (invariant 1
	// forbids a second setResult/setCallback regardless of calledBack),
	// so a consumer that calls getTry after observing the callback still
	// sees the same value. Only the copies below cross into the closure.
	res := *c.res
	cb := c.cb

	ex := c.executor
	if ex != nil {
		c.mu.Unlock()
		// the task closes over res and cb by value, not over c, so it
		// never dereferences the Core; detachOne is free to destroy
		// the Core the instant both sides detach, whether or not the
		// executor has run this task yet.
		ex.Add(func() { cb(res) })
		return
	}

	c.mu.Unlock()
	cb(res)
}

// detachOne records one side's detach. Once both sides have detached,
// invariant 5 requires calledBack to already be true; detachPromise
// and detachFuture both guarantee that by the time they call here.
func (c *Core[T]) detachOne() {
	c.mu.Lock()
	c.detached++
	both := c.detached == 2
	c.mu.Unlock()

	if both && !c.calledBackSnapshot() {
		panic("future: internal: both sides detached before the callback fired")
	}
}

// calledBackSnapshot is a lock-protected read of calledBack, split out
// so detachOne's assertion doesn't need to reason about lock ordering
// with maybeCallback.
func (c *Core[T]) calledBackSnapshot() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calledBack
}
