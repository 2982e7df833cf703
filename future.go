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

// Future is the consumer side of a one-shot Core[T]. It registers a
// continuation exactly once, then detaches.
//
// A Future must not be copied after use; pass a pointer.
type Future[T any] struct {
	core *Core[T]
}

// OnComplete registers cb as the continuation to run once a result has
// been published and this Future is active. It returns a *LogicError
// if a callback has already been registered.
//
// cb runs exactly once: inline, on whichever goroutine performs the
// last of SetValue/SetErr/SetTry, OnComplete, or Activate, unless an
// Executor has been installed with SetExecutor, in which case it runs
// wherever that Executor chooses.
func (f *Future[T]) OnComplete(cb func(Try[T])) error {
	if cb == nil {
		panic("future: OnComplete called with a nil callback")
	}
	return f.core.setCallback(cb)
}

// SetExecutor installs ex as the dispatcher for this Future's
// callback. If the callback has already run, ex has no effect.
func (f *Future[T]) SetExecutor(ex Executor) {
	f.core.setExecutor(ex)
}

// Activate allows a previously deactivated Future to dispatch its
// callback. New Futures start active.
func (f *Future[T]) Activate() {
	f.core.activate()
}

// Deactivate prevents the callback from running until Activate is
// called again. It does not discard a published result; it only
// withholds delivery.
func (f *Future[T]) Deactivate() {
	f.core.deactivate()
}

// IsActive reports whether this Future is currently active.
func (f *Future[T]) IsActive() bool {
	return f.core.isActive()
}

// Ready reports whether a result has been published yet. A true
// result is stable; a false result is racy.
func (f *Future[T]) Ready() bool {
	return f.core.ready()
}

// TryValue returns the published result, or ErrNotReady if none has
// been published yet.
func (f *Future[T]) TryValue() (Try[T], error) {
	return f.core.getTry()
}

// Detach relinquishes this Future's share of the Core. If no callback
// was ever registered, a no-op one is installed so the dispatch rule
// still fires.
//
// Detach must be called exactly once per Future. Once both the Future
// and its Promise have detached, the Core becomes unreachable and is
// reclaimed like any other Go value.
func (f *Future[T]) Detach() {
	f.core.detachFuture()
}

// setCallback_ is the private wiring combinators use to attach
// directly to the underlying Core, bypassing the OnComplete/Detach
// pairing a regular consumer would otherwise need to perform. It's
// used by All, All2..All5, Any, and AllLater, each of which owns the
// full lifetime of the Futures it's given.
func (f *Future[T]) setCallback_(cb func(Try[T])) {
	if err := f.core.setCallback(cb); err != nil {
		panic(err)
	}
	f.core.detachFuture()
}
