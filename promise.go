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

// Promise is the producer side of a one-shot Core[T]. It publishes a
// result exactly once, then detaches.
//
// A Promise must not be copied after use; pass a pointer.
type Promise[T any] struct {
	core *Core[T]
}

// New creates a linked Promise/Future pair sharing a fresh Core[T].
func New[T any]() (*Promise[T], *Future[T]) {
	c := newCore[T]()
	return &Promise[T]{core: c}, &Future[T]{core: c}
}

// SetValue publishes val as a successful result. It returns a
// *LogicError if this Promise has already published a result.
func (p *Promise[T]) SetValue(val T) error {
	return p.core.setResult(Val(val))
}

// SetErr publishes err as a failed result. It returns a *LogicError if
// this Promise has already published a result. It panics if err is
// nil; use SetValue for a successful result.
func (p *Promise[T]) SetErr(err error) error {
	return p.core.setResult(Err[T](err))
}

// SetTry publishes t as this Promise's result. It returns a
// *LogicError if this Promise has already published a result.
func (p *Promise[T]) SetTry(t Try[T]) error {
	return p.core.setResult(t)
}

// Detach relinquishes this Promise's share of the Core. If no result
// was ever published, the Future observes ErrBrokenPromise instead.
//
// Detach must be called exactly once per Promise. Once both the
// Promise and its Future have detached, the Core becomes unreachable
// and is reclaimed like any other Go value.
func (p *Promise[T]) Detach() {
	p.core.detachPromise()
}
