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

import "sync/atomic"

// anyContext is owned by a refcount, initialised to the number of
// input futures, instead of an arrival counter: every child that
// fires decrements it, and the one that drives it to zero is
// responsible for the context, independent of which child won the
// race to fulfil p.
type anyContext[T any] struct {
	done atomic.Bool
	ref  atomic.Int64
	p    *Promise[IndexedTry[T]]
}

func (c *anyContext[T]) decref() {
	if c.ref.Add(-1) == 0 {
		// last child to report; nothing further owns this context.
	}
}

// Any returns a Future that fulfils with the index and result of
// whichever of futures completes first. The remaining futures are
// still drained internally, so the underlying Cores can always reach
// invariant 5 and be reclaimed, but their results after the first are
// discarded.
func Any[T any](futures ...*Future[T]) *Future[IndexedTry[T]] {
	p, out := New[IndexedTry[T]]()

	if len(futures) == 0 {
		_ = p.SetErr(ErrBrokenPromise)
		p.Detach()
		return out
	}

	ctx := &anyContext[T]{p: p}
	ctx.ref.Store(int64(len(futures)))

	for i, in := range futures {
		i := i
		in.setCallback_(func(t Try[T]) {
			if ctx.done.CompareAndSwap(false, true) {
				_ = ctx.p.SetValue(IndexedTry[T]{Index: i, Try: t})
				ctx.p.Detach()
			}
			ctx.decref()
		})
	}

	return out
}
