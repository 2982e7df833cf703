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

// allContext collects the results of N same-typed futures into one
// pre-sized slice, indexed by input position, and fulfils p once the
// last of them arrives.
type allContext[T any] struct {
	results []Try[T]
	count   atomic.Int64
	total   int64
	p       *Promise[[]Try[T]]
}

// All returns a Future that fulfils with the results of every future
// in futures, indexed by position, once all of them have completed.
// Ordering of completion doesn't affect the ordering of the output;
// position i of the result always holds futures[i]'s Try.
//
// All never fails on its own: individual failures travel inside their
// slot's Try, exactly as they were produced.
func All[T any](futures ...*Future[T]) *Future[[]Try[T]] {
	n := len(futures)
	p, f := New[[]Try[T]]()

	if n == 0 {
		_ = p.SetValue(nil)
		p.Detach()
		return f
	}

	ctx := &allContext[T]{
		results: make([]Try[T], n),
		total:   int64(n),
		p:       p,
	}

	for i, in := range futures {
		i := i
		in.setCallback_(func(t Try[T]) {
			ctx.results[i] = t
			if ctx.count.Add(1) == ctx.total {
				_ = ctx.p.SetValue(ctx.results)
				ctx.p.Detach()
			}
		})
	}

	return f
}
