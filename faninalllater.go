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

// laterContext is identical in shape to allContext, but delivers to a
// raw continuation instead of fulfilling a Promise, for callers who
// want direct delivery without routing through another Core.
type laterContext[T any] struct {
	results []Try[T]
	count   atomic.Int64
	total   int64
	fn      func([]Try[T])
}

// AllLater collects the results of every future in futures, indexed by
// position, and calls fn with the assembled slice once all of them
// have completed. Unlike All, it does not produce another Future.
//
// It panics if fn is nil.
func AllLater[T any](fn func([]Try[T]), futures ...*Future[T]) {
	if fn == nil {
		panic("future: AllLater called with a nil callback")
	}

	n := len(futures)
	if n == 0 {
		fn(nil)
		return
	}

	ctx := &laterContext[T]{
		results: make([]Try[T], n),
		total:   int64(n),
		fn:      fn,
	}

	for i, in := range futures {
		i := i
		in.setCallback_(func(t Try[T]) {
			ctx.results[i] = t
			if ctx.count.Add(1) == ctx.total {
				ctx.fn(ctx.results)
			}
		})
	}
}
