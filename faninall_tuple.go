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

// Go generics have no variadic type parameters, so a tuple-shaped
// fan-in (folly's VariadicContext<Ts...>) is exposed here as one
// function per supported arity instead of a single variadic one. Each
// follows the same shape as allContext: a fixed destination, and an
// atomic arrival counter that the last child brings up to total.

// Tuple2 holds the positional results of a two-future All2.
type Tuple2[A, B any] struct {
	V1 Try[A]
	V2 Try[B]
}

// All2 fans in two differently-typed futures into one Future of their
// combined Tuple2. Never fails on its own; a child's failure travels
// inside its own slot.
func All2[A, B any](f1 *Future[A], f2 *Future[B]) *Future[Tuple2[A, B]] {
	p, out := New[Tuple2[A, B]]()
	var tup Tuple2[A, B]
	var count atomic.Int64
	const total = 2

	fulfil := func() {
		if count.Add(1) == total {
			_ = p.SetValue(tup)
			p.Detach()
		}
	}

	f1.setCallback_(func(t Try[A]) { tup.V1 = t; fulfil() })
	f2.setCallback_(func(t Try[B]) { tup.V2 = t; fulfil() })

	return out
}

// Tuple3 holds the positional results of a three-future All3.
type Tuple3[A, B, C any] struct {
	V1 Try[A]
	V2 Try[B]
	V3 Try[C]
}

// All3 fans in three differently-typed futures into one Future of
// their combined Tuple3.
func All3[A, B, C any](f1 *Future[A], f2 *Future[B], f3 *Future[C]) *Future[Tuple3[A, B, C]] {
	p, out := New[Tuple3[A, B, C]]()
	var tup Tuple3[A, B, C]
	var count atomic.Int64
	const total = 3

	fulfil := func() {
		if count.Add(1) == total {
			_ = p.SetValue(tup)
			p.Detach()
		}
	}

	f1.setCallback_(func(t Try[A]) { tup.V1 = t; fulfil() })
	f2.setCallback_(func(t Try[B]) { tup.V2 = t; fulfil() })
	f3.setCallback_(func(t Try[C]) { tup.V3 = t; fulfil() })

	return out
}

// Tuple4 holds the positional results of a four-future All4.
type Tuple4[A, B, C, D any] struct {
	V1 Try[A]
	V2 Try[B]
	V3 Try[C]
	V4 Try[D]
}

// All4 fans in four differently-typed futures into one Future of
// their combined Tuple4.
func All4[A, B, C, D any](f1 *Future[A], f2 *Future[B], f3 *Future[C], f4 *Future[D]) *Future[Tuple4[A, B, C, D]] {
	p, out := New[Tuple4[A, B, C, D]]()
	var tup Tuple4[A, B, C, D]
	var count atomic.Int64
	const total = 4

	fulfil := func() {
		if count.Add(1) == total {
			_ = p.SetValue(tup)
			p.Detach()
		}
	}

	f1.setCallback_(func(t Try[A]) { tup.V1 = t; fulfil() })
	f2.setCallback_(func(t Try[B]) { tup.V2 = t; fulfil() })
	f3.setCallback_(func(t Try[C]) { tup.V3 = t; fulfil() })
	f4.setCallback_(func(t Try[D]) { tup.V4 = t; fulfil() })

	return out
}

// Tuple5 holds the positional results of a five-future All5.
type Tuple5[A, B, C, D, E any] struct {
	V1 Try[A]
	V2 Try[B]
	V3 Try[C]
	V4 Try[D]
	V5 Try[E]
}

// All5 fans in five differently-typed futures into one Future of
// their combined Tuple5.
func All5[A, B, C, D, E any](f1 *Future[A], f2 *Future[B], f3 *Future[C], f4 *Future[D], f5 *Future[E]) *Future[Tuple5[A, B, C, D, E]] {
	p, out := New[Tuple5[A, B, C, D, E]]()
	var tup Tuple5[A, B, C, D, E]
	var count atomic.Int64
	const total = 5

	fulfil := func() {
		if count.Add(1) == total {
			_ = p.SetValue(tup)
			p.Detach()
		}
	}

	f1.setCallback_(func(t Try[A]) { tup.V1 = t; fulfil() })
	f2.setCallback_(func(t Try[B]) { tup.V2 = t; fulfil() })
	f3.setCallback_(func(t Try[C]) { tup.V3 = t; fulfil() })
	f4.setCallback_(func(t Try[D]) { tup.V4 = t; fulfil() })
	f5.setCallback_(func(t Try[E]) { tup.V5 = t; fulfil() })

	return out
}
