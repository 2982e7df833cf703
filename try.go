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

import "fmt"

// Try is a container for the outcome of an asynchronous computation:
// either a value of type T, or the error that prevented one.
//
// A Try is immutable once constructed. Producers build one with Val
// or Err and hand it to a Promise; consumers read it back through a
// Future's callback or TryValue.
type Try[T any] struct {
	val T
	err error
}

// Val constructs a successful Try holding val.
func Val[T any](val T) Try[T] {
	return Try[T]{val: val}
}

// Err constructs a failed Try holding err. It panics if err is nil;
// use Val for a successful result.
func Err[T any](err error) Try[T] {
	if err == nil {
		panic("future: Err called with a nil error")
	}
	return Try[T]{err: err}
}

// HasValue reports whether this Try holds a value, as opposed to a
// failure.
func (t Try[T]) HasValue() bool {
	return t.err == nil
}

// Value returns the held value. It returns the zero value of T if
// this Try holds a failure instead.
func (t Try[T]) Value() T {
	return t.val
}

// Failure returns the held error, or nil if this Try holds a value.
func (t Try[T]) Failure() error {
	return t.err
}

// Get returns the held value and a nil error, or the zero value of T
// and the held error, following the usual Go convention.
func (t Try[T]) Get() (T, error) {
	return t.val, t.err
}

func (t Try[T]) String() string {
	if t.err != nil {
		return fmt.Sprintf("failure(%s)", t.err)
	}
	return fmt.Sprintf("value(%v)", t.val)
}

// IndexedTry pairs a Try with the position, in some input list of
// futures, of the future it came from. It's the result type of Any.
type IndexedTry[T any] struct {
	Index int
	Try   Try[T]
}
