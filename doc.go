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

// Package future provides the shared core of a one-shot future/promise
// pair: the object a Promise[T] and a Future[T] both hold a reference
// to, and which coordinates the single transfer of a computed result
// from the producer side to the consumer side.
//
// A Core[T] combines three independent signals under one mutex:
//
//   - a result, published exactly once by the producer, through
//     Promise[T]'s SetValue, SetErr, or SetTry;
//   - a callback, registered exactly once by the consumer, through
//     Future[T]'s OnComplete;
//   - an active flag, which the consumer can toggle with Activate and
//     Deactivate to hold off delivery without losing the result.
//
// The callback runs exactly once, the moment all three are satisfied:
// either inline, on whichever goroutine performs the last enabling
// call, or on an Executor, if one has been installed with SetExecutor.
//
// Both handles must eventually call Detach. The Core is destroyed only
// after both sides have detached, and each side fills in its own
// missing part as it detaches: a Promise that never published a result
// publishes a Try[T] carrying ErrBrokenPromise, and a Future that never
// registered a callback registers a no-op. Either way, the dispatch rule
// fires before the second detach returns.
//
// Producer abandonment - a Promise[T] detaching without ever setting a
// result - surfaces to the consumer as a failed Try[T], not as a panic
// or a callback that never runs.
//
//
// Combinators:-
//
// Four small aggregate types build on top of Core[T] to fan multiple
// futures into one:
//
//   - All collects N futures of the same type into one future of
//     []Try[T], indexed by input position.
//   - All2 through All5 do the same across up to five distinct types,
//     producing a fixed-arity tuple of Trys instead of a slice.
//   - Any fulfils as soon as the first of N futures completes, and
//     reports which one.
//   - AllLater is like All, but delivers straight to a callback instead
//     of producing another Future.
//
//
// Scope:-
//
// This package deliberately stops at the primitive. It does not provide
// Then/Catch/Recover-style chaining, timeouts, retries, or cancellation;
// those belong in a layer built on top of Core[T], not inside it.
package future
