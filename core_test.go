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

import (
	"errors"
	"sync"
	"testing"
)

// S1: happy path, callback registered before the result is published.
func TestCore_HappyPathInline(t *testing.T) {
	p, f := New[int]()

	var got Try[int]
	calls := 0
	if err := f.OnComplete(func(t Try[int]) {
		calls++
		got = t
	}); err != nil {
		t.Fatalf("OnComplete: %v", err)
	}

	if err := p.SetValue(42); err != nil {
		t.Fatalf("SetValue: %v", err)
	}

	if calls != 1 {
		t.Fatalf("callback ran %d times, want 1", calls)
	}
	if got.Value() != 42 {
		t.Fatalf("got %v, want 42", got.Value())
	}

	p.Detach()
	f.Detach()
}

// S2: reverse order, result published before the callback is registered.
func TestCore_ReverseOrderInline(t *testing.T) {
	p, f := New[int]()

	if err := p.SetValue(42); err != nil {
		t.Fatalf("SetValue: %v", err)
	}

	var got Try[int]
	calls := 0
	if err := f.OnComplete(func(t Try[int]) {
		calls++
		got = t
	}); err != nil {
		t.Fatalf("OnComplete: %v", err)
	}

	if calls != 1 {
		t.Fatalf("callback ran %d times, want 1", calls)
	}
	if got.Value() != 42 {
		t.Fatalf("got %v, want 42", got.Value())
	}

	p.Detach()
	f.Detach()
}

// S3: an installed Executor receives exactly one task.
func TestCore_ExecutorPath(t *testing.T) {
	p, f := New[int]()

	var taskCount int
	var recorded func()
	rec := recorderExecutor{add: func(task func()) {
		taskCount++
		recorded = task
	}}
	f.SetExecutor(rec)

	var got Try[int]
	if err := f.OnComplete(func(t Try[int]) { got = t }); err != nil {
		t.Fatalf("OnComplete: %v", err)
	}
	if err := p.SetValue(99); err != nil {
		t.Fatalf("SetValue: %v", err)
	}

	if taskCount != 1 {
		t.Fatalf("executor got %d tasks, want 1", taskCount)
	}
	if got != (Try[int]{}) {
		t.Fatalf("callback ran before the executor's task, got %v", got)
	}

	recorded()
	if got.Value() != 99 {
		t.Fatalf("got %v, want 99", got.Value())
	}

	p.Detach()
	f.Detach()
}

type recorderExecutor struct {
	add func(task func())
}

func (r recorderExecutor) Add(task func()) { r.add(task) }

// S4: the producer detaches without ever publishing a result.
func TestCore_BrokenPromise(t *testing.T) {
	p, f := New[int]()

	var got Try[int]
	if err := f.OnComplete(func(t Try[int]) { got = t }); err != nil {
		t.Fatalf("OnComplete: %v", err)
	}

	p.Detach()

	if got.HasValue() {
		t.Fatalf("expected a failure, got value %v", got.Value())
	}
	if !errors.Is(got.Failure(), ErrBrokenPromise) {
		t.Fatalf("got error %v, want ErrBrokenPromise", got.Failure())
	}

	f.Detach()
}

// S5: the consumer detaches without ever registering a callback.
func TestCore_OrphanFuture(t *testing.T) {
	p, f := New[int]()

	if err := p.SetValue(7); err != nil {
		t.Fatalf("SetValue: %v", err)
	}

	f.Detach()
	p.Detach()

	// nothing to assert beyond "this didn't panic" - detachOne's
	// internal assertion (calledBack must be true by the second
	// detach) is exercised by this path.
}

// S6: deactivating a Future withholds delivery until reactivated.
func TestCore_Deactivated(t *testing.T) {
	p, f := New[int]()

	calls := 0
	if err := f.OnComplete(func(Try[int]) { calls++ }); err != nil {
		t.Fatalf("OnComplete: %v", err)
	}

	f.Deactivate()
	if err := p.SetValue(1); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	if calls != 0 {
		t.Fatalf("callback ran while deactivated")
	}

	f.Activate()
	if calls != 1 {
		t.Fatalf("callback ran %d times after activate, want 1", calls)
	}

	p.Detach()
	f.Detach()
}

func TestCore_SetResultTwice(t *testing.T) {
	p, f := New[int]()
	if err := p.SetValue(1); err != nil {
		t.Fatalf("first SetValue: %v", err)
	}
	err := p.SetValue(2)
	var logicErr *LogicError
	if !errors.As(err, &logicErr) {
		t.Fatalf("second SetValue: got %v, want *LogicError", err)
	}
	f.Detach()
	p.Detach()
}

func TestCore_SetCallbackTwice(t *testing.T) {
	_, f := New[int]()
	if err := f.OnComplete(func(Try[int]) {}); err != nil {
		t.Fatalf("first OnComplete: %v", err)
	}
	err := f.OnComplete(func(Try[int]) {})
	var logicErr *LogicError
	if !errors.As(err, &logicErr) {
		t.Fatalf("second OnComplete: got %v, want *LogicError", err)
	}
}

func TestCore_NotReady(t *testing.T) {
	_, f := New[int]()
	_, err := f.TryValue()
	if !errors.Is(err, ErrNotReady) {
		t.Fatalf("got %v, want ErrNotReady", err)
	}
}

// A callback must run exactly once even under concurrent producer and
// consumer activity racing setResult, setCallback, and activate.
func TestCore_ConcurrentSetters(t *testing.T) {
	for i := 0; i < 200; i++ {
		p, f := New[int]()

		var wg sync.WaitGroup
		var calls int
		var mu sync.Mutex

		wg.Add(3)
		go func() {
			defer wg.Done()
			_ = p.SetValue(i)
		}()
		go func() {
			defer wg.Done()
			_ = f.OnComplete(func(Try[int]) {
				mu.Lock()
				calls++
				mu.Unlock()
			})
		}()
		go func() {
			defer wg.Done()
			f.Activate()
		}()
		wg.Wait()

		p.Detach()
		f.Detach()

		if calls != 1 {
			t.Fatalf("iteration %d: callback ran %d times, want 1", i, calls)
		}
	}
}
