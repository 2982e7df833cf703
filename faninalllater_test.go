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

import "testing"

func TestAllLater_DeliversAssembledSlice(t *testing.T) {
	p0, f0 := New[int]()
	p1, f1 := New[int]()

	var got []Try[int]
	calls := 0
	AllLater(func(results []Try[int]) {
		calls++
		got = results
	}, f0, f1)

	if err := p1.SetValue(2); err != nil {
		t.Fatal(err)
	}
	if err := p0.SetValue(1); err != nil {
		t.Fatal(err)
	}

	if calls != 1 {
		t.Fatalf("callback ran %d times, want 1", calls)
	}
	if got[0].Value() != 1 || got[1].Value() != 2 {
		t.Fatalf("got %v, want [1, 2]", got)
	}

	p0.Detach()
	p1.Detach()
}

func TestAllLater_Empty(t *testing.T) {
	calls := 0
	AllLater(func(results []Try[int]) {
		calls++
		if results != nil {
			t.Fatalf("got %v, want nil", results)
		}
	})
	if calls != 1 {
		t.Fatalf("callback ran %d times, want 1", calls)
	}
}

func TestAllLater_NilCallbackPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	AllLater[int](nil)
}
