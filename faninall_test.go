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
	"testing"
)

func TestAll_PositionsMatchInputRegardlessOfOrder(t *testing.T) {
	p0, f0 := New[int]()
	p1, f1 := New[int]()
	p2, f2 := New[int]()

	out := All(f0, f1, f2)

	// completing out of order: 2, 0, 1
	if err := p2.SetValue(20); err != nil {
		t.Fatal(err)
	}
	if err := p0.SetValue(0); err != nil {
		t.Fatal(err)
	}
	if err := p1.SetErr(errBoom); err != nil {
		t.Fatal(err)
	}

	tryVal, err := out.TryValue()
	if err != nil {
		t.Fatalf("TryValue: %v", err)
	}
	got := tryVal.Value()

	if len(got) != 3 {
		t.Fatalf("got %d results, want 3", len(got))
	}
	if got[0].Value() != 0 {
		t.Fatalf("position 0 = %v, want 0", got[0].Value())
	}
	if !errors.Is(got[1].Failure(), errBoom) {
		t.Fatalf("position 1 = %v, want errBoom", got[1].Failure())
	}
	if got[2].Value() != 20 {
		t.Fatalf("position 2 = %v, want 20", got[2].Value())
	}

	p0.Detach()
	p1.Detach()
	p2.Detach()
}

func TestAll_Empty(t *testing.T) {
	out := All[int]()
	tryVal, err := out.TryValue()
	if err != nil {
		t.Fatalf("TryValue: %v", err)
	}
	if len(tryVal.Value()) != 0 {
		t.Fatalf("got %d results, want 0", len(tryVal.Value()))
	}
}

func TestAll2_HeterogeneousTypes(t *testing.T) {
	p1, f1 := New[int]()
	p2, f2 := New[string]()

	out := All2(f1, f2)

	if err := p2.SetValue("b"); err != nil {
		t.Fatal(err)
	}
	if err := p1.SetValue(1); err != nil {
		t.Fatal(err)
	}

	tryVal, err := out.TryValue()
	if err != nil {
		t.Fatalf("TryValue: %v", err)
	}
	tup := tryVal.Value()
	if tup.V1.Value() != 1 {
		t.Fatalf("V1 = %v, want 1", tup.V1.Value())
	}
	if tup.V2.Value() != "b" {
		t.Fatalf("V2 = %v, want b", tup.V2.Value())
	}

	p1.Detach()
	p2.Detach()
}

var errBoom = errors.New("boom")
