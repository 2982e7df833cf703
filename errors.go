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
	"fmt"
)

var (
	// ErrNotReady is returned from Core.getTry, and from Future's
	// TryValue, when the result has not been published yet.
	ErrNotReady = errors.New("future: result not ready")

	// ErrBrokenPromise is the failure a Try[T] carries when the
	// producer side detaches without ever publishing a result.
	ErrBrokenPromise = errors.New("future: broken promise")
)

// LogicError reports a misuse of the one-shot contract: setting the
// result, or registering the callback, more than once on the same
// Core.
type LogicError struct {
	op string
}

func newLogicError(op string) *LogicError {
	return &LogicError{op: op}
}

func (e *LogicError) Error() string {
	return fmt.Sprintf("future: %s called twice", e.op)
}
