// Copyright (c) 2017 Intel Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package verify

import "fmt"

// NoViolation is the FirstViolation of a sorted sequence.
const NoViolation int64 = -1

// Verdict of a single verification.
type Verdict struct {
	Sorted bool
	// Length is the number of elements. For an incomplete early-exit scan it is
	// the number of elements read up to and including the first violation.
	Length int64
	// FirstViolation is the index i of the first pair with a[i] > a[i+1],
	// NoViolation when sorted.
	FirstViolation int64
	// Complete is false when an early-exit scan stopped before the end of input.
	Complete bool
}

// HasViolation tells whether FirstViolation is present.
func (v Verdict) HasViolation() bool {
	return v.FirstViolation != NoViolation
}

// String renders the verdict as a sentence.
func (v Verdict) String() string {
	switch {
	case v.Sorted:
		return fmt.Sprintf("The sequence of length %d is sorted in ascending order.", v.Length)
	case !v.Complete:
		return fmt.Sprintf("The sequence is not sorted in ascending order (elements %d and %d are out of order).",
			v.FirstViolation, v.FirstViolation+1)
	}
	return fmt.Sprintf("The sequence of length %d is not sorted in ascending order.", v.Length)
}
