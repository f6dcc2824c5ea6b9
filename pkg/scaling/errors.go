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

package scaling

import "fmt"

// InconsistentProblemSizeError is returned when a strong scaling run has varying
// problem sizes or when the work per worker of a weak scaling run drifts from the
// baseline by more than the tolerance.
// Expected and Actual are problem sizes for strong scaling and problem size per
// process for weak scaling. Index is the position of the offending observation
// in the input.
type InconsistentProblemSizeError struct {
	Mode      Mode
	Index     int
	Expected  float64
	Actual    float64
	Tolerance float64
}

func (e *InconsistentProblemSizeError) Error() string {
	if e.Mode == Weak {
		return fmt.Sprintf("weak scaling observation %d has %g work per worker, baseline has %g (tolerance %g%%)",
			e.Index, e.Actual, e.Expected, e.Tolerance*100)
	}
	return fmt.Sprintf("strong scaling observation %d has problem size %g, baseline has %g",
		e.Index, e.Actual, e.Expected)
}
