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

package observation

import "fmt"

// InvalidInputError is returned for an empty observation set, a non-positive
// measurement, a run mixing tags or an observation file field that is not a number.
// Index is the position of the offending observation (or data row), -1 when not applicable.
type InvalidInputError struct {
	Index       int
	Observation *Observation
	Reason      string
}

func (e *InvalidInputError) Error() string {
	switch {
	case e.Observation != nil && e.Index >= 0:
		return fmt.Sprintf("invalid observation %d %s: %s", e.Index, e.Observation, e.Reason)
	case e.Observation != nil:
		return fmt.Sprintf("invalid observation %s: %s", e.Observation, e.Reason)
	case e.Index >= 0:
		return fmt.Sprintf("invalid input at %d: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("invalid input: %s", e.Reason)
}
