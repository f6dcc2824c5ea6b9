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

// MalformedInputError is returned when a token is not a number.
// Index is the 0-based position of the token in the sequence.
type MalformedInputError struct {
	Index int64
	Token string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("token %d (%q) is not a number", e.Index, e.Token)
}
