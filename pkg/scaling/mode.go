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

import (
	"strings"

	"github.com/pkg/errors"
)

// Mode tells how the problem size relates to the process count within a run.
type Mode int

const (
	// Strong scaling keeps the total problem size fixed.
	Strong Mode = iota
	// Weak scaling keeps the problem size per process fixed.
	Weak
)

func (m Mode) String() string {
	switch m {
	case Strong:
		return "strong"
	case Weak:
		return "weak"
	}
	return "unknown"
}

// ParseMode accepts "strong" and "weak" in any case.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "strong":
		return Strong, nil
	case "weak":
		return Weak, nil
	}
	return Strong, errors.Errorf("unknown scaling mode %q, expected strong or weak", name)
}
