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

package conf

import (
	"fmt"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"
)

const stringListDelimiter = ","

// StringListValue is a kingpin.Value for comma separated lists.
// Repeating the flag appends, so `-f=A,B -f=C` yields A,B,C.
type StringListValue []string

// Set splits the input and appends it. Implements kingpin.Value.
func (s *StringListValue) Set(value string) error {
	*s = append(*s, strings.Split(value, stringListDelimiter)...)
	return nil
}

// String implements kingpin.Value.
func (s *StringListValue) String() string {
	return fmt.Sprintf("%v", []string(*s))
}

// IsCumulative marks the flag as repeatable (kingpin.repeatableFlag).
func (s *StringListValue) IsCumulative() bool {
	return true
}

// StringList is a helper for defining kingpin flags.
func StringList(s kingpin.Settings) (target *[]string) {
	target = new([]string)
	s.SetValue((*StringListValue)(target))
	return
}
