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

package report

import (
	"io"

	"github.com/pkg/errors"
)

// New returns a renderer of the given format.
func New(format Format, output io.Writer, precision int) (Renderer, error) {
	switch format {
	case TableFormat:
		return NewTableRenderer(output, precision), nil
	case CSVFormat:
		return NewCSVRenderer(output), nil
	}
	return nil, errors.Errorf("unknown output format %q (want table or csv)", format)
}
