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
	"strconv"
)

// Table columns of a series.
var tableHeaders = []string{"process_count", "speedup", "efficiency"}

// Table returns the series as header and rows of (process_count, speedup, efficiency).
// Floats keep full precision.
func (r SeriesResult) Table() ([]string, [][]string) {
	headers := make([]string, len(tableHeaders))
	copy(headers, tableHeaders)

	rows := make([][]string, 0, len(r.points))
	for _, point := range r.points {
		rows = append(rows, []string{
			strconv.Itoa(point.ProcessCount),
			strconv.FormatFloat(point.Speedup, 'g', -1, 64),
			strconv.FormatFloat(point.Efficiency, 'g', -1, 64),
		})
	}
	return headers, rows
}
