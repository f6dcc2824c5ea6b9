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

// IdealPoint is the theoretical reference at a process count: linear speedup
// relative to the baseline and constant efficiency of 1.
type IdealPoint struct {
	ProcessCount int
	Speedup      float64
	Efficiency   float64
}

// Ideal returns the reference series for the process counts of the result.
// Strong scaling plots compare against Speedup, weak scaling plots against Efficiency.
func (r SeriesResult) Ideal() []IdealPoint {
	ideal := make([]IdealPoint, 0, len(r.points))
	for _, point := range r.points {
		ideal = append(ideal, IdealPoint{
			ProcessCount: point.ProcessCount,
			Speedup:      float64(point.ProcessCount) / float64(r.baseline.ProcessCount),
			Efficiency:   1.0,
		})
	}
	return ideal
}
