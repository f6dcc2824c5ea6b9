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

/*
Package scaling derives speedup and efficiency series from execution times of
a parallel algorithm measured at several process counts.

Every run is normalized against its baseline, the observation with the
smallest process count. With p_base being the baseline process count:

	strong scaling (fixed problem size):
		speedup(p)    = T(base) / T(p)
		efficiency(p) = speedup(p) / (p / p_base)

	weak scaling (problem size grows with p, work per worker is constant):
		speedup(p)    = T(base) / T(p) * W(p) / W(base)
		efficiency(p) = speedup(p) / (p / p_base) = T(base) / T(p)

so the baseline point always has speedup and efficiency equal to 1.
Results are plain floats, no rounding is done here.
*/
package scaling
