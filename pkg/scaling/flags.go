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

import "github.com/intelsdi-x/scaling/pkg/conf"

// WeakScalingToleranceFlag is the relative drift of work per worker accepted in weak scaling runs.
var WeakScalingToleranceFlag = conf.NewFloatFlag(
	"weak_scaling_tolerance",
	"Accepted relative difference of problem size per process between weak scaling observations and the baseline",
	DefaultTolerance,
)
