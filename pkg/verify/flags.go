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

import "github.com/intelsdi-x/scaling/pkg/conf"

// EarlyExitFlag makes verification stop at the first violation.
var EarlyExitFlag = conf.NewBoolFlag("verify_early_exit", "Stop verification at the first out of order pair; length is then not reported", false)
