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

// Package report presents computed scaling series and verification verdicts.
package report

import (
	"github.com/intelsdi-x/scaling/pkg/scaling"
	"github.com/intelsdi-x/scaling/pkg/verify"
)

// Renderer writes results in some output format.
type Renderer interface {
	// RenderSeries writes each series next to its ideal reference.
	RenderSeries(results []scaling.SeriesResult) error
	// RenderAggregates writes repeated measurements reduced to their means.
	RenderAggregates(aggregated []scaling.AggregatedObservation) error
	// RenderVerdict writes the verdict of the file at path.
	RenderVerdict(path string, verdict verify.Verdict) error
}

// Format of the rendered output.
type Format string

const (
	TableFormat Format = "table"
	CSVFormat   Format = "csv"
)
