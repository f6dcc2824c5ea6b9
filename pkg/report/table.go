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
	"fmt"
	"io"
	"strconv"

	"github.com/intelsdi-x/scaling/pkg/scaling"
	"github.com/intelsdi-x/scaling/pkg/verify"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var seriesHeaders = []string{"process count", "problem size", "time", "speedup", "efficiency", "ideal speedup", "ideal efficiency"}

var aggregateHeaders = []string{"tag", "process count", "problem size", "mean time", "std dev", "repetitions"}

// TableRenderer draws ASCII tables with values rounded to a fixed number of places.
type TableRenderer struct {
	output    io.Writer
	precision int32
}

// NewTableRenderer returns a renderer drawing to output. Rounding is applied to
// presentation only.
func NewTableRenderer(output io.Writer, precision int) *TableRenderer {
	if precision < 0 {
		precision = 0
	}
	return &TableRenderer{output: output, precision: int32(precision)}
}

func (t *TableRenderer) fixed(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(t.precision)
}

// RenderSeries implements Renderer.
func (t *TableRenderer) RenderSeries(results []scaling.SeriesResult) error {
	for _, result := range results {
		baseline := result.Baseline()
		_, err := fmt.Fprintf(t.output, "\nTag: %s (%s scaling, baseline %d processes)\n", result.Tag(), result.Mode(), baseline.ProcessCount)
		if err != nil {
			return errors.Wrapf(err, "cannot write title of %q", result.Tag())
		}

		ideal := result.Ideal()
		data := [][]string{}
		for i, point := range result.Points() {
			data = append(data, []string{
				strconv.Itoa(point.ProcessCount),
				decimal.NewFromFloat(point.ProblemSize).String(),
				t.fixed(point.ExecutionTime),
				t.fixed(point.Speedup),
				t.fixed(point.Efficiency),
				t.fixed(ideal[i].Speedup),
				t.fixed(ideal[i].Efficiency),
			})
		}
		t.draw(seriesHeaders, data)
	}
	return nil
}

// RenderAggregates implements Renderer.
func (t *TableRenderer) RenderAggregates(aggregated []scaling.AggregatedObservation) error {
	data := [][]string{}
	for _, a := range aggregated {
		data = append(data, []string{
			a.Tag,
			strconv.Itoa(a.ProcessCount),
			decimal.NewFromFloat(a.ProblemSize).String(),
			t.fixed(a.ExecutionTime),
			t.fixed(a.StdDev),
			strconv.Itoa(a.Repetitions),
		})
	}
	t.draw(aggregateHeaders, data)
	return nil
}

// RenderVerdict implements Renderer.
func (t *TableRenderer) RenderVerdict(path string, verdict verify.Verdict) error {
	_, err := fmt.Fprintf(t.output, "%s: %s\n", path, verdict)
	return errors.Wrapf(err, "cannot write verdict of %q", path)
}

func (t *TableRenderer) draw(headers []string, data [][]string) {
	table := tablewriter.NewWriter(t.output)
	table.SetHeader(headers)
	for _, row := range data {
		table.Append(row)
	}
	table.Render()
}
