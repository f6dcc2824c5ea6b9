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
	"encoding/csv"
	"io"
	"strconv"

	"github.com/intelsdi-x/scaling/pkg/scaling"
	"github.com/intelsdi-x/scaling/pkg/verify"
	"github.com/pkg/errors"
)

var (
	seriesColumns    = []string{"tag", "process_count", "speedup", "efficiency", "ideal_speedup", "ideal_efficiency"}
	aggregateColumns = []string{"tag", "process_count", "problem_size", "execution_time", "std_dev", "repetitions"}
	verdictColumns   = []string{"path", "sorted", "length", "first_violation", "complete"}
)

// CSVRenderer writes comma separated records with full precision floats.
// A header row is written whenever the kind of records changes.
type CSVRenderer struct {
	writer *csv.Writer
	header []string
}

// NewCSVRenderer returns a renderer writing to output.
func NewCSVRenderer(output io.Writer) *CSVRenderer {
	return &CSVRenderer{writer: csv.NewWriter(output)}
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}

// RenderSeries implements Renderer.
func (c *CSVRenderer) RenderSeries(results []scaling.SeriesResult) error {
	records := [][]string{}
	for _, result := range results {
		ideal := result.Ideal()
		for i, point := range result.Points() {
			records = append(records, []string{
				result.Tag(),
				strconv.Itoa(point.ProcessCount),
				formatFloat(point.Speedup),
				formatFloat(point.Efficiency),
				formatFloat(ideal[i].Speedup),
				formatFloat(ideal[i].Efficiency),
			})
		}
	}
	return c.write(seriesColumns, records)
}

// RenderAggregates implements Renderer.
func (c *CSVRenderer) RenderAggregates(aggregated []scaling.AggregatedObservation) error {
	records := [][]string{}
	for _, a := range aggregated {
		records = append(records, []string{
			a.Tag,
			strconv.Itoa(a.ProcessCount),
			formatFloat(a.ProblemSize),
			formatFloat(a.ExecutionTime),
			formatFloat(a.StdDev),
			strconv.Itoa(a.Repetitions),
		})
	}
	return c.write(aggregateColumns, records)
}

// RenderVerdict implements Renderer. Absent violation is an empty field.
func (c *CSVRenderer) RenderVerdict(path string, verdict verify.Verdict) error {
	violation := ""
	if verdict.HasViolation() {
		violation = strconv.FormatInt(verdict.FirstViolation, 10)
	}
	return c.write(verdictColumns, [][]string{{
		path,
		strconv.FormatBool(verdict.Sorted),
		strconv.FormatInt(verdict.Length, 10),
		violation,
		strconv.FormatBool(verdict.Complete),
	}})
}

func (c *CSVRenderer) write(header []string, records [][]string) error {
	if !sameColumns(c.header, header) {
		if err := c.writer.Write(header); err != nil {
			return errors.Wrap(err, "cannot write csv header")
		}
		c.header = header
	}
	if err := c.writer.WriteAll(records); err != nil {
		return errors.Wrap(err, "cannot write csv records")
	}
	return nil
}

func sameColumns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
