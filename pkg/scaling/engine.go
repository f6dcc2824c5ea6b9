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
	"fmt"
	"math"
	"sort"

	"github.com/intelsdi-x/scaling/pkg/observation"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultTolerance is the relative drift of work per worker accepted in weak scaling runs.
const DefaultTolerance = 0.01

// Config of the Engine.
type Config struct {
	// Tolerance is the accepted relative difference between the work per worker
	// of any weak scaling observation and the baseline.
	Tolerance float64
}

// DefaultConfig returns configuration taken from flags.
func DefaultConfig() Config {
	return Config{
		Tolerance: WeakScalingToleranceFlag.Value(),
	}
}

// Engine computes scaling series. It keeps no state between calls and is safe
// for concurrent use.
type Engine struct {
	config Config
}

// NewEngine returns an Engine or an error for a negative or NaN tolerance.
func NewEngine(config Config) (*Engine, error) {
	if !(config.Tolerance >= 0) {
		return nil, errors.Errorf("weak scaling tolerance must be non-negative, got %g", config.Tolerance)
	}
	return &Engine{config: config}, nil
}

// Point is one entry of a series.
type Point struct {
	ProcessCount  int
	ProblemSize   float64
	ExecutionTime float64
	// Speedup is T(base)/T(p) in strong mode. In weak mode it is the scaled
	// speedup T(base)/T(p) * W(p)/W(base), so it grows with the problem size.
	Speedup float64
	// Efficiency is Speedup / (p/p_base); in weak mode it reduces to T(base)/T(p).
	Efficiency float64
}

// SeriesResult is the series of a single run (one tag) ordered by ascending process count.
type SeriesResult struct {
	tag      string
	mode     Mode
	baseline observation.Observation
	points   []Point
}

// Tag of the run.
func (r SeriesResult) Tag() string { return r.tag }

// Mode the series was computed with.
func (r SeriesResult) Mode() Mode { return r.mode }

// Baseline observation all ratios are normalized against.
func (r SeriesResult) Baseline() observation.Observation { return r.baseline }

// Points returns a copy of the series.
func (r SeriesResult) Points() []Point {
	points := make([]Point, len(r.points))
	copy(points, r.points)
	return points
}

// Len is the number of points.
func (r SeriesResult) Len() int { return len(r.points) }

func (r SeriesResult) String() string {
	return fmt.Sprintf("%s scaling of %q (%d points, baseline %s)", r.mode, r.tag, len(r.points), r.baseline)
}

// Compute derives the series of one run. All observations must share the tag.
func (e *Engine) Compute(observations observation.Observations, mode Mode) (SeriesResult, error) {
	if err := observations.Validate(); err != nil {
		return SeriesResult{}, err
	}
	if err := checkTags(observations); err != nil {
		return SeriesResult{}, err
	}

	order := ascendingOrder(observations)
	baseline := observations[order[0]]

	var err error
	switch mode {
	case Strong:
		err = e.checkStrong(observations, baseline)
	case Weak:
		err = e.checkWeak(observations, baseline)
	default:
		err = errors.Errorf("unsupported scaling mode %d", mode)
	}
	if err != nil {
		return SeriesResult{}, err
	}
	if err := checkDistinctProcessCounts(observations); err != nil {
		return SeriesResult{}, err
	}

	points := make([]Point, 0, len(observations))
	for _, index := range order {
		o := observations[index]
		speedup := baseline.ExecutionTime / o.ExecutionTime
		if mode == Weak {
			speedup *= o.ProblemSize / baseline.ProblemSize
		}
		relativeProcesses := float64(o.ProcessCount) / float64(baseline.ProcessCount)
		points = append(points, Point{
			ProcessCount:  o.ProcessCount,
			ProblemSize:   o.ProblemSize,
			ExecutionTime: o.ExecutionTime,
			Speedup:       speedup,
			Efficiency:    speedup / relativeProcesses,
		})
	}

	result := SeriesResult{
		tag:      baseline.Tag,
		mode:     mode,
		baseline: baseline,
		points:   points,
	}
	logrus.Debugf("Computed %s", result)
	return result, nil
}

// ComputeByTag computes one series per tag, in order of first tag appearance.
// It does not compare tags with each other.
func (e *Engine) ComputeByTag(observations observation.Observations, mode Mode) ([]SeriesResult, error) {
	if err := observations.Validate(); err != nil {
		return nil, err
	}

	results := []SeriesResult{}
	for _, run := range observations.GroupByTag() {
		result, err := e.Compute(run, mode)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot compute %s scaling of %q", mode, run[0].Tag)
		}
		results = append(results, result)
	}
	return results, nil
}

// Classify tells whether a run is a strong scaling run (identical problem sizes)
// or a weak scaling run (work per worker within tolerance). A run that is neither
// fails with InconsistentProblemSizeError for weak scaling.
func (e *Engine) Classify(observations observation.Observations) (Mode, error) {
	if err := observations.Validate(); err != nil {
		return Strong, err
	}
	if err := checkTags(observations); err != nil {
		return Strong, err
	}

	baseline := observations[ascendingOrder(observations)[0]]
	if e.checkStrong(observations, baseline) == nil {
		return Strong, nil
	}
	if err := e.checkWeak(observations, baseline); err != nil {
		return Strong, err
	}
	return Weak, nil
}

func checkTags(observations observation.Observations) error {
	for i, o := range observations {
		if o.Tag != observations[0].Tag {
			return &observation.InvalidInputError{
				Index:       i,
				Observation: &observations[i],
				Reason:      fmt.Sprintf("tag differs from %q, compute each tag separately", observations[0].Tag),
			}
		}
	}
	return nil
}

func checkDistinctProcessCounts(observations observation.Observations) error {
	seen := map[int]bool{}
	for i, o := range observations {
		if seen[o.ProcessCount] {
			return &observation.InvalidInputError{
				Index:       i,
				Observation: &observations[i],
				Reason:      "process count repeated within a run, aggregate repeated measurements first",
			}
		}
		seen[o.ProcessCount] = true
	}
	return nil
}

// ascendingOrder returns input indexes ordered by process count.
func ascendingOrder(observations observation.Observations) []int {
	order := make([]int, len(observations))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return observations[order[i]].ProcessCount < observations[order[j]].ProcessCount
	})
	return order
}

func (e *Engine) checkStrong(observations observation.Observations, baseline observation.Observation) error {
	for i, o := range observations {
		if o.ProblemSize != baseline.ProblemSize {
			return &InconsistentProblemSizeError{
				Mode:     Strong,
				Index:    i,
				Expected: baseline.ProblemSize,
				Actual:   o.ProblemSize,
			}
		}
	}
	return nil
}

func (e *Engine) checkWeak(observations observation.Observations, baseline observation.Observation) error {
	expected := baseline.WorkPerWorker()
	for i, o := range observations {
		actual := o.WorkPerWorker()
		if math.Abs(actual-expected)/expected > e.config.Tolerance {
			return &InconsistentProblemSizeError{
				Mode:      Weak,
				Index:     i,
				Expected:  expected,
				Actual:    actual,
				Tolerance: e.config.Tolerance,
			}
		}
	}
	return nil
}
