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
	"testing"

	"github.com/intelsdi-x/scaling/pkg/observation"
	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
)

const floatTolerance = 1e-9

func stencilStrong() observation.Observations {
	return observation.Observations{
		{ProcessCount: 1, ProblemSize: 1e6, ExecutionTime: 0.1535, Tag: "stencil"},
		{ProcessCount: 2, ProblemSize: 1e6, ExecutionTime: 0.0818, Tag: "stencil"},
		{ProcessCount: 4, ProblemSize: 1e6, ExecutionTime: 0.0377, Tag: "stencil"},
		{ProcessCount: 6, ProblemSize: 1e6, ExecutionTime: 0.0266, Tag: "stencil"},
		{ProcessCount: 8, ProblemSize: 1e6, ExecutionTime: 0.0229, Tag: "stencil"},
		{ProcessCount: 16, ProblemSize: 1e6, ExecutionTime: 0.0189, Tag: "stencil"},
	}
}

func stencilWeak() observation.Observations {
	return observation.Observations{
		{ProcessCount: 1, ProblemSize: 1e6, ExecutionTime: 0.0534, Tag: "weak"},
		{ProcessCount: 2, ProblemSize: 2e6, ExecutionTime: 0.0636, Tag: "weak"},
		{ProcessCount: 4, ProblemSize: 4e6, ExecutionTime: 0.0611, Tag: "weak"},
		{ProcessCount: 8, ProblemSize: 8e6, ExecutionTime: 0.0728, Tag: "weak"},
	}
}

func newTestEngine() *Engine {
	engine, err := NewEngine(Config{Tolerance: DefaultTolerance})
	So(err, ShouldBeNil)
	return engine
}

func TestStrongScaling(t *testing.T) {
	Convey("While computing strong scaling", t, func() {
		engine := newTestEngine()

		Convey("Reference stencil timings should give expected speedup", func() {
			result, err := engine.Compute(stencilStrong()[:3], Strong)
			So(err, ShouldBeNil)

			points := result.Points()
			So(len(points), ShouldEqual, 3)
			So(points[0].Speedup, ShouldEqual, 1.0)
			So(points[1].Speedup, ShouldAlmostEqual, 1.877, 0.001)
			So(points[2].Speedup, ShouldAlmostEqual, 4.072, 0.001)
			So(points[1].Efficiency, ShouldAlmostEqual, 1.877/2, 0.001)
			So(points[2].Efficiency, ShouldAlmostEqual, 4.072/4, 0.001)
		})

		Convey("Baseline should have speedup and efficiency of exactly one", func() {
			result, err := engine.Compute(stencilStrong(), Strong)
			So(err, ShouldBeNil)
			So(result.Points()[0].Speedup, ShouldEqual, 1.0)
			So(result.Points()[0].Efficiency, ShouldEqual, 1.0)
			So(result.Baseline().ProcessCount, ShouldEqual, 1)
			So(result.Tag(), ShouldEqual, "stencil")
			So(result.Mode(), ShouldEqual, Strong)
		})

		Convey("Speedup times execution time should give baseline time", func() {
			result, err := engine.Compute(stencilStrong(), Strong)
			So(err, ShouldBeNil)
			for _, point := range result.Points() {
				So(point.Speedup*point.ExecutionTime, ShouldAlmostEqual, 0.1535, floatTolerance)
			}
		})

		Convey("Speedup may flatten while efficiency falls", func() {
			result, err := engine.Compute(stencilStrong(), Strong)
			So(err, ShouldBeNil)
			points := result.Points()
			last := points[len(points)-1]
			So(last.Efficiency, ShouldBeLessThan, points[1].Efficiency)
		})

		Convey("Unordered input should be ordered by process count", func() {
			observations := stencilStrong()
			observations[0], observations[3] = observations[3], observations[0]

			result, err := engine.Compute(observations, Strong)
			So(err, ShouldBeNil)
			points := result.Points()
			for i := 1; i < len(points); i++ {
				So(points[i].ProcessCount, ShouldBeGreaterThan, points[i-1].ProcessCount)
			}
			So(points[0].Speedup, ShouldEqual, 1.0)
		})

		Convey("Baseline above one process should be normalized by relative process count", func() {
			observations := observation.Observations{
				{ProcessCount: 2, ProblemSize: 100, ExecutionTime: 8},
				{ProcessCount: 4, ProblemSize: 100, ExecutionTime: 4},
				{ProcessCount: 8, ProblemSize: 100, ExecutionTime: 4},
			}
			result, err := engine.Compute(observations, Strong)
			So(err, ShouldBeNil)
			points := result.Points()
			So(points[0].Efficiency, ShouldEqual, 1.0)
			So(points[1].Speedup, ShouldEqual, 2.0)
			So(points[1].Efficiency, ShouldEqual, 1.0)
			So(points[2].Efficiency, ShouldEqual, 0.5)

			ideal := result.Ideal()
			So(ideal[0].Speedup, ShouldEqual, 1.0)
			So(ideal[2].Speedup, ShouldEqual, 4.0)
		})

		Convey("Varying problem size should be rejected", func() {
			observations := stencilStrong()
			observations[2].ProblemSize = 2e6

			_, err := engine.Compute(observations, Strong)
			So(err, ShouldHaveSameTypeAs, &InconsistentProblemSizeError{})
			inconsistent := err.(*InconsistentProblemSizeError)
			So(inconsistent.Index, ShouldEqual, 2)
			So(inconsistent.Expected, ShouldEqual, 1e6)
			So(inconsistent.Actual, ShouldEqual, 2e6)
		})
	})
}

func TestWeakScaling(t *testing.T) {
	Convey("While computing weak scaling", t, func() {
		engine := newTestEngine()

		Convey("Stencil weak scaling timings should give T(base)/T(p) efficiency", func() {
			result, err := engine.Compute(stencilWeak(), Weak)
			So(err, ShouldBeNil)

			points := result.Points()
			So(points[0].Efficiency, ShouldEqual, 1.0)
			So(points[0].Speedup, ShouldEqual, 1.0)
			So(points[1].Efficiency, ShouldAlmostEqual, 0.0534/0.0636, floatTolerance)
			So(points[2].Efficiency, ShouldAlmostEqual, 0.0534/0.0611, floatTolerance)
			So(points[3].Efficiency, ShouldAlmostEqual, 0.0534/0.0728, floatTolerance)
			So(points[3].Speedup, ShouldAlmostEqual, 8*0.0534/0.0728, floatTolerance)
		})

		Convey("Ideal efficiency should be constant", func() {
			result, err := engine.Compute(stencilWeak(), Weak)
			So(err, ShouldBeNil)
			for _, ideal := range result.Ideal() {
				So(ideal.Efficiency, ShouldEqual, 1.0)
			}
		})

		Convey("Work per worker beyond tolerance should be rejected", func() {
			observations := observation.Observations{
				{ProcessCount: 1, ProblemSize: 1000000, ExecutionTime: 0.05},
				{ProcessCount: 1, ProblemSize: 1500000, ExecutionTime: 0.07},
			}
			_, err := engine.Compute(observations, Weak)
			So(err, ShouldHaveSameTypeAs, &InconsistentProblemSizeError{})
			inconsistent := err.(*InconsistentProblemSizeError)
			So(inconsistent.Index, ShouldEqual, 1)
			So(inconsistent.Expected, ShouldEqual, 1e6)
			So(inconsistent.Actual, ShouldEqual, 1.5e6)
			So(err.Error(), ShouldContainSubstring, "tolerance 1%")
		})

		Convey("Work per worker within tolerance should be accepted", func() {
			observations := stencilWeak()
			observations[2].ProblemSize = 4.03e6

			_, err := engine.Compute(observations, Weak)
			So(err, ShouldBeNil)
		})

		Convey("Tolerance should be configurable", func() {
			observations := stencilWeak()
			observations[2].ProblemSize = 4.4e6

			_, err := engine.Compute(observations, Weak)
			So(err, ShouldNotBeNil)

			loose, err := NewEngine(Config{Tolerance: 0.2})
			So(err, ShouldBeNil)
			_, err = loose.Compute(observations, Weak)
			So(err, ShouldBeNil)
		})
	})
}

func TestInvalidInput(t *testing.T) {
	Convey("While computing from invalid input", t, func() {
		engine := newTestEngine()

		Convey("Empty input should fail", func() {
			_, err := engine.Compute(observation.Observations{}, Strong)
			So(err, ShouldHaveSameTypeAs, &observation.InvalidInputError{})
		})

		Convey("Zero execution time should fail before any division", func() {
			observations := stencilStrong()
			observations[1].ExecutionTime = 0
			_, err := engine.Compute(observations, Strong)
			So(err, ShouldHaveSameTypeAs, &observation.InvalidInputError{})
			So(err.(*observation.InvalidInputError).Index, ShouldEqual, 1)
		})

		Convey("Mixed tags should fail", func() {
			observations := stencilStrong()
			observations[4].Tag = "other"
			_, err := engine.Compute(observations, Strong)
			So(err, ShouldHaveSameTypeAs, &observation.InvalidInputError{})
			So(err.(*observation.InvalidInputError).Index, ShouldEqual, 4)
		})

		Convey("Repeated process count should fail", func() {
			observations := append(stencilStrong(), observation.Observation{ProcessCount: 2, ProblemSize: 1e6, ExecutionTime: 0.08, Tag: "stencil"})
			_, err := engine.Compute(observations, Strong)
			So(err, ShouldHaveSameTypeAs, &observation.InvalidInputError{})
			So(err.Error(), ShouldContainSubstring, "aggregate")
		})

		Convey("Unknown mode should fail", func() {
			_, err := engine.Compute(stencilStrong(), Mode(7))
			So(err, ShouldNotBeNil)
		})

		Convey("Negative tolerance should be rejected", func() {
			_, err := NewEngine(Config{Tolerance: -0.1})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestComputeByTag(t *testing.T) {
	Convey("While computing pivot strategies side by side", t, func() {
		engine := newTestEngine()
		observations := observation.Observations{
			{ProcessCount: 1, ProblemSize: 1e7, ExecutionTime: 10, Tag: "Strategy 1"},
			{ProcessCount: 1, ProblemSize: 1e7, ExecutionTime: 12, Tag: "Strategy 2"},
			{ProcessCount: 4, ProblemSize: 1e7, ExecutionTime: 3.39, Tag: "Strategy 1"},
			{ProcessCount: 4, ProblemSize: 1e7, ExecutionTime: 4.04, Tag: "Strategy 2"},
		}

		Convey("There should be one series per tag in appearance order", func() {
			results, err := engine.ComputeByTag(observations, Strong)
			So(err, ShouldBeNil)
			So(len(results), ShouldEqual, 2)
			So(results[0].Tag(), ShouldEqual, "Strategy 1")
			So(results[1].Tag(), ShouldEqual, "Strategy 2")
			So(results[0].Points()[1].Speedup, ShouldAlmostEqual, 10/3.39, floatTolerance)
			So(results[1].Baseline().ExecutionTime, ShouldEqual, 12)
		})

		Convey("Failure of a single tag should name the tag", func() {
			observations[3].ProblemSize = 2e7
			_, err := engine.ComputeByTag(observations, Strong)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "Strategy 2")
			So(errors.Cause(err), ShouldHaveSameTypeAs, &InconsistentProblemSizeError{})
		})
	})
}

func TestClassify(t *testing.T) {
	Convey("While classifying runs", t, func() {
		engine := newTestEngine()

		Convey("Identical problem sizes are strong scaling", func() {
			mode, err := engine.Classify(stencilStrong())
			So(err, ShouldBeNil)
			So(mode, ShouldEqual, Strong)
		})

		Convey("Constant work per worker is weak scaling", func() {
			mode, err := engine.Classify(stencilWeak())
			So(err, ShouldBeNil)
			So(mode, ShouldEqual, Weak)
		})

		Convey("Neither should fail", func() {
			observations := stencilWeak()
			observations[3].ProblemSize = 3e6
			_, err := engine.Classify(observations)
			So(err, ShouldHaveSameTypeAs, &InconsistentProblemSizeError{})
		})
	})
}

func TestSeriesResult(t *testing.T) {
	Convey("While reading a series", t, func() {
		engine := newTestEngine()
		result, err := engine.Compute(stencilStrong()[:2], Strong)
		So(err, ShouldBeNil)

		Convey("Points should be a copy", func() {
			points := result.Points()
			points[0].Speedup = 42
			So(result.Points()[0].Speedup, ShouldEqual, 1.0)
		})

		Convey("Table should keep full precision", func() {
			headers, rows := result.Table()
			So(headers, ShouldResemble, []string{"process_count", "speedup", "efficiency"})
			So(rows[0], ShouldResemble, []string{"1", "1", "1"})
			So(rows[1][0], ShouldEqual, "2")
			So(rows[1][1], ShouldStartWith, "1.876")
			So(len(rows[1][1]), ShouldBeGreaterThan, 6)
		})
	})
}

func TestParseMode(t *testing.T) {
	Convey("While parsing modes", t, func() {
		mode, err := ParseMode("Weak")
		So(err, ShouldBeNil)
		So(mode, ShouldEqual, Weak)
		So(mode.String(), ShouldEqual, "weak")

		mode, err = ParseMode(" strong ")
		So(err, ShouldBeNil)
		So(mode, ShouldEqual, Strong)

		_, err = ParseMode("gustafson")
		So(err, ShouldNotBeNil)
	})
}
