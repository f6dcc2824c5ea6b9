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

package main

import (
	"io/ioutil"
	"os"
	"path"
	"testing"

	"github.com/intelsdi-x/scaling/pkg/observation"
	"github.com/intelsdi-x/scaling/pkg/report/mocks"
	"github.com/intelsdi-x/scaling/pkg/scaling"
	storemocks "github.com/intelsdi-x/scaling/pkg/store/mocks"
	"github.com/intelsdi-x/scaling/pkg/verify"
	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/mock"
)

var mixed = observation.Observations{
	{ProcessCount: 1, ProblemSize: 1e6, ExecutionTime: 0.1535, Tag: "strong"},
	{ProcessCount: 2, ProblemSize: 1e6, ExecutionTime: 0.0818, Tag: "strong"},
	{ProcessCount: 1, ProblemSize: 1e6, ExecutionTime: 0.0534, Tag: "weak"},
	{ProcessCount: 2, ProblemSize: 2e6, ExecutionTime: 0.0636, Tag: "weak"},
}

func staticSource(observations observation.Observations) source {
	return func() (observation.Observations, error) { return observations, nil }
}

func TestMetrics(t *testing.T) {
	Convey("While computing metrics", t, func() {
		engine, err := scaling.NewEngine(scaling.DefaultConfig())
		So(err, ShouldBeNil)
		renderer := &mocks.Renderer{}

		Convey("Auto mode should classify every tag on its own", func() {
			var rendered []scaling.SeriesResult
			renderer.On("RenderSeries", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
				rendered = args.Get(0).([]scaling.SeriesResult)
			}).Once()

			So(metrics(engine, renderer, staticSource(mixed), autoMode, false), ShouldBeNil)
			So(rendered, ShouldHaveLength, 2)
			So(rendered[0].Tag(), ShouldEqual, "strong")
			So(rendered[0].Mode(), ShouldEqual, scaling.Strong)
			So(rendered[1].Tag(), ShouldEqual, "weak")
			So(rendered[1].Mode(), ShouldEqual, scaling.Weak)
			renderer.AssertExpectations(t)
		})

		Convey("Explicit mode should apply to all tags", func() {
			err := metrics(engine, renderer, staticSource(mixed), "strong", false)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "weak")
			renderer.AssertNotCalled(t, "RenderSeries", mock.Anything)
		})

		Convey("Aggregation should render means before series", func() {
			repeated := append(observation.Observations{
				{ProcessCount: 2, ProblemSize: 1e6, ExecutionTime: 0.0820, Tag: "strong"},
			}, mixed[:2]...)
			renderer.On("RenderAggregates", mock.MatchedBy(func(aggregated []scaling.AggregatedObservation) bool {
				return len(aggregated) == 2 && aggregated[0].Repetitions == 2
			})).Return(nil).Once()
			renderer.On("RenderSeries", mock.MatchedBy(func(results []scaling.SeriesResult) bool {
				return len(results) == 1 && results[0].Len() == 2
			})).Return(nil).Once()

			So(metrics(engine, renderer, staticSource(repeated), "strong", true), ShouldBeNil)
			renderer.AssertExpectations(t)
		})

		Convey("Source failure should be returned", func() {
			failing := func() (observation.Observations, error) { return nil, errors.New("no data") }
			So(metrics(engine, renderer, failing, autoMode, false), ShouldNotBeNil)
		})
	})
}

func TestVerifyAll(t *testing.T) {
	Convey("While verifying files", t, func() {
		dir, err := ioutil.TempDir("", "scaling")
		So(err, ShouldBeNil)
		defer os.RemoveAll(dir)

		sorted := path.Join(dir, "sorted.txt")
		unsorted := path.Join(dir, "unsorted.txt")
		So(ioutil.WriteFile(sorted, []byte("1 2 3"), 0644), ShouldBeNil)
		So(ioutil.WriteFile(unsorted, []byte("1 2 3 5 4 6 7 0 8"), 0644), ShouldBeNil)

		renderer := &mocks.Renderer{}
		renderer.On("RenderVerdict", mock.Anything, mock.Anything).Return(nil)
		verifier := verify.New(verify.Options{})

		Convey("All sorted files should pass", func() {
			ok, err := verifyAll(verifier, renderer, []string{sorted, sorted})
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
			renderer.AssertNumberOfCalls(t, "RenderVerdict", 2)
		})

		Convey("One unsorted file should fail and every verdict should be rendered", func() {
			ok, err := verifyAll(verifier, renderer, []string{unsorted, sorted})
			So(err, ShouldBeNil)
			So(ok, ShouldBeFalse)
			renderer.AssertCalled(t, "RenderVerdict", unsorted, verify.Verdict{Sorted: false, Length: 9, FirstViolation: 3, Complete: true})
			renderer.AssertCalled(t, "RenderVerdict", sorted, verify.Verdict{Sorted: true, Length: 3, FirstViolation: verify.NoViolation, Complete: true})
		})
	})
}

func TestStoreCommands(t *testing.T) {
	Convey("While using store commands", t, func() {
		dir, err := ioutil.TempDir("", "scaling")
		So(err, ShouldBeNil)
		defer os.RemoveAll(dir)

		s := &storemocks.Store{}

		Convey("Put should store loaded observations", func() {
			file := path.Join(dir, "observations.csv")
			So(ioutil.WriteFile(file, []byte("tag,process_count,problem_size,execution_time\nstrong,1,1000000,0.1535\nstrong,2,1000000,0.0818\n"), 0644), ShouldBeNil)
			s.On("Put", "experiment", mixed[:2]).Return(nil).Once()

			So(put(s, file, "experiment"), ShouldBeNil)
			s.AssertExpectations(t)
		})

		Convey("Export should write a file loadable again", func() {
			s.On("Get", "experiment").Return(mixed, nil).Once()
			file := path.Join(dir, "export.yaml")

			So(export(s, "experiment", file), ShouldBeNil)
			loaded, err := observation.LoadFile(file)
			So(err, ShouldBeNil)
			So(loaded, ShouldResemble, mixed)
		})

		Convey("Export of unknown experiment should fail before creating a file", func() {
			s.On("Get", "missing").Return(nil, errors.New("no observations")).Once()
			file := path.Join(dir, "missing.json")

			So(export(s, "missing", file), ShouldNotBeNil)
			_, err := os.Stat(file)
			So(os.IsNotExist(err), ShouldBeTrue)
		})

		Convey("Stored experiment should be a metrics source", func() {
			s.On("Get", "experiment").Return(mixed, nil).Once()
			observations, err := storeSource(s, "experiment")()
			So(err, ShouldBeNil)
			So(observations, ShouldHaveLength, 4)
		})
	})
}
