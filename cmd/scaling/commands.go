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
	"os"

	"github.com/intelsdi-x/scaling/pkg/fixture"
	"github.com/intelsdi-x/scaling/pkg/observation"
	"github.com/intelsdi-x/scaling/pkg/report"
	"github.com/intelsdi-x/scaling/pkg/scaling"
	"github.com/intelsdi-x/scaling/pkg/store"
	"github.com/intelsdi-x/scaling/pkg/verify"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/cheggaaa/pb.v1"
)

const autoMode = "auto"

// source provides observations to analyse.
type source func() (observation.Observations, error)

func fileSource(path string) source {
	return func() (observation.Observations, error) {
		return observation.LoadFile(path)
	}
}

func storeSource(s store.Store, experimentID string) source {
	return func() (observation.Observations, error) {
		return s.Get(experimentID)
	}
}

// metrics computes a series per tag and renders them. In auto mode every tag
// is classified on its own.
func metrics(engine *scaling.Engine, renderer report.Renderer, load source, mode string, aggregate bool) error {
	observations, err := load()
	if err != nil {
		return err
	}

	if aggregate {
		aggregated, err := scaling.Aggregate(observations)
		if err != nil {
			return err
		}
		if err := renderer.RenderAggregates(aggregated); err != nil {
			return err
		}
		observations = scaling.Means(aggregated)
	}

	if mode != autoMode {
		m, err := scaling.ParseMode(mode)
		if err != nil {
			return err
		}
		results, err := engine.ComputeByTag(observations, m)
		if err != nil {
			return err
		}
		return renderer.RenderSeries(results)
	}

	results := []scaling.SeriesResult{}
	for _, group := range observations.GroupByTag() {
		m, err := engine.Classify(group)
		if err != nil {
			return errors.Wrapf(err, "cannot classify %q", group[0].Tag)
		}
		logrus.Debugf("Tag %q classified as %s scaling", group[0].Tag, m)

		result, err := engine.Compute(group, m)
		if err != nil {
			return errors.Wrapf(err, "cannot compute %s scaling of %q", m, group[0].Tag)
		}
		results = append(results, result)
	}
	return renderer.RenderSeries(results)
}

// verifyAll renders verdicts of paths and tells whether all of them are sorted.
func verifyAll(verifier *verify.Verifier, renderer report.Renderer, paths []string) (bool, error) {
	verdicts, err := verifier.VerifyFiles(paths)
	if err != nil {
		return false, err
	}

	sorted := true
	for i, verdict := range verdicts {
		if err := renderer.RenderVerdict(paths[i], verdict); err != nil {
			return false, err
		}
		sorted = sorted && verdict.Sorted
	}
	return sorted, nil
}

// newProgressBar returns a started bar counting bytes of all paths.
func newProgressBar(paths []string) (*pb.ProgressBar, error) {
	var total int64
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot stat %q", path)
		}
		total += info.Size()
	}

	bar := pb.New64(total).SetUnits(pb.U_BYTES)
	bar.Output = os.Stderr
	bar.ShowTimeLeft = true
	return bar.Start(), nil
}

func generate(path string) error {
	spec, err := fixture.DefaultSpec()
	if err != nil {
		return err
	}
	_, err = fixture.GenerateFile(path, spec)
	return err
}

func put(s store.Store, path, experimentID string) error {
	observations, err := observation.LoadFile(path)
	if err != nil {
		return err
	}
	return s.Put(experimentID, observations)
}

func export(s store.Store, experimentID, path string) error {
	format, err := observation.FormatFromPath(path)
	if err != nil {
		return err
	}
	observations, err := s.Get(experimentID)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "cannot create %q", path)
	}
	if err := observation.Encode(file, format, experimentID, observations); err != nil {
		file.Close()
		return err
	}
	return errors.Wrapf(file.Close(), "cannot close %q", path)
}
