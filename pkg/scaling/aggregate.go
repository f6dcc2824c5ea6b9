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
	"github.com/intelsdi-x/scaling/pkg/observation"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

// AggregatedObservation is the mean of repeated measurements of the same
// configuration (tag, process count and problem size).
type AggregatedObservation struct {
	observation.Observation
	Repetitions int
	// StdDev is the population standard deviation of execution times.
	StdDev float64
}

type aggregationKey struct {
	tag          string
	processCount int
	problemSize  float64
}

// Aggregate collapses repeated measurements into their mean execution time.
// Configurations keep the order of their first appearance.
func Aggregate(observations observation.Observations) ([]AggregatedObservation, error) {
	if err := observations.Validate(); err != nil {
		return nil, err
	}

	keys := []aggregationKey{}
	times := map[aggregationKey][]float64{}
	for _, o := range observations {
		key := aggregationKey{tag: o.Tag, processCount: o.ProcessCount, problemSize: o.ProblemSize}
		if _, ok := times[key]; !ok {
			keys = append(keys, key)
		}
		times[key] = append(times[key], o.ExecutionTime)
	}

	aggregated := make([]AggregatedObservation, 0, len(keys))
	for _, key := range keys {
		mean, err := stats.Mean(times[key])
		if err != nil {
			return nil, errors.Wrap(err, "mean computation failed")
		}
		stdDev, err := stats.StandardDeviation(times[key])
		if err != nil {
			return nil, errors.Wrap(err, "standard deviation computation failed")
		}

		aggregated = append(aggregated, AggregatedObservation{
			Observation: observation.Observation{
				ProcessCount:  key.processCount,
				ProblemSize:   key.problemSize,
				ExecutionTime: mean,
				Tag:           key.tag,
			},
			Repetitions: len(times[key]),
			StdDev:      stdDev,
		})
	}
	return aggregated, nil
}

// Means returns aggregated observations as plain observations ready for Compute.
func Means(aggregated []AggregatedObservation) observation.Observations {
	observations := make(observation.Observations, 0, len(aggregated))
	for _, a := range aggregated {
		observations = append(observations, a.Observation)
	}
	return observations
}
