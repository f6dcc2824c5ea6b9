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

// Package observation holds the measured data points of parallel algorithm runs.
package observation

import (
	"fmt"
	"sort"
)

// Observation is a single measurement: an algorithm variant (Tag) run with
// ProcessCount workers on a workload of ProblemSize took ExecutionTime seconds.
type Observation struct {
	ProcessCount  int     `json:"process_count" yaml:"process_count"`
	ProblemSize   float64 `json:"problem_size" yaml:"problem_size"`
	ExecutionTime float64 `json:"execution_time" yaml:"execution_time"`
	Tag           string  `json:"tag,omitempty" yaml:"tag,omitempty"`
}

// New returns a validated observation.
func New(processCount int, problemSize, executionTime float64, tag string) (Observation, error) {
	o := Observation{
		ProcessCount:  processCount,
		ProblemSize:   problemSize,
		ExecutionTime: executionTime,
		Tag:           tag,
	}
	if err := o.Validate(); err != nil {
		return Observation{}, err
	}
	return o, nil
}

// Validate checks that process count, problem size and execution time are positive.
func (o Observation) Validate() error {
	return o.validateAt(-1)
}

func (o Observation) validateAt(index int) error {
	switch {
	case o.ProcessCount < 1:
		return &InvalidInputError{Index: index, Observation: &o, Reason: "process count must be at least 1"}
	case !(o.ExecutionTime > 0):
		return &InvalidInputError{Index: index, Observation: &o, Reason: "execution time must be positive"}
	case !(o.ProblemSize > 0):
		return &InvalidInputError{Index: index, Observation: &o, Reason: "problem size must be positive"}
	}
	return nil
}

// WorkPerWorker is the problem size handled by a single process.
func (o Observation) WorkPerWorker() float64 {
	return o.ProblemSize / float64(o.ProcessCount)
}

func (o Observation) String() string {
	return fmt.Sprintf("{tag: %q, processes: %d, size: %g, time: %gs}", o.Tag, o.ProcessCount, o.ProblemSize, o.ExecutionTime)
}

// Observations is an ordered collection of measurements.
type Observations []Observation

// Validate checks every observation, the error cites the first invalid one.
func (obs Observations) Validate() error {
	if len(obs) == 0 {
		return &InvalidInputError{Index: -1, Reason: "no observations"}
	}
	for i, o := range obs {
		if err := o.validateAt(i); err != nil {
			return err
		}
	}
	return nil
}

// Sorted returns a copy ordered by ascending process count.
// Equal process counts keep their relative order.
func (obs Observations) Sorted() Observations {
	sorted := make(Observations, len(obs))
	copy(sorted, obs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ProcessCount < sorted[j].ProcessCount
	})
	return sorted
}

// Tags returns distinct tags in order of first appearance.
func (obs Observations) Tags() []string {
	seen := map[string]bool{}
	tags := []string{}
	for _, o := range obs {
		if !seen[o.Tag] {
			seen[o.Tag] = true
			tags = append(tags, o.Tag)
		}
	}
	return tags
}

// WithTag returns observations with given tag, preserving order.
func (obs Observations) WithTag(tag string) Observations {
	filtered := Observations{}
	for _, o := range obs {
		if o.Tag == tag {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// GroupByTag splits observations into runs, one per tag, in order of first appearance.
func (obs Observations) GroupByTag() []Observations {
	groups := []Observations{}
	for _, tag := range obs.Tags() {
		groups = append(groups, obs.WithTag(tag))
	}
	return groups
}
