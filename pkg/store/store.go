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

// Package store keeps observation sets in Cassandra keyed by experiment id, so
// results gathered on a cluster can be analysed later.
package store

import "github.com/intelsdi-x/scaling/pkg/observation"

// Store persists observations of experiments.
type Store interface {
	// Put replaces observations of the experiment. It is not atomic: on error
	// the experiment may hold a mix of previous and new observations.
	Put(experimentID string, observations observation.Observations) error
	// Get returns observations of the experiment in the order they were put.
	Get(experimentID string) (observation.Observations, error)
	// Clear deletes observations of the experiment.
	Clear(experimentID string) error
	// Experiments lists ids of stored experiments.
	Experiments() ([]string, error)
	Close()
}
