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

package mocks

import (
	"github.com/intelsdi-x/scaling/pkg/observation"
	"github.com/stretchr/testify/mock"
)

// Store mock
type Store struct {
	mock.Mock
}

// Put provides a mock function with given fields: experimentID, observations
func (_m *Store) Put(experimentID string, observations observation.Observations) error {
	ret := _m.Called(experimentID, observations)

	var r0 error
	if rf, ok := ret.Get(0).(func(string, observation.Observations) error); ok {
		r0 = rf(experimentID, observations)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Get provides a mock function with given fields: experimentID
func (_m *Store) Get(experimentID string) (observation.Observations, error) {
	ret := _m.Called(experimentID)

	var r0 observation.Observations
	if rf, ok := ret.Get(0).(func(string) observation.Observations); ok {
		r0 = rf(experimentID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(observation.Observations)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(experimentID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Clear provides a mock function with given fields: experimentID
func (_m *Store) Clear(experimentID string) error {
	ret := _m.Called(experimentID)

	var r0 error
	if rf, ok := ret.Get(0).(func(string) error); ok {
		r0 = rf(experimentID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Experiments provides a mock function with given fields:
func (_m *Store) Experiments() ([]string, error) {
	ret := _m.Called()

	var r0 []string
	if rf, ok := ret.Get(0).(func() []string); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]string)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func() error); ok {
		r1 = rf()
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Close provides a mock function with given fields:
func (_m *Store) Close() {
	_m.Called()
}
