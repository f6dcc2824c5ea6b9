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
	"github.com/intelsdi-x/scaling/pkg/scaling"
	"github.com/intelsdi-x/scaling/pkg/verify"
	"github.com/stretchr/testify/mock"
)

// Renderer mock
type Renderer struct {
	mock.Mock
}

// RenderSeries provides a mock function with given fields: results
func (_m *Renderer) RenderSeries(results []scaling.SeriesResult) error {
	ret := _m.Called(results)

	var r0 error
	if rf, ok := ret.Get(0).(func([]scaling.SeriesResult) error); ok {
		r0 = rf(results)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// RenderAggregates provides a mock function with given fields: aggregated
func (_m *Renderer) RenderAggregates(aggregated []scaling.AggregatedObservation) error {
	ret := _m.Called(aggregated)

	var r0 error
	if rf, ok := ret.Get(0).(func([]scaling.AggregatedObservation) error); ok {
		r0 = rf(aggregated)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// RenderVerdict provides a mock function with given fields: path, verdict
func (_m *Renderer) RenderVerdict(path string, verdict verify.Verdict) error {
	ret := _m.Called(path, verdict)

	var r0 error
	if rf, ok := ret.Get(0).(func(string, verify.Verdict) error); ok {
		r0 = rf(path, verdict)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
