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

package logger

import (
	"io"
	"os"

	"github.com/intelsdi-x/scaling/pkg/conf"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// TimestampFormat is used by all text logs of the tool.
const TimestampFormat = "2006-01-02 15:04:05.100"

// Initialize configures logrus for a run of the tool: level from configuration,
// full timestamps and, when logPath is not empty, a copy of every entry in logPath.
// The returned closer must be called at exit (it is a no-op without a log file).
func Initialize(appName, runID, logPath string) (io.Closer, error) {
	logrus.SetLevel(conf.LogLevel())
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: TimestampFormat})

	var closer io.Closer = nopCloser{}
	if logPath != "" {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot open log file %q", logPath)
		}
		logrus.SetOutput(io.MultiWriter(logFile, os.Stderr))
		closer = logFile
	}

	logrus.WithFields(logrus.Fields{
		"app":    appName,
		"run_id": runID,
	}).Info("Starting")
	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
