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
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/intelsdi-x/scaling/pkg/conf"
	"github.com/intelsdi-x/scaling/pkg/logger"
	"github.com/intelsdi-x/scaling/pkg/report"
	"github.com/intelsdi-x/scaling/pkg/scaling"
	"github.com/intelsdi-x/scaling/pkg/store"
	"github.com/intelsdi-x/scaling/pkg/utils/errutil"
	"github.com/intelsdi-x/scaling/pkg/verify"
	"github.com/sirupsen/logrus"
)

const (
	// exUnsorted is returned when a verified file is not sorted.
	exUnsorted = 1
	// exUsage follows sysexits.h.
	exUsage = 64
)

var (
	dumpConfigFlag = conf.NewBoolFlag("config-dump", "Dump configuration as environment script.", false)
	logFileFlag    = conf.NewStringFlag("log_file", "Copy log entries to this file.", "")

	metricsCmd       = conf.Command("metrics", "Compute speedup and efficiency of measured runs.")
	metricsFile      = metricsCmd.Arg("file", "Observations file (.yaml, .json or .csv).").Required().ExistingFile()
	metricsMode      = metricsCmd.Flag("mode", "Scaling mode: strong, weak or auto.").Default("auto").Enum("strong", "weak", "auto")
	metricsAggregate = metricsCmd.Flag("aggregate", "Average repeated measurements of the same configuration.").Bool()

	verifyCmd   = conf.Command("verify", "Check that files hold numbers sorted in ascending order.")
	verifyFiles = verifyCmd.Arg("files", "Files with whitespace separated numbers.").Required().ExistingFiles()
	verifyFast  = verifyCmd.Flag("fast", "Stop at the first out of order pair.").Bool()

	generateCmd  = conf.Command("generate", "Write a sequence of integers configured by fixture_* flags.")
	generateFile = generateCmd.Arg("file", "Output file.").Required().String()

	storeCmd = conf.Command("store", "Keep observations in Cassandra.")

	storePutCmd          = storeCmd.Command("put", "Store observations of an experiment.")
	storePutFile         = storePutCmd.Arg("file", "Observations file (.yaml, .json or .csv).").Required().ExistingFile()
	storePutExperimentID = storePutCmd.Flag("experiment_id", "Experiment ID, generated when empty.").String()

	storeShowCmd          = storeCmd.Command("show", "Compute metrics of a stored experiment.")
	storeShowExperimentID = storeShowCmd.Arg("experiment_id", "Experiment ID.").Required().String()
	storeShowMode         = storeShowCmd.Flag("mode", "Scaling mode: strong, weak or auto.").Default("auto").Enum("strong", "weak", "auto")

	storeExportCmd          = storeCmd.Command("export", "Write observations of a stored experiment to a file.")
	storeExportExperimentID = storeExportCmd.Arg("experiment_id", "Experiment ID.").Required().String()
	storeExportFile         = storeExportCmd.Arg("file", "Output file (.yaml, .json or .csv).").Required().String()

	storeListCmd = storeCmd.Command("list", "List stored experiment IDs.")

	storeClearCmd          = storeCmd.Command("clear", "Delete observations of an experiment.")
	storeClearExperimentID = storeClearCmd.Arg("experiment_id", "Experiment ID.").Required().String()
)

// configure parses flags and dumps configuration when requested.
// Note: exits after dumping.
func configure() string {
	conf.SetAppName("scaling")
	conf.SetHelp("Scalability metrics of parallel programs and verification of their sorted output.")

	command, err := conf.ParseFlags()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exUsage)
	}
	logrus.SetLevel(conf.LogLevel())

	if dumpConfigFlag.Value() {
		fmt.Println(conf.DumpConfig())
		os.Exit(0)
	}
	return command
}

func newRenderer() report.Renderer {
	renderer, err := report.New(report.Format(report.FormatFlag.Value()), os.Stdout, report.PrecisionFlag.Value())
	errutil.CheckWithContext(err, "Cannot create renderer")
	return renderer
}

func newEngine() *scaling.Engine {
	engine, err := scaling.NewEngine(scaling.DefaultConfig())
	errutil.CheckWithContext(err, "Cannot create metrics engine")
	return engine
}

func newStore() store.Store {
	cassandra, err := store.NewCassandra(store.DefaultCassandraConfig())
	errutil.CheckWithContext(err, "Cannot connect to Cassandra")
	return cassandra
}

func main() {
	command := configure()

	runID := uuid.New().String()
	closer, err := logger.Initialize(conf.AppName(), runID, logFileFlag.Value())
	errutil.CheckWithContext(err, "Cannot initialize logger")
	defer closer.Close()

	switch command {
	case metricsCmd.FullCommand():
		err = metrics(newEngine(), newRenderer(), fileSource(*metricsFile), *metricsMode, *metricsAggregate)
		errutil.CheckWithContext(err, "Cannot compute metrics")

	case verifyCmd.FullCommand():
		options := verify.DefaultOptions()
		if *verifyFast {
			options.Mode = verify.EarlyExit
		}
		// Progress bar only when logs stay quiet.
		if conf.LogLevel() == logrus.ErrorLevel {
			bar, err := newProgressBar(*verifyFiles)
			errutil.CheckWithContext(err, "Cannot verify")
			options.Progress = bar
		}
		sorted, err := verifyAll(verify.New(options), newRenderer(), *verifyFiles)
		if options.Progress != nil {
			options.Progress.Finish()
		}
		errutil.CheckWithContext(err, "Cannot verify")
		if !sorted {
			closer.Close()
			os.Exit(exUnsorted)
		}

	case generateCmd.FullCommand():
		err = generate(*generateFile)
		errutil.CheckWithContext(err, "Cannot generate sequence")

	case storePutCmd.FullCommand():
		experimentID := *storePutExperimentID
		if experimentID == "" {
			experimentID = uuid.New().String()
		}
		s := newStore()
		defer s.Close()
		err = put(s, *storePutFile, experimentID)
		errutil.CheckWithContext(err, "Cannot store observations")
		fmt.Println(experimentID)

	case storeShowCmd.FullCommand():
		s := newStore()
		defer s.Close()
		err = metrics(newEngine(), newRenderer(), storeSource(s, *storeShowExperimentID), *storeShowMode, false)
		errutil.CheckWithContext(err, "Cannot compute metrics of stored experiment")

	case storeExportCmd.FullCommand():
		s := newStore()
		defer s.Close()
		err = export(s, *storeExportExperimentID, *storeExportFile)
		errutil.CheckWithContext(err, "Cannot export observations")

	case storeListCmd.FullCommand():
		s := newStore()
		defer s.Close()
		experiments, err := s.Experiments()
		errutil.CheckWithContext(err, "Cannot list experiments")
		for _, experimentID := range experiments {
			fmt.Println(experimentID)
		}

	case storeClearCmd.FullCommand():
		s := newStore()
		defer s.Close()
		errutil.CheckWithContext(s.Clear(*storeClearExperimentID), "Cannot clear experiment")
	}
}
