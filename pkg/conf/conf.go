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

package conf

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

// EnvironmentPrefix is prepended to upper-cased flag names to get their environment variable.
const EnvironmentPrefix = "SCALING"

var (
	app = kingpin.New("scaling", "Scalability metrics and sorted output verification for parallel algorithm experiments.")

	logLevelFlag = NewStringFlag(
		"log",
		"Log level: debug, info, warn, error, fatal, panic",
		"error",
	)
	isEnvParsed = false
)

// SetHelp sets the help message for the CLI.
func SetHelp(help string) {
	app.Help = help
}

// SetAppName sets application name for CLI output.
func SetAppName(name string) {
	app.Name = name
}

// AppName returns specified app name.
func AppName() string {
	return app.Name
}

// Command registers a sub command on the shared application.
// Positional arguments are attached directly to the returned clause.
func Command(name, help string) *kingpin.CmdClause {
	return app.Command(name, help)
}

// LogLevel returns configured logLevel from input option or env variable.
// If it cannot parse the log level, it returns default value.
func LogLevel() logrus.Level {
	level, err := logrus.ParseLevel(logLevelFlag.Value())
	if err == nil {
		return level
	}

	level, err = logrus.ParseLevel(logLevelFlag.defaultValue)
	if err == nil {
		return level
	}

	// Programmer error.
	panic(errors.Wrap(err, "parsing log level failed"))
}

// ParseFlags parses the command line of the process and the environment.
// Returns the full name of the selected command, if any.
func ParseFlags() (string, error) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses given arguments and the environment.
func ParseArgs(args []string) (string, error) {
	command, err := app.Parse(args)
	if err != nil {
		return "", errors.Wrap(err, "could not parse command line flags")
	}
	isEnvParsed = true
	return command, nil
}

// ParseEnv parses only the environment.
func ParseEnv() error {
	_, err := app.Parse([]string{})
	if err != nil {
		return errors.Wrap(err, "could not parse environment flags")
	}
	isEnvParsed = true
	return nil
}

// FlagDefinition describes a registered flag with its current value.
type FlagDefinition struct {
	Name, Value, Default, Help string
}

// getFlagsDefinition returns registered flags sorted by name.
// Names containing a dash are CLI only and are not exported to the environment.
func getFlagsDefinition() []FlagDefinition {
	flags := []FlagDefinition{}
	for name, flag := range definedFlags {
		if strings.Contains(name, "-") {
			continue
		}
		flags = append(flags, FlagDefinition{
			Name:    name,
			Value:   flag.valueString(),
			Default: flag.defaultString(),
			Help:    flag.help(),
		})
	}
	sort.Slice(flags, func(i, j int) bool { return flags[i].Name < flags[j].Name })
	return flags
}

// DumpConfig dumps environment based configuration with current values of flags.
func DumpConfig() string {
	return DumpConfigMap(nil)
}

// DumpConfigMap dumps environment based configuration with current values overwritten by given flagMap.
// Includes "allexport" directives for bash.
func DumpConfigMap(flagMap map[string]string) string {
	buffer := &bytes.Buffer{}

	buffer.WriteString("# Export all values.\n")
	buffer.WriteString("set -o allexport\n")

	for _, fd := range getFlagsDefinition() {
		fmt.Fprintf(buffer, "\n# %s\n", fd.Help)
		if fd.Default != "" {
			fmt.Fprintf(buffer, "# Default: %s\n", fd.Default)
		}

		value := fd.Value
		if mapValue, ok := flagMap[fd.Name]; ok {
			value = mapValue
		}

		fmt.Fprintf(buffer, "%s_%s=%v\n", EnvironmentPrefix, strings.ToUpper(fd.Name), value)
	}

	buffer.WriteString("set +o allexport")
	return buffer.String()
}

// GetFlags returns flags as map with current values.
func GetFlags() map[string]string {
	flagsMap := map[string]string{}
	for _, flag := range getFlagsDefinition() {
		flagsMap[flag.Name] = flag.Value
	}
	return flagsMap
}
