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

package observation

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Format of an observation file.
type Format string

// Supported observation file formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// CSV columns. The header row is required, column order is free.
const (
	ColumnTag           = "tag"
	ColumnProcessCount  = "process_count"
	ColumnProblemSize   = "problem_size"
	ColumnExecutionTime = "execution_time"
)

// Document is the YAML/JSON layout of an observation file.
type Document struct {
	Experiment   string       `json:"experiment,omitempty" yaml:"experiment,omitempty"`
	Observations Observations `json:"observations" yaml:"observations"`
}

// FormatFromPath guesses the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".csv":
		return FormatCSV, nil
	}
	return "", errors.Errorf("cannot guess observation format of %q", path)
}

// LoadFile reads and validates observations from path.
func LoadFile(path string) (Observations, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open observation file %q", path)
	}
	defer file.Close()

	observations, err := Decode(file, format)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot load observations from %q", path)
	}
	return observations, nil
}

// Decode reads and validates observations in given format.
func Decode(r io.Reader, format Format) (Observations, error) {
	var (
		observations Observations
		err          error
	)

	switch format {
	case FormatYAML:
		observations, err = decodeYAML(r)
	case FormatJSON:
		observations, err = decodeJSON(r)
	case FormatCSV:
		observations, err = decodeCSV(r)
	default:
		return nil, errors.Errorf("unsupported observation format %q", format)
	}
	if err != nil {
		return nil, err
	}

	if err := observations.Validate(); err != nil {
		return nil, err
	}
	return observations, nil
}

// rawYAMLDocument defers decoding of observations so a type error can cite its row.
type rawYAMLDocument struct {
	Experiment   string      `yaml:"experiment,omitempty"`
	Observations []yaml.Node `yaml:"observations"`
}

func decodeYAML(r io.Reader) (Observations, error) {
	document := rawYAMLDocument{}
	err := yaml.NewDecoder(r).Decode(&document)
	if err == io.EOF {
		return Observations{}, nil
	}
	if typeErr, ok := err.(*yaml.TypeError); ok {
		return nil, &InvalidInputError{Index: -1, Reason: strings.Join(typeErr.Errors, "; ")}
	}
	if err != nil {
		return nil, errors.Wrap(err, "cannot decode YAML observations")
	}

	observations := make(Observations, 0, len(document.Observations))
	for i, node := range document.Observations {
		var o Observation
		if err := node.Decode(&o); err != nil {
			if typeErr, ok := err.(*yaml.TypeError); ok {
				return nil, &InvalidInputError{Index: i, Reason: fmt.Sprintf("line %d: %s", node.Line, strings.Join(typeErr.Errors, "; "))}
			}
			return nil, errors.Wrapf(err, "cannot decode YAML observation %d", i)
		}
		observations = append(observations, o)
	}
	return observations, nil
}

type rawJSONDocument struct {
	Experiment   string            `json:"experiment,omitempty"`
	Observations []json.RawMessage `json:"observations"`
}

func decodeJSON(r io.Reader) (Observations, error) {
	document := rawJSONDocument{}
	err := json.NewDecoder(r).Decode(&document)
	if err == io.EOF {
		return Observations{}, nil
	}
	if typeErr, ok := err.(*json.UnmarshalTypeError); ok {
		return nil, &InvalidInputError{Index: -1, Reason: typeErr.Error()}
	}
	if err != nil {
		return nil, errors.Wrap(err, "cannot decode JSON observations")
	}

	observations := make(Observations, 0, len(document.Observations))
	for i, raw := range document.Observations {
		var o Observation
		if err := json.Unmarshal(raw, &o); err != nil {
			if typeErr, ok := err.(*json.UnmarshalTypeError); ok {
				return nil, &InvalidInputError{Index: i, Reason: fmt.Sprintf("%s: cannot use %s as %s", typeErr.Field, typeErr.Value, typeErr.Type)}
			}
			return nil, errors.Wrapf(err, "cannot decode JSON observation %d", i)
		}
		observations = append(observations, o)
	}
	return observations, nil
}

func decodeCSV(r io.Reader) (Observations, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return Observations{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "cannot read CSV header")
	}

	columns := map[string]int{}
	for i, name := range header {
		columns[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, required := range []string{ColumnProcessCount, ColumnProblemSize, ColumnExecutionTime} {
		if _, ok := columns[required]; !ok {
			return nil, errors.Errorf("CSV header lacks %q column", required)
		}
	}

	observations := Observations{}
	for row := 0; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "cannot read CSV row %d", row)
		}

		o := Observation{}
		if i, ok := columns[ColumnTag]; ok {
			o.Tag = strings.TrimSpace(record[i])
		}

		processCount, err := strconv.Atoi(strings.TrimSpace(record[columns[ColumnProcessCount]]))
		if err != nil {
			return nil, &InvalidInputError{Index: row, Reason: "process_count is not an integer: " + record[columns[ColumnProcessCount]]}
		}
		o.ProcessCount = processCount

		if o.ProblemSize, err = parseFloat(record, columns[ColumnProblemSize], ColumnProblemSize, row); err != nil {
			return nil, err
		}
		if o.ExecutionTime, err = parseFloat(record, columns[ColumnExecutionTime], ColumnExecutionTime, row); err != nil {
			return nil, err
		}

		observations = append(observations, o)
	}
	return observations, nil
}

func parseFloat(record []string, column int, name string, row int) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(record[column]), 64)
	if err != nil {
		return 0, &InvalidInputError{Index: row, Reason: name + " is not a number: " + record[column]}
	}
	return value, nil
}

// Encode writes observations in given format.
func Encode(w io.Writer, format Format, experiment string, observations Observations) error {
	switch format {
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()
		return errors.Wrap(encoder.Encode(Document{Experiment: experiment, Observations: observations}), "cannot encode YAML observations")
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return errors.Wrap(encoder.Encode(Document{Experiment: experiment, Observations: observations}), "cannot encode JSON observations")
	case FormatCSV:
		writer := csv.NewWriter(w)
		writer.Write([]string{ColumnTag, ColumnProcessCount, ColumnProblemSize, ColumnExecutionTime})
		for _, o := range observations {
			writer.Write([]string{
				o.Tag,
				strconv.Itoa(o.ProcessCount),
				strconv.FormatFloat(o.ProblemSize, 'g', -1, 64),
				strconv.FormatFloat(o.ExecutionTime, 'g', -1, 64),
			})
		}
		writer.Flush()
		return errors.Wrap(writer.Error(), "cannot encode CSV observations")
	}
	return errors.Errorf("unsupported observation format %q", format)
}
