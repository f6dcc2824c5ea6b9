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

// Package fixture writes integer sequences used as input for sorting programs
// and as ground truth for the verifier.
package fixture

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"

	"github.com/intelsdi-x/scaling/pkg/conf"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Order of generated values.
type Order string

const (
	Random     Order = "random"
	Ascending  Order = "ascending"
	Descending Order = "descending"
)

// ParseOrder returns the Order named by s.
func ParseOrder(s string) (Order, error) {
	switch o := Order(s); o {
	case Random, Ascending, Descending:
		return o, nil
	}
	return "", errors.Errorf("unknown order %q (want random, ascending or descending)", s)
}

// Spec describes a generated sequence. Tagged fields are fixture_* flags.
type Spec struct {
	flagPrefix string

	Count int64 `help:"Number of values to generate." default:"1000"`
	// Columns is the number of values per line. Zero puts all values on one line.
	Columns int   `help:"Values per line, 0 puts all values on one line." default:"0"`
	Min     int64 `help:"Smallest generated value." default:"1"`
	Max     int64 `help:"Largest generated value." default:"100"`
	Order   Order `help:"Order of generated values: random, ascending or descending." default:"random"`
	Seed    int64 `help:"Seed of the random generator." default:"1"`
}

// DefaultSpec returns a spec taken from flags.
func DefaultSpec() (Spec, error) {
	spec := Spec{flagPrefix: "fixture"}
	if err := conf.Process(&spec); err != nil {
		return Spec{}, errors.Wrap(err, "cannot read fixture flags")
	}
	return spec, nil
}

func init() {
	// Registers flags before command line is parsed.
	if _, err := DefaultSpec(); err != nil {
		panic(err)
	}
}

// Validate checks that spec describes a sequence that can be generated.
func (s Spec) Validate() error {
	if s.Count < 0 {
		return errors.Errorf("count must not be negative, got %d", s.Count)
	}
	if s.Columns < 0 {
		return errors.Errorf("columns must not be negative, got %d", s.Columns)
	}
	if s.Min > s.Max {
		return errors.Errorf("min %d is greater than max %d", s.Min, s.Max)
	}
	if _, err := ParseOrder(string(s.Order)); err != nil {
		return err
	}
	return nil
}

// Generate writes the sequence described by spec to w and returns the number of bytes written.
// Ascending and descending sequences are spread evenly over [Min, Max] and need no sorting.
func Generate(w io.Writer, spec Spec) (int64, error) {
	if err := spec.Validate(); err != nil {
		return 0, err
	}

	counter := &countingWriter{w: w}
	buffered := bufio.NewWriter(counter)
	value := valueFunc(spec)
	buf := make([]byte, 0, 24)

	for i := int64(0); i < spec.Count; i++ {
		if i > 0 {
			separator := byte(' ')
			if spec.Columns > 0 && i%int64(spec.Columns) == 0 {
				separator = '\n'
			}
			if err := buffered.WriteByte(separator); err != nil {
				return counter.n, errors.Wrap(err, "cannot write separator")
			}
		}
		buf = strconv.AppendInt(buf[:0], value(i), 10)
		if _, err := buffered.Write(buf); err != nil {
			return counter.n, errors.Wrapf(err, "cannot write value %d", i)
		}
	}
	if spec.Count > 0 {
		if err := buffered.WriteByte('\n'); err != nil {
			return counter.n, errors.Wrap(err, "cannot write final newline")
		}
	}
	if err := buffered.Flush(); err != nil {
		return counter.n, errors.Wrap(err, "cannot flush sequence")
	}
	return counter.n, nil
}

// GenerateFile writes the sequence to a new file at path.
func GenerateFile(path string, spec Spec) (int64, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, errors.Wrapf(err, "cannot create %q", path)
	}

	written, err := Generate(file, spec)
	if err != nil {
		file.Close()
		return written, errors.Wrapf(err, "cannot generate %q", path)
	}
	if err := file.Close(); err != nil {
		return written, errors.Wrapf(err, "cannot close %q", path)
	}

	logrus.WithFields(logrus.Fields{
		"path":  path,
		"count": spec.Count,
		"order": spec.Order,
		"bytes": written,
	}).Info("Generated sequence")
	return written, nil
}

func valueFunc(spec Spec) func(i int64) int64 {
	span := uint64(spec.Max) - uint64(spec.Min)
	switch spec.Order {
	case Ascending:
		return func(i int64) int64 { return int64(uint64(spec.Min) + spread(i, spec.Count, span)) }
	case Descending:
		return func(i int64) int64 { return int64(uint64(spec.Max) - spread(i, spec.Count, span)) }
	}
	random := rand.New(rand.NewSource(spec.Seed))
	return func(int64) int64 {
		if span == ^uint64(0) {
			return int64(random.Uint64())
		}
		return int64(uint64(spec.Min) + uniform(random, span+1))
	}
}

// spread maps i in [0, count) onto [0, span] without decreasing.
// Values repeat when count exceeds span+1.
func spread(i, count int64, span uint64) uint64 {
	if count <= 1 {
		return 0
	}
	if i == count-1 {
		return span
	}
	return uint64(float64(span) * (float64(i) / float64(count-1)))
}

// uniform returns a value in [0, n) without modulo bias.
func uniform(random *rand.Rand, n uint64) uint64 {
	if n&(n-1) == 0 {
		return random.Uint64() & (n - 1)
	}
	limit := ^uint64(0) - (^uint64(0) % n)
	for {
		v := random.Uint64()
		if v < limit {
			return v % n
		}
	}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func (s Spec) String() string {
	return fmt.Sprintf("%d %s values in [%d, %d]", s.Count, s.Order, s.Min, s.Max)
}
