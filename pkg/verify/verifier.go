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

// Package verify checks that a whitespace separated sequence of numbers is sorted
// in ascending order. Input is scanned forward once and only the previous value
// is kept, so arbitrarily large algorithm outputs can be verified in constant memory.
package verify

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gopkg.in/cheggaaa/pb.v1"
)

// ScanMode selects how far a verification reads.
type ScanMode int

const (
	// FullScan reads the whole input even after a violation so Length is exact.
	FullScan ScanMode = iota
	// EarlyExit stops at the first violation. Only Sorted and FirstViolation are
	// meaningful when the verdict is not Complete.
	EarlyExit
)

func (m ScanMode) String() string {
	if m == EarlyExit {
		return "early-exit"
	}
	return "full-scan"
}

// DefaultMaxTokenSize bounds the memory used by a single token.
const DefaultMaxTokenSize = 4096

// Options of a Verifier.
type Options struct {
	Mode ScanMode
	// MaxTokenSize is the longest accepted token in bytes. Zero means DefaultMaxTokenSize.
	MaxTokenSize int
	// Progress, when set, is advanced by bytes read from verified files.
	Progress *pb.ProgressBar
}

// DefaultOptions returns options taken from flags.
func DefaultOptions() Options {
	mode := FullScan
	if EarlyExitFlag.Value() {
		mode = EarlyExit
	}
	return Options{Mode: mode, MaxTokenSize: DefaultMaxTokenSize}
}

// Verifier checks ascending order of numeric sequences. It holds only its
// options and is safe for concurrent use.
type Verifier struct {
	options Options
}

// New returns a Verifier.
func New(options Options) *Verifier {
	if options.MaxTokenSize <= 0 {
		options.MaxTokenSize = DefaultMaxTokenSize
	}
	return &Verifier{options: options}
}

// Verify scans r and reports whether its numbers are in ascending order.
// Equal neighbours are in order. A token that is not a decimal integer or float
// fails the verification with MalformedInputError.
func (v *Verifier) Verify(r io.Reader) (Verdict, error) {
	scanner := bufio.NewScanner(r)
	initialSize := v.options.MaxTokenSize
	if initialSize > bufio.MaxScanTokenSize {
		initialSize = bufio.MaxScanTokenSize
	}
	scanner.Buffer(make([]byte, 0, initialSize), v.options.MaxTokenSize)
	scanner.Split(bufio.ScanWords)

	verdict := Verdict{Sorted: true, FirstViolation: NoViolation, Complete: true}
	var previous number

	for index := int64(0); scanner.Scan(); index++ {
		current, err := parseNumber(scanner.Text())
		if err != nil {
			return Verdict{}, &MalformedInputError{Index: index, Token: scanner.Text()}
		}

		if index > 0 && current.less(previous) && verdict.Sorted {
			verdict.Sorted = false
			verdict.FirstViolation = index - 1
			if v.options.Mode == EarlyExit {
				verdict.Length = index + 1
				verdict.Complete = false
				return verdict, nil
			}
		}

		previous = current
		verdict.Length = index + 1
	}

	if err := scanner.Err(); err != nil {
		return Verdict{}, errors.Wrapf(err, "cannot read token %d", verdict.Length)
	}
	return verdict, nil
}

// VerifyFile verifies the file at path.
func (v *Verifier) VerifyFile(path string) (Verdict, error) {
	file, err := os.Open(path)
	if err != nil {
		return Verdict{}, errors.Wrapf(err, "cannot open %q", path)
	}
	defer file.Close()

	var reader io.Reader = file
	if v.options.Progress != nil {
		reader = v.options.Progress.NewProxyReader(file)
	}

	verdict, err := v.Verify(bufio.NewReaderSize(reader, 1<<16))
	if err != nil {
		return Verdict{}, errors.Wrapf(err, "cannot verify %q", path)
	}

	logrus.WithFields(logrus.Fields{
		"path":   path,
		"mode":   v.options.Mode,
		"length": verdict.Length,
		"sorted": verdict.Sorted,
	}).Debug("Verified")
	return verdict, nil
}

// number is a parsed token. Values are compared as float64 first; since rounding
// to float64 never inverts an order, tokens are compared exactly only when their
// float64 values are equal.
type number struct {
	integer bool
	i       int64
	f       float64
	token   string
}

// parseNumber accepts decimal integers and decimal floats with an optional
// exponent. Values outside the float64 range are rejected.
func parseNumber(token string) (number, error) {
	if !isDecimal(token) {
		return number{}, errors.Errorf("%q is not a decimal number", token)
	}
	if i, err := strconv.ParseInt(token, 10, 64); err == nil {
		return number{integer: true, i: i, f: float64(i), token: token}, nil
	}
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return number{}, err
	}
	if f == 0 && !isZero(token) {
		return number{}, errors.Errorf("%q underflows float64", token)
	}
	return number{f: f, token: token}, nil
}

func (n number) less(other number) bool {
	if n.integer && other.integer {
		return n.i < other.i
	}
	if n.f != other.f {
		return n.f < other.f
	}
	if n.f == 0 {
		return false
	}
	a, errA := decimal.NewFromString(n.token)
	b, errB := decimal.NewFromString(other.token)
	if errA != nil || errB != nil {
		return false
	}
	return a.LessThan(b)
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// isDecimal matches [+-]digits[.digits][(e|E)[+-]digits] with at least one mantissa digit.
func isDecimal(token string) bool {
	i := 0
	if i < len(token) && (token[i] == '+' || token[i] == '-') {
		i++
	}
	digits := 0
	for i < len(token) && isDigit(token[i]) {
		i++
		digits++
	}
	if i < len(token) && token[i] == '.' {
		i++
		for i < len(token) && isDigit(token[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < len(token) && (token[i] == 'e' || token[i] == 'E') {
		i++
		if i < len(token) && (token[i] == '+' || token[i] == '-') {
			i++
		}
		start := i
		for i < len(token) && isDigit(token[i]) {
			i++
		}
		if i == start {
			return false
		}
	}
	return i == len(token)
}

// isZero tells whether the mantissa of a decimal token has only zero digits.
func isZero(token string) bool {
	for i := 0; i < len(token); i++ {
		switch c := token[i]; {
		case c == 'e' || c == 'E':
			return true
		case isDigit(c) && c != '0':
			return false
		}
	}
	return true
}
