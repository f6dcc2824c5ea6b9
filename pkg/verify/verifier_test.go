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

package verify

import (
	"fmt"
	"io/ioutil"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
	"gopkg.in/cheggaaa/pb.v1"
)

func sequence(values ...interface{}) string {
	tokens := make([]string, len(values))
	for i, value := range values {
		tokens[i] = fmt.Sprint(value)
	}
	return strings.Join(tokens, " ")
}

func ascending(n int) []interface{} {
	values := make([]interface{}, n)
	for i := range values {
		values[i] = i * 3
	}
	return values
}

func TestVerify(t *testing.T) {
	Convey("While using full scan verifier", t, func() {
		verifier := New(Options{Mode: FullScan})

		Convey("Ascending sequence should be sorted", func() {
			verdict, err := verifier.Verify(strings.NewReader(sequence(ascending(100)...)))
			So(err, ShouldBeNil)
			So(verdict.Sorted, ShouldBeTrue)
			So(verdict.Length, ShouldEqual, 100)
			So(verdict.HasViolation(), ShouldBeFalse)
			So(verdict.FirstViolation, ShouldEqual, NoViolation)
			So(verdict.Complete, ShouldBeTrue)
		})

		Convey("Equal neighbours should be in order", func() {
			verdict, err := verifier.Verify(strings.NewReader("1 1 2 2 2 3"))
			So(err, ShouldBeNil)
			So(verdict.Sorted, ShouldBeTrue)
			So(verdict.Length, ShouldEqual, 6)
		})

		Convey("Swapping neighbours should report the first of them", func() {
			for _, k := range []int{0, 17, 98} {
				values := ascending(100)
				values[k], values[k+1] = values[k+1], values[k]
				verdict, err := verifier.Verify(strings.NewReader(sequence(values...)))
				So(err, ShouldBeNil)
				So(verdict.Sorted, ShouldBeFalse)
				So(verdict.Length, ShouldEqual, 100)
				So(verdict.FirstViolation, ShouldEqual, k)
				So(verdict.Complete, ShouldBeTrue)
			}
		})

		Convey("Reference unsorted output should report full length", func() {
			verdict, err := verifier.Verify(strings.NewReader("1 2 3 5 4 6 7 0 8"))
			So(err, ShouldBeNil)
			So(verdict.Sorted, ShouldBeFalse)
			So(verdict.Length, ShouldEqual, 9)
			So(verdict.FirstViolation, ShouldEqual, 3)
			So(verdict.String(), ShouldEqual, "The sequence of length 9 is not sorted in ascending order.")
		})

		Convey("Whitespace and line breaks should separate tokens", func() {
			verdict, err := verifier.Verify(strings.NewReader("  -5\t-2\n\n0.5 1e3\r\n 1001 \n"))
			So(err, ShouldBeNil)
			So(verdict.Sorted, ShouldBeTrue)
			So(verdict.Length, ShouldEqual, 5)
			So(verdict.String(), ShouldEqual, "The sequence of length 5 is sorted in ascending order.")
		})

		Convey("Floating point values should be compared numerically", func() {
			verdict, err := verifier.Verify(strings.NewReader("0.25 0.5 0.125"))
			So(err, ShouldBeNil)
			So(verdict.Sorted, ShouldBeFalse)
			So(verdict.FirstViolation, ShouldEqual, 1)
		})

		Convey("Large integers should be compared exactly", func() {
			verdict, err := verifier.Verify(strings.NewReader("9007199254740993 9007199254740992"))
			So(err, ShouldBeNil)
			So(verdict.Sorted, ShouldBeFalse)
			So(verdict.FirstViolation, ShouldEqual, 0)
		})

		Convey("Empty input should be sorted with zero length", func() {
			for _, input := range []string{"", "   \n\t "} {
				verdict, err := verifier.Verify(strings.NewReader(input))
				So(err, ShouldBeNil)
				So(verdict.Sorted, ShouldBeTrue)
				So(verdict.Length, ShouldEqual, 0)
				So(verdict.HasViolation(), ShouldBeFalse)
			}
		})

		Convey("Single element should be sorted", func() {
			verdict, err := verifier.Verify(strings.NewReader("42"))
			So(err, ShouldBeNil)
			So(verdict.Sorted, ShouldBeTrue)
			So(verdict.Length, ShouldEqual, 1)
		})

		Convey("Non-numeric token should fail with its index", func() {
			_, err := verifier.Verify(strings.NewReader("3 5 a 9"))
			So(err, ShouldNotBeNil)
			malformed, ok := err.(*MalformedInputError)
			So(ok, ShouldBeTrue)
			So(malformed.Index, ShouldEqual, 2)
			So(malformed.Token, ShouldEqual, "a")
			So(err.Error(), ShouldContainSubstring, "token 2")
		})

		Convey("Malformed token after a violation should still fail", func() {
			_, err := verifier.Verify(strings.NewReader("3 1 x"))
			So(err, ShouldHaveSameTypeAs, &MalformedInputError{})
		})

		Convey("Tokens other than decimal numbers should be malformed", func() {
			for _, input := range []string{"1 NaN 2", "1 inf Infinity", "1 +Inf 2", "1 0x1p4 20", "1 0x10 20", "1 1_000 2", "1 1e 2", "1 . 2", "1 1e400 2", "1 1e-400 2"} {
				_, err := verifier.Verify(strings.NewReader(input))
				So(err, ShouldHaveSameTypeAs, &MalformedInputError{})
				So(err.(*MalformedInputError).Index, ShouldEqual, 1)
			}
		})

		Convey("Decimal notations should be accepted", func() {
			verdict, err := verifier.Verify(strings.NewReader("-1e2 -5 .5 1. +3 1.5E1 0e9 100"))
			So(err, ShouldBeNil)
			So(verdict.Sorted, ShouldBeFalse)
			So(verdict.FirstViolation, ShouldEqual, 5)
			So(verdict.Length, ShouldEqual, 8)
		})

		Convey("Integer and float beyond float64 precision should be compared exactly", func() {
			verdict, err := verifier.Verify(strings.NewReader("9007199254740993 9007199254740992.5"))
			So(err, ShouldBeNil)
			So(verdict.Sorted, ShouldBeFalse)
			So(verdict.FirstViolation, ShouldEqual, 0)

			verdict, err = verifier.Verify(strings.NewReader("9007199254740992.5 9007199254740993 9007199254740993.0"))
			So(err, ShouldBeNil)
			So(verdict.Sorted, ShouldBeTrue)
		})

		Convey("Floats equal in float64 should be compared exactly", func() {
			verdict, err := verifier.Verify(strings.NewReader("0.1 0.10000000000000000001 0.1"))
			So(err, ShouldBeNil)
			So(verdict.Sorted, ShouldBeFalse)
			So(verdict.FirstViolation, ShouldEqual, 1)
		})

		Convey("Zeros in any notation should be equal", func() {
			verdict, err := verifier.Verify(strings.NewReader("0 -0.0 0e999999999 0.000"))
			So(err, ShouldBeNil)
			So(verdict.Sorted, ShouldBeTrue)
		})

		Convey("Token longer than the limit should fail", func() {
			verifier := New(Options{MaxTokenSize: 8})
			_, err := verifier.Verify(strings.NewReader("1 2 123456789012"))
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "cannot read token 2")
		})
	})

	Convey("While using early exit verifier", t, func() {
		verifier := New(Options{Mode: EarlyExit})

		Convey("Unsorted sequence should stop at the first violation", func() {
			verdict, err := verifier.Verify(strings.NewReader("1 3 2 4 a"))
			So(err, ShouldBeNil)
			So(verdict.Sorted, ShouldBeFalse)
			So(verdict.FirstViolation, ShouldEqual, 1)
			So(verdict.Length, ShouldEqual, 3)
			So(verdict.Complete, ShouldBeFalse)
			So(verdict.String(), ShouldContainSubstring, "elements 1 and 2")
		})

		Convey("Sorted sequence should be complete", func() {
			verdict, err := verifier.Verify(strings.NewReader(sequence(ascending(10)...)))
			So(err, ShouldBeNil)
			So(verdict.Sorted, ShouldBeTrue)
			So(verdict.Length, ShouldEqual, 10)
			So(verdict.Complete, ShouldBeTrue)
		})
	})
}

func TestVerifyFiles(t *testing.T) {
	Convey("While verifying files", t, func() {
		dir, err := ioutil.TempDir("", "verify")
		So(err, ShouldBeNil)
		defer os.RemoveAll(dir)

		write := func(name, content string) string {
			filePath := path.Join(dir, name)
			So(ioutil.WriteFile(filePath, []byte(content), 0644), ShouldBeNil)
			return filePath
		}
		sorted := write("sorted.txt", "1 2 3\n4 5\n")
		unsorted := write("unsorted.txt", "1 2 3 5 4 6 7 0 8\n")
		malformed := write("malformed.txt", "3 5 a 9")

		verifier := New(Options{})

		Convey("Single file should be verified", func() {
			verdict, err := verifier.VerifyFile(sorted)
			So(err, ShouldBeNil)
			So(verdict.Sorted, ShouldBeTrue)
			So(verdict.Length, ShouldEqual, 5)
		})

		Convey("Verdicts should follow the order of paths", func() {
			verdicts, err := verifier.VerifyFiles([]string{unsorted, sorted, unsorted})
			So(err, ShouldBeNil)
			So(verdicts, ShouldHaveLength, 3)
			So(verdicts[0].Sorted, ShouldBeFalse)
			So(verdicts[0].FirstViolation, ShouldEqual, 3)
			So(verdicts[1].Sorted, ShouldBeTrue)
			So(verdicts[2].Length, ShouldEqual, 9)
		})

		Convey("Malformed file should fail all and keep the cause", func() {
			_, err := verifier.VerifyFiles([]string{sorted, malformed})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "malformed.txt")
			So(errors.Cause(err), ShouldHaveSameTypeAs, &MalformedInputError{})
		})

		Convey("Missing file should fail", func() {
			_, err := verifier.VerifyFile(path.Join(dir, "missing.txt"))
			So(err, ShouldNotBeNil)
			So(os.IsNotExist(errors.Cause(err)), ShouldBeTrue)
		})
	})
}

func TestVerifyProgress(t *testing.T) {
	Convey("Progress bar should count bytes of verified files", t, func() {
		dir, err := ioutil.TempDir("", "verify")
		So(err, ShouldBeNil)
		defer os.RemoveAll(dir)

		content := "1 2 3 4 5 6 7 8 9 10\n"
		filePath := path.Join(dir, "sorted.txt")
		So(ioutil.WriteFile(filePath, []byte(content), 0644), ShouldBeNil)

		bar := pb.New64(int64(len(content)))
		bar.Output = ioutil.Discard
		bar.NotPrint = true

		verdict, err := New(Options{Progress: bar}).VerifyFile(filePath)
		So(err, ShouldBeNil)
		So(verdict.Length, ShouldEqual, 10)
		So(bar.Get(), ShouldEqual, len(content))
	})
}

func TestVerifyFilesSkipsAfterError(t *testing.T) {
	Convey("Files not started before the first error should not be read", t, func() {
		dir, err := ioutil.TempDir("", "verify")
		So(err, ShouldBeNil)
		defer os.RemoveAll(dir)

		malformedContent := "3 5 a 9"
		malformed := path.Join(dir, "malformed.txt")
		sorted := path.Join(dir, "sorted.txt")
		So(ioutil.WriteFile(malformed, []byte(malformedContent), 0644), ShouldBeNil)
		So(ioutil.WriteFile(sorted, []byte("1 2 3 4 5 6 7 8 9 10\n"), 0644), ShouldBeNil)

		bar := pb.New64(0)
		bar.Output = ioutil.Discard
		bar.NotPrint = true

		_, err = New(Options{Progress: bar}).verifyFiles([]string{malformed, sorted, sorted}, 1)
		So(errors.Cause(err), ShouldHaveSameTypeAs, &MalformedInputError{})
		So(bar.Get(), ShouldEqual, len(malformedContent))
	})
}
