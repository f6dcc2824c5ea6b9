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
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// VerifyFiles verifies files concurrently, at most one per CPU.
// Verdicts are in the order of paths. After the first error files not yet
// started are skipped; files being scanned are read to the end.
func (v *Verifier) VerifyFiles(paths []string) ([]Verdict, error) {
	return v.verifyFiles(paths, runtime.NumCPU())
}

func (v *Verifier) verifyFiles(paths []string, limit int) ([]Verdict, error) {
	verdicts := make([]Verdict, len(paths))

	group, ctx := errgroup.WithContext(context.Background())
	group.SetLimit(limit)
	for i, path := range paths {
		if ctx.Err() != nil {
			break
		}
		i, path := i, path
		group.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			verdict, err := v.VerifyFile(path)
			if err != nil {
				return err
			}
			verdicts[i] = verdict
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return verdicts, nil
}
