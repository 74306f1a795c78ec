// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"

	"github.com/walteh/patchrc/pkg/log"
	"github.com/walteh/patchrc/pkg/patch"
	"github.com/walteh/patchrc/pkg/status"
)

// maxConcurrentFiles bounds async runs; one goroutine per file is wasteful
// for the large scripted runs patchrc is built for
const maxConcurrentFiles = 4

// 📄 FileResult is the outcome of patching one target file
type FileResult struct {
	Path   string
	Report patch.Report
	Err    error
}

// 🚀 Apply patches every configured file. Individual files failing on I/O
// (missing target, unwritable path) are recorded and the run continues;
// the returned error reflects whether any file failed.
func (o *operator) Apply(ctx context.Context) error {
	results, err := o.execute(ctx, false)
	if err != nil {
		return err
	}
	return failureError(results)
}

// 🔍 Plan runs every configured patch without writing and reports whether
// any file would change
func (o *operator) Plan(ctx context.Context) (bool, error) {
	results, err := o.execute(ctx, true)
	if err != nil {
		return false, err
	}

	changed := false
	for _, res := range results {
		if res.Err == nil && res.Report.Applied() > 0 {
			changed = true
		}
	}
	return changed, failureError(results)
}

// 🏃 execute expands the config and runs each file, sequentially by default
// or with bounded concurrency when async is set. Distinct files never share
// a buffer, so concurrent runs cannot race on content.
func (o *operator) execute(ctx context.Context, dryRun bool) ([]FileResult, error) {
	runs, err := o.expand(ctx)
	if err != nil {
		return nil, errors.Errorf("expanding patches: %w", err)
	}

	results := make([]FileResult, len(runs))

	if o.config.Async {
		var g errgroup.Group
		g.SetLimit(maxConcurrentFiles)
		for i, run := range runs {
			i, run := i, run
			g.Go(func() error {
				results[i] = o.patchFile(ctx, run, dryRun)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, errors.Errorf("waiting for file runs: %w", err)
		}
	} else {
		for i, run := range runs {
			results[i] = o.patchFile(ctx, run, dryRun)
		}
	}

	return results, nil
}

// 🩹 patchFile runs one file's operations and tracks the outcome
func (o *operator) patchFile(ctx context.Context, run fileRun, dryRun bool) FileResult {
	logger := zerolog.Ctx(ctx)

	exists, err := o.files.FileExists(ctx, run.path)
	if err == nil && !exists {
		err = errors.Errorf("file not found: %s", run.path)
	}
	if err != nil {
		logger.Warn().Str("file", run.path).Err(err).Msg("skipping file")
		o.files.TrackFile(ctx, run.path, status.FileInfo{
			Path:   run.path,
			Status: status.StatusFailed,
			Error:  err,
		})
		return FileResult{Path: run.path, Err: err}
	}

	if o.logger != nil {
		o.logger.StartFileRun(ctx, log.FileRun{
			Path:       run.path,
			Operations: len(run.ops),
			DryRun:     dryRun,
		})
	}

	var report patch.Report
	if dryRun {
		report, err = o.patcher.Plan(ctx, run.path, run.ops)
	} else {
		report, err = o.patcher.Apply(ctx, run.path, run.ops)
	}
	if err != nil {
		o.files.TrackFile(ctx, run.path, status.FileInfo{
			Path:   run.path,
			Status: status.StatusFailed,
			Error:  err,
		})
		return FileResult{Path: run.path, Err: err}
	}

	if o.logger != nil {
		for _, res := range report {
			o.logger.LogOperation(ctx, log.OperationLine{
				Op:           res.Op,
				Outcome:      res.Outcome.String(),
				Reason:       res.Reason,
				Replacements: res.Replacements,
			})
		}
		o.logger.EndFileRun(ctx)
	}

	fileStatus := status.StatusUnchanged
	if report.Applied() > 0 {
		fileStatus = status.StatusPatched
	}
	o.files.TrackFile(ctx, run.path, status.FileInfo{
		Path:    run.path,
		Status:  fileStatus,
		Applied: report.Applied(),
		Skipped: report.Skipped(),
		Failed:  report.Failed(),
	})

	return FileResult{Path: run.path, Report: report}
}

// failureError folds per-file failures into one run-level error
func failureError(results []FileResult) error {
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return errors.Errorf("%d of %d file(s) failed", failed, len(results))
	}
	return nil
}
