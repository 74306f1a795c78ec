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

package patch

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 💾 FileManager is the subset of file operations the patcher needs
type FileManager interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFileAtomic(ctx context.Context, path string, content []byte) error
	BackupFile(ctx context.Context, path string) error
}

// 🎮 Patcher applies an ordered sequence of operations to one file. Runs are
// best-effort: an operation that fails to locate its edit is recorded in the
// report and the remaining operations still execute; only file I/O aborts.
// The final buffer is written exactly once, even after partial failure, so
// successful edits always persist.
type Patcher struct {
	files FileManager
	opts  Options
}

// 🏭 New creates a new patcher
func New(files FileManager, opts Options) (*Patcher, error) {
	if files == nil {
		return nil, errors.Errorf("file manager is required")
	}
	return &Patcher{files: files, opts: opts}, nil
}

// 🚀 Apply reads the file, folds the operations over its buffer in submission
// order, writes the result back atomically and returns the per-operation
// report. I/O errors are fatal and happen either before any operation runs or
// after all of them have been attempted; nothing is half-written.
func (p *Patcher) Apply(ctx context.Context, path string, ops []Operation) (Report, error) {
	buf, report, err := p.run(ctx, path, ops)
	if err != nil {
		return nil, err
	}

	if p.opts.Backup {
		if err := p.files.BackupFile(ctx, path); err != nil {
			return nil, errors.Errorf("backing up %s: %w", path, err)
		}
	}

	if err := p.files.WriteFileAtomic(ctx, path, buf.Bytes()); err != nil {
		return nil, errors.Errorf("writing %s: %w", path, err)
	}

	return report, nil
}

// 🔍 Plan runs the same fold as Apply but never writes, so callers can
// preview what a run would change
func (p *Patcher) Plan(ctx context.Context, path string, ops []Operation) (Report, error) {
	_, report, err := p.run(ctx, path, ops)
	return report, err
}

func (p *Patcher) run(ctx context.Context, path string, ops []Operation) (*Buffer, Report, error) {
	logger := zerolog.Ctx(ctx)

	content, err := p.files.ReadFile(ctx, path)
	if err != nil {
		return nil, nil, errors.Errorf("reading %s: %w", path, err)
	}

	buf := NewBuffer(content)
	report := make(Report, 0, len(ops))

	for _, op := range ops {
		results := op.apply(buf, p.opts)
		for _, res := range results {
			logger.Debug().
				Str("file", path).
				Str("op", res.Op).
				Str("outcome", res.Outcome.String()).
				Str("reason", res.Reason).
				Msg("operation applied")
		}
		report = append(report, results...)
	}

	return buf, report, nil
}
