// Package operation provides core functionality for applying patch scripts to files
package operation

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/patchrc/pkg/config"
	"github.com/walteh/patchrc/pkg/log"
	"github.com/walteh/patchrc/pkg/patch"
	"github.com/walteh/patchrc/pkg/status"
)

// 🎯 Operator defines the main interface for patchrc operations
type Operator interface {
	// Apply patches every configured file and writes the results back
	Apply(ctx context.Context) error
	// Plan is a read-only run indicating if any file would change
	Plan(ctx context.Context) (bool, error)
}

// 💾 Files combines the file access and tracking the operator needs
type Files interface {
	status.FileManager
	status.Tracker
}

// 🔧 Options contains configuration for the operator
type Options struct {
	// Config is the patchrc configuration
	Config *config.PatchrcConfig
	// Files manages target file access and outcome tracking
	Files Files
	// Logger renders per-operation console output; nil disables it
	Logger *log.Logger
	// BaseDir is the directory patch file globs resolve against
	BaseDir string
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (Operator, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Files == nil {
		return nil, errors.Errorf("file manager is required")
	}
	if opts.BaseDir == "" {
		opts.BaseDir = "."
	}

	patcher, err := patch.New(opts.Files, patch.Options{
		Marker: opts.Config.Marker,
		Backup: opts.Config.Backup,
	})
	if err != nil {
		return nil, errors.Errorf("creating patcher: %w", err)
	}

	return &operator{
		config:  opts.Config,
		files:   opts.Files,
		logger:  opts.Logger,
		patcher: patcher,
		baseDir: opts.BaseDir,
	}, nil
}

// 🎮 operator implements the Operator interface
type operator struct {
	config  *config.PatchrcConfig
	files   Files
	logger  *log.Logger
	patcher *patch.Patcher
	baseDir string
}

// Apply and Plan are implemented in runner.go

// 📋 fileRun is one target file paired with its resolved operations
type fileRun struct {
	path string
	ops  []patch.Operation
}

// 🔍 expand resolves every patch block into concrete file runs, reading
// content_from companions and expanding globs up front so configuration
// problems surface before any file is touched
func (o *operator) expand(ctx context.Context) ([]fileRun, error) {
	logger := zerolog.Ctx(ctx)

	var runs []fileRun
	for i := range o.config.Patches {
		p := &o.config.Patches[i]

		ops, err := p.Operations(ctx, o.files)
		if err != nil {
			return nil, errors.Errorf("patch %d: %w", i, err)
		}

		targets, err := o.resolveTargets(p.File)
		if err != nil {
			return nil, errors.Errorf("patch %d: %w", i, err)
		}

		logger.Debug().
			Str("pattern", p.File).
			Int("targets", len(targets)).
			Int("operations", len(ops)).
			Msg("expanded patch block")

		for _, target := range targets {
			runs = append(runs, fileRun{path: target, ops: ops})
		}
	}

	return runs, nil
}
