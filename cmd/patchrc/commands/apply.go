package commands

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/patchrc/cmd/patchrc/opts"
	"github.com/walteh/patchrc/pkg/log"
	"github.com/walteh/patchrc/pkg/operation"
	"github.com/walteh/patchrc/pkg/status"
)

// NewApplyCmd creates a new apply command
func NewApplyCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply the configured patches to their target files",
		Long: `Apply runs every patch block in the config against its target files.
It will:
1. Expand patch blocks into per-file operation sequences
2. Apply insertions, line deletions and substitutions in order
3. Write each patched file back atomically, even after partial failure
4. Print a per-operation report`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "apply").Logger().WithContext(ctx)

			cfg, err := opts.LoadConfig(ctx)
			if err != nil {
				return err
			}

			logger := log.New(os.Stdout, zerolog.InfoLevel)
			logger.Header("applying patches")

			op, err := operation.New(operation.Options{
				Config: cfg,
				Files:  opts.Files,
				Logger: logger,
			})
			if err != nil {
				return errors.Errorf("creating operator: %w", err)
			}

			runErr := op.Apply(ctx)
			logSummary(ctx, opts)
			if runErr != nil {
				return errors.Errorf("applying patches: %w", runErr)
			}

			logger.Success("all files patched")
			return nil
		},
	}

	return cmd
}

// logSummary renders the per-file outcome summary after a run
func logSummary(ctx context.Context, opts *opts.RootOpts) {
	files, err := opts.Files.ListFiles(ctx)
	if err != nil {
		return
	}

	applied, skipped, failed := 0, 0, 0
	for _, info := range files {
		applied += info.Applied
		skipped += info.Skipped
		failed += info.Failed

		change := log.FileChange{Path: info.Path}
		switch {
		case info.Error != nil:
			change.Type = log.FileError
			change.Error = info.Error
		case info.Status == status.StatusPatched:
			change.Type = log.FilePatched
			change.Description = info.Status.String()
		default:
			change.Type = log.FileUnchanged
		}
		opts.UserLogger.LogFileChange(change)
	}

	opts.UserLogger.LogRunSummary(applied, skipped, failed)
}
