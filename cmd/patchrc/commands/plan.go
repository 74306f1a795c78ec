package commands

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/patchrc/cmd/patchrc/opts"
	"github.com/walteh/patchrc/pkg/log"
	"github.com/walteh/patchrc/pkg/operation"
)

// NewPlanCmd creates a new plan command
func NewPlanCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show what apply would change, without writing",
		Long: `Plan runs every patch block against its target files without writing
anything back. It reports, per operation, whether the edit would be
applied, skipped or fail — useful before re-running a script whose
insertions are not idempotent.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "plan").Logger().WithContext(ctx)

			cfg, err := opts.LoadConfig(ctx)
			if err != nil {
				return err
			}

			logger := log.New(os.Stdout, zerolog.InfoLevel)
			logger.Header("planning patches (dry run)")

			op, err := operation.New(operation.Options{
				Config: cfg,
				Files:  opts.Files,
				Logger: logger,
			})
			if err != nil {
				return errors.Errorf("creating operator: %w", err)
			}

			changed, runErr := op.Plan(ctx)
			logSummary(ctx, opts)
			if runErr != nil {
				return errors.Errorf("planning patches: %w", runErr)
			}

			if changed {
				opts.UserLogger.LogValidation(true, "apply would modify files", nil)
			} else {
				opts.UserLogger.LogValidation(true, "nothing to do", nil)
			}
			return nil
		},
	}

	return cmd
}
