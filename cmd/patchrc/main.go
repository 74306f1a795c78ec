package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/walteh/patchrc/cmd/patchrc/commands"
	patchlog "github.com/walteh/patchrc/pkg/log"
)

func main() {
	// Setup logging
	setupLogging()
	ctx := log.Logger.WithContext(context.Background())

	// Create user logger
	userLogger := patchlog.NewUserLogger(ctx)

	// Create root command
	rootCmd := &cobra.Command{
		Use:   "patchrc",
		Short: "A tool for applying declarative patch scripts to source files",
		Long: `patchrc applies mechanical, repeatable edits to source files from a
declarative patch script: anchored insertions, content-guarded line
deletions and literal substitutions, written back atomically with a
per-operation report.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	// Add shared flags
	addRootFlags(rootCmd)

	// Create root options
	opts, err := newRootOpts(ctx)
	if err != nil {
		userLogger.LogValidation(false, "Failed to initialize", err)
		os.Exit(1)
	}

	// Add commands
	rootCmd.AddCommand(
		commands.NewApplyCmd(opts),
		commands.NewPlanCmd(opts),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		userLogger.LogValidation(false, "Command failed", err)
		os.Exit(1)
	}
}
