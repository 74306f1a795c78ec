package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/walteh/patchrc/cmd/patchrc/opts"
	patchlog "github.com/walteh/patchrc/pkg/log"
	"github.com/walteh/patchrc/pkg/status"
)

var (
	// Flags
	configFile string
	debug      bool
)

// newRootOpts creates a new rootOpts with initialized dependencies
func newRootOpts(ctx context.Context) (*opts.RootOpts, error) {
	// Create user logger
	userLogger := patchlog.NewUserLogger(ctx)

	// Create file manager rooted at the working directory
	files := status.New(".")

	return &opts.RootOpts{
		ConfigFile: &configFile,
		Files:      files,
		UserLogger: userLogger,
	}, nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".patchrc.yaml", "config file path")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
}
