package opts

import (
	"context"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/patchrc/pkg/config"
	"github.com/walteh/patchrc/pkg/log"
	"github.com/walteh/patchrc/pkg/status"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	ConfigFile *string // Flag value; read at command run time, after flag parsing
	Files      *status.Manager
	UserLogger *log.UserLogger
}

// LoadConfig loads the patch script named by the config flag
func (o *RootOpts) LoadConfig(ctx context.Context) (*config.PatchrcConfig, error) {
	cfg, err := config.Load(ctx, *o.ConfigFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
