package cli

import (
	"errors"
	"os"

	"github.com/spf13/pflag"
	"github.com/stacklab/realign/internal/config"
	"github.com/stacklab/realign/internal/workspace"
)

// loadWorkspaceConfig locates the enclosing workspace and loads its config.
// Without a workspace the current directory and defaults are used, so every
// command works standalone.
func loadWorkspaceConfig() (string, *config.Config, error) {
	dir, err := workspace.Find()
	if errors.Is(err, workspace.ErrNoWorkspace) {
		dir, err = os.Getwd()
	}
	if err != nil {
		return "", nil, err
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return "", nil, err
	}
	return dir, cfg, nil
}

// seedFlag returns the flag's value whenever the user set it, even to zero,
// and the config fallback otherwise. Zero is a valid seed.
func seedFlag(flags *pflag.FlagSet, value, fallback int64) int64 {
	if flags.Changed("seed") {
		return value
	}
	return fallback
}
