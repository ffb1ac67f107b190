package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/stacklab/realign/internal/config"
	"github.com/stacklab/realign/internal/pddl"
)

// Init creates a new realign workspace in the current directory
func Init(force bool) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	realignPath := filepath.Join(cwd, RealignDir)

	if _, err := os.Stat(realignPath); err == nil {
		if !force {
			return ErrWorkspaceExists
		}
		if err := os.RemoveAll(realignPath); err != nil {
			return fmt.Errorf("failed to remove existing workspace: %w", err)
		}
	}

	if err := os.MkdirAll(realignPath, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", realignPath, err)
	}

	if err := config.Save(cwd, config.DefaultConfig()); err != nil {
		return err
	}

	domain, err := pddl.Domain()
	if err != nil {
		return err
	}
	if err := os.WriteFile(DomainPath(cwd), []byte(domain), 0644); err != nil {
		return fmt.Errorf("failed to write domain: %w", err)
	}

	// Scenario files live next to the workspace so they can be shared
	// between runs.
	if err := os.MkdirAll(filepath.Join(cwd, "scenarios"), 0755); err != nil {
		return fmt.Errorf("failed to create scenarios directory: %w", err)
	}

	return nil
}
