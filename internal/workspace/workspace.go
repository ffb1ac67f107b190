package workspace

import (
	"errors"
	"os"
	"path/filepath"
)

const RealignDir = ".realign"

var ErrNoWorkspace = errors.New("no realign workspace found (run 'realign init' first)")
var ErrWorkspaceExists = errors.New("realign workspace already exists (use --force to overwrite)")

// Find walks up from cwd looking for the .realign/ directory
func Find() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		realignPath := filepath.Join(dir, RealignDir)
		if info, err := os.Stat(realignPath); err == nil && info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoWorkspace
		}
		dir = parent
	}
}

// Path returns the .realign directory path for a workspace
func Path(workspaceDir string) string {
	return filepath.Join(workspaceDir, RealignDir)
}

// DomainPath returns the domain.pddl path inside the workspace
func DomainPath(workspaceDir string) string {
	return filepath.Join(workspaceDir, RealignDir, "domain.pddl")
}
