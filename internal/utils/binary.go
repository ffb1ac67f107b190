package utils

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ResolveBinaryPath finds a binary, checking PATH and common install
// locations for the planner
func ResolveBinaryPath(binaryPath string) string {
	// If it's an absolute path, use it directly
	if filepath.IsAbs(binaryPath) {
		return binaryPath
	}

	// Check if it's in PATH
	if path, err := exec.LookPath(binaryPath); err == nil {
		return path
	}

	// Handle tilde prefix
	if strings.HasPrefix(binaryPath, "~") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, binaryPath[1:])
		}
	}

	// Check common locations
	home, err := os.UserHomeDir()
	if err == nil {
		commonPaths := []string{
			filepath.Join(home, "downward", binaryPath),
			filepath.Join(home, ".local", "bin", binaryPath),
			filepath.Join("/usr/local/bin", binaryPath),
			filepath.Join("/opt/downward/bin", binaryPath),
		}

		for _, p := range commonPaths {
			if _, err := os.Stat(p); err == nil {
				return p
			}
		}
	}

	// Return original, will fail with helpful error later
	return binaryPath
}
