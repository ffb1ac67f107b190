package pddl

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed domains/*.pddl
var embeddedDomains embed.FS

// DomainFileName is the conventional name for the domain file on disk.
const DomainFileName = "domain.pddl"

// Domain returns the built-in recovery-blocks domain. The domain carries the
// standard four blocksworld operators plus stack-target, the only action that
// achieves AtTarget.
func Domain() (string, error) {
	content, err := embeddedDomains.ReadFile("domains/recovery-blocks.pddl")
	if err != nil {
		return "", fmt.Errorf("embedded domain not found: %w", err)
	}
	return string(content), nil
}

// ResolveDomain returns path if a file exists there, otherwise materializes
// the built-in domain into dir and returns the written path. Lets callers
// override the domain while keeping the tool usable out of the box.
func ResolveDomain(path, dir string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	content, err := Domain()
	if err != nil {
		return "", err
	}
	written := filepath.Join(dir, DomainFileName)
	if err := os.WriteFile(written, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write domain: %w", err)
	}
	return written, nil
}
