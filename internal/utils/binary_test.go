package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveBinaryPathAbsolute(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "fast-downward")
	if got := ResolveBinaryPath(abs); got != abs {
		t.Errorf("ResolveBinaryPath(%q) = %q, want unchanged", abs, got)
	}
}

func TestResolveBinaryPathUnknownFallsThrough(t *testing.T) {
	// A name that exists nowhere comes back unchanged so the eventual exec
	// error names what the user configured.
	if got := ResolveBinaryPath("definitely-not-a-real-binary-xyz"); got != "definitely-not-a-real-binary-xyz" {
		t.Errorf("ResolveBinaryPath = %q, want the original name", got)
	}
}

func TestFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	if FileExists(path) {
		t.Error("FileExists reported true for a missing file")
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	if !FileExists(path) {
		t.Error("FileExists reported false for an existing file")
	}
}
