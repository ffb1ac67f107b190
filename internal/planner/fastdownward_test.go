package planner

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindPlanFilePrefersPlain(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"sas_plan", "sas_plan.1"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("(noop)\n"), 0644); err != nil {
			t.Fatalf("WriteFile error: %v", err)
		}
	}

	fd := &FastDownward{WorkDir: dir}
	got, err := fd.findPlanFile()
	if err != nil {
		t.Fatalf("findPlanFile error: %v", err)
	}
	if got != filepath.Join(dir, "sas_plan") {
		t.Errorf("findPlanFile = %q, want plain sas_plan", got)
	}
}

// Anytime searches write sas_plan.1 .. sas_plan.N; the highest N is the best
// plan. Ordering must be numeric, not lexicographic (sas_plan.10 > sas_plan.2).
func TestFindPlanFileNumericOrdering(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"sas_plan.1", "sas_plan.2", "sas_plan.10"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("(noop)\n"), 0644); err != nil {
			t.Fatalf("WriteFile error: %v", err)
		}
	}

	fd := &FastDownward{WorkDir: dir}
	got, err := fd.findPlanFile()
	if err != nil {
		t.Fatalf("findPlanFile error: %v", err)
	}
	if got != filepath.Join(dir, "sas_plan.10") {
		t.Errorf("findPlanFile = %q, want sas_plan.10", got)
	}
}

func TestFindPlanFileMissing(t *testing.T) {
	fd := &FastDownward{WorkDir: t.TempDir()}
	if _, err := fd.findPlanFile(); err == nil {
		t.Error("expected error when no plan file exists")
	}
}

func TestNewFastDownwardDefaults(t *testing.T) {
	fd := NewFastDownward("", "", t.TempDir(), 0)
	if fd.Strategy != "astar(lmcut())" {
		t.Errorf("Strategy = %q", fd.Strategy)
	}
	if fd.BinaryPath == "" {
		t.Error("BinaryPath should never be empty")
	}
}
