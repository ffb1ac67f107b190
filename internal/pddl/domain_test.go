package pddl

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDomainCarriesTargetAction(t *testing.T) {
	domain, err := Domain()
	if err != nil {
		t.Fatalf("Domain error: %v", err)
	}

	for _, want := range []string{
		"(define (domain recovery-blocks)",
		"(:action stack-target",
		"(TargetOn ?x - block ?y - block)",
		"(AtTarget ?x - block)",
	} {
		if !strings.Contains(domain, want) {
			t.Errorf("domain missing %q", want)
		}
	}

	// stack-target is the only action that achieves AtTarget.
	if got := strings.Count(domain, "(AtTarget ?x)"); got != 1 {
		t.Errorf("AtTarget appears as an effect %d times, want 1", got)
	}
}

func TestResolveDomainPrefersExistingFile(t *testing.T) {
	dir := t.TempDir()
	custom := filepath.Join(dir, "custom.pddl")
	if err := os.WriteFile(custom, []byte("(define (domain custom))"), 0644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	got, err := ResolveDomain(custom, dir)
	if err != nil {
		t.Fatalf("ResolveDomain error: %v", err)
	}
	if got != custom {
		t.Errorf("ResolveDomain = %q, want %q", got, custom)
	}
}

func TestResolveDomainMaterializesBuiltin(t *testing.T) {
	dir := t.TempDir()

	got, err := ResolveDomain(filepath.Join(dir, "missing.pddl"), dir)
	if err != nil {
		t.Fatalf("ResolveDomain error: %v", err)
	}
	content, err := os.ReadFile(got)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if !strings.Contains(string(content), "recovery-blocks") {
		t.Errorf("materialized domain does not look like the built-in: %q", got)
	}
}
