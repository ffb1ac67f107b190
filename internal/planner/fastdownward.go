package planner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/stacklab/realign/internal/utils"
)

// Fast Downward driver exit codes that mean "proved unsolvable" rather than
// "failed to run": search-unsolved-incomplete and search-unsolvable.
const (
	exitSearchUnsolvedIncomplete = 11
	exitSearchUnsolvable         = 12
)

// FastDownward invokes the Fast Downward planner binary through its
// file-based protocol: write the problem file, run the binary, read the
// newest sas_plan file it produced.
type FastDownward struct {
	BinaryPath string
	// Strategy is the --search argument, e.g. "astar(lmcut())".
	Strategy string
	// WorkDir holds the problem file and Fast Downward's output files.
	WorkDir string
	// Timeout bounds the planner call; on expiry the run reports planner
	// failure rather than retrying.
	Timeout time.Duration
}

// NewFastDownward creates a driver with the given binary and defaults
func NewFastDownward(binaryPath, strategy, workDir string, timeout time.Duration) *FastDownward {
	if binaryPath == "" {
		binaryPath = "fast-downward"
	}
	if strategy == "" {
		strategy = "astar(lmcut())"
	}
	return &FastDownward{
		BinaryPath: utils.ResolveBinaryPath(binaryPath),
		Strategy:   strategy,
		WorkDir:    workDir,
		Timeout:    timeout,
	}
}

// Solve implements Solver against the real binary
func (fd *FastDownward) Solve(ctx context.Context, domainPath, problem string) (string, error) {
	if err := os.MkdirAll(fd.WorkDir, 0o755); err != nil {
		return "", fmt.Errorf("create work dir: %w", err)
	}

	problemPath := filepath.Join(fd.WorkDir, "problem.pddl")
	if err := os.WriteFile(problemPath, []byte(problem), 0o644); err != nil {
		return "", fmt.Errorf("write problem file: %w", err)
	}

	if fd.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, fd.Timeout)
		defer cancel()
	}

	absDomain, err := filepath.Abs(domainPath)
	if err != nil {
		return "", fmt.Errorf("resolve domain path: %w", err)
	}

	cmd := exec.CommandContext(ctx, fd.BinaryPath, absDomain, "problem.pddl", "--search", fd.Strategy)
	cmd.Dir = fd.WorkDir
	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("%w: timed out after %s", ErrPlannerUnavailable, fd.Timeout)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			switch exitErr.ExitCode() {
			case exitSearchUnsolvedIncomplete, exitSearchUnsolvable:
				return "", ErrNoPlanFound
			}
			return "", fmt.Errorf("%w: exit code %d: %s",
				ErrPlannerUnavailable, exitErr.ExitCode(), lastLines(string(output), 5))
		}
		return "", fmt.Errorf("%w: %v", ErrPlannerUnavailable, err)
	}

	planPath, err := fd.findPlanFile()
	if err != nil {
		return "", err
	}
	trace, err := os.ReadFile(planPath)
	if err != nil {
		return "", fmt.Errorf("read plan file: %w", err)
	}
	return string(trace), nil
}

// findPlanFile locates the plan Fast Downward wrote: sas_plan, or the
// highest-numbered sas_plan.N when an anytime search emitted several.
func (fd *FastDownward) findPlanFile() (string, error) {
	plain := filepath.Join(fd.WorkDir, "sas_plan")
	if utils.FileExists(plain) {
		return plain, nil
	}
	numbered, err := filepath.Glob(filepath.Join(fd.WorkDir, "sas_plan.*"))
	if err != nil || len(numbered) == 0 {
		return "", fmt.Errorf("%w: planner exited successfully but wrote no plan file in %s",
			ErrPlannerUnavailable, fd.WorkDir)
	}
	sort.Slice(numbered, func(i, j int) bool {
		return planIndex(numbered[i]) < planIndex(numbered[j])
	})
	return numbered[len(numbered)-1], nil
}

// planIndex extracts N from "sas_plan.N" (anytime searches number their
// plans; the highest is the best one found).
func planIndex(path string) int {
	suffix := strings.TrimPrefix(filepath.Ext(path), ".")
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return 0
	}
	return n
}

func lastLines(s string, n int) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
