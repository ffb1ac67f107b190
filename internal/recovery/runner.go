// Package recovery orchestrates the second stage: turn an identification
// report into an executable action plan by generating a target-tricked
// problem, invoking the external optimal planner, and decoding its trace.
package recovery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stacklab/realign/internal/display"
	"github.com/stacklab/realign/internal/pddl"
	"github.com/stacklab/realign/internal/planner"
	"github.com/stacklab/realign/internal/scenario"
	"github.com/stacklab/realign/internal/world"
)

// Config holds recovery-stage configuration
type Config struct {
	// ScenariosDir holds the scenario and observed-state files.
	ScenariosDir string
	// DomainPath points at the read-only recovery-blocks domain file.
	DomainPath string
	// OutputDir receives the plan artifact.
	OutputDir string
}

// Runner runs recovery for one scenario at a time
type Runner struct {
	cfg     Config
	solver  planner.Solver
	display *display.Display
}

// New creates a runner around a solver (the real Fast Downward driver or a
// test double)
func New(cfg Config, solver planner.Solver, d *display.Display) *Runner {
	return &Runner{cfg: cfg, solver: solver, display: d}
}

// RunResult holds the outcome of one recovery run
type RunResult struct {
	Artifact *scenario.PlanArtifact
	Problem  string
	// Infeasible is set when the planner proved no plan exists. A business
	// outcome, not a fault; the artifact is still persisted with
	// Success=false so the caller can retry with a relaxed scenario.
	Infeasible bool
	Duration   time.Duration
}

// Run generates the target-tricked problem for the report's corrected
// entities, solves it, decodes the trace, and persists the plan artifact.
func (r *Runner) Run(ctx context.Context, sc *scenario.Scenario, report *scenario.Report) (*RunResult, error) {
	start := time.Now()

	stateFile, err := scenario.LoadStateFile(r.cfg.ScenariosDir)
	if err != nil {
		return nil, err
	}
	base, err := world.ParseRelations(stateFile.Relationships)
	if err != nil {
		return nil, fmt.Errorf("base state: %w", err)
	}
	goal, err := world.ParseRelations(sc.SymbolicGoal)
	if err != nil {
		return nil, fmt.Errorf("symbolic goal: %w", err)
	}

	corrected := report.Entities()
	r.display.Info("targets", fmt.Sprintf("%d corrected entities: %v", len(corrected), corrected))

	problem, err := pddl.NewBuilder().BuildProblem(base, goal, corrected)
	if err != nil {
		return nil, fmt.Errorf("build problem: %w", err)
	}

	r.display.Info("planner", "invoking external planner")
	trace, err := r.solver.Solve(ctx, r.cfg.DomainPath, problem)
	if errors.Is(err, planner.ErrNoPlanFound) {
		artifact := &scenario.PlanArtifact{
			Scenario:  sc.Name,
			RunID:     report.RunID,
			Success:   false,
			Actions:   planner.Plan{},
			CreatedAt: time.Now().UTC(),
		}
		if saveErr := scenario.SavePlanArtifact(r.cfg.OutputDir, artifact); saveErr != nil {
			return nil, saveErr
		}
		r.display.Warning("planner proved the problem infeasible")
		return &RunResult{
			Artifact:   artifact,
			Problem:    problem,
			Infeasible: true,
			Duration:   time.Since(start),
		}, nil
	}
	if err != nil {
		return nil, err
	}

	plan, err := planner.DecodePlan(trace)
	if err != nil {
		return nil, err
	}

	artifact := &scenario.PlanArtifact{
		Scenario:  sc.Name,
		RunID:     report.RunID,
		Success:   true,
		Actions:   plan,
		CreatedAt: time.Now().UTC(),
	}
	if err := scenario.SavePlanArtifact(r.cfg.OutputDir, artifact); err != nil {
		return nil, err
	}

	r.display.Success(fmt.Sprintf("recovery plan with %d actions", len(plan)))
	return &RunResult{
		Artifact: artifact,
		Problem:  problem,
		Duration: time.Since(start),
	}, nil
}
