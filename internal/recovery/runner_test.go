package recovery

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklab/realign/internal/display"
	"github.com/stacklab/realign/internal/planner"
	"github.com/stacklab/realign/internal/scenario"
)

// cannedSolver returns a fixed trace or error without running a binary.
type cannedSolver struct {
	trace   string
	err     error
	problem string // captures the problem handed to Solve
}

func (c *cannedSolver) Solve(ctx context.Context, domainPath, problem string) (string, error) {
	c.problem = problem
	return c.trace, c.err
}

func testScenario() *scenario.Scenario {
	return &scenario.Scenario{
		Name:                 "tower",
		Reference:            "0",
		SymbolicGoal:         []string{"On(2,1)", "On(3,2)", "OnTable(1)"},
		InterventionSpace:    map[string][]string{"2": {"left,0.05"}},
		MaxRolloutDepth:      4,
		TerminationThreshold: 0.99,
	}
}

func testReport() *scenario.Report {
	return &scenario.Report{
		Scenario: "tower",
		RunID:    "run-1",
		Interventions: []scenario.InterventionRecord{
			{Entity: "2", Action: "left,0.05"},
		},
		Iterations:    10,
		TotalRollouts: 10,
		Solved:        true,
		CreatedAt:     time.Now().UTC(),
	}
}

func setupDirs(t *testing.T) (scenariosDir, outDir string) {
	t.Helper()
	scenariosDir = t.TempDir()
	outDir = t.TempDir()

	state := `{
		"objects": {"1": [0.5, 0.5, 0], "2": [0.55, 0.5, 0.05], "3": [0.5, 0.5, 0.1]},
		"relationships": ["On(2,1)", "On(3,2)", "OnTable(1)"]
	}`
	err := os.WriteFile(filepath.Join(scenariosDir, scenario.StateFileName), []byte(state), 0644)
	require.NoError(t, err)
	return scenariosDir, outDir
}

func newTestRunner(t *testing.T, solver planner.Solver) (*Runner, string) {
	t.Helper()
	scenariosDir, outDir := setupDirs(t)
	r := New(Config{
		ScenariosDir: scenariosDir,
		DomainPath:   "domain.pddl",
		OutputDir:    outDir,
	}, solver, display.New(true))
	return r, outDir
}

func TestRunDecodesAndPersistsPlan(t *testing.T) {
	solver := &cannedSolver{trace: "(unstack b a)\n(stack-target b a)\n; cost = 2 (unit cost)\n"}
	runner, outDir := newTestRunner(t, solver)

	result, err := runner.Run(context.Background(), testScenario(), testReport())
	require.NoError(t, err)

	assert.False(t, result.Infeasible)
	require.Len(t, result.Artifact.Actions, 2)
	assert.Equal(t, "stack-target", result.Artifact.Actions[1].Name)
	assert.True(t, result.Artifact.Success)
	assert.FileExists(t, scenario.PlanArtifactPath(outDir, "tower"))

	// The corrected entity (2 -> B, supported by 1 -> A) must be tricked.
	assert.Contains(t, result.Problem, "(TargetOn B A)")
	assert.Contains(t, result.Problem, "(AtTarget B)")
	assert.Equal(t, result.Problem, solver.problem)
}

// Infeasibility is a business outcome: the artifact is persisted with
// Success=false and no error is returned.
func TestRunInfeasibleIsNotAnError(t *testing.T) {
	solver := &cannedSolver{err: planner.ErrNoPlanFound}
	runner, outDir := newTestRunner(t, solver)

	result, err := runner.Run(context.Background(), testScenario(), testReport())
	require.NoError(t, err)

	assert.True(t, result.Infeasible)
	assert.False(t, result.Artifact.Success)
	assert.Empty(t, result.Artifact.Actions)
	assert.FileExists(t, scenario.PlanArtifactPath(outDir, "tower"))
}

func TestRunPlannerUnavailableIsFatal(t *testing.T) {
	solver := &cannedSolver{err: planner.ErrPlannerUnavailable}
	runner, _ := newTestRunner(t, solver)

	_, err := runner.Run(context.Background(), testScenario(), testReport())
	assert.ErrorIs(t, err, planner.ErrPlannerUnavailable)
}

func TestRunAmbiguousSupportSurfacesEntity(t *testing.T) {
	solver := &cannedSolver{trace: ""}
	runner, _ := newTestRunner(t, solver)

	report := testReport()
	// Entity 5 (-> E) has no supporting relation in the base state.
	report.Interventions = []scenario.InterventionRecord{{Entity: "5", Action: "left,0.05"}}

	_, err := runner.Run(context.Background(), testScenario(), report)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "E")
}
