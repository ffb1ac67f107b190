package scenario

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklab/realign/internal/search"
	"github.com/stacklab/realign/internal/world"
)

func sampleResult() *search.Result {
	return &search.Result{
		Interventions: []world.Intervention{
			{Entity: "2", Direction: world.DirectionLeft, Magnitude: 0.05},
			{Entity: "3", Direction: world.DirectionForward, Magnitude: 0.02},
			{Entity: "2", Direction: world.DirectionLeft, Magnitude: 0.05},
		},
		Iterations: 120,
		Rollouts:   120,
		Solved:     true,
		BestReward: 1.0,
	}
}

func TestReportRoundTrip(t *testing.T) {
	dir := t.TempDir()

	report := NewReport("tower", "run-1", sampleResult())
	require.NoError(t, SaveReport(dir, report))

	loaded, err := LoadReport(dir, "tower")
	require.NoError(t, err)

	assert.Equal(t, report.Scenario, loaded.Scenario)
	assert.Equal(t, report.RunID, loaded.RunID)
	assert.Equal(t, report.Interventions, loaded.Interventions)
	assert.Equal(t, report.Iterations, loaded.Iterations)
	assert.True(t, loaded.Solved)
}

func TestReportActionWireForm(t *testing.T) {
	report := NewReport("tower", "run-1", sampleResult())

	require.Len(t, report.Interventions, 3)
	assert.Equal(t, "left,0.05", report.Interventions[0].Action)
	assert.Equal(t, "forward,0.02", report.Interventions[1].Action)
}

func TestReportEntitiesFirstSeenOrder(t *testing.T) {
	report := NewReport("tower", "run-1", sampleResult())
	assert.Equal(t, []string{"2", "3"}, report.Entities())
}

func TestSaveReportRejectsInvalid(t *testing.T) {
	report := NewReport("tower", "run-1", sampleResult())
	report.RunID = ""
	assert.Error(t, SaveReport(t.TempDir(), report))
}

func TestReportValidateRejectsBadAction(t *testing.T) {
	report := NewReport("tower", "run-1", sampleResult())
	report.Interventions[0].Action = "up,0.05"
	assert.Error(t, report.Validate())
}

func TestSavePlanArtifact(t *testing.T) {
	dir := t.TempDir()

	plan := &PlanArtifact{
		Scenario:  "tower",
		RunID:     "run-1",
		Success:   true,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, SavePlanArtifact(dir, plan))
	assert.FileExists(t, PlanArtifactPath(dir, "tower"))
}

func TestSavePlanArtifactRejectsInvalid(t *testing.T) {
	plan := &PlanArtifact{Scenario: "tower"}
	assert.Error(t, SavePlanArtifact(t.TempDir(), plan))
}
