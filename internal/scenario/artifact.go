package scenario

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/stacklab/realign/internal/planner"
)

// PlanArtifact is the final output of the recovery stage: the decoded action
// sequence for one scenario run.
type PlanArtifact struct {
	Scenario  string       `json:"scenario"`
	RunID     string       `json:"run_id"`
	Success   bool         `json:"success"`
	Actions   planner.Plan `json:"actions"`
	CreatedAt time.Time    `json:"created_at"`
}

// Validate ensures the artifact is valid
func (p *PlanArtifact) Validate() error {
	if p.Scenario == "" {
		return fmt.Errorf("plan.scenario: field is required")
	}
	if p.RunID == "" {
		return fmt.Errorf("plan.run_id: field is required")
	}
	if p.CreatedAt.IsZero() {
		return fmt.Errorf("plan.created_at: field is required")
	}
	return nil
}

// PlanArtifactPath returns where a scenario's recovery plan lives
func PlanArtifactPath(dir, scenarioName string) string {
	return filepath.Join(dir, fmt.Sprintf("plan_%s.json", scenarioName))
}

// SavePlanArtifact writes the plan artifact atomically, validating first
func SavePlanArtifact(dir string, artifact *PlanArtifact) error {
	if err := artifact.Validate(); err != nil {
		return fmt.Errorf("cannot save invalid plan: %w", err)
	}
	return writeJSON(PlanArtifactPath(dir, artifact.Scenario), artifact)
}
