package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/stacklab/realign/internal/search"
	"github.com/stacklab/realign/internal/world"
)

// InterventionRecord is one (entity, directional action) pair in wire form
type InterventionRecord struct {
	Entity string `json:"entity"`
	Action string `json:"action"`
}

// Report is the stage-boundary artifact handed from identification to
// recovery: the discovered interventions plus search statistics.
type Report struct {
	Scenario      string               `json:"scenario"`
	RunID         string               `json:"run_id"`
	Interventions []InterventionRecord `json:"interventions"`
	Iterations    int                  `json:"iterations"`
	TotalRollouts int                  `json:"total_rollouts"`
	Solved        bool                 `json:"solved"`
	CreatedAt     time.Time            `json:"created_at"`
}

// NewReport builds the artifact from a search result
func NewReport(scenarioName, runID string, result *search.Result) *Report {
	records := make([]InterventionRecord, 0, len(result.Interventions))
	for _, iv := range result.Interventions {
		records = append(records, InterventionRecord{Entity: iv.Entity, Action: iv.Action()})
	}
	return &Report{
		Scenario:      scenarioName,
		RunID:         runID,
		Interventions: records,
		Iterations:    result.Iterations,
		TotalRollouts: result.Rollouts,
		Solved:        result.Solved,
		CreatedAt:     time.Now().UTC(),
	}
}

// Validate ensures the report is valid
func (r *Report) Validate() error {
	if r.Scenario == "" {
		return fmt.Errorf("report.scenario: field is required")
	}
	if r.RunID == "" {
		return fmt.Errorf("report.run_id: field is required")
	}
	for i, rec := range r.Interventions {
		if rec.Entity == "" {
			return fmt.Errorf("report.interventions[%d].entity: field is required", i)
		}
		if _, _, err := world.ParseAction(rec.Action); err != nil {
			return fmt.Errorf("report.interventions[%d]: %w", i, err)
		}
	}
	if r.Iterations < 0 {
		return fmt.Errorf("report.iterations: must be non-negative")
	}
	if r.CreatedAt.IsZero() {
		return fmt.Errorf("report.created_at: field is required")
	}
	return nil
}

// Entities returns the unique corrected entity ids in first-seen order
func (r *Report) Entities() []string {
	seen := make(map[string]bool, len(r.Interventions))
	var out []string
	for _, rec := range r.Interventions {
		if !seen[rec.Entity] {
			seen[rec.Entity] = true
			out = append(out, rec.Entity)
		}
	}
	return out
}

// ReportPath returns where a scenario's report lives
func ReportPath(dir, scenarioName string) string {
	return filepath.Join(dir, fmt.Sprintf("results_%s.json", scenarioName))
}

// SaveReport writes the report atomically, validating first
func SaveReport(dir string, report *Report) error {
	if err := report.Validate(); err != nil {
		return fmt.Errorf("cannot save invalid report: %w", err)
	}
	return writeJSON(ReportPath(dir, report.Scenario), report)
}

// LoadReport reads and validates a scenario's report
func LoadReport(dir, scenarioName string) (*Report, error) {
	path := ReportPath(dir, scenarioName)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open report for %q (run identify first?): %w", scenarioName, err)
	}
	defer file.Close()

	var report Report
	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&report); err != nil {
		return nil, fmt.Errorf("cannot decode report for %q: %w", scenarioName, err)
	}
	if err := report.Validate(); err != nil {
		return nil, fmt.Errorf("report validation failed: %w", err)
	}
	return &report, nil
}

// writeJSON marshals v with indentation and writes it via a temp file plus
// rename so readers never observe a partial file
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal %s: %w", filepath.Base(path), err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("cannot write %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("cannot finalize %s: %w", filepath.Base(path), err)
	}
	return nil
}
