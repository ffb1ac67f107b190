// Package scenario loads scenario and world-state files and persists the
// artifacts that flow between the identification and recovery stages.
package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// RewardShaping holds the scenario's reward-shaping knobs
type RewardShaping struct {
	ShiftBonus   float64 `json:"shift_bonus"`
	DepthPenalty float64 `json:"depth_penalty"`
}

// Scenario is one scenario configuration ({name}.json in the scenarios dir)
type Scenario struct {
	Name                 string              `json:"name"`
	Reference            string              `json:"reference"`
	SymbolicGoal         []string            `json:"symbolic_goal"`
	InterventionSpace    map[string][]string `json:"intv_space"`
	MaxRolloutDepth      int                 `json:"max_rollout_depth"`
	TerminationThreshold float64             `json:"termination_threshold"`
	RewardShaping        RewardShaping       `json:"reward_shaping"`
}

// Validate ensures the scenario is usable
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario.name: field is required")
	}
	if s.Reference == "" {
		return fmt.Errorf("scenario.reference: field is required")
	}
	if len(s.SymbolicGoal) == 0 {
		return fmt.Errorf("scenario.symbolic_goal: at least one goal relation is required")
	}
	if len(s.InterventionSpace) == 0 {
		return fmt.Errorf("scenario.intv_space: at least one entity is required")
	}
	for entity, actions := range s.InterventionSpace {
		if len(actions) == 0 {
			return fmt.Errorf("scenario.intv_space[%s]: at least one action is required", entity)
		}
	}
	if s.MaxRolloutDepth <= 0 {
		return fmt.Errorf("scenario.max_rollout_depth: must be positive")
	}
	if s.TerminationThreshold <= 0 {
		return fmt.Errorf("scenario.termination_threshold: must be positive")
	}
	return nil
}

// LoadScenario loads and validates {name}.json from the scenarios dir
func LoadScenario(scenariosDir, name string) (*Scenario, error) {
	path := filepath.Join(scenariosDir, name+".json")

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open scenario %q: %w", name, err)
	}
	defer file.Close()

	var sc Scenario
	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields() // Reject unknown fields for strict validation

	if err := decoder.Decode(&sc); err != nil {
		return nil, fmt.Errorf("cannot decode scenario %q: %w", name, err)
	}
	if sc.Name == "" {
		sc.Name = name
	}
	if sc.Reference == "" {
		sc.Reference = "0"
	}

	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %q validation failed: %w", name, err)
	}
	return &sc, nil
}
