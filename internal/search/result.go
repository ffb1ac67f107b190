package search

import "github.com/stacklab/realign/internal/world"

// Result is the outcome of one search run. Solved=false with a non-empty
// intervention list is a normal best-effort outcome, not an error.
type Result struct {
	Interventions []world.Intervention
	Iterations    int
	Rollouts      int
	Solved        bool
	BestReward    float64
}

// Entities returns the unique corrected entity ids in first-seen order
func (r *Result) Entities() []string {
	seen := make(map[string]bool, len(r.Interventions))
	var out []string
	for _, iv := range r.Interventions {
		if !seen[iv.Entity] {
			seen[iv.Entity] = true
			out = append(out, iv.Entity)
		}
	}
	return out
}
