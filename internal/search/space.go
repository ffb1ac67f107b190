package search

import (
	"fmt"
	"sort"

	"github.com/stacklab/realign/internal/world"
)

// BuildSpace flattens a per-entity action map (the scenario file's wire form)
// into a deterministically ordered intervention space: entity ids sorted,
// per-entity action order preserved. Deterministic ordering keeps tie-breaks
// and frontier consumption reproducible for a fixed seed.
func BuildSpace(actions map[string][]string) ([]world.Intervention, error) {
	ids := make([]string, 0, len(actions))
	for id := range actions {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var space []world.Intervention
	for _, id := range ids {
		for _, action := range actions[id] {
			iv, err := world.NewIntervention(id, action)
			if err != nil {
				return nil, fmt.Errorf("intervention space entity %q: %w", id, err)
			}
			space = append(space, iv)
		}
	}
	if len(space) == 0 {
		return nil, fmt.Errorf("intervention space is empty")
	}
	return space, nil
}
