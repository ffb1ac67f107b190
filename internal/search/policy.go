package search

import (
	"math/rand"

	"github.com/stacklab/realign/internal/world"
)

// Policy picks the next intervention from a legal-action set during
// expansion and rollout. Implementations must be deterministic given the
// rng's state so that a fixed seed reproduces the full search trace.
type Policy interface {
	// Pick returns the index of the chosen intervention in legal.
	// legal is never empty.
	Pick(legal []world.Intervention, rng *rand.Rand) int
}

// UniformPolicy chooses uniformly at random over the legal set
type UniformPolicy struct{}

// Pick implements Policy
func (UniformPolicy) Pick(legal []world.Intervention, rng *rand.Rand) int {
	return rng.Intn(len(legal))
}
