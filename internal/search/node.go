package search

import "github.com/stacklab/realign/internal/world"

// node is one arena slot in the search tree. Nodes are owned by the arena;
// parent is a non-owning index used only for backpropagation (-1 for root).
type node struct {
	parent int
	depth  int

	// via is the intervention that produced this node from its parent
	// (zero value for the root).
	via world.Intervention

	// state is this node's independently owned world copy.
	state *world.State

	children []int

	// untried is the legal-action frontier: the configured intervention
	// space minus interventions already expanded as direct children of
	// this exact node.
	untried []world.Intervention

	visits      int
	totalReward float64
}

// mean returns the node's mean rollout reward (0 if unvisited)
func (n *node) mean() float64 {
	if n.visits == 0 {
		return 0
	}
	return n.totalReward / float64(n.visits)
}
