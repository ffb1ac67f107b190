// Package search implements Monte Carlo Tree Search over the hybrid
// symbolic/geometric world state to discover a short sequence of corrective
// interventions. The loop is the canonical four phases (select, expand,
// rollout, backpropagate) run single-threaded until a terminal reward is
// produced or the iteration budget is exhausted.
package search

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/stacklab/realign/internal/world"
)

// Config holds everything one search run needs. Passing it explicitly (no
// package-level state) keeps independent runs free of cross-talk.
type Config struct {
	// Space is the flattened intervention space (see BuildSpace).
	Space []world.Intervention

	MaxRolloutDepth      int
	Iterations           int
	ExplorationConstant  float64
	TerminationThreshold float64

	// AlignmentThreshold is the per-axis drift tolerance used when scoring.
	AlignmentThreshold float64

	Shaping ShapingConfig

	// Seed initializes the single random source threaded through expansion
	// and rollout. Identical seed, scenario and config reproduce the search
	// byte for byte.
	Seed int64

	// Policy picks interventions during expansion and rollout.
	// Defaults to UniformPolicy.
	Policy Policy

	// Progress, when set, is called once per iteration with the rollout
	// reward. Used for CLI status output only.
	Progress func(iteration int, reward float64, depth int)
}

func (c *Config) validate() error {
	if len(c.Space) == 0 {
		return fmt.Errorf("search config: intervention space is empty")
	}
	if c.MaxRolloutDepth <= 0 {
		return fmt.Errorf("search config: max rollout depth must be positive")
	}
	if c.Iterations <= 0 {
		return fmt.Errorf("search config: iteration budget must be positive")
	}
	if c.AlignmentThreshold <= 0 {
		return fmt.Errorf("search config: alignment threshold must be positive")
	}
	return nil
}

// Engine runs MCTS over an arena-allocated tree of search nodes
type Engine struct {
	cfg    Config
	shaper *RewardShaper
	policy Policy
	rng    *rand.Rand

	nodes    []node
	rollouts int
}

// New creates a search engine for one or more runs with the given config
func New(cfg Config) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	policy := cfg.Policy
	if policy == nil {
		policy = UniformPolicy{}
	}
	return &Engine{
		cfg:    cfg,
		shaper: NewRewardShaper(cfg.Shaping, cfg.TerminationThreshold),
		policy: policy,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
	}, nil
}

// Search runs the MCTS loop from the given root state. It returns a solved
// result as soon as a rollout reaches the termination threshold, or the
// best-effort path when the iteration budget runs out.
func (e *Engine) Search(root *world.State) (*Result, error) {
	for _, iv := range e.cfg.Space {
		if _, ok := root.Position(iv.Entity); !ok {
			return nil, fmt.Errorf("intervention space: %w: %q", world.ErrUnknownEntity, iv.Entity)
		}
	}

	e.nodes = e.nodes[:0]
	e.rollouts = 0
	e.nodes = append(e.nodes, node{
		parent:  -1,
		state:   root.Clone(),
		untried: append([]world.Intervention(nil), e.cfg.Space...),
	})

	for i := 0; i < e.cfg.Iterations; i++ {
		idx := e.selectNode(0)
		idx, err := e.expand(idx)
		if err != nil {
			return nil, err
		}

		reward, seq, aligned, err := e.rollout(idx)
		if err != nil {
			return nil, err
		}
		e.backpropagate(idx, reward)

		if e.cfg.Progress != nil {
			e.cfg.Progress(i, reward, len(seq))
		}

		// Terminal rewards are only reachable from fully-aligned states
		// (the shaper clamps partial credit strictly below the threshold),
		// so a solved result always replays to full alignment.
		if reward >= e.cfg.TerminationThreshold && aligned {
			return &Result{
				Interventions: seq,
				Iterations:    i + 1,
				Rollouts:      e.rollouts,
				Solved:        true,
				BestReward:    reward,
			}, nil
		}
	}

	seq, best := e.bestLeafPath()
	return &Result{
		Interventions: seq,
		Iterations:    e.cfg.Iterations,
		Rollouts:      e.rollouts,
		Solved:        false,
		BestReward:    best,
	}, nil
}

// selectNode descends from idx to the child maximizing UCT until it reaches
// a node with a non-empty frontier, a leaf, or max rollout depth.
func (e *Engine) selectNode(idx int) int {
	for {
		n := &e.nodes[idx]
		if len(n.untried) > 0 || len(n.children) == 0 || n.depth >= e.cfg.MaxRolloutDepth {
			return idx
		}
		idx = e.bestChild(idx)
	}
}

// bestChild returns the child of idx with the highest UCT score. Unvisited
// children score +inf; ties keep the first-encountered child.
func (e *Engine) bestChild(idx int) int {
	parent := &e.nodes[idx]
	best := -1
	bestScore := math.Inf(-1)

	for _, ci := range parent.children {
		child := &e.nodes[ci]
		var score float64
		if child.visits == 0 {
			score = math.Inf(1)
		} else {
			exploit := child.mean()
			explore := e.cfg.ExplorationConstant *
				math.Sqrt(math.Log(float64(parent.visits))/float64(child.visits))
			score = exploit + explore
		}
		if score > bestScore {
			best = ci
			bestScore = score
		}
	}
	return best
}

// expand instantiates one untried child of idx and returns its index. A node
// at max depth or with an exhausted frontier is returned unchanged.
func (e *Engine) expand(idx int) (int, error) {
	n := &e.nodes[idx]
	if n.depth >= e.cfg.MaxRolloutDepth || len(n.untried) == 0 {
		return idx, nil
	}

	pick := e.policy.Pick(n.untried, e.rng)
	iv := n.untried[pick]
	// Order-preserving removal keeps the frontier's first-encountered
	// ordering stable for deterministic tie-breaks.
	n.untried = append(n.untried[:pick], n.untried[pick+1:]...)

	childState, err := n.state.Apply(iv)
	if err != nil {
		return 0, fmt.Errorf("expand: %w", err)
	}

	child := node{
		parent:  idx,
		depth:   n.depth + 1,
		via:     iv,
		state:   childState,
		untried: append([]world.Intervention(nil), e.cfg.Space...),
	}
	childIdx := len(e.nodes)
	e.nodes = append(e.nodes, child)
	// The append may have moved the arena; re-resolve the parent.
	e.nodes[idx].children = append(e.nodes[idx].children, childIdx)
	return childIdx, nil
}

// rollout simulates random interventions from idx until max depth or a
// terminal reward. The rollout state is discarded; only the reward, the
// intervention sequence that produced it and the final alignment survive.
func (e *Engine) rollout(idx int) (reward float64, seq []world.Intervention, aligned bool, err error) {
	n := &e.nodes[idx]
	seq = e.pathTo(idx)
	st := n.state.Clone()
	e.rollouts++

	report := st.Evaluate(e.cfg.AlignmentThreshold)
	reward = e.shaper.Score(report, len(seq), len(seq))
	if reward >= e.cfg.TerminationThreshold {
		return reward, seq, report.AllAligned(), nil
	}

	for depth := n.depth; depth < e.cfg.MaxRolloutDepth; depth++ {
		// Rollouts draw from the full intervention space each step:
		// entities already driven on this path may be revisited.
		pick := e.policy.Pick(e.cfg.Space, e.rng)
		iv := e.cfg.Space[pick]

		st, err = st.Apply(iv)
		if err != nil {
			return 0, nil, false, fmt.Errorf("rollout: %w", err)
		}
		seq = append(seq, iv)

		report = st.Evaluate(e.cfg.AlignmentThreshold)
		reward = e.shaper.Score(report, len(seq), len(seq))
		if reward >= e.cfg.TerminationThreshold {
			break
		}
	}
	return reward, seq, report.AllAligned(), nil
}

// backpropagate walks parent indices from idx to the root, incrementing
// visits and accumulating the rollout reward. Runs unconditionally on every
// iteration, including ones that hit max depth without expanding.
func (e *Engine) backpropagate(idx int, reward float64) {
	for i := idx; i >= 0; i = e.nodes[i].parent {
		e.nodes[i].visits++
		e.nodes[i].totalReward += reward
	}
}

// pathTo returns the interventions from the root to idx, in order
func (e *Engine) pathTo(idx int) []world.Intervention {
	depth := e.nodes[idx].depth
	seq := make([]world.Intervention, depth, depth+e.cfg.MaxRolloutDepth)
	for i := idx; i > 0; i = e.nodes[i].parent {
		depth--
		seq[depth] = e.nodes[i].via
	}
	return seq
}

// bestLeafPath returns the path to the visited leaf with the highest mean
// reward, for budget-exhausted best-effort results.
func (e *Engine) bestLeafPath() ([]world.Intervention, float64) {
	best := -1
	bestMean := math.Inf(-1)
	for i := range e.nodes {
		n := &e.nodes[i]
		if i == 0 || n.visits == 0 || len(n.children) > 0 {
			continue
		}
		if m := n.mean(); m > bestMean {
			best = i
			bestMean = m
		}
	}
	if best < 0 {
		return nil, e.nodes[0].mean()
	}
	return e.pathTo(best), bestMean
}
