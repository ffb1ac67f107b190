package search

import (
	"math"

	"github.com/stacklab/realign/internal/world"
)

// ShapingConfig holds the reward-shaping knobs. ShiftBonus and DepthPenalty
// are independent; the dense shift term accumulates per rollout step and is
// only applied when Dense is set.
type ShapingConfig struct {
	ShiftBonus   float64
	DepthPenalty float64
	Dense        bool
}

// RewardShaper converts an alignment snapshot and a path length into a
// scalar rollout reward.
type RewardShaper struct {
	shaping   ShapingConfig
	threshold float64
}

// NewRewardShaper creates a shaper. threshold is the termination threshold
// the search engine stops at; the shaper guarantees a clean separation
// between solved and unsolved states around it.
func NewRewardShaper(shaping ShapingConfig, threshold float64) *RewardShaper {
	return &RewardShaper{shaping: shaping, threshold: threshold}
}

// Score computes the reward for a rollout outcome. depth is the number of
// interventions on the current path; steps is the number applied during this
// rollout (the two coincide when rollouts replay from the root).
//
// A fully-aligned state always scores at or above the termination threshold;
// anything less than full alignment scores strictly below it, so partial
// credit can never alias the terminal value.
func (rs *RewardShaper) Score(report world.AlignmentReport, depth, steps int) float64 {
	reward := report.AlignedFraction()
	if rs.shaping.Dense {
		reward += rs.shaping.ShiftBonus * float64(steps)
	}
	reward -= rs.shaping.DepthPenalty * float64(depth)

	if report.AllAligned() {
		return math.Max(reward, rs.threshold)
	}
	if reward >= rs.threshold {
		return math.Nextafter(rs.threshold, math.Inf(-1))
	}
	return reward
}

// Threshold returns the termination threshold the shaper separates around
func (rs *RewardShaper) Threshold() float64 {
	return rs.threshold
}
