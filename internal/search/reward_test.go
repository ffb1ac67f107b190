package search

import (
	"math"
	"testing"

	"github.com/stacklab/realign/internal/world"
)

func reportWith(aligned, misaligned int) world.AlignmentReport {
	var report world.AlignmentReport
	for i := 0; i < aligned; i++ {
		report.Entities = append(report.Entities, world.EntityAlignment{Aligned: true})
	}
	for i := 0; i < misaligned; i++ {
		report.Entities = append(report.Entities, world.EntityAlignment{Aligned: false})
	}
	return report
}

func TestScoreIsExactFraction(t *testing.T) {
	rs := NewRewardShaper(ShapingConfig{}, 0.9)

	tests := []struct {
		aligned, misaligned int
		want                float64
	}{
		{0, 4, 0},
		{1, 3, 0.25},
		{2, 2, 0.5},
		{3, 1, 0.75},
	}

	for _, tt := range tests {
		report := reportWith(tt.aligned, tt.misaligned)
		if got := rs.Score(report, 0, 0); got != tt.want {
			t.Errorf("Score(%d/%d aligned) = %g, want %g", tt.aligned, tt.aligned+tt.misaligned, got, tt.want)
		}
	}
}

func TestScoreFullyAlignedMeetsThreshold(t *testing.T) {
	// A deep path with a harsh depth penalty must still score at or above
	// the termination threshold when fully aligned.
	rs := NewRewardShaper(ShapingConfig{DepthPenalty: 0.5}, 0.9)

	got := rs.Score(reportWith(4, 0), 10, 10)
	if got < 0.9 {
		t.Errorf("fully aligned score = %g, want >= 0.9", got)
	}
}

func TestScorePartialNeverReachesThreshold(t *testing.T) {
	// Dense shift bonus can push the raw reward past the threshold; the
	// clamp must keep partial alignment strictly below it.
	rs := NewRewardShaper(ShapingConfig{ShiftBonus: 0.2, Dense: true}, 0.9)

	got := rs.Score(reportWith(3, 1), 5, 5)
	if got >= 0.9 {
		t.Errorf("partial alignment score = %g, must stay strictly below 0.9", got)
	}
}

func TestScoreDenseShapingAccumulatesPerStep(t *testing.T) {
	rs := NewRewardShaper(ShapingConfig{ShiftBonus: 0.01, Dense: true}, 0.9)

	one := rs.Score(reportWith(1, 3), 0, 1)
	three := rs.Score(reportWith(1, 3), 0, 3)
	if math.Abs((three-one)-0.02) > 1e-12 {
		t.Errorf("dense bonus over 2 extra steps = %g, want 0.02", three-one)
	}
}

func TestScoreDenseShapingOffIgnoresSteps(t *testing.T) {
	rs := NewRewardShaper(ShapingConfig{ShiftBonus: 0.2}, 0.9)

	if got := rs.Score(reportWith(1, 3), 0, 5); got != 0.25 {
		t.Errorf("Score with dense shaping off = %g, want 0.25", got)
	}
}

func TestScoreDepthPenalty(t *testing.T) {
	rs := NewRewardShaper(ShapingConfig{DepthPenalty: 0.1}, 0.9)

	if got := rs.Score(reportWith(2, 2), 3, 3); math.Abs(got-0.2) > 1e-12 {
		t.Errorf("Score with depth 3 = %g, want 0.2", got)
	}
}

func TestScoreEmptyReportIsAligned(t *testing.T) {
	rs := NewRewardShaper(ShapingConfig{}, 0.9)

	if got := rs.Score(world.AlignmentReport{}, 0, 0); got < 0.9 {
		t.Errorf("empty report score = %g, want >= 0.9", got)
	}
}
