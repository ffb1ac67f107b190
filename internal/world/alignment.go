package world

import "math"

// EntityAlignment describes one entity's induced drift against the reference.
// DX and DY are signed deltas between the current relative offset and the
// offset captured at scenario load.
type EntityAlignment struct {
	Entity  string
	DX, DY  float64
	Aligned bool
}

// AlignmentReport covers every non-reference entity. It is recomputed fresh
// from a state on demand and never cached across mutations.
type AlignmentReport struct {
	Threshold float64
	Entities  []EntityAlignment
}

// Evaluate computes the alignment report for the state against the given
// threshold. An entity is aligned iff every axis delta's absolute value is
// at or below the threshold (boundary equality counts as aligned).
func (s *State) Evaluate(threshold float64) AlignmentReport {
	report := AlignmentReport{Threshold: threshold}
	ref := s.positions[s.reference]

	for _, id := range s.Entities() {
		if id == s.reference {
			continue
		}
		pos := s.positions[id]
		initial := s.initialOffsets[id]
		dx := (pos.X - ref.X) - initial.X
		dy := (pos.Y - ref.Y) - initial.Y
		report.Entities = append(report.Entities, EntityAlignment{
			Entity:  id,
			DX:      dx,
			DY:      dy,
			Aligned: math.Abs(dx) <= threshold && math.Abs(dy) <= threshold,
		})
	}
	return report
}

// AlignedFraction returns the exact fraction of entities that are aligned
func (r AlignmentReport) AlignedFraction() float64 {
	if len(r.Entities) == 0 {
		return 1.0
	}
	aligned := 0
	for _, e := range r.Entities {
		if e.Aligned {
			aligned++
		}
	}
	return float64(aligned) / float64(len(r.Entities))
}

// AllAligned reports whether every tracked entity is aligned
func (r AlignmentReport) AllAligned() bool {
	for _, e := range r.Entities {
		if !e.Aligned {
			return false
		}
	}
	return true
}

// Misaligned returns the ids of entities that are out of alignment
func (r AlignmentReport) Misaligned() []string {
	var out []string
	for _, e := range r.Entities {
		if !e.Aligned {
			out = append(out, e.Entity)
		}
	}
	return out
}
