// Package world models the hybrid symbolic/geometric state that the
// intervention search operates on: entity positions, symbolic relations,
// and per-entity drift against a reference entity.
package world

import (
	"fmt"
	"sort"
)

// Position is a point in the world frame
type Position struct {
	X, Y, Z float64
}

// Offset is a per-axis displacement in the horizontal plane
type Offset struct {
	X, Y float64
}

// State is the full world at one instant: entity positions plus the symbolic
// relations holding among them. A state is owned exclusively by whoever holds
// it; Apply returns a fresh copy and never mutates the receiver, so sibling
// search branches never observe each other's shifts.
type State struct {
	positions map[string]Position
	relations []Relation
	reference string

	// Per-entity (x, y) offset from the reference entity captured at scenario
	// load. Alignment is judged against drift from these offsets, not against
	// absolute coincidence with the reference.
	initialOffsets map[string]Offset
}

// NewState builds a state from entity positions and symbolic relations and
// captures each non-reference entity's initial offset from the reference.
func NewState(positions map[string]Position, relations []Relation, reference string) (*State, error) {
	ref, ok := positions[reference]
	if !ok {
		return nil, fmt.Errorf("reference entity %q: %w", reference, ErrUnknownEntity)
	}

	s := &State{
		positions:      make(map[string]Position, len(positions)),
		relations:      append([]Relation(nil), relations...),
		reference:      reference,
		initialOffsets: make(map[string]Offset, len(positions)-1),
	}
	for id, pos := range positions {
		s.positions[id] = pos
		if id != reference {
			s.initialOffsets[id] = Offset{X: pos.X - ref.X, Y: pos.Y - ref.Y}
		}
	}
	return s, nil
}

// NewObservedState builds a state whose positions come from an observed
// capture while initial offsets come from the original configuration the
// world was set up in. Drift is then the observed deviation from the
// original offsets, so a freshly observed world can start misaligned.
func NewObservedState(observed, original map[string]Position, relations []Relation, reference string) (*State, error) {
	ref, ok := original[reference]
	if !ok {
		return nil, fmt.Errorf("reference entity %q: %w", reference, ErrUnknownEntity)
	}
	if _, ok := observed[reference]; !ok {
		return nil, fmt.Errorf("observed reference entity %q: %w", reference, ErrUnknownEntity)
	}

	s := &State{
		positions:      make(map[string]Position, len(observed)),
		relations:      append([]Relation(nil), relations...),
		reference:      reference,
		initialOffsets: make(map[string]Offset, len(observed)-1),
	}
	for id, pos := range observed {
		s.positions[id] = pos
		if id == reference {
			continue
		}
		orig, ok := original[id]
		if !ok {
			return nil, fmt.Errorf("original configuration for %q: %w", id, ErrUnknownEntity)
		}
		s.initialOffsets[id] = Offset{X: orig.X - ref.X, Y: orig.Y - ref.Y}
	}
	return s, nil
}

// Clone returns a deep, independent copy of the state
func (s *State) Clone() *State {
	c := &State{
		positions:      make(map[string]Position, len(s.positions)),
		relations:      append([]Relation(nil), s.relations...),
		reference:      s.reference,
		initialOffsets: make(map[string]Offset, len(s.initialOffsets)),
	}
	for id, pos := range s.positions {
		c.positions[id] = pos
	}
	for id, off := range s.initialOffsets {
		c.initialOffsets[id] = off
	}
	return c
}

// Position returns an entity's current position
func (s *State) Position(entity string) (Position, bool) {
	pos, ok := s.positions[entity]
	return pos, ok
}

// Reference returns the reference entity id
func (s *State) Reference() string {
	return s.reference
}

// Entities returns all entity ids in sorted order
func (s *State) Entities() []string {
	ids := make([]string, 0, len(s.positions))
	for id := range s.positions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Relations returns the symbolic relations of the state
func (s *State) Relations() []Relation {
	return append([]Relation(nil), s.relations...)
}

// Apply returns a new state with the intervention's entity shifted by the
// signed magnitude along the axis implied by its direction. The receiver is
// never mutated.
func (s *State) Apply(iv Intervention) (*State, error) {
	if !iv.Direction.IsValid() {
		return nil, fmt.Errorf("apply to %q: %w: %q", iv.Entity, ErrUnknownDirection, iv.Direction)
	}
	if _, ok := s.positions[iv.Entity]; !ok {
		return nil, fmt.Errorf("apply %s: %w: %q", iv.Direction, ErrUnknownEntity, iv.Entity)
	}
	if iv.Magnitude < 0 {
		return nil, fmt.Errorf("apply to %q: magnitude must be non-negative, got %g", iv.Entity, iv.Magnitude)
	}

	next := s.Clone()
	dx, dy := iv.Direction.Vector()
	pos := next.positions[iv.Entity]
	pos.X += dx * iv.Magnitude
	pos.Y += dy * iv.Magnitude
	next.positions[iv.Entity] = pos
	return next, nil
}
