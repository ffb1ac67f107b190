package world

import (
	"fmt"
	"strconv"
	"strings"
)

// Intervention is a single directional nudge applied to one entity.
// The action's wire form is "direction,magnitude" (e.g. "left,0.005"),
// matching the scenario file convention.
type Intervention struct {
	Entity    string
	Direction Direction
	Magnitude float64
}

// ParseAction parses the wire form "left,0.005" into a direction and magnitude
func ParseAction(action string) (Direction, float64, error) {
	parts := strings.SplitN(action, ",", 2)
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("malformed action %q: want \"direction,magnitude\"", action)
	}
	dir := Direction(strings.TrimSpace(parts[0]))
	if !dir.IsValid() {
		return "", 0, fmt.Errorf("action %q: %w: %q", action, ErrUnknownDirection, parts[0])
	}
	mag, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return "", 0, fmt.Errorf("action %q: bad magnitude: %w", action, err)
	}
	if mag < 0 {
		return "", 0, fmt.Errorf("action %q: magnitude must be non-negative", action)
	}
	return dir, mag, nil
}

// NewIntervention builds an intervention from an entity id and a wire-form action
func NewIntervention(entity, action string) (Intervention, error) {
	dir, mag, err := ParseAction(action)
	if err != nil {
		return Intervention{}, err
	}
	return Intervention{Entity: entity, Direction: dir, Magnitude: mag}, nil
}

// Action returns the wire form of the directional action, e.g. "left,0.005"
func (iv Intervention) Action() string {
	return fmt.Sprintf("%s,%g", iv.Direction, iv.Magnitude)
}

// Inverse returns the intervention that algebraically undoes this one
func (iv Intervention) Inverse() Intervention {
	return Intervention{Entity: iv.Entity, Direction: iv.Direction.Inverse(), Magnitude: iv.Magnitude}
}

// String returns a human-readable form, e.g. "shift 2 left by 0.005"
func (iv Intervention) String() string {
	return fmt.Sprintf("shift %s %s by %g", iv.Entity, iv.Direction, iv.Magnitude)
}
