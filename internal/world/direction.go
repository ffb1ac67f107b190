package world

import "errors"

// Taxonomy of malformed-intervention conditions. These indicate programmer
// or configuration errors and are never retried.
var (
	ErrUnknownEntity    = errors.New("unknown entity")
	ErrUnknownDirection = errors.New("unknown direction")
)

// Direction represents a horizontal shift direction in the world frame
type Direction string

const (
	// DirectionLeft shifts along -X
	DirectionLeft Direction = "left"
	// DirectionRight shifts along +X
	DirectionRight Direction = "right"
	// DirectionForward shifts along +Y
	DirectionForward Direction = "forward"
	// DirectionBack shifts along -Y
	DirectionBack Direction = "back"
)

// IsValid checks if a direction is in the fixed direction table
func (d Direction) IsValid() bool {
	for _, valid := range AllDirections() {
		if d == valid {
			return true
		}
	}
	return false
}

// AllDirections returns all valid direction values
func AllDirections() []Direction {
	return []Direction{DirectionLeft, DirectionRight, DirectionForward, DirectionBack}
}

// String returns the string representation of the direction
func (d Direction) String() string {
	return string(d)
}

// Inverse returns the direction that undoes this one
func (d Direction) Inverse() Direction {
	switch d {
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	case DirectionForward:
		return DirectionBack
	case DirectionBack:
		return DirectionForward
	}
	return d
}

// Vector returns the unit (x, y) displacement for the direction.
// Shifts are horizontal only; z never changes.
func (d Direction) Vector() (dx, dy float64) {
	switch d {
	case DirectionLeft:
		return -1, 0
	case DirectionRight:
		return 1, 0
	case DirectionForward:
		return 0, 1
	case DirectionBack:
		return 0, -1
	}
	return 0, 0
}
