package world

import (
	"errors"
	"testing"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		action  string
		wantDir Direction
		wantMag float64
	}{
		{"left,0.005", DirectionLeft, 0.005},
		{"right,0.01", DirectionRight, 0.01},
		{"forward,0.02", DirectionForward, 0.02},
		{"back,0", DirectionBack, 0},
		{"left, 0.005", DirectionLeft, 0.005},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			dir, mag, err := ParseAction(tt.action)
			if err != nil {
				t.Fatalf("ParseAction(%q) error: %v", tt.action, err)
			}
			if dir != tt.wantDir {
				t.Errorf("direction = %q, want %q", dir, tt.wantDir)
			}
			if mag != tt.wantMag {
				t.Errorf("magnitude = %g, want %g", mag, tt.wantMag)
			}
		})
	}
}

func TestParseActionErrors(t *testing.T) {
	tests := []string{
		"up,0.005",
		"left",
		"left,abc",
		"left,-0.005",
		"",
	}

	for _, action := range tests {
		t.Run(action, func(t *testing.T) {
			if _, _, err := ParseAction(action); err == nil {
				t.Errorf("ParseAction(%q) expected error, got nil", action)
			}
		})
	}
}

func TestParseActionUnknownDirection(t *testing.T) {
	_, _, err := ParseAction("up,0.005")
	if !errors.Is(err, ErrUnknownDirection) {
		t.Errorf("expected ErrUnknownDirection, got %v", err)
	}
}

func TestActionRoundTrip(t *testing.T) {
	iv, err := NewIntervention("2", "left,0.005")
	if err != nil {
		t.Fatalf("NewIntervention error: %v", err)
	}
	if got := iv.Action(); got != "left,0.005" {
		t.Errorf("Action() = %q, want %q", got, "left,0.005")
	}
}

func TestInterventionInverse(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Direction
	}{
		{DirectionLeft, DirectionRight},
		{DirectionRight, DirectionLeft},
		{DirectionForward, DirectionBack},
		{DirectionBack, DirectionForward},
	}

	for _, tt := range tests {
		iv := Intervention{Entity: "1", Direction: tt.dir, Magnitude: 0.01}
		inv := iv.Inverse()
		if inv.Direction != tt.want {
			t.Errorf("Inverse of %s = %s, want %s", tt.dir, inv.Direction, tt.want)
		}
		if inv.Entity != iv.Entity || inv.Magnitude != iv.Magnitude {
			t.Errorf("Inverse changed entity or magnitude: %+v", inv)
		}
	}
}

// Applying an intervention and then its inverse must restore the original
// position exactly (unit axis vectors, same magnitude).
func TestApplyInverseRestoresPosition(t *testing.T) {
	s := mustState(t, map[string]Position{
		"0": {X: 0, Y: 0, Z: 0},
		"1": {X: 0.1, Y: 0.2, Z: 0},
	}, nil, "0")

	iv := Intervention{Entity: "1", Direction: DirectionLeft, Magnitude: 0.005}

	shifted, err := s.Apply(iv)
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	restored, err := shifted.Apply(iv.Inverse())
	if err != nil {
		t.Fatalf("Apply inverse error: %v", err)
	}

	orig, _ := s.Position("1")
	back, _ := restored.Position("1")
	if orig != back {
		t.Errorf("inverse did not restore position: got %+v, want %+v", back, orig)
	}
}
