package physics

import (
	"math"
	"testing"
)

func TestIntentDirection(t *testing.T) {
	const diag = 0.70710678 // 1/sqrt(2)

	tests := []struct {
		name  string
		in    Intent
		wantX float32
		wantY float32
	}{
		{"none held", Intent{}, 0, 0},
		{"right", Intent{Right: true}, 1, 0},
		{"left", Intent{Left: true}, -1, 0},
		{"up", Intent{Up: true}, 0, -1},
		{"down", Intent{Down: true}, 0, 1},
		{"up+right diagonal", Intent{Up: true, Right: true}, diag, -diag},
		{"down+left diagonal", Intent{Down: true, Left: true}, -diag, diag},
		{"opposing cancel", Intent{Left: true, Right: true}, 0, 0},
		{"all four cancel", Intent{Up: true, Down: true, Left: true, Right: true}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.in.Direction()
			if math.Abs(float64(d.X-tt.wantX)) > 1e-6 {
				t.Errorf("Direction().X = %v, want %v", d.X, tt.wantX)
			}
			if math.Abs(float64(d.Y-tt.wantY)) > 1e-6 {
				t.Errorf("Direction().Y = %v, want %v", d.Y, tt.wantY)
			}
		})
	}
}

// Diagonal acceleration must have magnitude F, not F*sqrt(2), with equal
// per-axis components of F/sqrt(2).
func TestIntentAccelerationDiagonalMagnitude(t *testing.T) {
	const force = 500.0

	a := Intent{Up: true, Right: true}.Acceleration(force, 3)

	mag := a.Length()
	if math.Abs(float64(mag-force)) > 0.01 {
		t.Errorf("diagonal |a| = %v, want %v", mag, force)
	}

	want := float32(force / math.Sqrt2)
	if math.Abs(float64(a.X-want)) > 0.01 {
		t.Errorf("a.X = %v, want %v", a.X, want)
	}
	if math.Abs(float64(a.Y+want)) > 0.01 {
		t.Errorf("a.Y = %v, want %v", a.Y, -want)
	}
}

func TestIntentAccelerationBoost(t *testing.T) {
	const force, boost = 500.0, 3.0

	a := Intent{Right: true, Boost: true}.Acceleration(force, boost)
	if math.Abs(float64(a.X-force*boost)) > 0.01 {
		t.Errorf("boosted a.X = %v, want %v", a.X, force*boost)
	}

	a = Intent{Boost: true}.Acceleration(force, boost)
	if a.X != 0 || a.Y != 0 {
		t.Errorf("boost with no direction = %v, want zero", a)
	}
}
