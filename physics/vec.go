// Package physics implements the fixed-timestep motion core: input mapping,
// semi-implicit Euler integration, and boundary clamp-and-reflect. It has no
// dependency on the renderer or the config layer; everything operates on
// plain values so the whole tick is testable in isolation.
package physics

import "math"

// Vec2 is a 2-D vector in world units. Screen convention: Y grows down.
type Vec2 struct {
	X, Y float32
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Length returns the Euclidean magnitude of v.
func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// LengthSq returns the squared magnitude, avoiding the sqrt.
func (v Vec2) LengthSq() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns the unit vector in the direction of v.
// The zero vector normalizes to the zero vector.
func (v Vec2) Normalize() Vec2 {
	mag := v.Length()
	if mag == 0 {
		return Vec2{}
	}
	inv := 1 / mag
	return Vec2{v.X * inv, v.Y * inv}
}
