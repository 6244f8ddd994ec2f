package physics

// Intent is a per-tick snapshot of the held movement directions. It is
// sampled once per tick by the caller, not per key event, so a key that
// bounces within a tick cannot double-count.
type Intent struct {
	Up, Down, Left, Right bool

	// Boost multiplies the input force while held.
	Boost bool
}

// None reports whether no movement direction is held.
func (in Intent) None() bool {
	return !in.Up && !in.Down && !in.Left && !in.Right
}

// Direction returns the unit direction vector for the held set. Opposing
// directions cancel. Diagonals are normalized to unit length so diagonal
// acceleration matches axial acceleration.
func (in Intent) Direction() Vec2 {
	var d Vec2
	if in.Right {
		d.X += 1
	}
	if in.Left {
		d.X -= 1
	}
	if in.Down {
		d.Y += 1
	}
	if in.Up {
		d.Y -= 1
	}
	return d.Normalize()
}

// Acceleration maps the intent to an acceleration vector: the unit direction
// scaled by force, times boost while Boost is held. An empty set yields the
// zero vector, leaving the tick to pure friction deceleration.
func (in Intent) Acceleration(force, boost float32) Vec2 {
	f := force
	if in.Boost {
		f *= boost
	}
	return in.Direction().Scale(f)
}
