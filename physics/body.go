package physics

// Body is the full mutable state of one movable body.
type Body struct {
	// Pos is the body's center in world space.
	Pos Vec2

	// Vel is the linear velocity in units/second.
	Vel Vec2

	// Accel is the input-derived acceleration for the current tick only.
	// Step writes it fresh each tick and Integrate consumes it; it is never
	// carried across ticks.
	Accel Vec2

	// Friction is the multiplicative velocity retention applied once per
	// tick, in (0,1]. 1 means no damping. Validated at configuration time;
	// the core does not re-check it.
	Friction float32

	// Extent is the half-size of the body's bounding box.
	Extent float32
}

// Params is the immutable per-tick configuration. It is constructed once at
// startup (or on explicit reset) and passed by value; nothing in the core
// mutates it.
type Params struct {
	// DT is the fixed timestep in seconds.
	DT float32

	// InputForce is the acceleration magnitude of a held direction.
	InputForce float32

	// InputBoost multiplies InputForce while boost is held.
	InputBoost float32

	// Restitution scales the reflected velocity component on a wall hit.
	// 1 is perfectly elastic.
	Restitution float32

	// MaxSpeed caps the velocity magnitude before translation. 0 disables
	// the cap; friction alone then sets the terminal speed.
	MaxSpeed float32

	// World is the outer world rectangle; Margin insets it together with
	// the body extent to form the effective collision bounds.
	World  Rect
	Margin float32
}

// Effective returns the world bounds inset by the body's extent plus the
// configured margin: the region the body's center may occupy.
func (p Params) Effective(b *Body) Rect {
	return p.World.Inset(b.Extent + p.Margin)
}
