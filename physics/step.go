package physics

// Result reports what happened during one tick.
type Result struct {
	// HitX / HitY are set when the boundary resolver reflected the
	// corresponding velocity component this tick.
	HitX, HitY bool
}

// Integrate advances velocity and position by one fixed timestep using
// semi-implicit Euler: friction damps the previous velocity, acceleration is
// injected scaled by dt, and the already-updated velocity translates the
// body. The per-tick acceleration is consumed here and zeroed.
func Integrate(b *Body, dt, maxSpeed float32) {
	b.Vel.X = b.Vel.X*b.Friction + b.Accel.X*dt
	b.Vel.Y = b.Vel.Y*b.Friction + b.Accel.Y*dt

	if maxSpeed > 0 {
		if mag := b.Vel.Length(); mag > maxSpeed {
			b.Vel = b.Vel.Scale(maxSpeed / mag)
		}
	}

	b.Pos.X += b.Vel.X * dt
	b.Pos.Y += b.Vel.Y * dt

	b.Accel = Vec2{}
}

// Step runs one full simulation tick in the fixed order: map the held
// directions to an acceleration, integrate, then resolve against the
// effective bounds. After Step returns, the position is guaranteed to lie
// within Effective(b) on both axes.
func Step(b *Body, in Intent, p Params) Result {
	b.Accel = in.Acceleration(p.InputForce, p.InputBoost)
	Integrate(b, p.DT, p.MaxSpeed)
	hitX, hitY := Resolve(b, p.Effective(b), p.Restitution)
	return Result{HitX: hitX, HitY: hitY}
}
