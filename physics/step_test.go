package physics

import (
	"math"
	"math/rand"
	"testing"
)

// testParams mirrors the default configuration: dt 1/60, force 500, world
// sized so the effective range is [-600, 600] for a 25-extent body with a
// 50 margin.
func testParams() Params {
	return Params{
		DT:          1.0 / 60.0,
		InputForce:  500,
		InputBoost:  3,
		Restitution: 1,
		World:       CenteredRect(1350, 1350),
		Margin:      50,
	}
}

func testBody() Body {
	return Body{Friction: 0.95, Extent: 25}
}

func TestStepHoldRightOneTick(t *testing.T) {
	p := testParams()
	b := testBody()

	Step(&b, Intent{Right: true}, p)

	// v = 0*0.95 + 500*(1/60) = 8.333, p = v*(1/60) = 0.1389
	if math.Abs(float64(b.Vel.X-8.3333)) > 0.001 {
		t.Errorf("vel.X = %v, want ~8.333", b.Vel.X)
	}
	if b.Vel.Y != 0 {
		t.Errorf("vel.Y = %v, want 0", b.Vel.Y)
	}
	if math.Abs(float64(b.Pos.X-0.13889)) > 0.001 {
		t.Errorf("pos.X = %v, want ~0.139", b.Pos.X)
	}
	if b.Accel != (Vec2{}) {
		t.Errorf("accel = %v, want zero after integration", b.Accel)
	}
}

// With friction k, holding one direction converges velocity toward the
// terminal value F*dt/(1-k): ~166.7 for the defaults.
func TestStepTerminalVelocity(t *testing.T) {
	p := testParams()
	b := testBody()

	for i := 0; i < 120; i++ {
		Step(&b, Intent{Right: true}, p)
	}

	terminal := p.InputForce * p.DT / (1 - b.Friction)
	if math.Abs(float64(b.Vel.X-terminal)) > 1.0 {
		t.Errorf("vel.X after 120 ticks = %v, want within 1.0 of %v", b.Vel.X, terminal)
	}

	// A further tick must not overshoot the terminal value.
	Step(&b, Intent{Right: true}, p)
	if b.Vel.X > terminal+0.01 {
		t.Errorf("vel.X = %v exceeds terminal %v", b.Vel.X, terminal)
	}
}

// A fast body crossing the wall mid-tick is clamped to the bound and its
// velocity component negated in the same tick. Friction 1 isolates the
// reflection from damping.
func TestStepBoundaryReflection(t *testing.T) {
	p := testParams()
	b := Body{Pos: Vec2{595, 0}, Vel: Vec2{400, 0}, Friction: 1, Extent: 25}

	res := Step(&b, Intent{}, p)

	if !res.HitX || res.HitY {
		t.Errorf("hits = %+v, want HitX only", res)
	}
	if b.Pos.X != 600 {
		t.Errorf("pos.X = %v, want clamped to 600", b.Pos.X)
	}
	if b.Vel.X != -400 {
		t.Errorf("vel.X = %v, want -400", b.Vel.X)
	}
}

// With zero acceleration and friction in (0,1), speed strictly decreases
// every tick and never reverses sign.
func TestFrictionMonotonicity(t *testing.T) {
	p := testParams()
	b := testBody()
	b.Vel = Vec2{120, -80}

	prev := b.Vel.Length()
	for i := 0; i < 400; i++ {
		Step(&b, Intent{}, p)

		if b.Vel.X < 0 {
			t.Fatalf("tick %d: vel.X = %v reversed sign", i, b.Vel.X)
		}
		if b.Vel.Y > 0 {
			t.Fatalf("tick %d: vel.Y = %v reversed sign", i, b.Vel.Y)
		}

		speed := b.Vel.Length()
		if speed >= prev && prev > 0 {
			t.Fatalf("tick %d: speed %v did not decrease from %v", i, speed, prev)
		}
		prev = speed
	}

	if prev > 0.001 {
		t.Errorf("speed after 400 coasting ticks = %v, want near zero", prev)
	}
}

// Acceleration is a per-tick input, not a stored force: once the direction
// is released, only friction acts.
func TestAccelerationNotAccumulated(t *testing.T) {
	p := testParams()
	b := testBody()

	Step(&b, Intent{Right: true}, p)
	vAfterInput := b.Vel.X

	Step(&b, Intent{}, p)
	want := vAfterInput * b.Friction
	if math.Abs(float64(b.Vel.X-want)) > 1e-4 {
		t.Errorf("vel.X = %v, want %v (pure friction decay)", b.Vel.X, want)
	}
}

// A body at rest on the boundary with no input stays there indefinitely.
func TestRestAtBoundaryIdempotent(t *testing.T) {
	p := testParams()
	b := testBody()
	eff := p.Effective(&b)
	b.Pos = Vec2{eff.Min.X, 0}

	for i := 0; i < 100; i++ {
		Step(&b, Intent{}, p)

		if b.Pos.X != eff.Min.X || b.Pos.Y != 0 {
			t.Fatalf("tick %d: pos = %v, want (%v, 0)", i, b.Pos, eff.Min.X)
		}
		if b.Vel != (Vec2{}) {
			t.Fatalf("tick %d: vel = %v, want zero", i, b.Vel)
		}
	}
}

// Containment property: whatever the input sequence, the position lies
// within the effective bounds after every tick.
func TestContainmentRandomWalk(t *testing.T) {
	p := testParams()
	p.InputForce = 4000 // violent input to stress the resolver
	b := testBody()
	eff := p.Effective(&b)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 10000; i++ {
		in := Intent{
			Up:    rng.Intn(2) == 0,
			Down:  rng.Intn(2) == 0,
			Left:  rng.Intn(2) == 0,
			Right: rng.Intn(2) == 0,
			Boost: rng.Intn(4) == 0,
		}
		Step(&b, in, p)

		if !eff.Contains(b.Pos) {
			t.Fatalf("tick %d: pos %v escaped effective bounds %v", i, b.Pos, eff)
		}
	}
}

func TestMaxSpeedCap(t *testing.T) {
	p := testParams()
	p.MaxSpeed = 50
	b := testBody()

	for i := 0; i < 200; i++ {
		Step(&b, Intent{Right: true, Down: true, Boost: true}, p)

		if speed := b.Vel.Length(); speed > p.MaxSpeed+0.01 {
			t.Fatalf("tick %d: speed %v exceeds cap %v", i, speed, p.MaxSpeed)
		}
	}
}
