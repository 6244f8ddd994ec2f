package physics

// maxBacklog caps the accumulated wall-clock delta so a long stall (window
// drag, debugger pause) cannot trigger an unbounded burst of catch-up ticks.
const maxBacklog = 0.25

// Stepper converts variable wall-clock frame deltas into a whole number of
// fixed simulation ticks. The simulation stays frame-rate independent: the
// renderer runs at whatever rate it likes and the stepper decides how many
// dt-sized ticks fit into the elapsed time, carrying the remainder forward.
type Stepper struct {
	dt  float32
	acc float32
}

// NewStepper creates a stepper with the given fixed timestep.
func NewStepper(dt float32) *Stepper {
	return &Stepper{dt: dt}
}

// DT returns the fixed timestep.
func (s *Stepper) DT() float32 { return s.dt }

// Advance adds elapsed wall-clock seconds to the accumulator and returns the
// number of fixed ticks the caller should run now.
func (s *Stepper) Advance(elapsed float32) int {
	s.acc += elapsed
	if s.acc > maxBacklog {
		s.acc = maxBacklog
	}
	n := 0
	for s.acc >= s.dt {
		s.acc -= s.dt
		n++
	}
	return n
}

// Reset discards any accumulated time.
func (s *Stepper) Reset() {
	s.acc = 0
}
