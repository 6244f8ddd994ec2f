package telemetry

import "math"

// restSpeed is the speed below which a tick counts as at rest.
const restSpeed = 0.5

// Collector accumulates per-tick motion samples within time windows and
// produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int64
	dt                  float64

	// Current window tracking
	windowStartTick int64

	speeds    []float64
	distance  float64
	bouncesX  int
	bouncesY  int
	restTicks int
}

// NewCollector creates a stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec float64, dt float32) *Collector {
	// Round, don't truncate: float32 dt carries rounding error (1/60 as
	// float32 sits just above the true value), and truncation would cut a
	// tick off every window.
	ticksPerWindow := int64(math.Round(windowDurationSec / float64(dt)))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  float64(dt),
		speeds:              make([]float64, 0, ticksPerWindow),
	}
}

// RecordTick records one simulation tick: the body's speed after the tick
// and whether either axis reflected off a wall.
func (c *Collector) RecordTick(speed float64, hitX, hitY bool) {
	c.speeds = append(c.speeds, speed)
	c.distance += speed * c.dt
	if hitX {
		c.bouncesX++
	}
	if hitY {
		c.bouncesY++
	}
	if speed < restSpeed {
		c.restTicks++
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats for the window ending at currentTick, with
// the body's position sampled at window end, and resets the counters.
func (c *Collector) Flush(currentTick int64, posX, posY float64) WindowStats {
	mean, std, p50, max := SpeedStats(c.speeds)

	restFraction := 0.0
	if len(c.speeds) > 0 {
		restFraction = float64(c.restTicks) / float64(len(c.speeds))
	}

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,
		Ticks:           len(c.speeds),
		SpeedMean:       mean,
		SpeedStd:        std,
		SpeedP50:        p50,
		SpeedMax:        max,
		Distance:        c.distance,
		BouncesX:        c.bouncesX,
		BouncesY:        c.bouncesY,
		RestFraction:    restFraction,
		PosX:            posX,
		PosY:            posY,
	}

	c.windowStartTick = currentTick
	c.speeds = c.speeds[:0]
	c.distance = 0
	c.bouncesX = 0
	c.bouncesY = 0
	c.restTicks = 0

	return stats
}
