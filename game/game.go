// Package game wires the physics core to raylib: input sampling, the frame
// loop, rendering, and telemetry plumbing.
package game

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pthm-cable/drift/config"
	"github.com/pthm-cable/drift/physics"
	"github.com/pthm-cable/drift/telemetry"
)

// Options configures game construction.
type Options struct {
	Headless       bool
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	StepsPerUpdate int

	// Hold is the scripted input used for every tick of a headless run.
	Hold physics.Intent
}

// Game holds the complete sandbox state.
type Game struct {
	cfg    *config.Config
	params physics.Params
	body   physics.Body

	// intent is the input snapshot for the current frame, sampled exactly
	// once per Update and shared by every tick and the renderer.
	intent physics.Intent

	stepper   *physics.Stepper
	collector *telemetry.Collector
	output    *telemetry.OutputManager
	perf      *PerfStats

	tick           int64
	paused         bool
	debugMode      bool
	stepsPerUpdate int
	opts           Options

	hud *hudState
}

// New creates a game from the loaded configuration.
func New(opts Options) (*Game, error) {
	cfg := config.Cfg()

	if opts.StepsPerUpdate < 1 {
		opts.StepsPerUpdate = 1
	}
	windowSec := opts.StatsWindowSec
	if windowSec <= 0 {
		windowSec = cfg.Telemetry.StatsWindow
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("initializing output: %w", err)
	}
	if err := output.WriteConfig(cfg); err != nil {
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	g := &Game{
		cfg:            cfg,
		params:         paramsFromConfig(cfg),
		stepper:        physics.NewStepper(cfg.Derived.DT32),
		collector:      telemetry.NewCollector(windowSec, cfg.Derived.DT32),
		output:         output,
		perf:           NewPerfStats(),
		stepsPerUpdate: opts.StepsPerUpdate,
		opts:           opts,
	}
	g.hud = newHUDState(cfg)
	g.resetBody()

	return g, nil
}

// paramsFromConfig builds the immutable tick parameters from the config.
func paramsFromConfig(cfg *config.Config) physics.Params {
	return physics.Params{
		DT:          cfg.Derived.DT32,
		InputForce:  float32(cfg.Physics.InputForce),
		InputBoost:  float32(cfg.Physics.InputBoost),
		Restitution: float32(cfg.Physics.Restitution),
		MaxSpeed:    float32(cfg.Physics.MaxSpeed),
		World:       physics.CenteredRect(cfg.Derived.WorldW32, cfg.Derived.WorldH32),
		Margin:      float32(cfg.World.Margin),
	}
}

// resetBody places the body at the origin with zero velocity. Pending HUD
// parameter edits take effect here; the running params are never mutated
// mid-flight.
func (g *Game) resetBody() {
	g.params = g.hud.apply(g.params)
	g.body = physics.Body{
		Friction: g.hud.friction,
		Extent:   float32(g.cfg.Physics.Extent),
	}
	g.stepper.Reset()
}

// step runs exactly one simulation tick and records telemetry for it.
func (g *Game) step(in physics.Intent) {
	res := physics.Step(&g.body, in, g.params)
	g.tick++

	g.collector.RecordTick(float64(g.body.Vel.Length()), res.HitX, res.HitY)
	if g.collector.ShouldFlush(g.tick) {
		g.flushStats()
	}
}

// Update runs one graphical frame: sample input, convert the elapsed frame
// time into fixed ticks, and run them. All ticks of a frame see the same
// input snapshot.
func (g *Game) Update() {
	g.handleInput()
	g.intent = sampleIntent()

	if g.paused {
		return
	}

	start := time.Now()
	n := g.stepper.Advance(frameTime()) * g.stepsPerUpdate
	for i := 0; i < n; i++ {
		g.step(g.intent)
	}
	g.perf.Record("step", time.Since(start))
}

// UpdateHeadless runs stepsPerUpdate ticks with the scripted hold intent,
// with no wall-clock pacing.
func (g *Game) UpdateHeadless() {
	g.intent = g.opts.Hold

	start := time.Now()
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step(g.intent)
	}
	g.perf.Record("step", time.Since(start))
}

// flushStats emits the completed telemetry window.
func (g *Game) flushStats() {
	stats := g.collector.Flush(g.tick, float64(g.body.Pos.X), float64(g.body.Pos.Y))

	if g.opts.LogStats {
		slog.Info("window stats",
			"tick", stats.WindowEndTick,
			"sim_time", stats.SimTimeSec,
			"speed_mean", stats.SpeedMean,
			"speed_max", stats.SpeedMax,
			"distance", stats.Distance,
			"bounces_x", stats.BouncesX,
			"bounces_y", stats.BouncesY,
			"rest_fraction", stats.RestFraction,
			"step_avg", g.perf.Avg("step").String(),
		)
	}

	if err := g.output.WriteStats(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int64 { return g.tick }

// Body returns the current body state for read-only observers. Callers must
// only read between updates; a tick is atomic with respect to observers.
func (g *Game) Body() physics.Body { return g.body }

// Close flushes telemetry output.
func (g *Game) Close() error {
	return g.output.Close()
}

// ParseHold parses a comma-separated direction list ("right,up") into the
// scripted intent for headless runs.
func ParseHold(s string) (physics.Intent, error) {
	var in physics.Intent
	if s == "" {
		return in, nil
	}
	for _, part := range strings.Split(s, ",") {
		switch strings.TrimSpace(strings.ToLower(part)) {
		case "up":
			in.Up = true
		case "down":
			in.Down = true
		case "left":
			in.Left = true
		case "right":
			in.Right = true
		case "boost":
			in.Boost = true
		default:
			return physics.Intent{}, fmt.Errorf("unknown direction %q", part)
		}
	}
	return in, nil
}
