// Package main searches for friction and input-force values that hit a
// target terminal speed and stopping time, using Nelder-Mead over headless
// physics runs.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/drift/config"
	"github.com/pthm-cable/drift/physics"
)

// Search space. Friction at 1.0 has no terminal speed, so the upper clamp
// stays just below it.
const (
	frictionMin = 0.50
	frictionMax = 0.999
	forceMin    = 1.0
	forceMax    = 5000.0
)

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// evaluator runs headless physics episodes for candidate parameters.
type evaluator struct {
	cfg         *config.Config
	targetSpeed float64 // desired terminal speed, units/s
	targetStop  float64 // desired coast-to-rest time, seconds
}

// measure holds a direction for settleTicks, reads the terminal speed, then
// releases and times the coast back below rest speed.
func (e *evaluator) measure(friction, force float64) (terminal, stopSec float64) {
	const (
		settleTicks  = 1200 // 20s, enough to converge for any friction in range
		maxStopTicks = 36000
		restSpeed    = 1.0
	)

	dt := e.cfg.Derived.DT32
	p := physics.Params{
		DT:          dt,
		InputForce:  float32(force),
		InputBoost:  1,
		Restitution: 1,
		// Unbounded arena: the episode measures free motion, not walls.
		World: physics.CenteredRect(1e9, 1e9),
	}
	b := physics.Body{
		Friction: float32(friction),
		Extent:   float32(e.cfg.Physics.Extent),
	}

	for i := 0; i < settleTicks; i++ {
		physics.Step(&b, physics.Intent{Right: true}, p)
	}
	terminal = float64(b.Vel.X)

	stopTicks := 0
	for b.Vel.Length() >= restSpeed && stopTicks < maxStopTicks {
		physics.Step(&b, physics.Intent{}, p)
		stopTicks++
	}
	return terminal, float64(stopTicks) * float64(dt)
}

// loss is the sum of squared relative errors against both targets.
func (e *evaluator) loss(x []float64) float64 {
	friction := clamp(x[0], frictionMin, frictionMax)
	force := clamp(x[1], forceMin, forceMax)

	terminal, stopSec := e.measure(friction, force)

	speedErr := (terminal - e.targetSpeed) / e.targetSpeed
	stopErr := (stopSec - e.targetStop) / e.targetStop
	return speedErr*speedErr + stopErr*stopErr
}

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	targetSpeed := flag.Float64("target-speed", 166.7, "Target terminal speed in units/s")
	targetStop := flag.Float64("target-stop", 1.5, "Target coast-to-rest time in seconds")
	maxEvals := flag.Int("max-evals", 200, "Maximum number of evaluations")
	outputDir := flag.String("output", "", "Output directory for results")
	flag.Parse()

	if *outputDir == "" {
		log.Fatal("--output is required")
	}
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.Cfg()

	eval := &evaluator{cfg: cfg, targetSpeed: *targetSpeed, targetStop: *targetStop}

	// Evaluation log
	logPath := filepath.Join(*outputDir, "tune_log.csv")
	logFile, err := os.Create(logPath)
	if err != nil {
		log.Fatalf("failed to create log file: %v", err)
	}
	defer logFile.Close()

	logWriter := csv.NewWriter(logFile)
	logWriter.Write([]string{"eval", "loss", "friction", "input_force"})

	evalCount := 0
	bestLoss := 1e9
	bestFriction := cfg.Physics.Friction
	bestForce := cfg.Physics.InputForce

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			loss := eval.loss(x)
			evalCount++

			friction := clamp(x[0], frictionMin, frictionMax)
			force := clamp(x[1], forceMin, forceMax)
			if loss < bestLoss {
				bestLoss = loss
				bestFriction = friction
				bestForce = force
			}

			logWriter.Write([]string{
				strconv.Itoa(evalCount),
				fmt.Sprintf("%.6f", loss),
				fmt.Sprintf("%.6f", friction),
				fmt.Sprintf("%.2f", force),
			})
			logWriter.Flush()

			fmt.Printf("Eval %d/%d: loss=%.6f friction=%.4f force=%.0f (best=%.6f)\n",
				evalCount, *maxEvals, loss, friction, force, bestLoss)

			return loss
		},
	}

	settings := &optimize.Settings{
		FuncEvaluations: *maxEvals,
	}

	initX := []float64{cfg.Physics.Friction, cfg.Physics.InputForce}

	fmt.Printf("Tuning toward terminal speed %.1f u/s, stop time %.2fs (max %d evals)\n",
		*targetSpeed, *targetStop, *maxEvals)

	result, err := optimize.Minimize(problem, initX, settings, &optimize.NelderMead{})
	if err != nil {
		log.Printf("optimization ended: %v", err)
	}

	// csv.Writer errors are sticky; one check after the last flush covers
	// every Write above.
	logWriter.Flush()
	if err := logWriter.Error(); err != nil {
		log.Printf("writing tune log: %v", err)
	}

	// eval.loss is the raw evaluator, so re-scoring the optimizer's final
	// point neither logs a row nor counts as an evaluation.
	if result != nil && eval.loss(result.X) < bestLoss {
		bestFriction = clamp(result.X[0], frictionMin, frictionMax)
		bestForce = clamp(result.X[1], forceMin, forceMax)
	}

	terminal, stopSec := eval.measure(bestFriction, bestForce)
	fmt.Printf("\nBest after %d evaluations: friction=%.4f input_force=%.0f\n", evalCount, bestFriction, bestForce)
	fmt.Printf("Measured: terminal=%.1f u/s, stop=%.2fs\n", terminal, stopSec)

	// Save best config
	bestCfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to reload config: %v", err)
	}
	bestCfg.Physics.Friction = bestFriction
	bestCfg.Physics.InputForce = bestForce

	configOutPath := filepath.Join(*outputDir, "best_config.yaml")
	if err := bestCfg.WriteYAML(configOutPath); err != nil {
		log.Printf("failed to write best config: %v", err)
	} else {
		fmt.Printf("Best config saved to: %s\n", configOutPath)
	}
}
