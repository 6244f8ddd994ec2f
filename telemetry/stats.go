// Package telemetry aggregates per-tick motion samples into windowed
// statistics and writes them to CSV and the structured log.
package telemetry

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated motion statistics for one stats window.
type WindowStats struct {
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`
	Ticks           int     `csv:"ticks"`

	// Speed distribution over the window's tick samples
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedMax  float64 `csv:"speed_max"`

	// Motion totals
	Distance     float64 `csv:"distance"`      // path length traveled this window
	BouncesX     int     `csv:"bounces_x"`     // wall reflections on the X axis
	BouncesY     int     `csv:"bounces_y"`     // wall reflections on the Y axis
	RestFraction float64 `csv:"rest_fraction"` // fraction of ticks spent below rest speed

	// Position at window end
	PosX float64 `csv:"pos_x"`
	PosY float64 `csv:"pos_y"`
}

// SpeedStats computes mean, standard deviation, median, and max of the
// sampled speeds. Returns zeros for an empty sample.
func SpeedStats(speeds []float64) (mean, std, p50, max float64) {
	if len(speeds) == 0 {
		return 0, 0, 0, 0
	}

	mean = stat.Mean(speeds, nil)
	if len(speeds) > 1 {
		std = stat.StdDev(speeds, nil)
	}

	sorted := append([]float64(nil), speeds...)
	sort.Float64s(sorted)
	p50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	max = sorted[len(sorted)-1]

	return mean, std, p50, max
}
