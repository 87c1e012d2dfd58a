// Package telemetry collects windowed event counts and ensemble statistics
// from the drift simulation and writes them as CSV.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	SimDays         float64 `csv:"sim_days"`

	// Ensemble breakdown at window end
	Active   int `csv:"active"`
	Stranded int `csv:"stranded"`
	Seafloor int `csv:"seafloor"`

	// Events during window
	Strandings         int `csv:"strandings"`
	Settlings          int `csv:"settlings"`
	Resuspensions      int `csv:"resuspensions"`
	FoulingSaturations int `csv:"fouling_saturations"`

	// Depth distribution (m below surface, sampled at window end)
	DepthMean float64 `csv:"depth_mean"`
	DepthP10  float64 `csv:"depth_p10"`
	DepthP50  float64 `csv:"depth_p50"`
	DepthP90  float64 `csv:"depth_p90"`

	// Weathering distribution
	BiofoulingMean  float64 `csv:"biofouling_mean"`
	BiofoulingStd   float64 `csv:"biofouling_std"`
	DegradationMean float64 `csv:"degradation_mean"`

	// Terminal velocity distribution (m/s, positive = rising)
	TerminalMean float64 `csv:"terminal_mean"`
	TerminalMin  float64 `csv:"terminal_min"`
	TerminalMax  float64 `csv:"terminal_max"`
}

// Distribution summarizes one ensemble variable.
type Distribution struct {
	Mean, Std     float64
	P10, P50, P90 float64
	Min, Max      float64
}

// Summarize computes the distribution of an ensemble variable. The input
// slice is sorted in place.
func Summarize(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}
	sort.Float64s(values)
	return Distribution{
		Mean: stat.Mean(values, nil),
		Std:  stat.StdDev(values, nil),
		P10:  stat.Quantile(0.10, stat.Empirical, values, nil),
		P50:  stat.Quantile(0.50, stat.Empirical, values, nil),
		P90:  stat.Quantile(0.90, stat.Empirical, values, nil),
		Min:  floats.Min(values),
		Max:  floats.Max(values),
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (w WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("sim_days", w.SimDays),
		slog.Int("active", w.Active),
		slog.Int("stranded", w.Stranded),
		slog.Int("seafloor", w.Seafloor),
		slog.Int("strandings", w.Strandings),
		slog.Int("settlings", w.Settlings),
		slog.Int("resuspensions", w.Resuspensions),
		slog.Float64("depth_mean", w.DepthMean),
		slog.Float64("biofouling_mean", w.BiofoulingMean),
		slog.Float64("terminal_mean", w.TerminalMean),
	)
}
