package telemetry

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	values := []float64{5, 1, 3, 2, 4}
	d := Summarize(values)

	if d.Mean != 3 {
		t.Errorf("mean: got %f, want 3", d.Mean)
	}
	if d.Min != 1 || d.Max != 5 {
		t.Errorf("min/max: got %f/%f, want 1/5", d.Min, d.Max)
	}
	if d.P50 != 3 {
		t.Errorf("median: got %f, want 3", d.P50)
	}
	if d.P10 > d.P50 || d.P50 > d.P90 {
		t.Errorf("quantiles out of order: p10=%f p50=%f p90=%f", d.P10, d.P50, d.P90)
	}
	if math.Abs(d.Std-math.Sqrt(2.5)) > 1e-12 {
		t.Errorf("std: got %f, want %f", d.Std, math.Sqrt(2.5))
	}
}

func TestSummarizeEmpty(t *testing.T) {
	d := Summarize(nil)
	if d != (Distribution{}) {
		t.Errorf("empty input must give zero distribution, got %+v", d)
	}
}

func TestCollectorWindowing(t *testing.T) {
	// 2-hour windows with a 30-minute step: 4 ticks per window
	c := NewCollector(7200, 1800)

	if c.ShouldFlush(3) {
		t.Error("should not flush before the window elapses")
	}
	if !c.ShouldFlush(4) {
		t.Error("should flush once the window elapses")
	}

	c.RecordStranding()
	c.RecordStranding()
	c.RecordSettling()
	c.RecordResuspension()
	c.RecordFoulingSaturation()

	depths := []float64{10, 20, 30}
	stats := c.Flush(4, 80, 15, 5, depths, []float64{0.1, 0.2}, []float64{0.05}, []float64{-0.01, 0.02})

	if stats.Strandings != 2 || stats.Settlings != 1 || stats.Resuspensions != 1 || stats.FoulingSaturations != 1 {
		t.Errorf("event counts wrong: %+v", stats)
	}
	if stats.Active != 80 || stats.Stranded != 15 || stats.Seafloor != 5 {
		t.Errorf("ensemble breakdown wrong: %+v", stats)
	}
	if stats.SimDays != 4*1800.0/86400.0 {
		t.Errorf("sim_days wrong: %f", stats.SimDays)
	}
	if stats.DepthMean != 20 {
		t.Errorf("depth mean wrong: %f", stats.DepthMean)
	}
	if stats.TerminalMin != -0.01 || stats.TerminalMax != 0.02 {
		t.Errorf("terminal range wrong: %+v", stats)
	}

	// Counters reset after flush and the window advances
	if c.ShouldFlush(5) {
		t.Error("window must restart after flush")
	}
	next := c.Flush(8, 0, 0, 0, nil, nil, nil, nil)
	if next.Strandings != 0 {
		t.Errorf("counters must reset between windows, got %d strandings", next.Strandings)
	}
	if next.WindowStartTick != 4 {
		t.Errorf("expected window start 4, got %d", next.WindowStartTick)
	}
}

func TestCollectorMinimumWindow(t *testing.T) {
	// Window shorter than one step still flushes every tick
	c := NewCollector(60, 1800)
	if !c.ShouldFlush(1) {
		t.Error("sub-step window must flush on every tick")
	}
}
