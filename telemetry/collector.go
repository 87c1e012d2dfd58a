package telemetry

// Collector accumulates process events within time windows and produces
// WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int64
	dt                  float64

	// Current window tracking
	windowStartTick int64

	// Event counters for current window
	strandings         int
	settlings          int
	resuspensions      int
	foulingSaturations int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per step (used for tick-to-time conversion)
func NewCollector(windowDurationSec, dt float64) *Collector {
	ticksPerWindow := int64(windowDurationSec / dt)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordStranding records a particle immobilized on a coastline.
func (c *Collector) RecordStranding() {
	c.strandings++
}

// RecordSettling records a particle reaching the seafloor.
func (c *Collector) RecordSettling() {
	c.settlings++
}

// RecordResuspension records a particle lifted back into the water column.
func (c *Collector) RecordResuspension() {
	c.resuspensions++
}

// RecordFoulingSaturation records a particle's biofouling level reaching 1.
func (c *Collector) RecordFoulingSaturation() {
	c.foulingSaturations++
}

// ShouldFlush returns true if enough steps have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
// depths, fouling, degradation and terminals are the per-particle values
// sampled at window end; the slices are sorted in place.
func (c *Collector) Flush(
	currentTick int64,
	active, stranded, seafloor int,
	depths, fouling, degradation, terminals []float64,
) WindowStats {
	depthDist := Summarize(depths)
	foulDist := Summarize(fouling)
	degDist := Summarize(degradation)
	termDist := Summarize(terminals)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimDays:         float64(currentTick) * c.dt / 86400.0,

		Active:   active,
		Stranded: stranded,
		Seafloor: seafloor,

		Strandings:         c.strandings,
		Settlings:          c.settlings,
		Resuspensions:      c.resuspensions,
		FoulingSaturations: c.foulingSaturations,

		DepthMean: depthDist.Mean,
		DepthP10:  depthDist.P10,
		DepthP50:  depthDist.P50,
		DepthP90:  depthDist.P90,

		BiofoulingMean:  foulDist.Mean,
		BiofoulingStd:   foulDist.Std,
		DegradationMean: degDist.Mean,

		TerminalMean: termDist.Mean,
		TerminalMin:  termDist.Min,
		TerminalMax:  termDist.Max,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.strandings = 0
	c.settlings = 0
	c.resuspensions = 0
	c.foulingSaturations = 0

	return stats
}
