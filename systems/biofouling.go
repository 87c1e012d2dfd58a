// Package systems implements the per-step particle processes: biofouling,
// degradation, the buoyancy calculation, coastline interaction and seafloor
// resuspension. Each function touches exactly one concern of particle state,
// so no two processes race on the same field within a step.
package systems

import "github.com/pthm-cable/mpdrift/components"

// BiofoulingParams holds the biofouling process parameters, resolved from
// config once at setup.
type BiofoulingParams struct {
	RatePerDay    float64 // accumulation per day, [0, 1]
	SurfaceDepth  float64 // m, enhanced growth above this depth
	SurfaceFactor float64 // accumulation multiplier in the surface layer
}

// UpdateBiofouling advances the biofouling level by one step. Accumulation is
// linear in the daily rate, boosted in the surface layer where biological
// activity concentrates, and saturates at 1. z is the particle depth
// (negative below surface), dtDays the step duration as a fraction of a day.
func UpdateBiofouling(w *components.Weathering, z, dtDays float64, p BiofoulingParams) {
	if p.RatePerDay <= 0 || w.Biofouling >= 1 {
		return
	}
	inc := p.RatePerDay * dtDays
	if z > -p.SurfaceDepth {
		inc *= p.SurfaceFactor
	}
	w.Biofouling = clamp01(w.Biofouling + inc)
}
