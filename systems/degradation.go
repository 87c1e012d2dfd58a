package systems

import "github.com/pthm-cable/mpdrift/components"

// DegradationParams holds the degradation process parameters.
type DegradationParams struct {
	RatePerDay float64 // breakdown per day, [0, 1]
	UVDepth    float64 // m, enhanced breakdown above this depth
	UVFactor   float64 // multiplier in the UV-exposed layer
}

// UpdateDegradation advances the degradation state by one step. Breakdown is
// linear in the daily rate, much faster right at the surface where UV
// exposure dominates, and saturates at 1. Degradation shrinks the effective
// diameter only; base density, shape factor and mass stay constant.
func UpdateDegradation(w *components.Weathering, z, dtDays float64, p DegradationParams) {
	if p.RatePerDay <= 0 || w.Degradation >= 1 {
		return
	}
	inc := p.RatePerDay * dtDays
	if z > -p.UVDepth {
		inc *= p.UVFactor
	}
	w.Degradation = clamp01(w.Degradation + inc)
}
