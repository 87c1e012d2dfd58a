package systems

import "github.com/pthm-cable/mpdrift/components"

// BuoyancyParams holds the constants of the terminal velocity calculation.
type BuoyancyParams struct {
	Gravity        float64 // m/s2
	BiofilmDensity float64 // kg/m3
	MinDiameter    float64 // mm, degradation floor
	MaxVelocity    float64 // m/s, magnitude clamp on the result
}

// TerminalVelocity computes the Stokes terminal velocity for a particle in
// its current weathering state, in m/s, positive = rising. waterDensity is
// kg/m3 and viscosity Pa.s at the particle's position.
//
// Stokes' law is the laminar small-Reynolds approximation:
//
//	v = g * d^2 * (rho_water - rho_particle) / (18 * mu * phi)
//
// where phi >= 1 adds drag for non-spherical shapes. The magnitude is
// clamped to MaxVelocity; that bound is a numerical safety net for extreme
// diameters or density differentials, not a physical law.
func TerminalVelocity(mat components.Material, w components.Weathering, waterDensity, viscosity float64, p BuoyancyParams) float64 {
	rho := mat.EffectiveDensity(w.Biofouling, p.BiofilmDensity)
	d := mat.EffectiveDiameter(w.Degradation, p.MinDiameter) / 1000.0 // mm -> m

	v := p.Gravity * d * d * (waterDensity - rho) / (18 * viscosity * mat.ShapeFactor)
	return clampFloat(v, -p.MaxVelocity, p.MaxVelocity)
}
