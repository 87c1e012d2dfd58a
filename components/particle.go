package components

// Status is a particle's transport state.
type Status uint8

const (
	// StatusActive participates fully in advection.
	StatusActive Status = iota
	// StatusStranded is immobilized on a coastline. Horizontal motion is
	// suppressed; there is no release transition.
	StatusStranded
	// StatusOnSeafloor rests on the bed with zero vertical velocity and is
	// subject to resuspension.
	StatusOnSeafloor
)

// String returns the display name for a Status.
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusStranded:
		return "stranded"
	case StatusOnSeafloor:
		return "seafloor"
	}
	return "unknown"
}

// HorizontalSuppressed reports whether the advection engine must skip
// horizontal displacement for this status.
func (s Status) HorizontalSuppressed() bool {
	return s == StatusStranded
}

// Particle bundles identity and transport state.
type Particle struct {
	ID       uint32
	PresetID uint8 // immutable material preset index
	Status   Status
}

// Material holds the immutable physical properties set at seeding time.
type Material struct {
	Diameter    float64 // mm, as seeded; weathered size comes from EffectiveDiameter
	BaseDensity float64 // kg/m3
	ShapeFactor float64 // drag correction, 1.0 for a perfect sphere
}

// Weathering tracks the accumulated surface processes acting on a particle.
// Both levels are in [0, 1] and only ever increase, saturating at 1.
type Weathering struct {
	Biofouling  float64
	Degradation float64
}

// Drift holds the buoyancy output consumed by the advection engine.
type Drift struct {
	Terminal float64 // m/s, positive = rising
}

// EffectiveDensity returns the particle density including the biofilm layer,
// as a linear mix between base material and biofilm. Recomputed from current
// state on every call, never cached.
func (m Material) EffectiveDensity(biofouling, biofilmDensity float64) float64 {
	return m.BaseDensity*(1-biofouling) + biofilmDensity*biofouling
}

// EffectiveDiameter returns the weathered particle diameter in mm, floored
// at minDiameter so a fully degraded particle never reaches zero size.
func (m Material) EffectiveDiameter(degradation, minDiameter float64) float64 {
	d := m.Diameter * (1 - degradation)
	if d < minDiameter {
		return minDiameter
	}
	return d
}
