package sim

import "github.com/pthm-cable/mpdrift/components"

// ParticleView is a read-only projection of one particle's raw and derived
// attributes, for the advection engine and output collaborators.
type ParticleView struct {
	ID       uint32
	Preset   uint8
	Status   components.Status
	Lon, Lat float64
	Z        float64

	Diameter    float64 // mm, as seeded
	BaseDensity float64 // kg/m3
	ShapeFactor float64
	Biofouling  float64
	Degradation float64

	EffectiveDensity  float64 // kg/m3, derived
	EffectiveDiameter float64 // mm, derived
	Terminal          float64 // m/s, positive = rising

	// HorizontalSuppressed is true iff the advection engine must not move
	// the particle horizontally (stranded).
	HorizontalSuppressed bool
}

// Each calls fn for every particle. Derived attributes are recomputed from
// current raw state on each call.
func (s *Sim) Each(fn func(v ParticleView)) {
	cfg := s.config()
	query := s.filter.Query()
	for query.Next() {
		pos, _, part, mat, weather, drift := query.Get()
		fn(ParticleView{
			ID:                   part.ID,
			Preset:               part.PresetID,
			Status:               part.Status,
			Lon:                  pos.Lon,
			Lat:                  pos.Lat,
			Z:                    pos.Z,
			Diameter:             mat.Diameter,
			BaseDensity:          mat.BaseDensity,
			ShapeFactor:          mat.ShapeFactor,
			Biofouling:           weather.Biofouling,
			Degradation:          weather.Degradation,
			EffectiveDensity:     mat.EffectiveDensity(weather.Biofouling, cfg.Physics.BiofilmDensity),
			EffectiveDiameter:    mat.EffectiveDiameter(weather.Degradation, cfg.Physics.MinDiameter),
			Terminal:             drift.Terminal,
			HorizontalSuppressed: part.Status.HorizontalSuppressed(),
		})
	}
}

// Advect applies an external displacement to every particle not suppressed
// by its status. fn receives the particle view and returns the new position;
// it is how the external advection engine writes positions back. Stranded
// particles are skipped entirely, seafloor particles keep their depth.
func (s *Sim) Advect(fn func(v ParticleView) components.Position) {
	cfg := s.config()
	query := s.filter.Query()
	for query.Next() {
		pos, _, part, mat, weather, drift := query.Get()
		if part.Status.HorizontalSuppressed() {
			continue
		}
		next := fn(ParticleView{
			ID:                part.ID,
			Preset:            part.PresetID,
			Status:            part.Status,
			Lon:               pos.Lon,
			Lat:               pos.Lat,
			Z:                 pos.Z,
			Diameter:          mat.Diameter,
			BaseDensity:       mat.BaseDensity,
			ShapeFactor:       mat.ShapeFactor,
			Biofouling:        weather.Biofouling,
			Degradation:       weather.Degradation,
			EffectiveDensity:  mat.EffectiveDensity(weather.Biofouling, cfg.Physics.BiofilmDensity),
			EffectiveDiameter: mat.EffectiveDiameter(weather.Degradation, cfg.Physics.MinDiameter),
			Terminal:          drift.Terminal,
		})
		pos.Lon = next.Lon
		pos.Lat = next.Lat
		if part.Status == components.StatusOnSeafloor {
			continue
		}
		pos.Z = next.Z
		if pos.Z > 0 {
			pos.Z = 0
		}
	}
}

// StatusCounts returns the ensemble breakdown by status.
func (s *Sim) StatusCounts() (active, stranded, seafloor int) {
	query := s.filter.Query()
	for query.Next() {
		_, _, part, _, _, _ := query.Get()
		switch part.Status {
		case components.StatusActive:
			active++
		case components.StatusStranded:
			stranded++
		case components.StatusOnSeafloor:
			seafloor++
		}
	}
	return active, stranded, seafloor
}
