package sim

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/mpdrift/components"
)

// SeedOptions places a batch of particles at a release site.
type SeedOptions struct {
	Material string  // preset name; empty uses the seed: defaults
	Number   int
	Lon, Lat float64 // release site, degrees
	Z        float64 // release depth, m (negative below surface)
	Radius   float64 // horizontal scatter around the site, degrees
}

// Seed creates particles at a release site with properties resolved from the
// named material preset. New particles start clean: no biofouling, no
// degradation, status Active.
func (s *Sim) Seed(opts SeedOptions) error {
	cfg := s.config()

	mat := components.Material{
		Diameter:    cfg.Seed.Diameter,
		BaseDensity: cfg.Seed.Density,
		ShapeFactor: cfg.Seed.ShapeFactor,
	}
	var presetID uint8
	if opts.Material != "" {
		idx, ok := cfg.Derived.MaterialIndex[opts.Material]
		if !ok {
			return fmt.Errorf("seeding: unknown material preset %q", opts.Material)
		}
		presetID = idx
		preset := cfg.Materials[idx]
		mat = components.Material{
			Diameter:    preset.Diameter,
			BaseDensity: preset.Density,
			ShapeFactor: preset.ShapeFactor,
		}
	}

	for i := 0; i < opts.Number; i++ {
		lon := opts.Lon
		lat := opts.Lat
		if opts.Radius > 0 {
			lon += (s.rng.Float64()*2 - 1) * opts.Radius
			lat += (s.rng.Float64()*2 - 1) * opts.Radius
		}
		s.spawnParticle(lon, lat, opts.Z, presetID, mat)
	}
	return nil
}

// spawnParticle creates one particle entity.
func (s *Sim) spawnParticle(lon, lat, z float64, presetID uint8, mat components.Material) ecs.Entity {
	id := s.nextID
	s.nextID++

	pos := components.Position{Lon: lon, Lat: lat, Z: z}
	vel := components.Velocity{}
	part := components.Particle{ID: id, PresetID: presetID, Status: components.StatusActive}
	weather := components.Weathering{}
	drift := components.Drift{}

	return s.mapper.NewEntity(&pos, &vel, &part, &mat, &weather, &drift)
}
