// Package environment supplies the ambient ocean fields the drift core
// reads each step: seawater density, viscosity, bathymetry and land contact.
// Providers are read-only within a step; the core never mutates them.
package environment

import (
	"errors"
	"fmt"
)

// ErrUnavailable indicates a provider cannot supply fields for a position.
// The core propagates it to the caller instead of substituting defaults,
// since silent defaults would bias the physics.
var ErrUnavailable = errors.New("environment: fields unavailable")

// Sample holds the ambient fields at one particle position.
type Sample struct {
	WaterDensity  float64 // kg/m3
	Viscosity     float64 // Pa.s, dynamic
	SeafloorDepth float64 // m, positive down
	OnSeafloor    bool    // particle depth at or below the bed
	OnCoastline   bool    // position intersects the land mask
}

// Provider resolves ambient fields at a geographic position.
// Z follows the particle convention: meters, negative below the surface.
type Provider interface {
	Sample(lon, lat, z float64) (Sample, error)
}

// Uniform is a constant-field provider with optional land and bathymetry
// callbacks, used in tests and as a minimal fallback environment.
type Uniform struct {
	WaterDensity  float64
	Viscosity     float64
	SeafloorDepth float64
	// Land reports coastline contact for a position. Nil means open ocean.
	Land func(lon, lat float64) bool
}

// Sample implements Provider.
func (u *Uniform) Sample(lon, lat, z float64) (Sample, error) {
	if u.WaterDensity <= 0 || u.Viscosity <= 0 {
		return Sample{}, fmt.Errorf("%w: at (%.3f, %.3f)", ErrUnavailable, lon, lat)
	}
	s := Sample{
		WaterDensity:  u.WaterDensity,
		Viscosity:     u.Viscosity,
		SeafloorDepth: u.SeafloorDepth,
	}
	if u.SeafloorDepth > 0 && z <= -u.SeafloorDepth {
		s.OnSeafloor = true
	}
	if u.Land != nil {
		s.OnCoastline = u.Land(lon, lat)
	}
	return s, nil
}
