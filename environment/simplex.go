package environment

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Simplex is a synthetic ocean built from OpenSimplex noise: a smooth
// bathymetry, a coastline mask, slightly varying water density and a
// divergence-free-ish surface current. It stands in for real gridded
// reader data in the demo driver and in ensemble tests.
type Simplex struct {
	bathy   opensimplex.Noise
	density opensimplex.Noise
	current opensimplex.Noise

	WaterDensity float64 // kg/m3, mean field value
	Viscosity    float64 // Pa.s
	MaxDepth     float64 // m, deepest bathymetry
	LandLevel    float64 // noise threshold above which a cell is land
	CurrentSpeed float64 // m/s, current magnitude scale
	noiseScale   float64 // degrees -> noise coordinate scale
}

// NewSimplex creates a synthetic environment from a seed. Distinct noise
// streams are derived from the seed so bathymetry, density and current
// decorrelate.
func NewSimplex(seed int64, waterDensity, viscosity, maxDepth float64) *Simplex {
	return &Simplex{
		bathy:        opensimplex.NewNormalized(seed),
		density:      opensimplex.NewNormalized(seed + 1),
		current:      opensimplex.New(seed + 2),
		WaterDensity: waterDensity,
		Viscosity:    viscosity,
		MaxDepth:     maxDepth,
		LandLevel:    0.82,
		CurrentSpeed: 0.25,
		noiseScale:   2.5,
	}
}

// Sample implements Provider.
func (s *Simplex) Sample(lon, lat, z float64) (Sample, error) {
	if math.IsNaN(lon) || math.IsNaN(lat) || math.IsNaN(z) {
		return Sample{}, ErrUnavailable
	}
	nx, ny := lon*s.noiseScale, lat*s.noiseScale

	elev := s.bathy.Eval2(nx, ny) // 0..1, high = shallow
	out := Sample{
		// +-1% density variation around the mean field value
		WaterDensity:  s.WaterDensity * (1 + 0.01*(2*s.density.Eval2(nx, ny)-1)),
		Viscosity:     s.Viscosity,
		SeafloorDepth: (1 - elev) * s.MaxDepth,
		OnCoastline:   elev >= s.LandLevel,
	}
	if out.SeafloorDepth < 1 {
		out.SeafloorDepth = 1
	}
	if z <= -out.SeafloorDepth {
		out.OnSeafloor = true
	}
	return out, nil
}

// Current returns the synthetic surface current (u east, v north) in m/s.
// It is the rotated gradient of a noise streamfunction, so the flow swirls
// instead of converging on noise maxima.
func (s *Simplex) Current(lon, lat float64) (u, v float64) {
	const h = 0.01
	nx, ny := lon*s.noiseScale, lat*s.noiseScale
	dpx := (s.current.Eval2(nx+h, ny) - s.current.Eval2(nx-h, ny)) / (2 * h)
	dpy := (s.current.Eval2(nx, ny+h) - s.current.Eval2(nx, ny-h)) / (2 * h)
	return -dpy * s.CurrentSpeed, dpx * s.CurrentSpeed
}
