// Package sim orchestrates the per-step evolution of the particle ensemble:
// weathering, buoyancy, stranding and resuspension, in a fixed order, with
// the resulting velocities and statuses handed to the advection engine.
package sim

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/mpdrift/components"
	"github.com/pthm-cable/mpdrift/config"
	"github.com/pthm-cable/mpdrift/environment"
	"github.com/pthm-cable/mpdrift/systems"
	"github.com/pthm-cable/mpdrift/telemetry"
)

// Options configures a new Sim.
type Options struct {
	Seed int64
	Env  environment.Provider
}

// Sim holds the particle ensemble and the process parameters resolved from
// configuration at setup.
type Sim struct {
	world *ecs.World
	rng   *rand.Rand // seeding jitter only; step draws come from stream

	mapper *ecs.Map6[
		components.Position,
		components.Velocity,
		components.Particle,
		components.Material,
		components.Weathering,
		components.Drift,
	]
	filter *ecs.Filter6[
		components.Position,
		components.Velocity,
		components.Particle,
		components.Material,
		components.Weathering,
		components.Drift,
	]

	// Individual component mappers for lookups
	posMap     *ecs.Map1[components.Position]
	velMap     *ecs.Map1[components.Velocity]
	partMap    *ecs.Map1[components.Particle]
	weatherMap *ecs.Map1[components.Weathering]
	driftMap   *ecs.Map1[components.Drift]

	env    environment.Provider
	stream *Stream
	tick   int64
	nextID uint32

	// Process parameters, resolved once from config
	dtDays  float64
	bio     systems.BiofoulingParams
	deg     systems.DegradationParams
	buoy    systems.BuoyancyParams
	coast   systems.CoastlineParams
	resusp  systems.ResuspensionParams
	liftOff float64 // m off the bed on resuspension

	parallel  *parallelState
	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
}

// New creates a simulation from the loaded configuration. The environment
// provider is required; configuration must have been initialized via
// config.Init before calling New.
func New(opts Options) *Sim {
	cfg := config.Cfg()
	world := ecs.NewWorld()

	s := &Sim{
		world: world,
		rng:   rand.New(rand.NewSource(opts.Seed)),

		mapper: ecs.NewMap6[
			components.Position,
			components.Velocity,
			components.Particle,
			components.Material,
			components.Weathering,
			components.Drift,
		](world),
		filter: ecs.NewFilter6[
			components.Position,
			components.Velocity,
			components.Particle,
			components.Material,
			components.Weathering,
			components.Drift,
		](world),

		posMap:     ecs.NewMap1[components.Position](world),
		velMap:     ecs.NewMap1[components.Velocity](world),
		partMap:    ecs.NewMap1[components.Particle](world),
		weatherMap: ecs.NewMap1[components.Weathering](world),
		driftMap:   ecs.NewMap1[components.Drift](world),

		env:    opts.Env,
		stream: NewStream(opts.Seed),

		dtDays: cfg.Derived.DTDays,
		bio: systems.BiofoulingParams{
			RatePerDay:    cfg.Microplastic.BiofoulingRate,
			SurfaceDepth:  cfg.Environment.SurfaceLayerDepth,
			SurfaceFactor: cfg.Environment.SurfaceBiofoulingFactor,
		},
		deg: systems.DegradationParams{
			RatePerDay: cfg.Microplastic.DegradationRate,
			UVDepth:    cfg.Environment.UVLayerDepth,
			UVFactor:   cfg.Environment.UVDegradationFactor,
		},
		buoy: systems.BuoyancyParams{
			Gravity:        cfg.Physics.Gravity,
			BiofilmDensity: cfg.Physics.BiofilmDensity,
			MinDiameter:    cfg.Physics.MinDiameter,
			MaxVelocity:    cfg.Physics.MaxTerminalVelocity,
		},
		coast: systems.CoastlineParams{
			Policy:      systems.ParseCoastlinePolicy(cfg.Microplastic.CoastlineInteraction),
			Probability: cfg.Microplastic.StrandingProbability,
		},
		resusp: systems.ResuspensionParams{
			RatePerDay: cfg.Microplastic.ResuspensionRate,
			Lift:       cfg.Environment.ResuspensionLift,
		},
		liftOff: cfg.Environment.ResuspensionLift,
	}
	s.parallel = newParallelState()
	return s
}

// config returns the active configuration.
func (s *Sim) config() *config.Config {
	return config.Cfg()
}

// SetCollector attaches a telemetry collector recording process events.
func (s *Sim) SetCollector(c *telemetry.Collector) {
	s.collector = c
}

// SetPerfCollector attaches a performance collector timing step phases.
func (s *Sim) SetPerfCollector(p *telemetry.PerfCollector) {
	s.perf = p
}

// Tick returns the current step counter.
func (s *Sim) Tick() int64 {
	return s.tick
}

// DT returns the step duration in seconds.
func (s *Sim) DT() float64 {
	return s.config().Physics.DT
}

// Count returns the number of particles in the ensemble.
func (s *Sim) Count() int {
	n := 0
	query := s.filter.Query()
	for query.Next() {
		n++
	}
	return n
}

// Close releases worker goroutines. The Sim must not be stepped afterwards.
func (s *Sim) Close() {
	if s.parallel != nil {
		s.parallel.stopWorkers()
	}
}
