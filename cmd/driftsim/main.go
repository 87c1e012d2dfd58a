// Command driftsim runs a headless microplastic drift simulation against a
// synthetic noise-driven ocean. It exists to exercise the library end to end;
// in production the core is driven by an external advection engine reading
// real current and wind fields.
package main

import (
	"flag"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/pthm-cable/mpdrift/components"
	"github.com/pthm-cable/mpdrift/config"
	"github.com/pthm-cable/mpdrift/environment"
	"github.com/pthm-cable/mpdrift/sim"
	"github.com/pthm-cable/mpdrift/systems"
	"github.com/pthm-cable/mpdrift/telemetry"
)

// metersPerDegree approximates one degree of latitude. Longitude is scaled
// by cos(lat) below; good enough for a synthetic basin.
const metersPerDegree = 111320.0

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	days := flag.Float64("days", 10, "Simulation duration in days")
	particles := flag.Int("particles", 0, "Particles per material preset (0 = use config)")
	lon := flag.Float64("lon", 4.0, "Release longitude")
	lat := flag.Float64("lat", 62.0, "Release latitude")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	registry := systems.NewSystemRegistry()
	slog.Info("processes", "order", registry.IDs(), "external", len(registry.ByCategory("external")))

	env := environment.NewSimplex(rngSeed, cfg.Environment.WaterDensity, cfg.Environment.Viscosity, 500)

	s := sim.New(sim.Options{Seed: rngSeed, Env: env})
	defer s.Close()

	collector := telemetry.NewCollector(cfg.Telemetry.StatsWindow, cfg.Physics.DT)
	s.SetCollector(collector)

	perf := telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow)
	s.SetPerfCollector(perf)

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
		os.Exit(1)
	}
	defer output.Close()
	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	// Seed one batch per material preset at offset release sites
	perBatch := cfg.Population.Initial / len(cfg.Materials)
	if *particles > 0 {
		perBatch = *particles
	}
	for i, mat := range cfg.Materials {
		offset := 0.05 * float64(i)
		err := s.Seed(sim.SeedOptions{
			Material: mat.Name,
			Number:   perBatch,
			Lon:      *lon + offset,
			Lat:      *lat + offset,
			Z:        0,
			Radius:   0.02,
		})
		if err != nil {
			slog.Error("seeding failed", "material", mat.Name, "error", err)
			os.Exit(1)
		}
	}
	slog.Info("seeded", "particles", s.Count(), "materials", len(cfg.Materials), "seed", rngSeed)

	dt := cfg.Physics.DT
	steps := int(*days * 86400 / dt)

	for i := 0; i < steps; i++ {
		perf.StartTick()
		if err := s.Step(); err != nil {
			slog.Error("step failed", "tick", s.Tick(), "error", err)
			os.Exit(1)
		}

		// External advection stand-in: Euler drift on the synthetic current
		// plus the core's terminal velocity.
		perf.StartPhase(telemetry.PhaseAdvection)
		s.Advect(func(v sim.ParticleView) components.Position {
			u, vn := env.Current(v.Lon, v.Lat)
			cosLat := math.Cos(v.Lat * math.Pi / 180)
			if cosLat < 0.01 {
				cosLat = 0.01
			}
			return components.Position{
				Lon: v.Lon + u*dt/(metersPerDegree*cosLat),
				Lat: v.Lat + vn*dt/metersPerDegree,
				Z:   v.Z + v.Terminal*dt,
			}
		})

		perf.StartPhase(telemetry.PhaseTelemetry)
		if collector.ShouldFlush(s.Tick()) {
			flushStats(s, collector, output, *logStats)
			if err := output.WritePerf(perf.Stats(), s.Tick()); err != nil {
				slog.Error("failed to write perf", "error", err)
			}
		}
		perf.EndTick()
	}

	// Final flush and per-particle end state
	flushStats(s, collector, output, *logStats)
	if err := output.WriteParticles(particleRecords(s, cfg)); err != nil {
		slog.Error("failed to write particles", "error", err)
	}

	active, stranded, seafloor := s.StatusCounts()
	slog.Info("finished", "steps", steps, "active", active, "stranded", stranded, "seafloor", seafloor)
}

// flushStats samples the ensemble, flushes the collector window, and writes
// the stats record.
func flushStats(s *sim.Sim, collector *telemetry.Collector, output *telemetry.OutputManager, logStats bool) {
	var depths, fouling, degradation, terminals []float64
	s.Each(func(v sim.ParticleView) {
		depths = append(depths, -v.Z)
		fouling = append(fouling, v.Biofouling)
		degradation = append(degradation, v.Degradation)
		terminals = append(terminals, v.Terminal)
	})

	active, stranded, seafloor := s.StatusCounts()
	stats := collector.Flush(s.Tick(), active, stranded, seafloor, depths, fouling, degradation, terminals)

	if logStats {
		slog.Info("window", "stats", stats)
	}
	if err := output.WriteStats(stats); err != nil {
		slog.Error("failed to write stats", "error", err)
	}
}

// particleRecords converts the ensemble end state for CSV output.
func particleRecords(s *sim.Sim, cfg *config.Config) []telemetry.ParticleRecord {
	var records []telemetry.ParticleRecord
	s.Each(func(v sim.ParticleView) {
		name := ""
		if int(v.Preset) < len(cfg.Materials) {
			name = cfg.Materials[v.Preset].Name
		}
		records = append(records, telemetry.ParticleRecord{
			ID:                v.ID,
			Material:          name,
			Status:            v.Status.String(),
			Lon:               v.Lon,
			Lat:               v.Lat,
			Z:                 v.Z,
			Diameter:          v.Diameter,
			BaseDensity:       v.BaseDensity,
			ShapeFactor:       v.ShapeFactor,
			Biofouling:        v.Biofouling,
			Degradation:       v.Degradation,
			EffectiveDensity:  v.EffectiveDensity,
			EffectiveDiameter: v.EffectiveDiameter,
			Terminal:          v.Terminal,
		})
	})
	return records
}
