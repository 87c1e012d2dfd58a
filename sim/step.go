package sim

import (
	"fmt"

	"github.com/pthm-cable/mpdrift/components"
	"github.com/pthm-cable/mpdrift/systems"
	"github.com/pthm-cable/mpdrift/telemetry"
)

// Step advances every particle by one timestep, in the fixed process order:
// biofouling, degradation, terminal velocity, then coastline and seafloor
// transitions. After Step returns, the advection engine reads the updated
// Drift and Status components for the same step.
//
// Phase A walks the ensemble single-threaded, validating invariants and
// sampling the environment. Phase B computes the pure per-particle updates,
// chunked across workers for large ensembles. Phase C writes results back
// single-threaded and records telemetry events.
func (s *Sim) Step() error {
	// Phase A: snapshot, validate, sample environment
	if s.perf != nil {
		s.perf.StartPhase(telemetry.PhaseSnapshot)
	}
	s.parallel.snapshots = s.parallel.snapshots[:0]

	query := s.filter.Query()
	for query.Next() {
		entity := query.Entity()
		pos, _, part, mat, weather, _ := query.Get()

		if err := validateParticle(part.ID, *mat, *weather); err != nil {
			query.Close()
			return err
		}

		sample, err := s.env.Sample(pos.Lon, pos.Lat, pos.Z)
		if err != nil {
			query.Close()
			return fmt.Errorf("particle %d at (%.3f, %.3f, %.1f): %w",
				part.ID, pos.Lon, pos.Lat, pos.Z, err)
		}

		s.parallel.snapshots = append(s.parallel.snapshots, particleSnapshot{
			Entity:  entity,
			ID:      part.ID,
			Status:  part.Status,
			Z:       pos.Z,
			Mat:     *mat,
			Weather: *weather,
			Env:     sample,
		})
	}

	n := len(s.parallel.snapshots)
	if n == 0 {
		s.tick++
		return nil
	}

	if cap(s.parallel.intents) < n {
		s.parallel.intents = make([]intent, n)
	}
	s.parallel.intents = s.parallel.intents[:n]

	// Phase B: pure per-particle computation
	if s.perf != nil {
		s.perf.StartPhase(telemetry.PhaseProcesses)
	}
	if n < parallelThreshold {
		s.computeChunk(0, n)
	} else {
		s.computeParallel(n)
	}

	// Phase C: apply intents and record events
	if s.perf != nil {
		s.perf.StartPhase(telemetry.PhaseApply)
	}
	s.applyIntents()

	s.tick++
	return nil
}

// computeChunk evolves a range of particles. It touches only the snapshot
// and intent slots of its range plus the hash-derived random stream, so
// chunks never contend.
func (s *Sim) computeChunk(i0, i1 int) {
	for i := i0; i < i1; i++ {
		snap := &s.parallel.snapshots[i]
		out := &s.parallel.intents[i]
		*out = intent{} // slots are reused across steps

		// Weathering first: velocity must reflect this step's state
		w := snap.Weather
		systems.UpdateBiofouling(&w, snap.Z, s.dtDays, s.bio)
		systems.UpdateDegradation(&w, snap.Z, s.dtDays, s.deg)

		v := systems.TerminalVelocity(snap.Mat, w, snap.Env.WaterDensity, snap.Env.Viscosity, s.buoy)

		status := snap.Status
		newZ := snap.Z
		moved := false

		switch status {
		case components.StatusActive:
			if snap.Env.OnCoastline {
				draw := s.stream.Uniform(snap.ID, s.tick, chanCoastline)
				status = systems.ResolveCoastline(status, true, draw, s.coast)
				out.Stranded = status == components.StatusStranded
			}
			if status == components.StatusActive && snap.Env.OnSeafloor {
				status = components.StatusOnSeafloor
				out.Settled = true
			}

		case components.StatusOnSeafloor:
			draw := s.stream.Uniform(snap.ID, s.tick, chanResuspension)
			if systems.ShouldResuspend(draw, s.dtDays, s.resusp) {
				status = components.StatusActive
				newZ = -snap.Env.SeafloorDepth + s.liftOff
				moved = true
				out.Resuspended = true
				// v stands: already recomputed from this step's properties
			}
		}

		// A particle resting on the bed has no vertical motion
		if status == components.StatusOnSeafloor {
			v = 0
		}

		out.Weather = w
		out.Terminal = v
		out.Status = status
		out.NewZ = newZ
		out.Moved = moved
	}
}

// applyIntents writes computed results back to ECS components.
func (s *Sim) applyIntents() {
	for i := range s.parallel.snapshots {
		snap := &s.parallel.snapshots[i]
		out := &s.parallel.intents[i]

		weather := s.weatherMap.Get(snap.Entity)
		drift := s.driftMap.Get(snap.Entity)
		part := s.partMap.Get(snap.Entity)
		if weather == nil || drift == nil || part == nil {
			continue
		}

		*weather = out.Weather
		drift.Terminal = out.Terminal
		part.Status = out.Status

		if out.Moved {
			if pos := s.posMap.Get(snap.Entity); pos != nil {
				pos.Z = out.NewZ
			}
		}

		if s.collector != nil {
			if out.Stranded {
				s.collector.RecordStranding()
			}
			if out.Settled {
				s.collector.RecordSettling()
			}
			if out.Resuspended {
				s.collector.RecordResuspension()
			}
			if snap.Weather.Biofouling < 1 && out.Weather.Biofouling >= 1 {
				s.collector.RecordFoulingSaturation()
			}
		}
	}
}
