// Package components defines ECS components for the drift simulation.
package components

// Position is a particle's geographic position.
// Z is meters relative to the sea surface: 0 at the surface, negative below.
// Position is owned by the advection engine; the core only reads it.
type Position struct {
	Lon float64 // degrees east
	Lat float64 // degrees north
	Z   float64 // meters, negative below surface
}

// Velocity is the particle's advection velocity in m/s.
// U is eastward, V is northward, W is upward. The advection engine owns
// this; the core contributes the terminal component through Drift.
type Velocity struct {
	U, V, W float64
}
