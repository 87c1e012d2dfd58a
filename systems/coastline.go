package systems

import (
	"github.com/pthm-cable/mpdrift/components"
	"github.com/pthm-cable/mpdrift/config"
)

// CoastlinePolicy selects how particles interact with coastlines.
type CoastlinePolicy uint8

const (
	// CoastNone leaves coastline handling entirely to the advection engine.
	CoastNone CoastlinePolicy = iota
	// CoastStranding strands unconditionally on contact. Stranded is terminal.
	CoastStranding
	// CoastPartial strands with a fixed probability; otherwise the particle
	// stays active and the advection engine displaces it off the coast.
	CoastPartial
)

// ParseCoastlinePolicy maps the config enum to a policy. The config layer
// has already validated the string, so unknown values fall back to none.
func ParseCoastlinePolicy(s string) CoastlinePolicy {
	switch s {
	case config.CoastlineStranding:
		return CoastStranding
	case config.CoastlinePartialStranding:
		return CoastPartial
	}
	return CoastNone
}

// CoastlineParams holds the stranding decision parameters.
type CoastlineParams struct {
	Policy      CoastlinePolicy
	Probability float64 // split fraction under CoastPartial
}

// ResolveCoastline decides the stranding transition for a particle whose new
// position intersects the coastline. draw is a uniform [0,1) value from the
// particle's random stream, consumed only under CoastPartial. Returns the
// new status; only Active particles can strand.
func ResolveCoastline(status components.Status, contact bool, draw float64, p CoastlineParams) components.Status {
	if !contact || status != components.StatusActive {
		return status
	}
	switch p.Policy {
	case CoastStranding:
		return components.StatusStranded
	case CoastPartial:
		if draw < p.Probability {
			return components.StatusStranded
		}
	}
	return status
}
