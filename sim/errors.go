package sim

import (
	"fmt"

	"github.com/pthm-cable/mpdrift/components"
)

// InvalidStateError reports a particle attribute that violates a physical
// invariant. It is detected at the start of a step and halts the advance;
// silently repairing physical state would corrupt results.
type InvalidStateError struct {
	ID    uint32
	Field string
	Value float64
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("particle %d: invalid %s: %g", e.ID, e.Field, e.Value)
}

// validateParticle checks the raw attribute invariants for one particle.
func validateParticle(id uint32, mat components.Material, w components.Weathering) error {
	switch {
	case mat.Diameter <= 0:
		return &InvalidStateError{ID: id, Field: "diameter", Value: mat.Diameter}
	case mat.BaseDensity <= 0:
		return &InvalidStateError{ID: id, Field: "base_density", Value: mat.BaseDensity}
	case mat.ShapeFactor <= 0:
		return &InvalidStateError{ID: id, Field: "shape_factor", Value: mat.ShapeFactor}
	case w.Biofouling < 0 || w.Biofouling > 1:
		return &InvalidStateError{ID: id, Field: "biofouling_level", Value: w.Biofouling}
	case w.Degradation < 0 || w.Degradation > 1:
		return &InvalidStateError{ID: id, Field: "degradation_state", Value: w.Degradation}
	}
	return nil
}
