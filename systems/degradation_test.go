package systems

import (
	"testing"

	"github.com/pthm-cable/mpdrift/components"
)

func TestUpdateDegradation_UVBoostAtSurface(t *testing.T) {
	p := DegradationParams{RatePerDay: 0.01, UVDepth: 0.5, UVFactor: 3}
	surface := components.Weathering{}
	deep := components.Weathering{}

	UpdateDegradation(&surface, -0.1, 1.0, p)
	UpdateDegradation(&deep, -5, 1.0, p)

	if surface.Degradation != deep.Degradation*p.UVFactor {
		t.Errorf("expected UV boost %fx at surface, got %f vs %f",
			p.UVFactor, surface.Degradation, deep.Degradation)
	}
}

func TestUpdateDegradation_SaturatesAtOne(t *testing.T) {
	p := DegradationParams{RatePerDay: 0.5, UVDepth: 0.5, UVFactor: 3}
	w := components.Weathering{}

	for i := 0; i < 20; i++ {
		UpdateDegradation(&w, 0, 1.0, p)
		if w.Degradation < 0 || w.Degradation > 1 {
			t.Fatalf("degradation out of [0,1] at step %d: %f", i, w.Degradation)
		}
	}
	if w.Degradation != 1 {
		t.Errorf("expected saturation at 1, got %f", w.Degradation)
	}
}

func TestEffectiveDiameter_NonIncreasing(t *testing.T) {
	mat := components.Material{Diameter: 1.0, BaseDensity: 920, ShapeFactor: 1}
	p := DegradationParams{RatePerDay: 0.1, UVDepth: 0.5, UVFactor: 3}
	w := components.Weathering{}

	const minDiameter = 0.01
	prev := mat.EffectiveDiameter(w.Degradation, minDiameter)
	for i := 0; i < 30; i++ {
		UpdateDegradation(&w, -2, 1.0, p)
		d := mat.EffectiveDiameter(w.Degradation, minDiameter)
		if d > prev {
			t.Fatalf("effective diameter increased at step %d: %f > %f", i, d, prev)
		}
		if d < minDiameter {
			t.Fatalf("effective diameter below floor at step %d: %f", i, d)
		}
		prev = d
	}
}

func TestEffectiveDiameter_FloorForFullDegradation(t *testing.T) {
	mat := components.Material{Diameter: 2.0, BaseDensity: 1050, ShapeFactor: 1.2}
	if d := mat.EffectiveDiameter(1.0, 0.01); d != 0.01 {
		t.Errorf("expected floor 0.01 for fully degraded particle, got %f", d)
	}
}

func TestUpdateDegradation_DoesNotTouchDensity(t *testing.T) {
	// Density is held constant under degradation in this model; only the
	// effective diameter shrinks.
	mat := components.Material{Diameter: 1.0, BaseDensity: 920, ShapeFactor: 1}
	if rho := mat.EffectiveDensity(0, 1388); rho != 920 {
		t.Errorf("degradation must not alter density, got %f", rho)
	}
}
