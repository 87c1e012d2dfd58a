package systems

import (
	"testing"

	"github.com/pthm-cable/mpdrift/components"
)

func defaultBioParams() BiofoulingParams {
	return BiofoulingParams{RatePerDay: 0.05, SurfaceDepth: 10, SurfaceFactor: 2}
}

func TestUpdateBiofouling_LinearAccumulation(t *testing.T) {
	w := components.Weathering{}
	p := defaultBioParams()

	// One full day at depth (no surface boost)
	UpdateBiofouling(&w, -50, 1.0, p)

	if diff := w.Biofouling - 0.05; diff > 1e-12 || diff < -1e-12 {
		t.Errorf("expected biofouling 0.05 after one day, got %f", w.Biofouling)
	}
}

func TestUpdateBiofouling_SurfaceBoost(t *testing.T) {
	deep := components.Weathering{}
	shallow := components.Weathering{}
	p := defaultBioParams()

	UpdateBiofouling(&deep, -50, 0.5, p)
	UpdateBiofouling(&shallow, -5, 0.5, p)

	if shallow.Biofouling != deep.Biofouling*p.SurfaceFactor {
		t.Errorf("expected surface accumulation %fx deep, got %f vs %f",
			p.SurfaceFactor, shallow.Biofouling, deep.Biofouling)
	}
}

func TestUpdateBiofouling_SaturatesAtOne(t *testing.T) {
	w := components.Weathering{}
	p := defaultBioParams()

	// Many steps, far beyond saturation
	for i := 0; i < 100; i++ {
		UpdateBiofouling(&w, -2, 1.0, p)
		if w.Biofouling < 0 || w.Biofouling > 1 {
			t.Fatalf("biofouling out of [0,1] at step %d: %f", i, w.Biofouling)
		}
	}
	if w.Biofouling != 1 {
		t.Errorf("expected saturation at 1, got %f", w.Biofouling)
	}
}

func TestUpdateBiofouling_Monotonic(t *testing.T) {
	w := components.Weathering{}
	p := defaultBioParams()

	prev := 0.0
	for i := 0; i < 50; i++ {
		UpdateBiofouling(&w, -20, 0.25, p)
		if w.Biofouling < prev {
			t.Fatalf("biofouling decreased at step %d: %f < %f", i, w.Biofouling, prev)
		}
		prev = w.Biofouling
	}
}

func TestUpdateBiofouling_ZeroRateNoOp(t *testing.T) {
	w := components.Weathering{Biofouling: 0.3}
	UpdateBiofouling(&w, -1, 1.0, BiofoulingParams{RatePerDay: 0, SurfaceDepth: 10, SurfaceFactor: 2})
	if w.Biofouling != 0.3 {
		t.Errorf("expected no change with zero rate, got %f", w.Biofouling)
	}
}
