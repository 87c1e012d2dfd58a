package components

import "testing"

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusActive, "active"},
		{StatusStranded, "stranded"},
		{StatusOnSeafloor, "seafloor"},
		{Status(200), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestHorizontalSuppressed(t *testing.T) {
	if StatusActive.HorizontalSuppressed() {
		t.Error("active particles must advect horizontally")
	}
	if !StatusStranded.HorizontalSuppressed() {
		t.Error("stranded particles must not advect horizontally")
	}
	if StatusOnSeafloor.HorizontalSuppressed() {
		t.Error("seafloor particles still advect horizontally")
	}
}

func TestEffectiveDensity(t *testing.T) {
	mat := Material{Diameter: 1, BaseDensity: 920, ShapeFactor: 1}

	if got := mat.EffectiveDensity(0, 1388); got != 920 {
		t.Errorf("clean particle: got %f, want base density", got)
	}
	if got := mat.EffectiveDensity(1, 1388); got != 1388 {
		t.Errorf("fully fouled particle: got %f, want biofilm density", got)
	}
	if got := mat.EffectiveDensity(0.5, 1388); got != 1154 {
		t.Errorf("half fouled particle: got %f, want 1154", got)
	}
}

func TestEffectiveDiameter(t *testing.T) {
	mat := Material{Diameter: 1, BaseDensity: 920, ShapeFactor: 1}

	if got := mat.EffectiveDiameter(0, 0.01); got != 1 {
		t.Errorf("pristine particle: got %f, want seeded diameter", got)
	}
	if got := mat.EffectiveDiameter(0.3, 0.01); got != 0.7 {
		t.Errorf("weathered particle: got %f, want 0.7", got)
	}
	if got := mat.EffectiveDiameter(1, 0.01); got != 0.01 {
		t.Errorf("fully degraded particle must floor at min diameter, got %f", got)
	}
}
