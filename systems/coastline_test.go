package systems

import (
	"testing"

	"github.com/pthm-cable/mpdrift/components"
	"github.com/pthm-cable/mpdrift/config"
)

func TestParseCoastlinePolicy(t *testing.T) {
	tests := []struct {
		in   string
		want CoastlinePolicy
	}{
		{config.CoastlineNone, CoastNone},
		{config.CoastlineStranding, CoastStranding},
		{config.CoastlinePartialStranding, CoastPartial},
		{"bogus", CoastNone},
	}
	for _, tt := range tests {
		if got := ParseCoastlinePolicy(tt.in); got != tt.want {
			t.Errorf("ParseCoastlinePolicy(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestResolveCoastline_NonePolicyNeverStrands(t *testing.T) {
	p := CoastlineParams{Policy: CoastNone}
	got := ResolveCoastline(components.StatusActive, true, 0.0, p)
	if got != components.StatusActive {
		t.Errorf("policy none must never strand, got %v", got)
	}
}

func TestResolveCoastline_StrandingUnconditional(t *testing.T) {
	p := CoastlineParams{Policy: CoastStranding}
	got := ResolveCoastline(components.StatusActive, true, 0.99, p)
	if got != components.StatusStranded {
		t.Errorf("expected stranding on contact, got %v", got)
	}
}

func TestResolveCoastline_NoContactNoTransition(t *testing.T) {
	p := CoastlineParams{Policy: CoastStranding}
	got := ResolveCoastline(components.StatusActive, false, 0.0, p)
	if got != components.StatusActive {
		t.Errorf("no contact must not strand, got %v", got)
	}
}

func TestResolveCoastline_PartialUsesDraw(t *testing.T) {
	p := CoastlineParams{Policy: CoastPartial, Probability: 0.5}

	if got := ResolveCoastline(components.StatusActive, true, 0.4, p); got != components.StatusStranded {
		t.Errorf("draw below probability must strand, got %v", got)
	}
	if got := ResolveCoastline(components.StatusActive, true, 0.6, p); got != components.StatusActive {
		t.Errorf("draw above probability must stay active, got %v", got)
	}
}

func TestResolveCoastline_OnlyActiveStrands(t *testing.T) {
	p := CoastlineParams{Policy: CoastStranding}
	for _, status := range []components.Status{components.StatusStranded, components.StatusOnSeafloor} {
		if got := ResolveCoastline(status, true, 0.0, p); got != status {
			t.Errorf("status %v must not transition via coastline, got %v", status, got)
		}
	}
}

func TestShouldResuspend(t *testing.T) {
	p := ResuspensionParams{RatePerDay: 0.5, Lift: 0.5}

	// dt of half a day gives per-step probability 0.25
	if !ShouldResuspend(0.2, 0.5, p) {
		t.Error("draw below per-step probability must resuspend")
	}
	if ShouldResuspend(0.3, 0.5, p) {
		t.Error("draw above per-step probability must not resuspend")
	}
	if ShouldResuspend(0.0, 0.5, ResuspensionParams{RatePerDay: 0}) {
		t.Error("zero rate must never resuspend")
	}
}
