package systems

// ResuspensionParams holds the seafloor lift-off parameters.
type ResuspensionParams struct {
	RatePerDay float64 // daily resuspension rate, [0, 1]
	Lift       float64 // m off the bed when a particle re-enters the column
}

// ShouldResuspend decides whether an OnSeafloor particle lifts off this step.
// The per-step probability is RatePerDay scaled by the step duration; draw is
// a uniform [0,1) value from the particle's random stream.
func ShouldResuspend(draw, dtDays float64, p ResuspensionParams) bool {
	if p.RatePerDay <= 0 {
		return false
	}
	return draw < p.RatePerDay*dtDays
}
