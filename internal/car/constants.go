package car

// Vehicle constants. Speeds are km/h.
const (
	MinSpeed   = 0.0
	MaxSpeed   = 300.0
	LegalSpeed = 142.0 // 88 mph

	CruiseSpeed = 80.0 // 50 mph

	// Friction is the fractional speed loss applied every physics step.
	Friction = 0.001

	// FrictionBias offsets the steady-state drag loss around the cruise
	// setpoint; generally CruiseSpeed * Friction scaled to the step rate.
	FrictionBias = 0.8

	// CruiseBias keeps the cruise controller from creeping toward the
	// setpoint without ever reaching it.
	CruiseBias = 0.1
)
