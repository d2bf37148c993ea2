package tasks

import (
	"github.com/san-kum/cardash/internal/car"
)

// PhysicsSimulator advances the speed from the pedal inputs, applies
// drag, clamps to the speed bounds, feeds the rolling history window and
// accumulates odometry. It is the sole writer of Speed, History and
// Odometry.
type PhysicsSimulator struct {
	control   *car.ControlState
	telemetry *car.TelemetryState
	dt        float64 // simulated seconds per step
}

func NewPhysicsSimulator(control *car.ControlState, telemetry *car.TelemetryState, rate float64) *PhysicsSimulator {
	return &PhysicsSimulator{control: control, telemetry: telemetry, dt: 1 / rate}
}

func (p *PhysicsSimulator) Name() string { return "physics" }

func (p *PhysicsSimulator) Step() {
	p.control.Lock()
	ignition := p.control.Ignition
	accel := p.control.Accelerator
	brake := p.control.Brake
	if !ignition {
		// No propulsion with the ignition off.
		p.control.Accelerator = 0
		accel = 0
	}
	p.control.Unlock()

	p.telemetry.Lock()
	defer p.telemetry.Unlock()

	if ignition {
		p.telemetry.Speed += accel - brake
	} else {
		// Unassisted braking is half as effective.
		p.telemetry.Speed += accel - 0.5*brake
	}

	p.telemetry.Speed -= car.Friction * p.telemetry.Speed

	if p.telemetry.Speed < car.MinSpeed {
		p.telemetry.Speed = car.MinSpeed
	}
	if p.telemetry.Speed > car.MaxSpeed {
		p.telemetry.Speed = car.MaxSpeed
	}

	p.telemetry.History.Push(p.telemetry.Speed)
	p.telemetry.Odometry += p.telemetry.Speed * p.dt
}
