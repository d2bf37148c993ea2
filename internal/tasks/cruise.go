package tasks

import (
	"github.com/san-kum/cardash/internal/car"
	"github.com/san-kum/cardash/internal/hw"
)

// CruiseController samples the cruise switch and, when engaged with the
// ignition on, overrides the pedals with a proportional speed-hold law.
type CruiseController struct {
	port      hw.InputPort
	out       hw.OutputPort
	control   *car.ControlState
	telemetry *car.TelemetryState
}

func NewCruiseController(port hw.InputPort, out hw.OutputPort, control *car.ControlState, telemetry *car.TelemetryState) *CruiseController {
	return &CruiseController{port: port, out: out, control: control, telemetry: telemetry}
}

func (c *CruiseController) Name() string { return "cruise" }

func (c *CruiseController) Step() {
	// Snapshot the speed before taking the control lock so this task
	// never holds both locks; see the car package lock order.
	c.telemetry.Lock()
	speed := c.telemetry.Speed
	c.telemetry.Unlock()

	c.control.Lock()
	defer c.control.Unlock()

	c.control.CruiseMode = c.port.ReadBit(hw.CruiseSwitch)
	engaged := c.control.Ignition && c.control.CruiseMode
	c.out.WriteBit(hw.CruisingLamp, engaged)

	if engaged {
		c.control.Accelerator, c.control.Brake = CruisePedals(speed)
	}
}

// CruisePedals computes the pedal overrides holding the cruise setpoint.
// FrictionBias offsets the steady-state drag loss; CruiseBias keeps the
// approach to the setpoint from slowing asymptotically.
func CruisePedals(speed float64) (accel, brake float64) {
	switch {
	case speed > car.CruiseSpeed+car.FrictionBias:
		return 0, (speed-car.CruiseSpeed)/car.CruiseSpeed + car.CruiseBias
	case speed < car.CruiseSpeed+car.FrictionBias:
		return (car.CruiseSpeed-speed)/car.CruiseSpeed + car.CruiseBias, 0
	default:
		return 0, 0
	}
}
