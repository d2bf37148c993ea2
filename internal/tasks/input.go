package tasks

import (
	"github.com/san-kum/cardash/internal/car"
	"github.com/san-kum/cardash/internal/hw"
)

// InputReader samples the ignition, accelerator and brake switches into
// the control state and mirrors ignition onto its lamp. Pedal switches
// are ignored while cruise mode holds the pedals.
type InputReader struct {
	port    hw.InputPort
	out     hw.OutputPort
	control *car.ControlState
}

func NewInputReader(port hw.InputPort, out hw.OutputPort, control *car.ControlState) *InputReader {
	return &InputReader{port: port, out: out, control: control}
}

func (r *InputReader) Name() string { return "input" }

func (r *InputReader) Step() {
	r.control.Lock()
	defer r.control.Unlock()

	r.control.Ignition = r.port.ReadBit(hw.IgnitionSwitch)
	r.out.WriteBit(hw.IgnitionLamp, r.control.Ignition)

	if !r.control.CruiseMode {
		r.control.Accelerator = pedal(r.port.ReadBit(hw.AcceleratorSwitch))
		r.control.Brake = pedal(r.port.ReadBit(hw.BrakeSwitch))
	}
}

func pedal(pressed bool) float64 {
	if pressed {
		return 1
	}
	return 0
}
