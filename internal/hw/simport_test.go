package hw

import "testing"

func TestSimPort_Switches(t *testing.T) {
	p := NewSimPort()

	if p.ReadBit(IgnitionSwitch) {
		t.Error("switches should start off")
	}

	p.SetSwitch(IgnitionSwitch, true)
	if !p.ReadBit(IgnitionSwitch) {
		t.Error("expected ignition on")
	}
	if p.ReadBit(BrakeSwitch) {
		t.Error("brake should be unaffected")
	}

	if on := p.ToggleSwitch(IgnitionSwitch); on {
		t.Error("toggle should have turned ignition off")
	}
}

func TestSimPort_Indicators(t *testing.T) {
	p := NewSimPort()

	p.WriteBit(SpeedingLamp, true)
	if !p.Indicator(SpeedingLamp) {
		t.Error("expected speeding lamp on")
	}

	p.WriteBit(SpeedingLamp, false)
	if p.Indicator(SpeedingLamp) {
		t.Error("expected speeding lamp off")
	}
}
