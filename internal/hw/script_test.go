package hw

import (
	"testing"
	"time"
)

func TestScript_AdvanceInOrder(t *testing.T) {
	p := NewSimPort()
	s := NewScript(p, []SwitchEvent{
		{At: 2 * time.Second, Switch: AcceleratorSwitch, On: true},
		{At: 0, Switch: IgnitionSwitch, On: true},
	})

	s.Advance(0)
	if !p.ReadBit(IgnitionSwitch) {
		t.Error("ignition event due at 0 not applied")
	}
	if p.ReadBit(AcceleratorSwitch) {
		t.Error("accelerator event applied early")
	}
	if s.Done() {
		t.Error("script reported done with events pending")
	}

	s.Advance(2 * time.Second)
	if !p.ReadBit(AcceleratorSwitch) {
		t.Error("accelerator event due at 2s not applied")
	}
	if !s.Done() {
		t.Error("script should be done")
	}
}

func TestScript_LastEventWins(t *testing.T) {
	p := NewSimPort()
	s := NewScript(p, []SwitchEvent{
		{At: time.Second, Switch: BrakeSwitch, On: true},
		{At: 3 * time.Second, Switch: BrakeSwitch, On: false},
	})

	s.Advance(5 * time.Second)
	if p.ReadBit(BrakeSwitch) {
		t.Error("expected brake released by the later event")
	}
}
