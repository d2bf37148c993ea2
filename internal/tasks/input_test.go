package tasks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/san-kum/cardash/internal/car"
	"github.com/san-kum/cardash/internal/hw"
)

func TestInputStep_SamplesSwitches(t *testing.T) {
	port := hw.NewSimPort()
	port.SetSwitch(hw.IgnitionSwitch, true)
	port.SetSwitch(hw.AcceleratorSwitch, true)

	control := &car.ControlState{}
	NewInputReader(port, port, control).Step()

	assert.True(t, control.Ignition)
	assert.True(t, port.Indicator(hw.IgnitionLamp))
	assert.Equal(t, 1.0, control.Accelerator)
	assert.Zero(t, control.Brake)
}

func TestInputStep_IgnitionOffMirroredToLamp(t *testing.T) {
	port := hw.NewSimPort()
	port.WriteBit(hw.IgnitionLamp, true)

	control := &car.ControlState{Ignition: true}
	NewInputReader(port, port, control).Step()

	assert.False(t, control.Ignition)
	assert.False(t, port.Indicator(hw.IgnitionLamp))
}

func TestInputStep_CruiseModeHoldsPedals(t *testing.T) {
	port := hw.NewSimPort()
	port.SetSwitch(hw.IgnitionSwitch, true)
	port.SetSwitch(hw.BrakeSwitch, true)

	control := &car.ControlState{CruiseMode: true, Accelerator: 0.475}
	NewInputReader(port, port, control).Step()

	// Cruise owns the pedals; only ignition is sampled.
	assert.True(t, control.Ignition)
	assert.Equal(t, 0.475, control.Accelerator)
	assert.Zero(t, control.Brake)
}
