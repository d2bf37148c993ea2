// Package hw abstracts the dashboard's hardware collaborators: a digital
// I/O port exposing per-channel switch and indicator bits, and a 2x16
// character display. In-memory implementations back the TUI, scripted
// runs and tests.
package hw

// Switch identifies a digital input channel on the parallel port.
// Channels 8 through 11 mirror the original panel wiring.
type Switch int

const (
	IgnitionSwitch Switch = iota + 8
	AcceleratorSwitch
	BrakeSwitch
	CruiseSwitch
)

func (s Switch) String() string {
	switch s {
	case IgnitionSwitch:
		return "ignition"
	case AcceleratorSwitch:
		return "accelerator"
	case BrakeSwitch:
		return "brake"
	case CruiseSwitch:
		return "cruise"
	}
	return "unknown"
}

// Indicator identifies a digital output channel.
type Indicator int

const (
	IgnitionLamp Indicator = iota
	CruisingLamp
	SpeedingLamp
	Backlight
)

func (i Indicator) String() string {
	switch i {
	case IgnitionLamp:
		return "ignition"
	case CruisingLamp:
		return "cruising"
	case SpeedingLamp:
		return "speeding"
	case Backlight:
		return "backlight"
	}
	return "unknown"
}

// InputPort reads individual switch bits.
type InputPort interface {
	ReadBit(Switch) bool
}

// OutputPort writes individual indicator bits.
type OutputPort interface {
	WriteBit(Indicator, bool)
}

// Display dimensions of the character surface.
const (
	DisplayRows = 2
	DisplayCols = 16
)

// Display is a cursor-addressed character surface.
type Display interface {
	Clear()
	Locate(row, col int)
	Printf(format string, args ...any)
}
