package tasks

import (
	"github.com/san-kum/cardash/internal/car"
	"github.com/san-kum/cardash/internal/hw"
)

// DisplayPresenter renders the average speed and odometry at fixed
// positions on the 2x16 display.
type DisplayPresenter struct {
	display   hw.Display
	control   *car.ControlState
	telemetry *car.TelemetryState
}

func NewDisplayPresenter(display hw.Display, control *car.ControlState, telemetry *car.TelemetryState) *DisplayPresenter {
	return &DisplayPresenter{display: display, control: control, telemetry: telemetry}
}

func (d *DisplayPresenter) Name() string { return "display" }

func (d *DisplayPresenter) Step() {
	// The one place both locks are held: telemetry first, then control.
	d.telemetry.Lock()
	d.control.Lock()

	d.display.Locate(0, 0)
	d.display.Printf("speed: %9.1f", d.telemetry.AverageSpeed)
	d.display.Locate(1, 0)
	d.display.Printf("odom : %9.1f", d.telemetry.Odometry)

	d.control.Unlock()
	d.telemetry.Unlock()
}
