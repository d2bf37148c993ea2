package tasks

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/cardash/internal/car"
	"github.com/san-kum/cardash/internal/hw"
)

// Task is one periodic dashboard activity. Step performs a single cycle
// and must not sleep; the harness owns the scheduling.
type Task interface {
	Name() string
	Step()
}

// Rates configures each task's cycle frequency in Hz.
type Rates struct {
	Input   float64
	Cruise  float64
	Physics float64
	Monitor float64
	Display float64
}

// DefaultRates returns the original panel's task frequencies.
func DefaultRates() Rates {
	return Rates{Input: 25, Cruise: 20, Physics: 25, Monitor: 5, Display: 2}
}

func (r Rates) Validate() error {
	for _, f := range []struct {
		name string
		hz   float64
	}{
		{"input", r.Input},
		{"cruise", r.Cruise},
		{"physics", r.Physics},
		{"monitor", r.Monitor},
		{"display", r.Display},
	} {
		if f.hz <= 0 {
			return fmt.Errorf("%s rate must be positive, got %f", f.name, f.hz)
		}
	}
	return nil
}

// Dashboard owns both state groups and supervises the five periodic
// tasks.
type Dashboard struct {
	Control   *car.ControlState
	Telemetry *car.TelemetryState

	out     hw.OutputPort
	display hw.Display
	tasks   []periodicTask
}

type periodicTask struct {
	task     Task
	interval time.Duration
}

func NewDashboard(in hw.InputPort, out hw.OutputPort, display hw.Display, rates Rates) (*Dashboard, error) {
	if err := rates.Validate(); err != nil {
		return nil, err
	}

	control := &car.ControlState{}
	telemetry := &car.TelemetryState{}

	d := &Dashboard{
		Control:   control,
		Telemetry: telemetry,
		out:       out,
		display:   display,
	}
	d.add(NewInputReader(in, out, control), rates.Input)
	d.add(NewCruiseController(in, out, control, telemetry), rates.Cruise)
	d.add(NewPhysicsSimulator(control, telemetry, rates.Physics), rates.Physics)
	d.add(NewAverageSpeedMonitor(out, telemetry), rates.Monitor)
	d.add(NewDisplayPresenter(display, control, telemetry), rates.Display)
	return d, nil
}

func (d *Dashboard) add(t Task, hz float64) {
	d.tasks = append(d.tasks, periodicTask{task: t, interval: interval(hz)})
}

func interval(hz float64) time.Duration {
	return time.Duration(float64(time.Second) / hz)
}

// Run powers the panel and runs every task at its own rate until the
// context is cancelled. Cancellation is a clean shutdown, not an error.
func (d *Dashboard) Run(ctx context.Context) error {
	d.out.WriteBit(hw.Backlight, true)
	d.display.Clear()

	g, ctx := errgroup.WithContext(ctx)
	for _, pt := range d.tasks {
		pt := pt
		g.Go(func() error {
			return runPeriodic(ctx, pt.task, pt.interval)
		})
	}
	return g.Wait()
}

func runPeriodic(ctx context.Context, t Task, every time.Duration) error {
	log.WithFields(log.Fields{"task": t.Name(), "interval": every}).Debug("task started")

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.WithField("task", t.Name()).Debug("task stopped")
			return nil
		case <-ticker.C:
			t.Step()
		}
	}
}

// Snapshot reads a consistent copy of both state groups, honoring the
// telemetry-before-control lock order.
func (d *Dashboard) Snapshot() car.Snapshot {
	d.Telemetry.Lock()
	d.Control.Lock()

	snap := car.Snapshot{
		Ignition:    d.Control.Ignition,
		CruiseMode:  d.Control.CruiseMode,
		Accelerator: d.Control.Accelerator,
		Brake:       d.Control.Brake,

		Speed:        d.Telemetry.Speed,
		AverageSpeed: d.Telemetry.AverageSpeed,
		Odometry:     d.Telemetry.Odometry,
		Speeding:     d.Telemetry.Speeding,
	}

	d.Control.Unlock()
	d.Telemetry.Unlock()
	return snap
}
