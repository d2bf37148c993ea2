// Package car holds the shared vehicle state the dashboard tasks operate
// on: the driver-facing control inputs and the simulated telemetry. Each
// state group carries its own coarse-grained lock.
//
// Lock order: a task that needs both groups in a single cycle must take
// the TelemetryState lock before the ControlState lock.
package car

import "sync"

// ControlState is the control-input group: ignition, cruise mode and the
// pedal values. While CruiseMode is set, only the cruise controller may
// write Accelerator and Brake.
type ControlState struct {
	mu sync.Mutex

	Ignition    bool
	CruiseMode  bool
	Accelerator float64
	Brake       float64
}

func (s *ControlState) Lock()   { s.mu.Lock() }
func (s *ControlState) Unlock() { s.mu.Unlock() }

// TelemetryState is the simulation-output group. The physics simulator is
// the sole writer of Speed, History and Odometry; the average speed
// monitor is the sole writer of AverageSpeed and Speeding.
type TelemetryState struct {
	mu sync.Mutex

	Speed        float64
	AverageSpeed float64
	Odometry     float64
	Speeding     bool
	History      SpeedHistory
}

func (s *TelemetryState) Lock()   { s.mu.Lock() }
func (s *TelemetryState) Unlock() { s.mu.Unlock() }

// Snapshot is a point-in-time copy of both state groups.
type Snapshot struct {
	Ignition    bool
	CruiseMode  bool
	Accelerator float64
	Brake       float64

	Speed        float64
	AverageSpeed float64
	Odometry     float64
	Speeding     bool
}
