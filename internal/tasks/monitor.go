package tasks

import (
	"github.com/san-kum/cardash/internal/car"
	"github.com/san-kum/cardash/internal/hw"
)

// AverageSpeedMonitor recomputes the rolling average speed and raises the
// legal-speed alert.
type AverageSpeedMonitor struct {
	out       hw.OutputPort
	telemetry *car.TelemetryState
}

func NewAverageSpeedMonitor(out hw.OutputPort, telemetry *car.TelemetryState) *AverageSpeedMonitor {
	return &AverageSpeedMonitor{out: out, telemetry: telemetry}
}

func (m *AverageSpeedMonitor) Name() string { return "monitor" }

func (m *AverageSpeedMonitor) Step() {
	m.telemetry.Lock()
	defer m.telemetry.Unlock()

	avg, ok := m.telemetry.History.Average()
	if !ok {
		// No samples before the first physics step.
		return
	}

	m.telemetry.AverageSpeed = avg
	m.telemetry.Speeding = avg > car.LegalSpeed
	m.out.WriteBit(hw.SpeedingLamp, m.telemetry.Speeding)
}
