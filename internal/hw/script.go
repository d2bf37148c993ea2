package hw

import (
	"sort"
	"time"
)

// SwitchEvent is a scheduled switch transition for scripted runs.
type SwitchEvent struct {
	At     time.Duration
	Switch Switch
	On     bool
}

// Script replays switch events against a SimPort in time order.
type Script struct {
	port   *SimPort
	events []SwitchEvent
	next   int
}

func NewScript(port *SimPort, events []SwitchEvent) *Script {
	sorted := make([]SwitchEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].At < sorted[j].At
	})
	return &Script{port: port, events: sorted}
}

// Advance applies every event due at or before elapsed.
func (s *Script) Advance(elapsed time.Duration) {
	for s.next < len(s.events) && s.events[s.next].At <= elapsed {
		ev := s.events[s.next]
		s.port.SetSwitch(ev.Switch, ev.On)
		s.next++
	}
}

// Done reports whether every event has been applied.
func (s *Script) Done() bool {
	return s.next >= len(s.events)
}
