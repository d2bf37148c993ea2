package hw

import "sync"

// SimPort is an in-memory digital I/O port. Switch bits are set by the
// TUI or a scripted scenario and read by the dashboard tasks; indicator
// bits flow the other way.
type SimPort struct {
	mu         sync.RWMutex
	switches   map[Switch]bool
	indicators map[Indicator]bool
}

func NewSimPort() *SimPort {
	return &SimPort{
		switches:   make(map[Switch]bool),
		indicators: make(map[Indicator]bool),
	}
}

func (p *SimPort) ReadBit(s Switch) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.switches[s]
}

func (p *SimPort) WriteBit(i Indicator, on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.indicators[i] = on
}

// SetSwitch flips a switch to the given position.
func (p *SimPort) SetSwitch(s Switch, on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.switches[s] = on
}

// ToggleSwitch inverts a switch and returns its new position.
func (p *SimPort) ToggleSwitch(s Switch) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.switches[s] = !p.switches[s]
	return p.switches[s]
}

// Indicator reports the current state of an output bit.
func (p *SimPort) Indicator(i Indicator) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.indicators[i]
}
