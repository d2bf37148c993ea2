package car

// HistoryWindow is the number of speed samples the rolling average covers.
const HistoryWindow = 4

// SpeedHistory is a bounded FIFO of recent speed samples. The zero value
// is an empty window ready for use.
type SpeedHistory struct {
	samples []float64
}

// Push appends a sample, evicting the oldest once the window is full.
func (h *SpeedHistory) Push(v float64) {
	if len(h.samples) >= HistoryWindow {
		h.samples = h.samples[1:]
	}
	h.samples = append(h.samples, v)
}

func (h *SpeedHistory) Len() int { return len(h.samples) }

// Samples returns the window contents in push order.
func (h *SpeedHistory) Samples() []float64 {
	out := make([]float64, len(h.samples))
	copy(out, h.samples)
	return out
}

// Average returns the arithmetic mean of the window. ok is false when the
// window is empty.
func (h *SpeedHistory) Average() (avg float64, ok bool) {
	if len(h.samples) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, v := range h.samples {
		sum += v
	}
	return sum / float64(len(h.samples)), true
}
