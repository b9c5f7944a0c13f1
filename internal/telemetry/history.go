package telemetry

// WindowCapacity is the number of samples retained by a History.
const WindowCapacity = 20

// History is a fixed-capacity rolling window of samples with oldest-first
// eviction. The zero value is not usable; use NewHistory.
type History struct {
	samples  []Sample
	capacity int
}

// NewHistory returns an empty window holding at most capacity samples.
// A capacity <= 0 falls back to WindowCapacity.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = WindowCapacity
	}
	return &History{capacity: capacity}
}

// Append adds a sample, evicting the oldest one past capacity.
func (h *History) Append(s Sample) {
	h.samples = append(h.samples, s)
	if len(h.samples) > h.capacity {
		h.samples = h.samples[1:]
	}
}

// Len returns the number of retained samples.
func (h *History) Len() int { return len(h.samples) }

// Latest returns the most recent sample, or false if the window is empty.
func (h *History) Latest() (Sample, bool) {
	if len(h.samples) == 0 {
		return Sample{}, false
	}
	return h.samples[len(h.samples)-1], true
}

// Samples returns a copy of the retained samples, oldest first.
func (h *History) Samples() []Sample {
	out := make([]Sample, len(h.samples))
	copy(out, h.samples)
	return out
}

// Tail returns a copy of the most recent n samples (all of them when fewer
// are retained), oldest first.
func (h *History) Tail(n int) []Sample {
	if n <= 0 {
		return nil
	}
	if n > len(h.samples) {
		n = len(h.samples)
	}
	out := make([]Sample, n)
	copy(out, h.samples[len(h.samples)-n:])
	return out
}

// Series extracts a single metric as a float series, oldest first.
func (h *History) Series(metric Metric) []float64 {
	out := make([]float64, len(h.samples))
	for i, s := range h.samples {
		out[i] = metric.Value(s)
	}
	return out
}

// Metric identifies one of the four tracked series.
type Metric int

const (
	MetricCPU Metric = iota
	MetricMemory
	MetricTemperature
	MetricLatency
)

// Metrics lists all tracked metrics in display order.
var Metrics = []Metric{MetricCPU, MetricMemory, MetricTemperature, MetricLatency}

// Label returns the display name for the metric.
func (m Metric) Label() string {
	switch m {
	case MetricCPU:
		return "CPU Load"
	case MetricMemory:
		return "Memory"
	case MetricTemperature:
		return "Temperature"
	case MetricLatency:
		return "Net Latency"
	default:
		return "Unknown"
	}
}

// Unit returns the display suffix for the metric.
func (m Metric) Unit() string {
	switch m {
	case MetricCPU, MetricMemory:
		return "%"
	case MetricTemperature:
		return "°C"
	case MetricLatency:
		return "ms"
	default:
		return ""
	}
}

// Max returns the upper bound used for chart scaling.
func (m Metric) Max() float64 {
	switch m {
	case MetricTemperature:
		return TempMax
	case MetricLatency:
		return float64(LatencyMax)
	default:
		return CPUMax
	}
}

// Value extracts the metric's value from a sample.
func (m Metric) Value(s Sample) float64 {
	switch m {
	case MetricCPU:
		return s.CPULoad
	case MetricMemory:
		return s.MemoryUsage
	case MetricTemperature:
		return s.Temperature
	case MetricLatency:
		return float64(s.NetworkLatency)
	default:
		return 0
	}
}
