package telemetry

import (
	"math/rand"
	"time"
)

// Random-walk step sizes per tick.
const (
	cpuDelta  = 10.0
	memDelta  = 5.0
	tempDelta = 2.0
)

// Simulator generates samples by applying bounded uniform deltas to the
// previous reading. It is not safe for concurrent use; the dashboard drives
// it from a single event loop.
type Simulator struct {
	rng *rand.Rand
}

// NewSimulator returns a simulator seeded from the current time.
func NewSimulator() *Simulator {
	return &Simulator{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSimulatorWithSource returns a simulator using the given source.
// Intended for deterministic tests.
func NewSimulatorWithSource(src rand.Source) *Simulator {
	return &Simulator{rng: rand.New(src)}
}

// Next computes one new sample from prev, or from the default seed when prev
// is nil. CPU, memory and temperature walk within their clamped ranges;
// latency is redrawn uniformly each tick.
func (s *Simulator) Next(prev *Sample, now time.Time) Sample {
	base := DefaultSample(now)
	if prev != nil {
		base = *prev
	}

	return Sample{
		Timestamp:      now,
		CPULoad:        clamp(base.CPULoad+s.uniform(cpuDelta), CPUMin, CPUMax),
		MemoryUsage:    clamp(base.MemoryUsage+s.uniform(memDelta), MemMin, MemMax),
		Temperature:    clamp(base.Temperature+s.uniform(tempDelta), TempMin, TempMax),
		NetworkLatency: LatencyMin + s.rng.Intn(LatencyMax-LatencyMin),
	}
}

// uniform draws from [-d, d).
func (s *Simulator) uniform(d float64) float64 {
	return (s.rng.Float64()*2 - 1) * d
}
