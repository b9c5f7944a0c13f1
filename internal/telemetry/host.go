package telemetry

import (
	"math/rand"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// HostSource reads CPU, memory and temperature from the local machine
// instead of simulating them. Latency has no host-side equivalent and stays
// simulated. Reads are best-effort: a failed probe falls back to carrying
// the previous value forward.
type HostSource struct {
	rng *rand.Rand
}

// NewHostSource returns a live host-backed source.
func NewHostSource() *HostSource {
	return &HostSource{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Next builds a sample from host readings, clamped to the same ranges the
// simulator honors.
func (h *HostSource) Next(prev *Sample, now time.Time) Sample {
	base := DefaultSample(now)
	if prev != nil {
		base = *prev
	}

	out := Sample{
		Timestamp:      now,
		CPULoad:        base.CPULoad,
		MemoryUsage:    base.MemoryUsage,
		Temperature:    base.Temperature,
		NetworkLatency: LatencyMin + h.rng.Intn(LatencyMax-LatencyMin),
	}

	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		out.CPULoad = clamp(pcts[0], CPUMin, CPUMax)
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		out.MemoryUsage = clamp(vm.UsedPercent, MemMin, MemMax)
	}
	if temps, err := host.SensorsTemperatures(); err == nil && len(temps) > 0 {
		var sum float64
		var n int
		for _, t := range temps {
			if t.Temperature > 0 {
				sum += t.Temperature
				n++
			}
		}
		if n > 0 {
			out.Temperature = clamp(sum/float64(n), TempMin, TempMax)
		}
	}

	return out
}
