// Package telemetry produces and stores the console's metric samples.
//
// Samples are simulated by default (a bounded random walk per metric) and can
// optionally be sourced from the local host. A Sample is immutable once
// created; the History window owns eviction.
package telemetry

import "time"

// Metric value bounds. CPU load and memory usage are percentages,
// temperature is degrees Celsius with a 20° floor, latency is milliseconds
// drawn from [LatencyMin, LatencyMax).
const (
	CPUMin, CPUMax   = 0.0, 100.0
	MemMin, MemMax   = 0.0, 100.0
	TempMin, TempMax = 20.0, 100.0

	LatencyMin = 10
	LatencyMax = 60
)

// Sample is a single telemetry reading.
type Sample struct {
	Timestamp      time.Time `json:"timestamp"`
	CPULoad        float64   `json:"cpuLoad"`
	MemoryUsage    float64   `json:"memoryUsage"`
	Temperature    float64   `json:"temperature"`
	NetworkLatency int       `json:"networkLatency"`
}

// DefaultSample is the seed reading used when no history exists yet.
func DefaultSample(now time.Time) Sample {
	return Sample{
		Timestamp:      now,
		CPULoad:        45,
		MemoryUsage:    60,
		Temperature:    45,
		NetworkLatency: 30,
	}
}

// Source produces the next sample given the previous one (nil when history
// is empty).
type Source interface {
	Next(prev *Sample, now time.Time) Sample
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
