package telemetry

import (
	"math/rand"
	"testing"
	"time"
)

func TestNext_FirstSampleUsesDefaultSeed(t *testing.T) {
	sim := NewSimulatorWithSource(rand.NewSource(1))
	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

	s := sim.Next(nil, now)

	if !s.Timestamp.Equal(now) {
		t.Errorf("expected timestamp %v, got %v", now, s.Timestamp)
	}
	// One step from the 45/60/45 seed can move at most ±10/±5/±2.
	if s.CPULoad < 35 || s.CPULoad > 55 {
		t.Errorf("CPULoad %v outside one step from seed", s.CPULoad)
	}
	if s.MemoryUsage < 55 || s.MemoryUsage > 65 {
		t.Errorf("MemoryUsage %v outside one step from seed", s.MemoryUsage)
	}
	if s.Temperature < 43 || s.Temperature > 47 {
		t.Errorf("Temperature %v outside one step from seed", s.Temperature)
	}
}

func TestNext_ValuesStayInRange(t *testing.T) {
	sim := NewSimulatorWithSource(rand.NewSource(42))
	now := time.Now()

	var prev *Sample
	for i := 0; i < 5000; i++ {
		s := sim.Next(prev, now.Add(time.Duration(i)*time.Second))
		if s.CPULoad < CPUMin || s.CPULoad > CPUMax {
			t.Fatalf("tick %d: CPULoad %v out of range", i, s.CPULoad)
		}
		if s.MemoryUsage < MemMin || s.MemoryUsage > MemMax {
			t.Fatalf("tick %d: MemoryUsage %v out of range", i, s.MemoryUsage)
		}
		if s.Temperature < TempMin || s.Temperature > TempMax {
			t.Fatalf("tick %d: Temperature %v out of range", i, s.Temperature)
		}
		if s.NetworkLatency < LatencyMin || s.NetworkLatency > LatencyMax-1 {
			t.Fatalf("tick %d: NetworkLatency %v out of range", i, s.NetworkLatency)
		}
		prev = &s
	}
}

func TestNext_ClampsAtBounds(t *testing.T) {
	sim := NewSimulatorWithSource(rand.NewSource(7))
	now := time.Now()

	// Start pinned at the ceilings; a positive delta must clamp.
	prev := &Sample{
		Timestamp:   now,
		CPULoad:     CPUMax,
		MemoryUsage: MemMax,
		Temperature: TempMax,
	}
	for i := 0; i < 100; i++ {
		s := sim.Next(prev, now)
		if s.CPULoad > CPUMax || s.MemoryUsage > MemMax || s.Temperature > TempMax {
			t.Fatalf("sample exceeds ceiling: %+v", s)
		}
	}
}

func TestNext_TimestampsNonDecreasing(t *testing.T) {
	sim := NewSimulatorWithSource(rand.NewSource(3))
	start := time.Now()

	var prev *Sample
	var last time.Time
	for i := 0; i < 10; i++ {
		now := start.Add(time.Duration(i) * 2 * time.Second)
		s := sim.Next(prev, now)
		if s.Timestamp.Before(last) {
			t.Fatalf("timestamp went backwards at tick %d", i)
		}
		last = s.Timestamp
		prev = &s
	}
}
