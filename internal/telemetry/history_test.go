package telemetry

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func sampleAt(sec int) Sample {
	return Sample{
		Timestamp:      time.Date(2026, 8, 23, 12, 0, sec, 0, time.UTC),
		CPULoad:        float64(sec),
		MemoryUsage:    50,
		Temperature:    40,
		NetworkLatency: 30,
	}
}

func TestHistory_GrowsToCapacityThenEvictsFIFO(t *testing.T) {
	h := NewHistory(WindowCapacity)

	for i := 0; i < WindowCapacity; i++ {
		h.Append(sampleAt(i))
		if h.Len() != i+1 {
			t.Fatalf("after %d appends expected len %d, got %d", i+1, i+1, h.Len())
		}
	}

	// Past capacity the length holds and the oldest entry drops.
	h.Append(sampleAt(WindowCapacity))
	if h.Len() != WindowCapacity {
		t.Fatalf("expected len %d after overflow, got %d", WindowCapacity, h.Len())
	}
	got := h.Samples()
	if got[0].CPULoad != 1 {
		t.Errorf("expected oldest sample to be evicted, window starts at %v", got[0].CPULoad)
	}
	if got[len(got)-1].CPULoad != float64(WindowCapacity) {
		t.Errorf("expected newest sample at the end, got %v", got[len(got)-1].CPULoad)
	}
}

func TestHistory_Tail(t *testing.T) {
	h := NewHistory(WindowCapacity)
	for i := 0; i < 8; i++ {
		h.Append(sampleAt(i))
	}

	tail := h.Tail(5)
	want := []Sample{sampleAt(3), sampleAt(4), sampleAt(5), sampleAt(6), sampleAt(7)}
	if diff := cmp.Diff(want, tail); diff != "" {
		t.Errorf("tail mismatch (-want +got):\n%s", diff)
	}

	// Fewer retained than requested returns all of them.
	short := NewHistory(WindowCapacity)
	short.Append(sampleAt(0))
	if got := short.Tail(5); len(got) != 1 {
		t.Errorf("expected 1 sample, got %d", len(got))
	}
}

func TestHistory_Latest(t *testing.T) {
	h := NewHistory(WindowCapacity)
	if _, ok := h.Latest(); ok {
		t.Error("expected no latest sample for empty window")
	}

	h.Append(sampleAt(1))
	h.Append(sampleAt(2))
	latest, ok := h.Latest()
	if !ok || latest.CPULoad != 2 {
		t.Errorf("expected latest sample 2, got %+v ok=%v", latest, ok)
	}
}

func TestHistory_SamplesReturnsCopy(t *testing.T) {
	h := NewHistory(WindowCapacity)
	h.Append(sampleAt(1))

	out := h.Samples()
	out[0].CPULoad = 999

	if got, _ := h.Latest(); got.CPULoad == 999 {
		t.Error("mutating the returned slice changed the window")
	}
}

func TestMetric_SeriesAndLabels(t *testing.T) {
	h := NewHistory(WindowCapacity)
	h.Append(Sample{CPULoad: 10, MemoryUsage: 20, Temperature: 30, NetworkLatency: 40})

	cases := []struct {
		metric Metric
		want   float64
	}{
		{MetricCPU, 10},
		{MetricMemory, 20},
		{MetricTemperature, 30},
		{MetricLatency, 40},
	}
	for _, tc := range cases {
		series := h.Series(tc.metric)
		if len(series) != 1 || series[0] != tc.want {
			t.Errorf("%s: expected [%v], got %v", tc.metric.Label(), tc.want, series)
		}
	}
}
