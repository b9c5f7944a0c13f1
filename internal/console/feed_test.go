package console

import (
	"fmt"
	"testing"
	"time"
)

func TestAppend_AssignsIDAndClock(t *testing.T) {
	f := NewFeed(FeedCapacity)
	f.SetClock(func() time.Time {
		return time.Date(2026, 8, 23, 14, 5, 9, 0, time.UTC)
	})

	e := f.Append(LevelInfo, "system", "Console initialized")

	if e.ID == "" {
		t.Error("expected a generated ID")
	}
	if e.Clock() != "14:05:09" {
		t.Errorf("expected clock 14:05:09, got %q", e.Clock())
	}
	if e.Level != LevelInfo || e.Source != "system" {
		t.Errorf("entry fields not preserved: %+v", e)
	}
}

func TestAppend_IDsAreUnique(t *testing.T) {
	f := NewFeed(FeedCapacity)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		e := f.Append(LevelInfo, "test", "line")
		if seen[e.ID] {
			t.Fatalf("duplicate ID %q", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestFeed_CapacityAndFIFOEviction(t *testing.T) {
	f := NewFeed(FeedCapacity)

	for i := 0; i < FeedCapacity; i++ {
		f.Append(LevelInfo, "test", fmt.Sprintf("entry %d", i))
	}
	if f.Len() != FeedCapacity {
		t.Fatalf("expected %d entries, got %d", FeedCapacity, f.Len())
	}

	f.Append(LevelWarning, "test", "entry 50")

	entries := f.Entries()
	if len(entries) != FeedCapacity {
		t.Fatalf("expected %d entries after overflow, got %d", FeedCapacity, len(entries))
	}
	if entries[0].Message != "entry 1" {
		t.Errorf("expected oldest entry dropped, window starts with %q", entries[0].Message)
	}
	// Order of the survivors is preserved.
	for i, e := range entries[:FeedCapacity-1] {
		if e.Message != fmt.Sprintf("entry %d", i+1) {
			t.Fatalf("order broken at index %d: %q", i, e.Message)
		}
	}
	if entries[FeedCapacity-1].Message != "entry 50" {
		t.Errorf("expected newest entry last, got %q", entries[FeedCapacity-1].Message)
	}
}

func TestFeed_Latest(t *testing.T) {
	f := NewFeed(FeedCapacity)
	if _, ok := f.Latest(); ok {
		t.Error("expected no latest entry for empty feed")
	}

	f.Append(LevelInfo, "test", "first")
	f.Append(LevelError, "test", "second")

	latest, ok := f.Latest()
	if !ok || latest.Message != "second" || latest.Level != LevelError {
		t.Errorf("unexpected latest entry: %+v ok=%v", latest, ok)
	}
}
