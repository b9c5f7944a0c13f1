// Package console implements the append-only console feed shown at the
// bottom of the dashboard. Every component writes human-readable status
// lines into one shared Feed; rendering (color, truncation) is the TUI's
// concern.
package console

import (
	"time"

	"github.com/google/uuid"
)

// FeedCapacity is the number of entries a Feed retains.
const FeedCapacity = 50

// Level classifies an entry for display.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
	LevelSuccess Level = "success"
)

// Entry is a single console line. Entries are immutable once appended.
type Entry struct {
	ID        string
	Timestamp time.Time
	Level     Level
	Message   string
	Source    string
}

// Clock returns the entry's wall-clock stamp as 24-hour HH:MM:SS.
func (e Entry) Clock() string {
	return e.Timestamp.Format("15:04:05")
}

// Feed is a capacity-bounded, oldest-first-evicting sequence of entries.
// Appends are synchronous and ordered; there is no deduplication and no
// write-time level filtering.
type Feed struct {
	entries  []Entry
	capacity int
	now      func() time.Time
}

// NewFeed returns an empty feed holding at most capacity entries.
// A capacity <= 0 falls back to FeedCapacity.
func NewFeed(capacity int) *Feed {
	if capacity <= 0 {
		capacity = FeedCapacity
	}
	return &Feed{capacity: capacity, now: time.Now}
}

// SetClock overrides the feed's time source. Intended for testing.
func (f *Feed) SetClock(now func() time.Time) { f.now = now }

// Append adds an entry with a generated ID and the current wall-clock time,
// evicting the oldest entry past capacity. The stored entry is returned.
func (f *Feed) Append(level Level, source, message string) Entry {
	e := Entry{
		ID:        uuid.NewString(),
		Timestamp: f.now(),
		Level:     level,
		Message:   message,
		Source:    source,
	}
	f.entries = append(f.entries, e)
	if len(f.entries) > f.capacity {
		f.entries = f.entries[1:]
	}
	return e
}

// Len returns the number of retained entries.
func (f *Feed) Len() int { return len(f.entries) }

// Entries returns a copy of the retained entries, oldest first.
func (f *Feed) Entries() []Entry {
	out := make([]Entry, len(f.entries))
	copy(out, f.entries)
	return out
}

// Latest returns the most recent entry, or false when the feed is empty.
func (f *Feed) Latest() (Entry, bool) {
	if len(f.entries) == 0 {
		return Entry{}, false
	}
	return f.entries[len(f.entries)-1], true
}
