// Package netstate folds real connectivity and the manual "simulate outage"
// override into one effective online/offline state for the console.
package netstate

import "orbitdeck/internal/console"

// Status is the effective network state shown on the dashboard.
type Status string

const (
	StatusOnline  Status = "online"
	StatusOffline Status = "offline"

	// StatusReconnecting is reserved; no code path produces it.
	StatusReconnecting Status = "reconnecting"
)

// Transition describes a user-visible state change (or refused change) for
// the console feed. Nil transitions mean nothing happened worth reporting.
type Transition struct {
	Status  Status
	Level   console.Level
	Message string
}

// Tracker combines the physical link state with the manual override.
// Effective state is OFFLINE when either the override is on or the link is
// down. It is driven from the single UI event loop and needs no locking.
type Tracker struct {
	linkUp   bool
	override bool
}

// NewTracker returns a tracker seeded with the link state observed at
// startup.
func NewTracker(linkUp bool) *Tracker {
	return &Tracker{linkUp: linkUp}
}

// Effective returns the combined state.
func (t *Tracker) Effective() Status {
	if t.override || !t.linkUp {
		return StatusOffline
	}
	return StatusOnline
}

// Online reports whether the effective state is ONLINE.
func (t *Tracker) Online() bool { return t.Effective() == StatusOnline }

// Override reports whether the simulated outage is active.
func (t *Tracker) Override() bool { return t.override }

// LinkUp reports the last observed physical link state.
func (t *Tracker) LinkUp() bool { return t.linkUp }

// SetLink records a connectivity observation. Transitions are
// edge-triggered: a repeated observation that leaves the effective state
// unchanged returns nil.
func (t *Tracker) SetLink(up bool) *Transition {
	before := t.Effective()
	t.linkUp = up
	after := t.Effective()
	if before == after {
		return nil
	}

	if after == StatusOffline {
		return &Transition{
			Status:  StatusOffline,
			Level:   console.LevelWarning,
			Message: "Network connection lost; live feed paused",
		}
	}
	return &Transition{
		Status:  StatusOnline,
		Level:   console.LevelSuccess,
		Message: "Network connection restored; live feed resumed",
	}
}

// SetOverride flips the manual outage switch. Turning it on always forces
// OFFLINE and reports a warning regardless of the physical link. Turning it
// off restores ONLINE only when the link is up; otherwise the state stays
// OFFLINE and an error is reported.
func (t *Tracker) SetOverride(on bool) *Transition {
	t.override = on

	if on {
		return &Transition{
			Status:  StatusOffline,
			Level:   console.LevelWarning,
			Message: "Simulated outage enabled; live feed paused",
		}
	}

	if !t.linkUp {
		return &Transition{
			Status:  StatusOffline,
			Level:   console.LevelError,
			Message: "Simulated outage disabled, but the physical link is still down",
		}
	}
	return &Transition{
		Status:  StatusOnline,
		Level:   console.LevelSuccess,
		Message: "Simulated outage disabled; back online",
	}
}
