package netstate

import (
	"testing"

	"orbitdeck/internal/console"
)

func TestEffective_Combination(t *testing.T) {
	cases := []struct {
		name     string
		linkUp   bool
		override bool
		want     Status
	}{
		{"link up, no override", true, false, StatusOnline},
		{"link up, override on", true, true, StatusOffline},
		{"link down, no override", false, false, StatusOffline},
		{"link down, override on", false, true, StatusOffline},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := NewTracker(tc.linkUp)
			if tc.override {
				tr.SetOverride(true)
			}
			if got := tr.Effective(); got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestSetOverride_OnAlwaysForcesOffline(t *testing.T) {
	for _, linkUp := range []bool{true, false} {
		tr := NewTracker(linkUp)

		transition := tr.SetOverride(true)
		if transition == nil {
			t.Fatalf("linkUp=%v: expected a transition", linkUp)
		}
		if transition.Status != StatusOffline || transition.Level != console.LevelWarning {
			t.Errorf("linkUp=%v: expected offline warning, got %+v", linkUp, transition)
		}
		if tr.Effective() != StatusOffline {
			t.Errorf("linkUp=%v: expected effective OFFLINE", linkUp)
		}
	}
}

func TestSetOverride_OffWithLinkDownStaysOffline(t *testing.T) {
	tr := NewTracker(false)
	tr.SetOverride(true)

	transition := tr.SetOverride(false)
	if transition == nil {
		t.Fatal("expected a transition")
	}
	if transition.Level != console.LevelError {
		t.Errorf("expected error-level transition, got %s", transition.Level)
	}
	if tr.Effective() != StatusOffline {
		t.Error("expected effective state to remain OFFLINE")
	}
}

func TestSetOverride_OffWithLinkUpRestoresOnline(t *testing.T) {
	tr := NewTracker(true)
	tr.SetOverride(true)

	transition := tr.SetOverride(false)
	if transition == nil || transition.Status != StatusOnline || transition.Level != console.LevelSuccess {
		t.Errorf("expected online success transition, got %+v", transition)
	}
}

func TestSetLink_EdgeTriggered(t *testing.T) {
	tr := NewTracker(true)

	if transition := tr.SetLink(false); transition == nil || transition.Level != console.LevelWarning {
		t.Errorf("expected warning on link loss, got %+v", transition)
	}
	// Repeating the same observation produces nothing.
	if transition := tr.SetLink(false); transition != nil {
		t.Errorf("expected nil transition on repeated link-down, got %+v", transition)
	}

	if transition := tr.SetLink(true); transition == nil || transition.Level != console.LevelSuccess {
		t.Errorf("expected success on link recovery, got %+v", transition)
	}
	if transition := tr.SetLink(true); transition != nil {
		t.Errorf("expected nil transition on repeated link-up, got %+v", transition)
	}
}

func TestSetLink_UpWhileOverrideActiveStaysSilent(t *testing.T) {
	tr := NewTracker(false)
	tr.SetOverride(true)

	// Effective state is OFFLINE either way, so link recovery must not
	// announce ONLINE while the override holds.
	if transition := tr.SetLink(true); transition != nil {
		t.Errorf("expected nil transition, got %+v", transition)
	}
	if tr.Effective() != StatusOffline {
		t.Error("expected effective OFFLINE while override active")
	}

	// Dropping the override now restores ONLINE since the link recovered.
	transition := tr.SetOverride(false)
	if transition == nil || transition.Status != StatusOnline {
		t.Errorf("expected online transition, got %+v", transition)
	}
}
