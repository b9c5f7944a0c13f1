package auditlog

import (
	"path/filepath"
	"testing"
	"time"
)

func tempRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orbitdeck.db")
	r, err := OpenAt(path)
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestSave_AssignsIDAndTimestamp(t *testing.T) {
	r := tempRepo(t)

	record := &RunRecord{
		Model:       "gemini-2.0-flash",
		SampleCount: 5,
		Outcome:     OutcomeSuccess,
		Status:      "optimal",
		DurationMs:  840,
	}

	if err := r.Save(record); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if record.ID == 0 {
		t.Error("expected ID to be assigned")
	}
	if record.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestList_NewestFirst(t *testing.T) {
	r := tempRepo(t)

	for i := range 3 {
		record := &RunRecord{
			Model:     "gemini-2.0-flash",
			Outcome:   OutcomeSuccess,
			Timestamp: time.Now().UTC().Add(time.Duration(i) * time.Second),
		}
		if err := r.Save(record); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	records, err := r.List(2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Timestamp.Before(records[1].Timestamp) {
		t.Error("expected records sorted by timestamp descending")
	}
}

func TestSave_PreservesFailureDetail(t *testing.T) {
	r := tempRepo(t)

	record := &RunRecord{
		Model:   "gemini-2.0-flash",
		Outcome: OutcomeError,
		Detail:  "gemini: empty response",
	}
	if err := r.Save(record); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	records, err := r.List(1)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if records[0].Outcome != OutcomeError || records[0].Detail != "gemini: empty response" {
		t.Errorf("unexpected record: %+v", records[0])
	}
}

func TestPrune(t *testing.T) {
	r := tempRepo(t)

	old := &RunRecord{
		Outcome:   OutcomeSuccess,
		Timestamp: time.Now().UTC().Add(-48 * time.Hour),
	}
	recent := &RunRecord{
		Outcome:   OutcomeSuccess,
		Timestamp: time.Now().UTC(),
	}
	for _, record := range []*RunRecord{old, recent} {
		if err := r.Save(record); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	removed, err := r.Prune(24 * time.Hour)
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("expected 1 record removed, got %d", removed)
	}

	records, err := r.List(10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected 1 record remaining, got %d", len(records))
	}
}
