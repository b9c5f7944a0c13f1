// Package auditlog persists a local trail of diagnostics runs. The dashboard
// only ever writes to it; `orbitdeck audit` reads it back. Dashboard state
// itself is never persisted.
package auditlog

import "time"

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// RunRecord represents one persisted diagnostics run.
type RunRecord struct {
	ID          int64     `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Model       string    `json:"model"`
	SampleCount int       `json:"sample_count"`
	Outcome     string    `json:"outcome"`
	Status      string    `json:"status,omitempty"`
	Summary     string    `json:"summary,omitempty"`
	Detail      string    `json:"detail,omitempty"`
	DurationMs  int64     `json:"duration_ms"`
}
