// Package diagnostics runs the on-demand AI health analysis: it sends the
// trailing telemetry samples to a hosted generative model and parses the
// structured status/summary/recommendation it returns.
package diagnostics

import (
	"context"
	"errors"

	"orbitdeck/internal/telemetry"
)

// AnalysisWindow is the maximum number of trailing samples sent per run.
const AnalysisWindow = 5

// Status is the model's overall health verdict.
type Status string

const (
	StatusOptimal  Status = "optimal"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
)

// Result is the structured output of one analysis run. It is replaced
// wholesale on each successful run; no history is kept in memory.
type Result struct {
	Status         Status `json:"status"`
	Summary        string `json:"summary"`
	Recommendation string `json:"recommendation"`
}

// Sentinel errors for the caller-side guards and the credential precondition.
var (
	// ErrNoCredential means no API key was found; fatal to the analysis
	// path only, never to the rest of the console.
	ErrNoCredential = errors.New("diagnostics: no API key configured")

	// ErrOffline means the effective network state is OFFLINE; the run is
	// refused before any outbound call.
	ErrOffline = errors.New("diagnostics: system is offline")

	// ErrNoTelemetry means there are no samples to analyze yet.
	ErrNoTelemetry = errors.New("diagnostics: no telemetry available")
)

// Analyzer performs one analysis round trip against the hosted model.
type Analyzer interface {
	Analyze(ctx context.Context, samples []telemetry.Sample) (*Result, error)
	Model() string
}
