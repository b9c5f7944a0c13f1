package diagnostics

import (
	"context"
	"time"

	"orbitdeck/internal/auditlog"
	"orbitdeck/internal/telemetry"
)

// Service wraps an Analyzer with the caller-side preconditions and the audit
// trail. It holds no result state; the caller owns the displayed Result.
type Service struct {
	analyzer Analyzer
	audit    auditlog.Repository
	now      func() time.Time
}

// NewService creates a diagnostics service. audit may be nil, in which case
// runs are not recorded.
func NewService(analyzer Analyzer, audit auditlog.Repository) *Service {
	return &Service{analyzer: analyzer, audit: audit, now: time.Now}
}

// Run performs one guarded analysis over the trailing AnalysisWindow samples
// of history. Guards fire before any outbound call: an offline state returns
// ErrOffline and an empty history returns ErrNoTelemetry, neither of which is
// audited. Every run that reaches the analyzer is recorded, success or not.
func (s *Service) Run(ctx context.Context, online bool, history []telemetry.Sample) (*Result, error) {
	if !online {
		return nil, ErrOffline
	}
	if len(history) == 0 {
		return nil, ErrNoTelemetry
	}

	window := history
	if len(window) > AnalysisWindow {
		window = window[len(window)-AnalysisWindow:]
	}

	start := s.now()
	result, err := s.analyzer.Analyze(ctx, window)
	s.record(len(window), result, err, s.now().Sub(start))
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service) record(sampleCount int, result *Result, err error, elapsed time.Duration) {
	if s.audit == nil {
		return
	}

	record := auditlog.RunRecord{
		Model:       s.analyzer.Model(),
		SampleCount: sampleCount,
		DurationMs:  elapsed.Milliseconds(),
	}
	if err != nil {
		record.Outcome = auditlog.OutcomeError
		record.Detail = err.Error()
	} else {
		record.Outcome = auditlog.OutcomeSuccess
		record.Status = string(result.Status)
		record.Summary = result.Summary
	}

	// Audit writes are best-effort; a full disk must not fail the run.
	_ = s.audit.Save(&record)
}
