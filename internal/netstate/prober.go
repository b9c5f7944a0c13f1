package netstate

import (
	"context"
	"net"
	"sync/atomic"
	"time"

	"orbitdeck/internal/retry"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultProbeTarget answers TCP on port 53 from essentially anywhere.
	DefaultProbeTarget = "1.1.1.1:53"

	probeDialTimeout = 2 * time.Second
)

// probeRetry tolerates one transient failure per target before the probe
// counts it as unreachable.
var probeRetry = retry.Config{
	MaxAttempts: 2,
	BaseDelay:   200 * time.Millisecond,
	MaxDelay:    500 * time.Millisecond,
}

// Prober checks physical connectivity by dialing one or more TCP targets.
// The console treats "any target reachable" as link-up.
type Prober struct {
	targets []string
	timeout time.Duration
}

// NewProber returns a prober for the given targets, falling back to
// DefaultProbeTarget when none are provided.
func NewProber(targets ...string) *Prober {
	if len(targets) == 0 {
		targets = []string{DefaultProbeTarget}
	}
	return &Prober{targets: targets, timeout: probeDialTimeout}
}

// Check dials every target concurrently and reports whether any succeeded.
// Each target gets a small retry budget so one dropped packet does not flap
// the link state.
func (p *Prober) Check(ctx context.Context) bool {
	var online atomic.Bool

	g, ctx := errgroup.WithContext(ctx)
	for _, target := range p.targets {
		g.Go(func() error {
			err := retry.Do(ctx, probeRetry, retry.IsRetryable, func() error {
				d := net.Dialer{Timeout: p.timeout}
				conn, err := d.DialContext(ctx, "tcp", target)
				if err != nil {
					return err
				}
				conn.Close()
				return nil
			})
			if err == nil {
				online.Store(true)
			}
			// Unreachable targets are an expected outcome, not a group error.
			return nil
		})
	}
	_ = g.Wait()

	return online.Load()
}
