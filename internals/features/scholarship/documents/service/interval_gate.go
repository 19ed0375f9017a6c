// file: internals/features/scholarship/documents/service/interval_gate.go
package service

import (
	"context"
	"sync"
	"time"
)

// IntervalGate enforces a fixed minimum spacing between passes. It is the
// rate policy for calls to the AI service, kept separate from the queue
// walking so the delay can be tuned without touching iteration logic.
type IntervalGate struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
}

func NewIntervalGate(interval time.Duration) *IntervalGate {
	return &IntervalGate{interval: interval}
}

// Wait blocks until at least the configured interval has passed since the
// previous successful Wait. The first call passes immediately. Returns the
// context error when cancelled while waiting.
func (g *IntervalGate) Wait(ctx context.Context) error {
	g.mu.Lock()
	now := time.Now()
	var sleep time.Duration
	if !g.last.IsZero() {
		if elapsed := now.Sub(g.last); elapsed < g.interval {
			sleep = g.interval - elapsed
		}
	}
	g.last = now.Add(sleep)
	g.mu.Unlock()

	if sleep <= 0 {
		return nil
	}

	timer := time.NewTimer(sleep)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
