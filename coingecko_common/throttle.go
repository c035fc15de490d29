package coingecko_common

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Throttle enforces a minimum gap between upstream request starts across the
// whole process. All services share one instance so the gap bounds aggregate
// throughput to the provider, not per-caller throughput.
type Throttle struct {
	limiter *rate.Limiter
}

// NewThrottle creates a throttle with the given minimum gap between request
// starts. A non-positive gap disables throttling.
func NewThrottle(minGap time.Duration) *Throttle {
	if minGap <= 0 {
		return &Throttle{}
	}
	return &Throttle{
		limiter: rate.NewLimiter(rate.Every(minGap), 1),
	}
}

// Wait blocks the caller until the next request slot is available.
// Returns an error only when the context is cancelled first.
func (t *Throttle) Wait(ctx context.Context) error {
	if t == nil || t.limiter == nil {
		return nil
	}
	return t.limiter.Wait(ctx)
}
