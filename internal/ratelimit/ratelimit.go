// Package ratelimit paces repeated attempts.
package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

type Limiter struct {
	limiter *rate.Limiter
}

// Every allows one attempt immediately, then one per interval. A zero or
// negative interval does not pace at all.
func Every(interval time.Duration) *Limiter {
	if interval <= 0 {
		return &Limiter{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	return &Limiter{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

// Wait blocks until the next attempt is due. It fails early, without
// waiting, when the attempt would land after the context deadline.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// Interval is zero for an unpaced limiter.
func (l *Limiter) Interval() time.Duration {
	limit := l.limiter.Limit()
	if limit == rate.Inf || limit == 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / float64(limit))
}
