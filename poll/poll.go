// Package poll retries an assertion until it passes, for endpoints that
// converge (an async job finishing, a cache being filled).
//
//	res := poll.Eventually(ctx, nethttpbind.Fetcher(nil, http.MethodGet, url),
//		httpassert.IsOk, poll.Interval(200*time.Millisecond), poll.Timeout(10*time.Second))
package poll

import (
	"context"
	"errors"
	"time"

	"github.com/jacoelho/restassert/assertion"
	"github.com/jacoelho/restassert/internal/ratelimit"
)

const (
	DefaultInterval = 100 * time.Millisecond
	DefaultTimeout  = 5 * time.Second
)

type config struct {
	interval time.Duration
	timeout  time.Duration
}

type Option func(*config)

// Interval is the minimum time between two attempts.
func Interval(d time.Duration) Option {
	return func(c *config) { c.interval = d }
}

// Timeout bounds all attempts together. Zero means only the parent
// context bounds them.
func Timeout(d time.Duration) Option {
	return func(c *config) { c.timeout = d }
}

// Eventually fetches and checks until check succeeds, the timeout elapses or
// ctx is done. Input errors and unsupported operations are returned at once
// since retrying cannot fix them. A fetch error counts as a failed attempt.
func Eventually[T any](ctx context.Context, fetch func(context.Context) (T, error), check func(T) assertion.Result, opts ...Option) assertion.Result {
	cfg := config{interval: DefaultInterval, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	limiter := ratelimit.Every(cfg.interval)
	attempts := 0
	last := "no attempt was made"

	for {
		if err := limiter.Wait(ctx); err != nil {
			return giveUp(ctx, attempts, last)
		}

		attempts++
		value, err := fetch(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return giveUp(ctx, attempts, last)
			}
			last = "fetch failed: " + err.Error()
			continue
		}

		res := check(value)
		switch res.Kind() {
		case assertion.KindSuccess, assertion.KindInvalidInput, assertion.KindUnsupported:
			return res
		}
		last = res.Message()
	}
}

func giveUp(ctx context.Context, attempts int, last string) assertion.Result {
	reason := "timed out"
	if errors.Is(ctx.Err(), context.Canceled) {
		reason = "was canceled"
	}
	return assertion.Failuref("Expecting condition to be met eventually but polling %s after %d attempts, last failure: %s", reason, attempts, last)
}
