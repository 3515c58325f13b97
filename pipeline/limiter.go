package pipeline

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/stockwire/stockwire"
	"golang.org/x/time/rate"
)

// Default politeness window for article fetches. The delay is drawn
// uniformly per request, not per source, to avoid a recognizable
// request cadence.
const (
	DefaultMinDelay = 500 * time.Millisecond
	DefaultMaxDelay = 2 * time.Second
)

var _ stockwire.Limiter = (*JitterLimiter)(nil)

// JitterLimiter blocks each request for a random duration drawn
// uniformly from [min, max]. It ignores the domain parameter.
type JitterLimiter struct {
	min, max time.Duration
}

// NewJitterLimiter creates a JitterLimiter for the given window.
// A max below min is raised to min.
func NewJitterLimiter(min, max time.Duration) *JitterLimiter {
	if max < min {
		max = min
	}
	return &JitterLimiter{min: min, max: max}
}

// Wait sleeps for the drawn delay or until the context is canceled.
func (l *JitterLimiter) Wait(ctx context.Context, domain string) error {
	d := l.min
	if l.max > l.min {
		d += rand.N(l.max - l.min)
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

var _ stockwire.Limiter = (*DomainLimiter)(nil)

// DomainLimiter provides per-domain rate limiting using token buckets.
// It creates a separate limiter for each domain, so concurrent workers
// can hit different outlets freely while each single host sees at most
// rps requests per second.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a DomainLimiter with the specified requests
// per second limit. Each domain gets a burst of 1 (no bursting allowed).
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}

var _ stockwire.Limiter = (Chain)(nil)

// Chain applies multiple limiters in order before each request.
type Chain []stockwire.Limiter

// Wait blocks on every limiter in the chain.
func (c Chain) Wait(ctx context.Context, domain string) error {
	for _, l := range c {
		if err := l.Wait(ctx, domain); err != nil {
			return err
		}
	}
	return nil
}
