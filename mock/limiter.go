package mock

import (
	"context"

	"github.com/stockwire/stockwire"
)

var _ stockwire.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of stockwire.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *Limiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
