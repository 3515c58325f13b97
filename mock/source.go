package mock

import (
	"context"

	"github.com/stockwire/stockwire"
)

var _ stockwire.Source = (*Source)(nil)

// Source is a mock implementation of stockwire.Source.
type Source struct {
	NameFn     func() string
	DiscoverFn func(ctx context.Context) ([]stockwire.Candidate, error)
}

func (s *Source) Name() string {
	return s.NameFn()
}

func (s *Source) Discover(ctx context.Context) ([]stockwire.Candidate, error) {
	return s.DiscoverFn(ctx)
}
