package mock

import "github.com/stockwire/stockwire"

var _ stockwire.Normalizer = (*Normalizer)(nil)

// Normalizer is a mock implementation of stockwire.Normalizer.
type Normalizer struct {
	NormalizeFn func(raw string) string
}

func (n *Normalizer) Normalize(raw string) string {
	return n.NormalizeFn(raw)
}
