package mock

import "github.com/stockwire/stockwire"

var _ stockwire.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of stockwire.Extractor.
type Extractor struct {
	ExtractFn func(pageURL, rawHTML string) (string, bool)
}

func (e *Extractor) Extract(pageURL, rawHTML string) (string, bool) {
	return e.ExtractFn(pageURL, rawHTML)
}
