package mock

import "github.com/stockwire/stockwire"

var _ stockwire.CorpusWriter = (*CorpusWriter)(nil)

// CorpusWriter is a mock implementation of stockwire.CorpusWriter.
type CorpusWriter struct {
	WriteFn func(corpus *stockwire.Corpus) error
}

func (w *CorpusWriter) Write(corpus *stockwire.Corpus) error {
	return w.WriteFn(corpus)
}
