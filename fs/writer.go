// Package fs persists the collected corpus to the local filesystem.
package fs

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/stockwire/stockwire"
)

// Ensure Writer implements stockwire.CorpusWriter at compile time.
var _ stockwire.CorpusWriter = (*Writer)(nil)

// Writer writes a corpus as a pipe-separated text file. The file is
// written to a temporary path first and renamed into place, so a failed
// run never leaves a truncated corpus behind.
type Writer struct {
	path string
	now  func() time.Time
}

// NewWriter creates a Writer targeting the given file path.
func NewWriter(path string, opts ...WriterOption) *Writer {
	w := &Writer{path: path, now: time.Now}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithClock overrides the timestamp source for the provenance header.
func WithClock(now func() time.Time) WriterOption {
	return func(w *Writer) {
		w.now = now
	}
}

// Write serializes the corpus: three comment header lines, a blank
// line, then one title|content record per line.
func (w *Writer) Write(corpus *stockwire.Corpus) error {
	if corpus == nil {
		return stockwire.Errorf(stockwire.EINVALID, "corpus required")
	}

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return stockwire.Errorf(stockwire.EINTERNAL, "create output directory: %v", err)
	}

	tmpPath := w.path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(FormatCorpus(corpus, w.now())), 0644); err != nil {
		return stockwire.Errorf(stockwire.EINTERNAL, "write corpus: %v", err)
	}
	if err := os.Rename(tmpPath, w.path); err != nil {
		return stockwire.Errorf(stockwire.EINTERNAL, "commit corpus: %v", err)
	}

	return nil
}

// FormatCorpus renders the on-disk representation of a corpus.
func FormatCorpus(corpus *stockwire.Corpus, now time.Time) string {
	var b strings.Builder
	b.WriteString("# Format: Title|FullContent (one article per line, pipe-separated)\n")
	b.WriteString("# Collected ")
	b.WriteString(now.UTC().Format(time.RFC3339))
	b.WriteString(" run ")
	b.WriteString(corpus.RunID)
	b.WriteString("\n")
	b.WriteString("# Collected from ")
	b.WriteString(strconv.Itoa(corpus.Sources))
	b.WriteString(" sources, deduplicated to ")
	b.WriteString(strconv.Itoa(len(corpus.Records)))
	b.WriteString(" unique articles\n\n")

	for _, r := range corpus.Records {
		b.WriteString(scrubField(r.Title))
		b.WriteString("|")
		b.WriteString(scrubField(r.Content))
		b.WriteString("\n")
	}

	return b.String()
}

// scrubField removes the characters that would break the line-oriented
// record format. The normalizer already strips pipes from content, but
// titles arrive from listing pages unnormalized.
func scrubField(s string) string {
	s = strings.ReplaceAll(s, "|", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.Join(strings.Fields(s), " ")
}
