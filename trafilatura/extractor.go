// Package trafilatura adapts go-trafilatura as a content extractor.
// It trades the per-outlet selector rules of the goquery extractor for
// a general-purpose readability model, which helps on outlets without
// a configured rule at the cost of occasionally keeping related-links
// text the selector rules would have excluded.
package trafilatura

import (
	"net/url"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/stockwire/stockwire"
)

// Ensure Extractor implements stockwire.Extractor at compile time.
var _ stockwire.Extractor = (*Extractor)(nil)

// Extractor extracts article body text using go-trafilatura.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the main text content of the page, or false when
// trafilatura finds no article body.
func (e *Extractor) Extract(pageURL, rawHTML string) (string, bool) {
	if rawHTML == "" {
		return "", false
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if u, err := url.Parse(pageURL); err == nil && u.Host != "" {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", false
	}

	content := strings.TrimSpace(result.ContentText)
	if content == "" {
		return "", false
	}
	return content, true
}
