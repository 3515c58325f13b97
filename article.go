package stockwire

import (
	"context"
	"strings"
)

// FingerprintTokens is the number of leading title tokens used for
// cross-source deduplication. The prefix is intentionally coarse: it
// catches the same wire-service story republished with near-identical
// headlines across outlets, not paraphrased duplicates.
const FingerprintTokens = 8

// Candidate is a (title, URL) pair discovered from a source, not yet
// validated as a usable article.
type Candidate struct {
	Title  string
	URL    string
	Source string
}

// Record is a fully extracted, normalized and validated news article.
// Records are immutable once created.
type Record struct {
	Title       string
	Content     string
	Source      string
	ContentHash uint64
}

// Validate returns an error if the record violates its invariants.
// The minimum content length is the caller's configured threshold.
func (r *Record) Validate(minContentLen int) error {
	if strings.TrimSpace(r.Title) == "" {
		return Errorf(EINVALID, "record title required")
	}
	if len(r.Content) < minContentLen {
		return Errorf(EINVALID, "record content under %d characters", minContentLen)
	}
	return nil
}

// Fingerprint derives the deduplication key for a title: lowercase,
// first FingerprintTokens whitespace-delimited tokens, concatenated
// without separators. Collisions intentionally merge near-duplicate
// headlines from different outlets.
func Fingerprint(title string) string {
	tokens := strings.Fields(strings.ToLower(title))
	if len(tokens) > FingerprintTokens {
		tokens = tokens[:FingerprintTokens]
	}
	return strings.Join(tokens, "")
}

// Corpus is the final deduplicated record sequence for one run.
// It is append-only during the run and immutable after write.
type Corpus struct {
	// RunID identifies the run in the corpus provenance comment and logs.
	RunID string

	// Sources is the number of sources the run attempted.
	Sources int

	// Collected is the number of records accumulated before deduplication.
	Collected int

	// Records holds the unique records in first-seen order.
	Records []Record
}

// SourceReport summarizes one source's contribution to a run.
type SourceReport struct {
	Name       string
	Candidates int
	Accepted   int
	Err        error
}

// Source discovers article candidates from one external provider
// (a news API, a listing page, or a news sitemap).
type Source interface {
	// Name returns the source's label, attached to every candidate.
	Name() string

	// Discover enumerates article candidates. A source-level failure
	// (listing page unreachable, API non-200) returns an error and the
	// source contributes zero records for the run.
	Discover(ctx context.Context) ([]Candidate, error)
}

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch returns the response body for the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases client resources.
	Close() error
}

// Extractor extracts the main article text from raw HTML.
type Extractor interface {
	// Extract returns the article body text, or ok=false when the page
	// has no extractable body. An extraction miss is expected (listing
	// and redirect pages), not an error.
	Extract(pageURL, rawHTML string) (content string, ok bool)
}

// Normalizer cleans extracted text into the stored form.
type Normalizer interface {
	// Normalize collapses whitespace, strips non-whitelisted characters
	// and boilerplate. It is idempotent and deterministic.
	Normalize(raw string) string
}

// Validator accepts or rejects a (title, content) pair.
type Validator interface {
	// Valid reports whether the pair meets minimum-length rules and is
	// free of error-page signatures.
	Valid(title, content string) bool

	// MinContentLen returns the configured content length threshold.
	MinContentLen() int
}

// Limiter throttles outbound requests. The domain parameter allows
// per-host policies; implementations may ignore it.
type Limiter interface {
	// Wait blocks until the next request to the domain is allowed.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

// CorpusWriter serializes a corpus to the persisted format.
type CorpusWriter interface {
	Write(corpus *Corpus) error
}
