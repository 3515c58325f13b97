// Package http provides HTTP-based implementations of stockwire.Fetcher
// and a Google News sitemap candidate source.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/stockwire/stockwire"
)

// DefaultFetchTimeout is the timeout applied to every outbound request.
// A timeout is treated identically to a fetch failure downstream.
const DefaultFetchTimeout = 15 * time.Second

// DefaultUserAgent is a desktop browser signature. News sites routinely
// serve error pages to unknown agents.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Ensure Fetcher implements stockwire.Fetcher at compile time.
var _ stockwire.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs over plain HTTP. The sources
// this pipeline targets are server-rendered, so no JavaScript execution
// is needed.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (15s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the response body for the given URL. Non-200 statuses
// map to coded errors so callers can tell a blocked scraper (EFORBIDDEN)
// from a transient failure (EUNAVAILABLE).
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", stockwire.Errorf(stockwire.EINVALID, "invalid request for %q: %v", url, err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", stockwire.Errorf(stockwire.EUNAVAILABLE, "fetch %q: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", statusError(resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", stockwire.Errorf(stockwire.EUNAVAILABLE, "read body of %q: %v", url, err)
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

func statusError(status int, url string) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return stockwire.Errorf(stockwire.EFORBIDDEN, "HTTP %d for %q", status, url)
	case status == http.StatusNotFound:
		return stockwire.Errorf(stockwire.ENOTFOUND, "HTTP %d for %q", status, url)
	case status >= 500:
		return stockwire.Errorf(stockwire.EUNAVAILABLE, "HTTP %d for %q", status, url)
	default:
		return stockwire.Errorf(stockwire.EINTERNAL, "HTTP %d for %q", status, url)
	}
}
