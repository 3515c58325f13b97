// Package finnhub provides a stockwire.Source backed by the Finnhub
// news APIs: general market news filtered by Indian-market keywords,
// plus per-ticker company news for a configurable symbol list.
package finnhub

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/stockwire/stockwire"
)

// DefaultBaseURL is the Finnhub API root.
const DefaultBaseURL = "https://finnhub.io"

// Caps on per-call results, matching what one run can usefully process.
const (
	generalNewsLimit = 50
	companyNewsLimit = 20
)

// Ensure Source implements stockwire.Source at compile time.
var _ stockwire.Source = (*Source)(nil)

// Source discovers article candidates from Finnhub.
type Source struct {
	name    string
	apiKey  string
	baseURL string
	tickers []string
	general bool
	now     func() time.Time
	client  *http.Client
}

// Option configures a Source.
type Option func(*Source)

// WithBaseURL overrides the endpoint root, primarily for tests.
func WithBaseURL(u string) Option {
	return func(s *Source) {
		s.baseURL = u
	}
}

// WithTickers replaces the default Nifty-50 symbol list. An empty list
// disables company news.
func WithTickers(tickers []string) Option {
	return func(s *Source) {
		s.tickers = tickers
	}
}

// WithoutGeneralNews disables the keyword-filtered general news query.
func WithoutGeneralNews() Option {
	return func(s *Source) {
		s.general = false
	}
}

// WithClock overrides the time source used for the company-news date
// range, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Source) {
		s.now = now
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Source) {
		s.client = c
	}
}

// NewSource creates a Finnhub source with the given label and API key.
func NewSource(name, apiKey string, opts ...Option) *Source {
	s := &Source{
		name:    name,
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		tickers: Nifty50Tickers(),
		general: true,
		now:     time.Now,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the source's label.
func (s *Source) Name() string {
	return s.name
}

type newsItem struct {
	Headline string `json:"headline"`
	URL      string `json:"url"`
}

// Discover queries general news and then company news per ticker.
// A failing ticker query does not stop the remaining tickers; an error
// is returned only when nothing at all could be fetched.
func (s *Source) Discover(ctx context.Context) ([]stockwire.Candidate, error) {
	var candidates []stockwire.Candidate
	var lastErr error

	if s.general {
		items, err := s.generalNews(ctx)
		if err != nil {
			lastErr = err
		} else {
			candidates = append(candidates, items...)
		}
	}

	for _, ticker := range s.tickers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		items, err := s.companyNews(ctx, ticker)
		if err != nil {
			lastErr = err
			continue
		}
		candidates = append(candidates, items...)
	}

	if len(candidates) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return candidates, nil
}

// generalNews returns world market news whose headline mentions an
// Indian-market keyword.
func (s *Source) generalNews(ctx context.Context) ([]stockwire.Candidate, error) {
	q := url.Values{}
	q.Set("category", "general")
	q.Set("token", s.apiKey)

	items, err := s.getNews(ctx, "/api/v1/news?"+q.Encode())
	if err != nil {
		return nil, err
	}
	if len(items) > generalNewsLimit {
		items = items[:generalNewsLimit]
	}

	var candidates []stockwire.Candidate
	for _, item := range items {
		if !mentionsIndianMarket(item.Headline) {
			continue
		}
		candidates = append(candidates, s.candidate(item))
	}
	return candidates, nil
}

func (s *Source) companyNews(ctx context.Context, ticker string) ([]stockwire.Candidate, error) {
	year := s.now().Year()
	q := url.Values{}
	q.Set("symbol", ticker)
	q.Set("from", fmt.Sprintf("%d-01-01", year))
	q.Set("to", fmt.Sprintf("%d-12-31", year))
	q.Set("token", s.apiKey)

	items, err := s.getNews(ctx, "/api/v1/company-news?"+q.Encode())
	if err != nil {
		return nil, err
	}
	if len(items) > companyNewsLimit {
		items = items[:companyNewsLimit]
	}

	candidates := make([]stockwire.Candidate, 0, len(items))
	for _, item := range items {
		candidates = append(candidates, s.candidate(item))
	}
	return candidates, nil
}

func (s *Source) getNews(ctx context.Context, path string) ([]newsItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return nil, stockwire.Errorf(stockwire.EINVALID, "finnhub request: %v", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, stockwire.Errorf(stockwire.EUNAVAILABLE, "finnhub fetch: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, stockwire.Errorf(stockwire.EUNAVAILABLE, "finnhub: HTTP %d", resp.StatusCode)
	}

	var items []newsItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, stockwire.Errorf(stockwire.EINVALID, "finnhub decode: %v", err)
	}
	return items, nil
}

func (s *Source) candidate(item newsItem) stockwire.Candidate {
	return stockwire.Candidate{
		Title:  item.Headline,
		URL:    item.URL,
		Source: s.name,
	}
}

func mentionsIndianMarket(headline string) bool {
	lower := strings.ToLower(headline)
	for _, kw := range indianMarketKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
