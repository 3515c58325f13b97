// Package newsapi provides a stockwire.Source backed by the NewsAPI
// /v2/everything endpoint.
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/stockwire/stockwire"
)

// DefaultBaseURL is the NewsAPI endpoint root.
const DefaultBaseURL = "https://newsapi.org"

// DefaultPageSize is the number of results requested per query.
const DefaultPageSize = 50

// DefaultQueries cover Indian equities, macro and large-cap coverage.
// Broad queries overlap deliberately; the downstream deduplicator merges
// the same story surfaced by multiple queries.
func DefaultQueries() []string {
	return []string{
		"indian stocks OR nifty OR sensex OR stock market india",
		"india economy OR rbi OR rupee OR mumbai stock exchange",
		"adani OR tata OR reliance OR infosys OR wipro",
		"emerging markets india OR asian markets OR bse OR nse",
	}
}

// Ensure Source implements stockwire.Source at compile time.
var _ stockwire.Source = (*Source)(nil)

// Source discovers article candidates by querying NewsAPI. Each result
// item maps to a candidate directly; no HTML discovery step is needed.
type Source struct {
	name     string
	apiKey   string
	baseURL  string
	queries  []string
	pageSize int
	client   *http.Client
}

// Option configures a Source.
type Option func(*Source)

// WithBaseURL overrides the endpoint root, primarily for tests.
func WithBaseURL(u string) Option {
	return func(s *Source) {
		s.baseURL = u
	}
}

// WithQueries replaces the default query list.
func WithQueries(queries []string) Option {
	return func(s *Source) {
		s.queries = queries
	}
}

// WithPageSize overrides the per-query result count.
func WithPageSize(n int) Option {
	return func(s *Source) {
		s.pageSize = n
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Source) {
		s.client = c
	}
}

// NewSource creates a NewsAPI source with the given label and API key.
func NewSource(name, apiKey string, opts ...Option) *Source {
	s := &Source{
		name:     name,
		apiKey:   apiKey,
		baseURL:  DefaultBaseURL,
		queries:  DefaultQueries(),
		pageSize: DefaultPageSize,
		client:   &http.Client{Timeout: 15 * time.Second},
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

type everythingResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Title string `json:"title"`
		URL   string `json:"url"`
	} `json:"articles"`
}

// Discover runs every configured query and maps the result items to
// candidates. A single failing query does not abort the remaining
// queries; an error is returned only when every query failed and no
// candidates were found.
func (s *Source) Discover(ctx context.Context) ([]stockwire.Candidate, error) {
	var candidates []stockwire.Candidate
	var lastErr error

	for _, query := range s.queries {
		items, err := s.query(ctx, query)
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

func (s *Source) query(ctx context.Context, query string) ([]stockwire.Candidate, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("language", "en")
	q.Set("sortBy", "publishedAt")
	q.Set("pageSize", fmt.Sprintf("%d", s.pageSize))
	q.Set("apiKey", s.apiKey)

	endpoint := s.baseURL + "/v2/everything?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, stockwire.Errorf(stockwire.EINVALID, "newsapi request: %v", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, stockwire.Errorf(stockwire.EUNAVAILABLE, "newsapi query %q: %v", query, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, stockwire.Errorf(stockwire.EUNAVAILABLE, "newsapi query %q: HTTP %d", query, resp.StatusCode)
	}

	var body everythingResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, stockwire.Errorf(stockwire.EINVALID, "newsapi query %q: decode: %v", query, err)
	}

	candidates := make([]stockwire.Candidate, 0, len(body.Articles))
	for _, a := range body.Articles {
		if a.URL == "" {
			continue
		}
		candidates = append(candidates, stockwire.Candidate{
			Title:  a.Title,
			URL:    a.URL,
			Source: s.name,
		})
	}
	return candidates, nil
}
