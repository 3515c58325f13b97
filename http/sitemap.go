package http

import (
	"context"

	"github.com/beevik/etree"
	"github.com/stockwire/stockwire"
)

// Ensure SitemapSource implements stockwire.Source at compile time.
var _ stockwire.Source = (*SitemapSource)(nil)

// SitemapSource discovers article candidates from a Google News sitemap.
// Several Indian outlets publish these for their latest stories, which
// makes them a more stable discovery mechanism than listing-page markup.
type SitemapSource struct {
	name       string
	sitemapURL string
	fetcher    stockwire.Fetcher
	limit      int
}

// NewSitemapSource creates a SitemapSource. A limit of 0 means no cap on
// the number of candidates.
func NewSitemapSource(name, sitemapURL string, limit int, fetcher stockwire.Fetcher) *SitemapSource {
	return &SitemapSource{
		name:       name,
		sitemapURL: sitemapURL,
		fetcher:    fetcher,
		limit:      limit,
	}
}

// Name returns the source's label.
func (s *SitemapSource) Name() string {
	return s.name
}

// Discover fetches and parses the news sitemap. Each <url> entry needs a
// <loc>; the title comes from the nested <news:news><news:title> element
// when present. Entries without a title still become candidates since the
// article page may carry a usable headline for them later, but entries
// without a location are skipped.
func (s *SitemapSource) Discover(ctx context.Context) ([]stockwire.Candidate, error) {
	raw, err := s.fetcher.Fetch(ctx, s.sitemapURL)
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(raw); err != nil {
		return nil, stockwire.Errorf(stockwire.EINVALID, "parse sitemap %q: %v", s.sitemapURL, err)
	}

	root := doc.Root()
	if root == nil || root.Tag != "urlset" {
		return nil, stockwire.Errorf(stockwire.EINVALID, "sitemap %q has no urlset root", s.sitemapURL)
	}

	var candidates []stockwire.Candidate
	for _, entry := range root.SelectElements("url") {
		if s.limit > 0 && len(candidates) >= s.limit {
			break
		}

		loc := entry.SelectElement("loc")
		if loc == nil {
			continue
		}
		link := loc.Text()
		if link == "" {
			continue
		}

		var title string
		if news := entry.SelectElement("news:news"); news != nil {
			if t := news.SelectElement("news:title"); t != nil {
				title = t.Text()
			}
		}

		candidates = append(candidates, stockwire.Candidate{
			Title:  title,
			URL:    link,
			Source: s.name,
		})
	}

	return candidates, nil
}
