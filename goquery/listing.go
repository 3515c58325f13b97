package goquery

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/stockwire/stockwire"
)

// Ensure ListingSource implements stockwire.Source at compile time.
var _ stockwire.Source = (*ListingSource)(nil)

// ListingSource discovers article candidates by applying CSS selectors to
// a single listing page. Anchor text becomes the candidate title and the
// anchor href, resolved against the page's base URL, becomes the
// candidate URL.
type ListingSource struct {
	name      string
	pageURL   string
	selectors []string
	fetcher   stockwire.Fetcher
}

// NewListingSource creates a ListingSource. The selectors are tried in
// order and may match anchors directly or containers holding an anchor
// (e.g. a headline div wrapping the link).
func NewListingSource(name, pageURL string, selectors []string, fetcher stockwire.Fetcher) *ListingSource {
	return &ListingSource{
		name:      name,
		pageURL:   pageURL,
		selectors: selectors,
		fetcher:   fetcher,
	}
}

// Name returns the source's label.
func (s *ListingSource) Name() string {
	return s.name
}

// Discover fetches the listing page and enumerates article candidates.
// A candidate with a missing or unusable href is skipped; it never stops
// processing of the remaining candidates. Duplicate URLs within the page
// are collapsed to the first occurrence.
func (s *ListingSource) Discover(ctx context.Context) ([]stockwire.Candidate, error) {
	rawHTML, err := s.fetcher.Fetch(ctx, s.pageURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, stockwire.Errorf(stockwire.EINVALID, "parse listing page %q: %v", s.pageURL, err)
	}

	base, err := url.Parse(s.pageURL)
	if err != nil {
		return nil, stockwire.Errorf(stockwire.EINVALID, "invalid listing URL %q: %v", s.pageURL, err)
	}

	seen := make(map[string]bool)
	var candidates []stockwire.Candidate

	for _, selector := range s.selectors {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			anchor := sel
			if !sel.Is("a") {
				anchor = sel.Find("a").First()
			}

			href, ok := anchor.Attr("href")
			if !ok || href == "" || isNonHTTPLink(href) {
				return
			}

			title := strings.TrimSpace(sel.Text())
			if title == "" {
				title = strings.TrimSpace(anchor.Text())
			}

			resolved := ResolveURL(base, href)
			if resolved == "" || seen[resolved] {
				return
			}
			seen[resolved] = true

			candidates = append(candidates, stockwire.Candidate{
				Title:  title,
				URL:    resolved,
				Source: s.name,
			})
		})
	}

	return candidates, nil
}
