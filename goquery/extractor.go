// Package goquery provides selector-driven implementations of content
// extraction and listing-page candidate discovery using CSS selectors.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/stockwire/stockwire"
	"golang.org/x/net/html"
)

// Ensure Extractor implements stockwire.Extractor at compile time.
var _ stockwire.Extractor = (*Extractor)(nil)

// nonContentSelector matches markup that never carries article text.
// It is stripped once per document, before any selector attempt.
const nonContentSelector = "script, style, nav, header, footer, aside, form, button"

// DefaultMinParagraphLen is the minimum visible text length for a
// paragraph to participate in paragraph reconstruction.
const DefaultMinParagraphLen = 50

// Rule maps a host-substring pattern to an ordered list of candidate
// content containers. Extending coverage to a new outlet is a data
// change, not a code change.
type Rule struct {
	HostContains string
	Selectors    []string
}

// DefaultRules returns the selector rules for known financial-news hosts.
func DefaultRules() []Rule {
	return []Rule{
		{HostContains: "moneycontrol.com", Selectors: []string{"div.article_content", "div.content_wrapper"}},
		{HostContains: "economictimes.indiatimes.com", Selectors: []string{"div.articleContent", "div.article"}},
		{HostContains: "livemint.com", Selectors: []string{"div.articleBody", "div.content"}},
		{HostContains: "ndtv.com", Selectors: []string{"div.content_text", "div.article"}},
		{HostContains: "reuters.com", Selectors: []string{"div.article-body", "article"}},
		{HostContains: "bloomberg.com", Selectors: []string{"div.body-copy", "article"}},
		{HostContains: "cnbc.com", Selectors: []string{"div.ArticleBody-articleBody", "article"}},
		{HostContains: "ft.com", Selectors: []string{"div.article__content", "article"}},
		{HostContains: "wsj.com", Selectors: []string{"div.article-content", "article"}},
		{HostContains: "business-standard.com", Selectors: []string{"div.article-content", "div.content"}},
	}
}

// DefaultGenericSelectors returns the framework-agnostic content-container
// patterns tried, in priority order, when no domain rule produces content.
func DefaultGenericSelectors() []string {
	return []string{
		"article",
		`div[class*="content"]`,
		`div[class*="article"]`,
		`div[class*="body"]`,
		`div[class*="text"]`,
		`div[class*="story"]`,
		".post-content",
		".entry-content",
		".story-content",
		".article-body",
	}
}

// Extractor extracts article body text from raw HTML using an ordered
// fallback chain: domain-specific selectors, generic selectors, then
// paragraph reconstruction.
type Extractor struct {
	rules           []Rule
	generic         []string
	minParagraphLen int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithRules replaces the domain-specific selector rules.
func WithRules(rules []Rule) Option {
	return func(e *Extractor) {
		e.rules = rules
	}
}

// WithGenericSelectors replaces the generic selector list.
func WithGenericSelectors(selectors []string) Option {
	return func(e *Extractor) {
		e.generic = selectors
	}
}

// WithMinParagraphLen overrides the paragraph reconstruction threshold.
func WithMinParagraphLen(n int) Option {
	return func(e *Extractor) {
		e.minParagraphLen = n
	}
}

// NewExtractor creates an Extractor with the default rule tables.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		rules:           DefaultRules(),
		generic:         DefaultGenericSelectors(),
		minParagraphLen: DefaultMinParagraphLen,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the article body text for the page, or ok=false when no
// content container is found by any strategy. A miss is expected for
// listing and redirect pages and is not an error.
func (e *Extractor) Extract(pageURL, rawHTML string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", false
	}

	doc.Find(nonContentSelector).Remove()

	// Domain-specific rules. Only the first matching rule is consulted;
	// its selectors are tried in order.
	host := hostOf(pageURL)
	for _, rule := range e.rules {
		if !strings.Contains(host, rule.HostContains) {
			continue
		}
		for _, selector := range rule.Selectors {
			if text := selectionText(doc.Find(selector).First()); text != "" {
				return text, true
			}
		}
		break
	}

	// Generic content-container patterns.
	for _, selector := range e.generic {
		if text := selectionText(doc.Find(selector).First()); text != "" {
			return text, true
		}
	}

	// Paragraph reconstruction: synthesize a pseudo-container from all
	// sufficiently long paragraphs, in document order.
	var parts []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		if text := selectionText(sel); len(text) > e.minParagraphLen {
			parts = append(parts, text)
		}
	})
	if len(parts) > 0 {
		return strings.Join(parts, " "), true
	}

	return "", false
}

// hostOf returns the URL's host, falling back to the raw string when the
// URL does not parse. The fallback keeps substring rules working for
// malformed but recognizable URLs.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}

// selectionText renders the visible text of a selection with a single
// space between adjacent text nodes, mirroring how separate inline
// elements read on the page.
func selectionText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		writeNodeText(n, &b)
	}
	return strings.TrimSpace(b.String())
}

func writeNodeText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			b.WriteString(t)
			b.WriteByte(' ')
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeNodeText(c, b)
	}
}
