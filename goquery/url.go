package goquery

import (
	"net/url"
	"strings"
)

// ResolveURL resolves an href against a base URL. Relative hrefs are
// joined with the base; absolute hrefs pass through unchanged. Returns
// the empty string when the href does not parse.
func ResolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// isNonHTTPLink reports whether the href can never lead to an article
// page (javascript:, mailto:, tel:, or a bare fragment).
func isNonHTTPLink(href string) bool {
	for _, prefix := range []string{"javascript:", "mailto:", "tel:", "#"} {
		if strings.HasPrefix(href, prefix) {
			return true
		}
	}
	return false
}
