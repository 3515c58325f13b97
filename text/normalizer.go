// Package text provides plain-text normalization and validity filtering
// for extracted article bodies. It is pure and deterministic: given
// identical input the output is byte-identical.
package text

import (
	"regexp"
	"strings"

	"github.com/stockwire/stockwire"
)

// Ensure Normalizer implements stockwire.Normalizer at compile time.
var _ stockwire.Normalizer = (*Normalizer)(nil)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)

	// Everything outside the whitelist {word chars, whitespace,
	// . , ! ? : ; - ( )} is dropped. The pipe character is excluded
	// here, which keeps the corpus record format unambiguous.
	disallowedRe = regexp.MustCompile(`[^\w\s.,!?:;\-()]`)

	spaceBeforePunctRe = regexp.MustCompile(`\s+([.!?;,])`)
	spaceAfterPunctRe  = regexp.MustCompile(`([.!?;,])\s+`)
)

// boilerplateRes strip trailing boilerplate: each pattern removes the
// phrase and everything after it to the end of the text. These phrases
// normally trail the real content, so the removal is suffix-anchored
// rather than a substring excision. A phrase appearing mid-article
// truncates the remainder; that approximation is accepted.
var boilerplateRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bRead more.*$`),
	regexp.MustCompile(`(?i)\bClick here.*$`),
	regexp.MustCompile(`(?i)\bSubscribe.*$`),
	regexp.MustCompile(`(?i)\bShare this.*$`),
	regexp.MustCompile(`(?i)\bFollow us.*$`),
	regexp.MustCompile(`(?i)\bAdvertisement\b`),
	regexp.MustCompile(`(?i)\bAlso read.*$`),
	regexp.MustCompile(`(?i)\bStory continues.*$`),
}

// Normalizer cleans raw extracted text into the stored form.
type Normalizer struct{}

// NewNormalizer creates a new Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize applies the cleaning rules in order: whitespace collapse,
// character whitelist, punctuation spacing, boilerplate stripping, and a
// final collapse and trim. Each rule is idempotent once the text is clean,
// so Normalize(Normalize(x)) == Normalize(x).
func (n *Normalizer) Normalize(raw string) string {
	s := whitespaceRe.ReplaceAllString(raw, " ")
	s = disallowedRe.ReplaceAllString(s, "")
	s = spaceBeforePunctRe.ReplaceAllString(s, "$1")
	s = spaceAfterPunctRe.ReplaceAllString(s, "$1 ")
	for _, re := range boilerplateRes {
		s = re.ReplaceAllString(s, "")
	}
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
