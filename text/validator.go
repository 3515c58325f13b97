package text

import (
	"strings"

	"github.com/stockwire/stockwire"
)

// Ensure Validator implements stockwire.Validator at compile time.
var _ stockwire.Validator = (*Validator)(nil)

// MinTitleLen is the minimum character count for an acceptable title.
const MinTitleLen = 10

// DefaultMinContentLen is the default minimum character count for an
// article body. The threshold trades recall of short articles against
// noise; 150 captures brief market updates that 200 would drop.
const DefaultMinContentLen = 150

// errorSignatures mark content that is an error page's text rather than
// an article body. Matching is case-insensitive substring.
var errorSignatures = []string{
	"error fetching",
	"forbidden",
	"not available",
	"too short",
	"content not available",
	"error:",
	"403",
	"404",
	"500",
}

// Validator accepts or rejects (title, content) pairs against
// minimum-length and error-signature rules.
type Validator struct {
	minContentLen int
	signatures    []string
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithMinContentLen overrides the minimum content length.
func WithMinContentLen(n int) ValidatorOption {
	return func(v *Validator) {
		v.minContentLen = n
	}
}

// NewValidator creates a Validator with the default thresholds.
func NewValidator(opts ...ValidatorOption) *Validator {
	v := &Validator{
		minContentLen: DefaultMinContentLen,
		signatures:    errorSignatures,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// MinContentLen returns the configured content length threshold.
func (v *Validator) MinContentLen() int {
	return v.minContentLen
}

// Valid reports whether the pair is acceptable: title at least MinTitleLen
// characters after trimming, content at least MinContentLen characters
// after trimming, and no error signature present in the content.
func (v *Validator) Valid(title, content string) bool {
	if len(strings.TrimSpace(title)) < MinTitleLen {
		return false
	}
	if len(strings.TrimSpace(content)) < v.minContentLen {
		return false
	}

	lower := strings.ToLower(content)
	for _, sig := range v.signatures {
		if strings.Contains(lower, sig) {
			return false
		}
	}
	return true
}
