// Package bloom provides a probabilistic seen-set for candidate URLs.
// Listing pages repeat the same story under several selectors, and one
// skipped fetch per false positive is an acceptable trade against
// holding every URL of a large run in memory.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// SeenSet tracks which candidate URLs have already been dispatched.
type SeenSet struct {
	f *bloom.BloomFilter
}

// NewSeenSet creates a SeenSet sized for n expected URLs with the given
// false positive rate.
func NewSeenSet(n uint, fpRate float64) *SeenSet {
	return &SeenSet{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen marks the URL and reports whether it had already been marked.
// False positives are possible; false negatives are not.
func (s *SeenSet) Seen(url string) bool {
	return s.f.TestAndAddString(url)
}

// EstimatedCount returns the approximate number of URLs marked so far.
func (s *SeenSet) EstimatedCount() uint {
	return uint(s.f.ApproximatedSize())
}
