package pipeline

import "github.com/stockwire/stockwire"

// Dedupe removes near-duplicate records by title fingerprint, keeping
// the first occurrence in input order. The input order is the run's
// single deterministic order (fixed source order, candidate order within
// each source), so repeated runs over identical inputs produce identical
// output.
func Dedupe(records []stockwire.Record) []stockwire.Record {
	seen := make(map[string]bool, len(records))
	unique := make([]stockwire.Record, 0, len(records))

	for _, r := range records {
		fp := stockwire.Fingerprint(r.Title)
		if seen[fp] {
			continue
		}
		seen[fp] = true
		unique = append(unique, r)
	}

	return unique
}
