package domain

import (
	m "mutavec.dev/pkg/mutavec/internal/model"
	"mutavec.dev/pkg/mutavec/pkg"
)

// dedupSet tracks the canonical transmitted-state keys produced within one
// generation call. Two vectors with the same target, method, and parameter
// mapping count as the same test case whatever their bookkeeping says.
//
// A dedupSet lives for exactly one Generate call and is not safe for
// concurrent writers.
type dedupSet struct {
	seen *pkg.Set[string]
}

func newDedupSet() *dedupSet {
	return &dedupSet{seen: pkg.NewSet[string]()}
}

func (d *dedupSet) contains(v m.Vector) bool {
	return d.seen.Contains(v.Key())
}

func (d *dedupSet) add(v m.Vector) {
	d.seen.Add(v.Key())
}
