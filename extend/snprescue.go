package extend

import "github.com/strtandem/strx/kmer"

// checkSNP classifies a 2-way branch point at curr as a confirmed
// substitution heterozygote: each of the two candidate branches must
// walk forward k+1 steps with exactly one unambiguous extension at every
// step, and both branches must converge on the same k-mer. This mirrors
// CheckForSNPBackwards/CheckForSNPForwards, which exist only to label a
// halt for diagnostics — per the walk's halt-classifier contract, a
// confirmed bubble here does not resume the walk.
func checkSNP(table *kmer.Table, curr uint64, k int, gen candidateFn) bool {
	hits := uniqueExtensions(table, curr, k, gen)
	if len(hits) != 2 {
		return false
	}

	end0, ok0 := walkUnambiguous(table, hits[0], k, k+1, gen)
	if !ok0 {
		return false
	}
	end1, ok1 := walkUnambiguous(table, hits[1], k, k+1, gen)
	if !ok1 {
		return false
	}
	return end0 == end1
}

// walkUnambiguous advances from start exactly steps times, requiring a
// single unique extension at every step, and reports the final k-mer and
// whether every step stayed unambiguous.
func walkUnambiguous(table *kmer.Table, start uint64, k, steps int, gen candidateFn) (uint64, bool) {
	curr := start
	for i := 0; i < steps; i++ {
		hits := uniqueExtensions(table, curr, k, gen)
		if len(hits) != 1 {
			return 0, false
		}
		curr = hits[0]
	}
	return curr, true
}
