package extend

import "github.com/strtandem/strx/kmer"

// HaltReason classifies why a unique-extension walk stopped, so a
// truncated flank can be told apart from a clean one. WalkBackward and
// WalkForward return it; Pipeline.Run does not report it.
type HaltReason int

const (
	// HaltNoExtension means none of the 4 candidate bases at this
	// position are backed by the k-mer table: the walk ran off the edge
	// of sequenced coverage.
	HaltNoExtension HaltReason = iota
	// HaltAmbiguousBranch means 2 or more candidates are backed by the
	// table and the branch could not be resolved as a clean substitution
	// bubble: a repeat junction or an unphased het indel.
	HaltAmbiguousBranch
	// HaltSNPConfirmed means exactly 2 candidates are backed by the
	// table and both branches reconverge onto the same k-mer after
	// k+1 unambiguous steps — a confirmed substitution heterozygote.
	// Per the walk's halt-classifier contract (see snprescue.go), this
	// still stops the walk; it only changes how the halt is reported.
	HaltSNPConfirmed
	// HaltAlreadySeen means the next candidate (or its reverse
	// complement) was already visited earlier in this walk: a cycle,
	// most often a short tandem repeat in the flank itself.
	HaltAlreadySeen
	// HaltCapReached means the walk reached its configured flank-length
	// cap before any of the other conditions triggered.
	HaltCapReached
)

// candidateFn produces the 4 raw, directionally-oriented candidate
// k-mers that could follow curr in a walk direction: kmer.RvKmers for a
// backward (leftward) walk, kmer.FwKmers for a forward (rightward) one.
type candidateFn func(curr uint64, k int) [4]uint64

// uniqueExtensions returns the raw candidates (in curr's own orientation)
// that the table backs, by canonicalizing each of candidates(curr,k) and
// testing table membership. The original implementation tests both
// RvKmers(curr) and FwKmers(ReverseComplement(curr)) directly against a
// canonical-keyed table without an explicit canonicalize step; since
// FwKmers(rev)[i] == ReverseComplement(RvKmers(curr)[complement(i)]) for
// every i, that dual raw lookup is algebraically identical to
// canonicalizing each of the 4 same-direction candidates once and
// checking that single form — which is what this does.
func uniqueExtensions(table *kmer.Table, curr uint64, k int, gen candidateFn) (hits []uint64) {
	cands := gen(curr, k)
	for _, c := range cands {
		if _, ok := table.Get(kmer.Canonical(c, k)); ok {
			hits = append(hits, c)
		}
	}
	return hits
}

// walk runs the unique-extension rule starting from seed (already
// appended as the first visited k-mer) until it halts, using gen to
// generate each step's 4 directional candidates. It returns every
// visited k-mer in traversal order (seed first) and why it stopped.
func walk(table *kmer.Table, seed uint64, k int, flankChunk int, gen candidateFn) ([]uint64, HaltReason) {
	visited := make([]uint64, 1, flankChunk)
	visited[0] = seed
	curr := seed

	for len(visited) < flankChunk {
		hits := uniqueExtensions(table, curr, k, gen)
		switch len(hits) {
		case 0:
			return visited, HaltNoExtension
		case 1:
			ext := hits[0]
			rc := kmer.ReverseComplement(ext, k)
			if alreadyVisited(visited, ext, rc) {
				return visited, HaltAlreadySeen
			}
			visited = append(visited, ext)
			curr = ext
		case 2:
			if checkSNP(table, curr, k, gen) {
				return visited, HaltSNPConfirmed
			}
			return visited, HaltAmbiguousBranch
		default:
			return visited, HaltAmbiguousBranch
		}
	}
	return visited, HaltCapReached
}

func alreadyVisited(visited []uint64, ext, rc uint64) bool {
	for _, v := range visited {
		if v == ext || v == rc {
			return true
		}
	}
	return false
}

// WalkBackward extends leftward from the k bases immediately preceding
// zstart in bases, matching ExtendBackward.
func WalkBackward(table *kmer.Table, bases []byte, zstart, k, flankChunk int) ([]uint64, HaltReason, error) {
	seed, err := kmer.FromString(bases[zstart-k:zstart], k)
	if err != nil {
		return nil, 0, err
	}
	visited, reason := walk(table, seed, k, flankChunk, kmer.RvKmers)
	return visited, reason, nil
}

// WalkForward extends rightward from the k bases immediately following
// end in bases, matching ExtendForward.
func WalkForward(table *kmer.Table, bases []byte, end, k, flankChunk int) ([]uint64, HaltReason, error) {
	seed, err := kmer.FromString(bases[end:end+k], k)
	if err != nil {
		return nil, 0, err
	}
	visited, reason := walk(table, seed, k, flankChunk, kmer.FwKmers)
	return visited, reason, nil
}

// LeftFlank reassembles the left-flank sequence from a backward walk's
// visited k-mers: each k-mer after the seed prepended exactly one new
// base, so the flank is those new bases read outermost-first followed by
// the full seed k-mer.
func LeftFlank(visited []uint64, k int) []byte {
	flank := make([]byte, 0, k+len(visited)-1)
	for i := len(visited) - 1; i >= 1; i-- {
		s := kmer.ToString(visited[i], k)
		flank = append(flank, s[0])
	}
	flank = append(flank, kmer.ToString(visited[0], k)...)
	return flank
}

// RightFlank reassembles the right-flank sequence from a forward walk's
// visited k-mers: each step's first base is the next flank position
// (the window merely slides right by one base per step), followed by the
// remaining k-1 bases of the final visited k-mer.
func RightFlank(visited []uint64, k int) []byte {
	flank := make([]byte, 0, k+len(visited)-1)
	for _, w := range visited {
		s := kmer.ToString(w, k)
		flank = append(flank, s[0])
	}
	last := kmer.ToString(visited[len(visited)-1], k)
	flank = append(flank, last[1:]...)
	return flank
}
