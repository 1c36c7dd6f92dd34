package extend

import (
	"testing"

	"github.com/strtandem/strx/kmer"
)

func mustEncode(t *testing.T, s string, k int) uint64 {
	t.Helper()
	w, err := kmer.FromString([]byte(s), k)
	if err != nil {
		t.Fatalf("FromString(%q): %v", s, err)
	}
	return w
}

// buildChainTable inserts the overlapping k-mers of a single contiguous
// sequence, the simplest possible unambiguous walk.
func buildChainTable(t *testing.T, seq string, k int) *kmer.Table {
	t.Helper()
	table := kmer.NewTable(k, 16)
	kmer.EachKmer([]byte(seq), k, func(w uint64, pos int) error {
		table.Incr(kmer.Canonical(w, k))
		table.Incr(kmer.Canonical(w, k))
		return nil
	})
	return table
}

func TestWalkBackwardReconstructsConsumedPrefix(t *testing.T) {
	k := 5
	seq := "GGCATTACCGGTTAAGGCCTTA"
	table := buildChainTable(t, seq, k)

	zstart := 12 // arbitrary split point within seq
	visited, _, err := WalkBackward(table, []byte(seq), zstart, k, 1024)
	if err != nil {
		t.Fatal(err)
	}
	flank := LeftFlank(visited, k)
	// Whatever the walk's halt reason, everything it did consume must be
	// an exact, contiguous match of the source sequence immediately
	// preceding zstart.
	want := seq[zstart-len(flank) : zstart]
	if string(flank) != want {
		t.Errorf("LeftFlank = %q, want %q", flank, want)
	}
}

func TestWalkForwardReconstructsConsumedSuffix(t *testing.T) {
	k := 5
	seq := "GGCATTACCGGTTAAGGCCTTA"
	table := buildChainTable(t, seq, k)

	end := 8
	visited, _, err := WalkForward(table, []byte(seq), end, k, 1024)
	if err != nil {
		t.Fatal(err)
	}
	flank := RightFlank(visited, k)
	want := seq[end : end+len(flank)]
	if string(flank) != want {
		t.Errorf("RightFlank = %q, want %q", flank, want)
	}
}

func TestWalkHaltsOnAmbiguousBranch(t *testing.T) {
	k := 3
	table := kmer.NewTable(k, 8)
	// Exactly two of "AAA"'s four backward candidates ("CAA","GAA") are
	// backed by the table; "AAA" (self) and "TAA" are not, and neither
	// candidate has further support, so the branch cannot reconverge.
	table.Incr(kmer.Canonical(mustEncode(t, "CAA", k), k))
	table.Incr(kmer.Canonical(mustEncode(t, "GAA", k), k))

	visited, reason, err := WalkBackward(table, []byte("AAA"), 3, k, 1024)
	if err != nil {
		t.Fatal(err)
	}
	if reason != HaltAmbiguousBranch {
		t.Errorf("reason = %v, want HaltAmbiguousBranch", reason)
	}
	if len(visited) != 1 {
		t.Errorf("len(visited) = %d, want 1 (no step taken)", len(visited))
	}
}

func TestWalkHaltsOnCap(t *testing.T) {
	k := 5
	table := kmer.NewTable(k, 8)

	seed := mustEncode(t, "AAAAA", k)
	chain := []uint64{seed}
	curr := seed
	for _, base := range []uint64{1, 3} {
		cands := kmer.RvKmers(curr, k)
		next := cands[base]
		table.Incr(kmer.Canonical(next, k))
		chain = append(chain, next)
		curr = next
	}

	visited, reason := walk(table, seed, k, 3, kmer.RvKmers)
	if reason != HaltCapReached {
		t.Fatalf("reason = %v, want HaltCapReached", reason)
	}
	if len(visited) != 3 {
		t.Fatalf("len(visited) = %d, want 3", len(visited))
	}
	for i, w := range chain {
		if visited[i] != w {
			t.Errorf("visited[%d] = %d, want %d", i, visited[i], w)
		}
	}
}
