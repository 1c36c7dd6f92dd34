package mergestr

import "testing"

func TestNewBlockSeedsFromRead(t *testing.T) {
	b := NewBlock([]byte("ACGTCAGCAGCAGACGT"), []byte("IIIIIIIIIIIIIIIII"), 4, 13, 3)
	if b.Support != 1 {
		t.Errorf("got support %d, want 1", b.Support)
	}
	if b.Copies[0] != 3 {
		t.Errorf("got copies[0]=%d, want 3", b.Copies[0])
	}
}

func TestBlockAdmitCopiesDedup(t *testing.T) {
	b := NewBlock([]byte("ACGT"), []byte("IIII"), 0, 4, 5)
	b.admitCopies(5)
	b.admitCopies(6)
	b.admitCopies(5)
	b.admitCopies(7)
	if b.Copies != [3]int{5, 6, 7} {
		t.Errorf("got %v, want [5 6 7]", b.Copies)
	}
}

func TestBlockIsBiallelic(t *testing.T) {
	b := NewBlock([]byte("ACGT"), []byte("IIII"), 0, 4, 5)
	if b.IsBiallelic() {
		t.Error("single copy number should not be biallelic")
	}
	b.admitCopies(6)
	if !b.IsBiallelic() {
		t.Error("two distinct copy numbers should be biallelic")
	}
	b.admitCopies(7)
	if b.IsBiallelic() {
		t.Error("three distinct copy numbers should not be biallelic")
	}
}

func TestBlockTryMergeAcceptsMatchingRead(t *testing.T) {
	lflank := "ACGTACGTAC"
	motif := "CAG"
	rflank := "GTGTGTGTGT"
	bases := []byte(lflank + motif + motif + rflank)
	quals := make([]byte, len(bases))
	for i := range quals {
		quals[i] = 'I'
	}
	zstart := len(lflank)
	end := zstart + 2*len(motif)

	b := NewBlock(bases, quals, zstart, end, 2)

	if !b.TryMerge(bases, quals, motif, 2, zstart, end) {
		t.Fatal("expected identical read to merge")
	}
	if b.Support != 2 {
		t.Errorf("got support %d, want 2", b.Support)
	}
}

func TestBlockTryMergeRejectsDissimilarRead(t *testing.T) {
	bases := []byte("ACGTACGTACCAGCAGGTGTGTGTGT")
	quals := make([]byte, len(bases))
	for i := range quals {
		quals[i] = 'I'
	}
	b := NewBlock(bases, quals, 10, 16, 2)

	other := []byte("TTTTTTTTTTCAGCAGAAAAAAAAAA")
	if b.TryMerge(other, quals, "CAG", 2, 10, 16) {
		t.Fatal("expected dissimilar flanks to be rejected")
	}
}
