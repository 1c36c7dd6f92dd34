package extend

import (
	"io"
	"strings"
	"testing"

	"github.com/strtandem/strx/kmer"
)

func stringSource(data string) Source {
	return func() (io.Reader, io.Closer, error) {
		return strings.NewReader(data), nil, nil
	}
}

func TestCountKmersKeepsRecurringKmersOnly(t *testing.T) {
	k := 3
	// "CCCCC" contributes 3 overlapping copies of "CCC"; the remaining
	// "GAT" tail contributes 3 more 3-mers ("CCG","CGA","GAT"), each
	// distinct and each appearing exactly once.
	data := "@r1\tM\t1\t0\t4\nCCCCCGAT\n+\nIIIIIIII\n"
	bf := kmer.NewBloomFilter(100, 0.01)

	table, err := CountKmers([]Source{stringSource(data)}, k, bf, 2, 1000, 16, nil)
	if err != nil {
		t.Fatal(err)
	}

	ccc, err := kmer.FromString([]byte("CCC"), k)
	if err != nil {
		t.Fatal(err)
	}
	c, ok := table.Get(kmer.Canonical(ccc, k))
	if !ok {
		t.Fatal("expected CCC (count 3) to survive thresholding")
	}
	if c.N != 3 {
		t.Errorf("CCC count = %d, want 3", c.N)
	}

	gat, err := kmer.FromString([]byte("GAT"), k)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := table.Get(kmer.Canonical(gat, k)); ok {
		t.Error("expected GAT (count 1, a singleton) to be purged")
	}
}

func TestCountKmersAppliesMaxThreshold(t *testing.T) {
	k := 3
	// "GGGGGGGG" contains 6 overlapping copies of "GGG", all identical.
	data := "@r1\tM\t1\t0\t4\nGGGGGGGG\n+\nIIIIIIII\n"
	bf := kmer.NewBloomFilter(100, 0.01)

	table, err := CountKmers([]Source{stringSource(data)}, k, bf, 2, 5, 16, nil)
	if err != nil {
		t.Fatal(err)
	}

	ggg, err := kmer.FromString([]byte("GGG"), k)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := table.Get(kmer.Canonical(ggg, k)); ok {
		t.Error("expected GGG (count 6) to be purged by the max threshold of 5")
	}
}

func TestCountKmersReadsMultipleSources(t *testing.T) {
	k := 3
	data1 := "@r1\tM\t1\t0\t4\nTTTT\n+\nIIII\n"
	data2 := "@r2\tM\t1\t0\t4\nTTTT\n+\nIIII\n"
	bf := kmer.NewBloomFilter(100, 0.01)

	table, err := CountKmers([]Source{stringSource(data1), stringSource(data2)}, k, bf, 2, 1000, 16, nil)
	if err != nil {
		t.Fatal(err)
	}

	ttt, err := kmer.FromString([]byte("TTT"), k)
	if err != nil {
		t.Fatal(err)
	}
	c, ok := table.Get(kmer.Canonical(ttt, k))
	if !ok {
		t.Fatal("expected TTT to survive, backed by two reads each contributing two copies")
	}
	if c.N != 4 {
		t.Errorf("TTT count = %d, want 4 (2 occurrences x 2 sources)", c.N)
	}
}
