package extend

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/strtandem/strx/kmer"
)

func emptyTestTable(t *testing.T, k int) *kmer.Table {
	t.Helper()
	return kmer.NewTable(k, 8)
}

// TestPipelineRunWithEmptyTable exercises the full Run loop end to end
// with a table that backs no k-mers at all: every walk halts immediately
// with zero extensions, so each flank collapses to its seed k-mer
// (bases[3:6] on the left, where FindFirstGoodKmer's no-hit boundary
// lands, and bases[10:13] on the right), which trivially matches the
// read it was read from and always clears the identity check. This keeps every
// offset in the test hand-computable without relying on any k-mer graph
// structure.
func TestPipelineRunWithEmptyTable(t *testing.T) {
	k := 3
	p := NewPipeline(Config{K: k, FlankChunk: 64})
	p.table = emptyTestTable(t, k)

	bases := "ACGTACGTACGTACGTACGT" // 20 bases; content is never looked up
	name := "read1\tCAG\t4\t5\t10"  // motif spans [5,10)
	data := "@" + name + "\n" + bases + "\n+\n" + strings.Repeat("I", len(bases)) + "\n"

	var out bytes.Buffer
	w := bufio.NewWriter(&out)
	stats, err := p.Run(strings.NewReader(data), w, nil)
	if err != nil {
		t.Fatal(err)
	}
	w.Flush()

	if stats.Processed != 1 {
		t.Errorf("Processed = %d, want 1", stats.Processed)
	}
	if stats.NotExtended != 0 {
		t.Errorf("NotExtended = %d, want 0", stats.NotExtended)
	}
	if stats.Dropped != 0 {
		t.Errorf("Dropped = %d, want 0", stats.Dropped)
	}
	if stats.Emitted != 1 {
		t.Errorf("Emitted = %d, want 1", stats.Emitted)
	}

	want := ">read1\tCAG:4:2:7\nTACGTACGTA\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestPipelineRunFlagsKmerLengthWarning(t *testing.T) {
	k := 5
	p := NewPipeline(Config{K: k, FlankChunk: 64})
	p.table = emptyTestTable(t, k)

	bases := "ACGTACGTACGTACGTACGT"
	name := "read1\tCAG\t4\t2\t10" // zstart=2 < k=5: left side can't extend
	data := "@" + name + "\n" + bases + "\n+\n" + strings.Repeat("I", len(bases)) + "\n"

	var warned int
	var out bytes.Buffer
	w := bufio.NewWriter(&out)
	_, err := p.Run(strings.NewReader(data), w, func() { warned++ })
	if err != nil {
		t.Fatal(err)
	}

	if warned != 1 {
		t.Errorf("onKmerWarning called %d times, want 1", warned)
	}
}

func TestConfigGenomeSizeAndExpectedKmers(t *testing.T) {
	cfg := Config{
		K:                 21,
		HaploidGenomeSize: 1000,
		ExpectedCoverage:  10,
		Ploidy:            2,
		Heterozygosity:    0.001,
		ErrorRate:         0.01,
	}
	// genomeSize = 1000 * (1 + 0.001*1*21) = 1000 * 1.021, which in
	// float64 evaluates to just under 1021 and truncates to 1020.
	if got := cfg.GenomeSize(); got != 1020 {
		t.Errorf("GenomeSize = %d, want 1020", got)
	}
	// expected = 1020 * (1 + 10*(1 - 0.99^21)) ~= 1020 * 2.9027 ~= 2960.7
	if got := cfg.ExpectedKmers(); got != 2960 {
		t.Errorf("ExpectedKmers = %d, want 2960", got)
	}
}
