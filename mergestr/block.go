// Package mergestr merges STR reads supporting the same tandem repeat
// into consensus blocks, via flank alignment against candidate blocks
// bucketed by (motif, left k-mer, right k-mer).
package mergestr

import (
	"bytes"

	"github.com/strtandem/strx/align"
)

// lowestQual is the quality character written over a block's motif
// region — '!' is the minimum Phred+33 value, matching the original's
// `sprintf(block->qual + ..., "!")` fill.
const lowestQual = '!'

// maxDistinctCopies is the number of distinct copy-number observations a
// block tracks before it stops admitting new ones, matching the
// original's fixed `copies[3]` array.
const maxDistinctCopies = 3

// Block is a consensus STR read built by merging one or more input
// reads that all appear to support the same tandem repeat.
type Block struct {
	ZStart  int
	End     int
	Support int
	Seq     []byte
	Qual    []byte
	Copies  [maxDistinctCopies]int
}

// NewBlock seeds a block from a single read's annotation, used when no
// existing block's bucket key matches.
func NewBlock(bases, quals []byte, zstart, end, copies int) *Block {
	b := &Block{
		ZStart:  zstart,
		End:     end,
		Support: 1,
		Seq:     append([]byte(nil), bases...),
		Qual:    append([]byte(nil), quals...),
	}
	b.Copies[0] = copies
	return b
}

// maxCopies returns the largest distinct copy number observed so far.
func (b *Block) maxCopies() int {
	max := 0
	for _, c := range b.Copies {
		if c > max {
			max = c
		}
	}
	return max
}

// admitCopies records a new copy-number observation if it hasn't been
// seen before and fewer than maxDistinctCopies have been recorded yet.
func (b *Block) admitCopies(copies int) {
	n := 0
	for _, c := range b.Copies {
		if c != 0 {
			if c == copies {
				return
			}
			n++
		}
	}
	if n < maxDistinctCopies {
		b.Copies[n] = copies
	}
}

// TryMerge attempts to align bases/quals against the block's left and
// right flanks (split at [zstart,end) as the motif region of the
// incoming read) and, if both flanks meet the identity/gap thresholds,
// folds the read into the block's consensus. It reports whether the
// merge happened.
func (b *Block) TryMerge(bases, quals []byte, motif string, copies, zstart, end int) bool {
	left := align.Align(b.Seq, b.Qual, 0, b.ZStart, bases, quals, 0, zstart, false)
	if left.PID < pidThreshold || left.Gaps > maxGaps {
		return false
	}

	right := align.Align(b.Seq, b.Qual, b.End, len(b.Seq), bases, quals, end, len(bases), true)
	if right.PID < pidThreshold || right.Gaps > maxGaps {
		return false
	}

	b.ZStart = len(left.Seq)
	b.Support++
	b.admitCopies(copies)

	maxCopies := b.maxCopies()
	b.End = b.ZStart + len(motif)*maxCopies

	seq := make([]byte, b.End+len(right.Seq))
	copy(seq, left.Seq)
	motifRun := bytes.Repeat([]byte(motif), maxCopies)
	copy(seq[b.ZStart:], motifRun)
	copy(seq[b.End:], right.Seq)

	qual := make([]byte, b.End+len(right.Qual))
	copy(qual, left.Qual)
	for i := b.ZStart; i < b.End; i++ {
		qual[i] = lowestQual
	}
	copy(qual[b.End:], right.Qual)

	b.Seq = seq
	b.Qual = qual
	return true
}

const (
	// pidThreshold is the minimum percent identity a flank alignment
	// must reach to accept a read into a block.
	pidThreshold = 90.0
	// maxGaps is the maximum number of gaps tolerated per flank.
	maxGaps = 2
)

// IsBiallelic reports whether the block looks like a clean two-allele
// STR call: exactly two distinct non-zero copy numbers observed.
func (b *Block) IsBiallelic() bool {
	return b.Copies[0] != 0 && b.Copies[1] != 0 && b.Copies[2] == 0
}
