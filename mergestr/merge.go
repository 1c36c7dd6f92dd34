package mergestr

import (
	"fmt"
	"io"

	"github.com/strtandem/strx/fastqseq"
	"github.com/strtandem/strx/strname"
)

// Pipeline merges an input stream of STR reads into consensus Blocks
// bucketed by flanking k-mer, matching MergeShortTandemRepeatReads.
type Pipeline struct {
	K             int
	MinThreshold  int
	MaxThreshold  int
	ProgressEvery int

	blocks map[key]*Block
	order  []key // first-seen order of buckets, for deterministic emission
}

// NewPipeline constructs a merge Pipeline for k-mer flank length k.
func NewPipeline(k, minThreshold, maxThreshold, progressEvery int) *Pipeline {
	return &Pipeline{
		K:             k,
		MinThreshold:  minThreshold,
		MaxThreshold:  maxThreshold,
		ProgressEvery: progressEvery,
		blocks:        make(map[key]*Block),
	}
}

// Run consumes every STR read in r (name line encodes strname.Merge,
// per spec §6) and folds it into the bucketed blocks.
func (p *Pipeline) Run(r io.Reader, progress func(n uint64, name string)) error {
	n := uint64(0)
	return fastqseq.Each(r, false, false, func(rec fastqseq.Record) error {
		n++
		if progress != nil && p.ProgressEvery > 0 && (n-1)%uint64(p.ProgressEvery) == 0 {
			progress(n, rec.Name)
		}

		ann, err := strname.ParseMerge(rec.Name)
		if err != nil {
			return fmt.Errorf("mergestr: %w", err)
		}

		p.absorb(rec, ann)
		return nil
	})
}

// absorb tries the forward bucket first, then the reverse-complement
// bucket, then seeds a new block — matching the original's
// try-forward-then-reverse-then-new-block control flow.
func (p *Pipeline) absorb(rec fastqseq.Record, ann strname.Merge) {
	k := p.K

	fLeft := rec.Bases[ann.FZStart-k : ann.FZStart]
	fRight := rec.Bases[ann.FEnd : ann.FEnd+k]
	fKey := bucketKey(ann.FMotif, fLeft, fRight)

	if blk, ok := p.blocks[fKey]; ok {
		if blk.TryMerge(rec.Bases, rec.Quals, ann.FMotif, ann.FCopies, ann.FZStart, ann.FEnd) {
			return
		}
	}

	rrec := fastqseq.ReverseComplement(rec)
	rLeft := rrec.Bases[ann.RZStart-k : ann.RZStart]
	rRight := rrec.Bases[ann.REnd : ann.REnd+k]
	rKey := bucketKey(ann.RMotif, rLeft, rRight)

	if blk, ok := p.blocks[rKey]; ok {
		if blk.TryMerge(rrec.Bases, rrec.Quals, ann.RMotif, ann.RCopies, ann.RZStart, ann.REnd) {
			return
		}
	}

	blk := NewBlock(rrec.Bases, rrec.Quals, ann.RZStart, ann.REnd, ann.RCopies)
	if _, exists := p.blocks[rKey]; !exists {
		p.order = append(p.order, rKey)
	}
	p.blocks[rKey] = blk
}

// emittableBlock pairs a Block with the motif its bucket key was built
// from, needed only at emission time.
type emittableBlock struct {
	motif string
	block *Block
}

// Blocks returns the blocks that satisfy the support thresholds and
// look biallelic, in first-seen bucket order (spec §4.5.4), alongside
// the motif each was bucketed under.
func (p *Pipeline) Blocks() []emittableBlock {
	var out []emittableBlock
	for _, k := range p.order {
		blk := p.blocks[k]
		if blk.Support < p.MinThreshold || blk.Support > p.MaxThreshold {
			continue
		}
		if !blk.IsBiallelic() {
			continue
		}
		out = append(out, emittableBlock{motif: motifFromKey(k), block: blk})
	}
	return out
}

func motifFromKey(k key) string {
	for i, c := range k {
		if c == ' ' {
			return string(k[:i])
		}
	}
	return string(k)
}
