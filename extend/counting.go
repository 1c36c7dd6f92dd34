// Package extend implements the unique-extension de Bruijn walk that
// grows flanking sequence outward from an annotated short tandem repeat
// read until it either runs out of unambiguous support or its 3' arm
// stitches back onto a known neighborhood (spec §4.4).
package extend

import (
	"io"

	"github.com/strtandem/strx/fastqseq"
	"github.com/strtandem/strx/kmer"
)

// Source reopens one whole-genome read file for a fresh streaming pass,
// returning the reader plus a Closer to release it afterward. Separated
// from a plain io.Reader because CountKmers needs to read every input
// file twice, and most real inputs (gzip streams, stdin) can't be
// rewound — matching the original's own re-fopen-per-pass strategy.
type Source func() (io.Reader, io.Closer, error)

// CountKmers builds the walker's k-mer table from one or more whole-genome
// read files, using the same two-pass Bloom-gated singleton filter as the
// original ReadAndCountNonSingletonKmers: a k-mer seen exactly once by the
// time the Bloom filter reports it as "maybe already seen" is promoted
// into the table with count 0 (its first sighting was only ever recorded
// in the Bloom filter, not the table), then a second full pass increments
// every table entry that recurs. Anything with a final count outside
// [minThreshold, maxThreshold] is dropped afterward: singletons are
// sequencing noise, and saturated repeats are collapsed/ambiguous
// neighborhoods the walker must not trust.
func CountKmers(sources []Source, k int, bf *kmer.BloomFilter, minThreshold, maxThreshold int, sizeHint int, progress func(n uint64)) (*kmer.Table, error) {
	table := kmer.NewTable(k, sizeHint)

	var n uint64
	firstPass := func(rec fastqseq.Record) error {
		return kmer.EachKmer(rec.Bases, k, func(word uint64, pos int) error {
			canon := kmer.Canonical(word, k)
			n++
			if progress != nil {
				progress(n)
			}
			if _, ok := table.Get(canon); ok {
				return nil
			}
			if bf.Add(canon) {
				table.Insert(canon)
			}
			return nil
		})
	}
	if err := eachSource(sources, firstPass); err != nil {
		return nil, err
	}

	secondPass := func(rec fastqseq.Record) error {
		return kmer.EachKmer(rec.Bases, k, func(word uint64, pos int) error {
			canon := kmer.Canonical(word, k)
			if _, ok := table.Get(canon); ok {
				table.Incr(canon)
			}
			return nil
		})
	}
	if err := eachSource(sources, secondPass); err != nil {
		return nil, err
	}

	table.Range(func(word uint64, c *kmer.Count) bool {
		if int(c.N) < minThreshold || int(c.N) > maxThreshold {
			table.Delete(word)
		}
		return true
	})

	return table, nil
}

func eachSource(sources []Source, fn func(fastqseq.Record) error) error {
	for _, open := range sources {
		r, closer, err := open()
		if err != nil {
			return err
		}
		err = fastqseq.Each(r, false, false, fn)
		if closer != nil {
			closer.Close()
		}
		if err != nil {
			return err
		}
	}
	return nil
}
