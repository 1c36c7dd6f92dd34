package kmer

import "math"

// BloomFilter is a counting-free, set-membership-only probabilistic filter
// over canonical k-mers, used to gate first-pass singleton k-mers out of
// the sparse Table before a second counting pass touches them (spec §4.2).
type BloomFilter struct {
	bits    *Bitset
	m       uint64  // number of bits
	k       uint32  // number of hash functions
	seed    uint32  // murmur3 seed of the first hash call (h0 of each word's hash chain)
	entries uint64  // distinct words added (at least one new bit set per Add)
	fpRate  float64 // false-positive rate the filter was sized for
}

// NewBloomFilter sizes a filter from the classic false-positive-rate and
// expected-entries formula:
//
//	m = ceil(-n*ln(p) / ln(2)^2)
//	k = round(m/n * ln(2))
func NewBloomFilter(expectedEntries uint64, falsePositiveRate float64) *BloomFilter {
	n := float64(expectedEntries)
	if n < 1 {
		n = 1
	}
	m := uint64(math.Ceil(-n * math.Log(falsePositiveRate) / (math.Ln2 * math.Ln2)))
	if m < 8 {
		m = 8
	}
	k := uint32(math.Round(float64(m) / n * math.Ln2))
	if k < 1 {
		k = 1
	}
	return &BloomFilter{
		bits:   NewBitset(m),
		m:      m,
		k:      k,
		seed:   0x9747b28c,
		fpRate: falsePositiveRate,
	}
}

// NewBloomFilterFromMemoryBudget sizes a filter directly from a memory
// budget in mebibytes rather than a false-positive target, matching the
// `--bloom-memory-mb` flag (spec §3/§6 supplement): all of the budget
// becomes bitset storage, and k is numHashes, or a conventional 7 hashes
// when numHashes is 0.
func NewBloomFilterFromMemoryBudget(memoryMB uint64, numHashes uint32) *BloomFilter {
	if numHashes == 0 {
		numHashes = 7
	}
	m := memoryMB * 1024 * 1024 * 8
	if m < 8 {
		m = 8
	}
	return &BloomFilter{
		bits: NewBitset(m),
		m:    m,
		k:    numHashes,
		seed: 0x9747b28c,
	}
}

// Add inserts word into the filter and reports whether it might already
// have been present (i.e. all k bits were already set before this call).
// Entries is only incremented when at least one bit was newly set,
// matching AddKmerToBloomFilter's is_added bookkeeping: a word whose
// bits are all already set contributes nothing new to the fill level
// and is not counted as an entry added.
func (bf *BloomFilter) Add(word uint64) (alreadySeen bool) {
	chain := newHashChain(word, bf.seed)
	alreadySeen = true
	for i := uint32(0); i < bf.k; i++ {
		idx := chain.next(bf.m)
		if !bf.bits.Set(idx) {
			alreadySeen = false
		}
	}
	if !alreadySeen {
		bf.entries++
	}
	return alreadySeen
}

// Contains reports whether word might have been added before. False
// positives are possible; false negatives are not.
func (bf *BloomFilter) Contains(word uint64) bool {
	chain := newHashChain(word, bf.seed)
	for i := uint32(0); i < bf.k; i++ {
		idx := chain.next(bf.m)
		if !bf.bits.Check(idx) {
			return false
		}
	}
	return true
}

// NumBits returns the size of the underlying bitset, m.
func (bf *BloomFilter) NumBits() uint64 { return bf.m }

// NumHashes returns the number of hash functions, k.
func (bf *BloomFilter) NumHashes() uint32 { return bf.k }

// Entries returns the number of words added that set at least one new
// bit (PrintStatsForBloomFilter's num_entries_added).
func (bf *BloomFilter) Entries() uint64 { return bf.entries }

// TargetFalsePositiveRate returns the false-positive rate the filter
// was sized for (0 when sized from a raw memory budget instead, which
// carries no such target).
func (bf *BloomFilter) TargetFalsePositiveRate() float64 { return bf.fpRate }

// NumBitsSet returns the number of bits currently set in the
// underlying bitset (PrintStatsForBloomFilter's num_set_bits).
func (bf *BloomFilter) NumBitsSet() uint64 { return bf.bits.NumSet() }

// FillRatio returns the fraction of the filter's bits currently set,
// matching PrintStatsForBloomFilter's num_set_bits percentage.
func (bf *BloomFilter) FillRatio() float64 { return bf.bits.FillRatio() }
