package kmer

import "github.com/twotwotwo/sorts/sortutil"

// maxCount is the saturating ceiling for Count.N, matching the original
// Kcount's uint8_t count field.
const maxCount = 255

// FlagVisited is a Count.Flag bit reserved for marking a k-mer as
// already consumed by an extension. Outside its own unit test, nothing in
// this module sets or reads it; the extend walk tracks its own visited
// k-mers.
const FlagVisited uint8 = 1 << 0

// Count is the value stored per canonical k-mer: a saturating occurrence
// count plus a reserved flag byte (see FlagVisited), matching the
// original Kcount{count, flag} struct.
type Count struct {
	N    uint8
	Flag uint8
}

// Table is a canonical-k-mer -> Count map. The original implementation
// used a Google sparse_hash_map with a custom Murmur hasher and an
// all-ones deleted-key sentinel; Go's native map already supports safe
// delete-during-range and needs neither, so Table is a thin wrapper that
// only adds the saturating-increment and singleton-filter semantics
// spec §4.3 requires.
type Table struct {
	m map[uint64]*Count
	k int
}

// NewTable allocates an empty table for k-mers of length k, sized with
// the given capacity hint.
func NewTable(k int, sizeHint int) *Table {
	return &Table{
		m: make(map[uint64]*Count, sizeHint),
		k: k,
	}
}

// Incr increments the count for word as given (callers pass its
// canonical form), saturating at maxCount, and returns the resulting
// Count.
func (t *Table) Incr(word uint64) *Count {
	c, ok := t.m[word]
	if !ok {
		c = &Count{}
		t.m[word] = c
	}
	if c.N < maxCount {
		c.N++
	}
	return c
}

// Insert adds word to the table with a zero count if not already present,
// leaving any existing entry untouched. Used by the extend pipeline's
// first counting pass to promote a k-mer the Bloom filter reports as
// "maybe seen before" into the table before the second pass counts it.
func (t *Table) Insert(word uint64) *Count {
	c, ok := t.m[word]
	if !ok {
		c = &Count{}
		t.m[word] = c
	}
	return c
}

// Get returns the Count for word and whether it is present.
func (t *Table) Get(word uint64) (*Count, bool) {
	c, ok := t.m[word]
	return c, ok
}

// Delete removes word from the table. Safe to call during Range.
func (t *Table) Delete(word uint64) {
	delete(t.m, word)
}

// Len returns the number of distinct k-mers stored.
func (t *Table) Len() int { return len(t.m) }

// Range calls fn for every (kmer, Count) pair. Iteration order is not
// stable; callers needing determinism should use SortedKeys.
func (t *Table) Range(fn func(word uint64, c *Count) bool) {
	for w, c := range t.m {
		if !fn(w, c) {
			return
		}
	}
}

// PurgeSingletons deletes every entry with count exactly 1: a k-mer that
// the Bloom filter said "maybe seen before" but that in fact only ever
// occurred once is noise, not signal. The extend pipeline's CountKmers
// does not call it; its own [minThreshold, maxThreshold] sweep removes
// such entries whenever minThreshold is above 1.
func (t *Table) PurgeSingletons() {
	for w, c := range t.m {
		if c.N == 1 {
			delete(t.m, w)
		}
	}
}

// SortedKeys returns the table's canonical k-mers in ascending numeric
// order, giving deterministic iteration for debugging and tests.
// Sorted with sortutil rather than sort.Slice, matching the teacher's use
// of a parallel sort for large key sets (unikmer/kmer-sort.go).
func (t *Table) SortedKeys() []uint64 {
	keys := make([]uint64, 0, len(t.m))
	for w := range t.m {
		keys = append(keys, w)
	}
	sortutil.Uint64s(keys)
	return keys
}

// LoadFactor returns the number of stored entries: Go's map has no
// exposed bucket count, so this is simply len(t.m), kept as a named
// accessor for symmetry with BloomFilter.Entries. The extend CLI's
// load-factor warning uses extend.Pipeline.TableLoadFactor instead.
func (t *Table) LoadFactor() int { return len(t.m) }
