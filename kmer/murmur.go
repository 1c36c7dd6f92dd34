package kmer

import (
	"encoding/binary"

	"github.com/twmb/murmur3"
)

// murmurHash128 computes a 128-bit Murmur3 x64 hash of an 8-byte k-mer
// buffer seeded with `seed`, returning the full 128 bits as (h1, h2).
// Bloom.add/contains only ever consume the top 64 bits (h1), per spec
// §3's "top 64 bits of each output are reduced mod m".
func murmurHash128(word uint64, seed uint32) (h1, h2 uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], word)
	return murmur3.SeedSum128(uint64(seed), uint64(seed), buf[:])
}

// hashChain produces the k-th hash in the chain h0=seed,
// h[i+1] = Murmur128(word, h[i]), used by BloomFilter as its hash
// family. Table is a native Go map and does not use it.
type hashChain struct {
	word uint64
	h    uint64
}

func newHashChain(word uint64, seed uint32) hashChain {
	return hashChain{word: word, h: uint64(seed)}
}

// next advances and returns the next index in [0, m).
func (c *hashChain) next(m uint64) uint64 {
	h1, _ := murmurHash128(c.word, uint32(c.h))
	c.h = h1
	return h1 % m
}
