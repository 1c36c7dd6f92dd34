// Package kmer implements fixed-length DNA k-mer encoding, canonical
// orientation, the Bloom-filter–gated singleton-count table, and the
// bitset/hash primitives the rest of the toolkit is built on.
package kmer

import (
	"errors"
	"fmt"
)

// MaxK is the largest k-mer length supported by the uint64 encoding.
const MaxK = 31

// ErrIllegalBase means a byte outside {A,C,G,T,a,c,g,t} was seen where
// only unambiguous DNA is accepted.
var ErrIllegalBase = errors.New("kmer: illegal base, only A/C/G/T allowed")

// ErrKRange means k is out of [3, MaxK] or even.
var ErrKRange = errors.New("kmer: k must be an odd integer in [3,31]")

// ErrShortSeq means the input sequence is shorter than k.
var ErrShortSeq = errors.New("kmer: sequence shorter than k")

// CheckK validates that k is an odd integer usable as a k-mer length.
// Invariant I5: k must be odd so the canonical form is unambiguous.
func CheckK(k int) error {
	if k < 3 || k > MaxK {
		return fmt.Errorf("%w: got %d", ErrKRange, k)
	}
	if k%2 == 0 {
		return fmt.Errorf("%w: got even %d", ErrKRange, k)
	}
	return nil
}

// base2bits maps an ASCII base to its 2-bit code. A=0 C=1 G=2 T=3.
var base2bits = [256]int8{}

// bits2base maps a 2-bit code back to its uppercase ASCII base.
var bits2base = [4]byte{'A', 'C', 'G', 'T'}

func init() {
	for i := range base2bits {
		base2bits[i] = -1
	}
	base2bits['A'], base2bits['a'] = 0, 0
	base2bits['C'], base2bits['c'] = 1, 1
	base2bits['G'], base2bits['g'] = 2, 2
	base2bits['T'], base2bits['t'] = 3, 3
}

// Encode packs a single base into its 2-bit code, rejecting anything
// that is not unambiguous ACGT.
func Encode(base byte) (uint64, error) {
	c := base2bits[base]
	if c < 0 {
		return 0, ErrIllegalBase
	}
	return uint64(c), nil
}

// BuildIndex returns the (k-1)-base prefix k-mer: the leftmost k-1 bases
// of s, packed so the eventual first full k-mer's top bit-pair is zero.
// This is the seed that NextKmer advances from position 0.
func BuildIndex(s []byte, k int) (uint64, error) {
	if err := CheckK(k); err != nil {
		return 0, err
	}
	if len(s) < k {
		return 0, ErrShortSeq
	}
	var word uint64
	for i := 0; i < k-1; i++ {
		c, err := Encode(s[i])
		if err != nil {
			return 0, err
		}
		word = (word << 2) | c
	}
	return word, nil
}

// NextKmer returns the k-mer starting at index i of s, given the k-mer
// `prev` that started at index i-1 (or the BuildIndex seed when i==0).
// It masks off the top base-pair of prev and shifts in the new base at
// position i+k-1.
func NextKmer(prev uint64, s []byte, k int, i int) (uint64, error) {
	if i+k > len(s) {
		return 0, ErrShortSeq
	}
	c, err := Encode(s[i+k-1])
	if err != nil {
		return 0, err
	}
	mask := uint64(1)<<(2*uint(k)) - 1
	return ((prev << 2) | c) & mask, nil
}

// ReverseComplement returns the reverse complement of the k-mer w of
// length k, by reversing 2-bit groups and complementing each (3-base).
func ReverseComplement(w uint64, k int) uint64 {
	var rc uint64
	for i := 0; i < k; i++ {
		rc = (rc << 2) | (3 - (w & 3))
		w >>= 2
	}
	return rc
}

// Canonical returns min(w, ReverseComplement(w,k)) — the strand-agnostic
// storage key (invariant I1/I3).
func Canonical(w uint64, k int) uint64 {
	rc := ReverseComplement(w, k)
	if rc < w {
		return rc
	}
	return w
}

// ToString decodes a k-mer of length k into its ASCII representation.
func ToString(w uint64, k int) string {
	buf := make([]byte, k)
	for i := k - 1; i >= 0; i-- {
		buf[i] = bits2base[w&3]
		w >>= 2
	}
	return string(buf)
}

// FromString encodes the leading k bases of s into a k-mer, equivalent
// to BuildIndex followed by one NextKmer step (invariant/contract of
// §4.1: round-trips with ToString).
func FromString(s []byte, k int) (uint64, error) {
	if err := CheckK(k); err != nil {
		return 0, err
	}
	word, err := BuildIndex(s, k)
	if err != nil {
		return 0, err
	}
	return NextKmer(word, s, k, 0)
}

// RvKmers returns the 4 candidate k-mers that precede w: for each 2-bit
// base b in {A,C,G,T}, the k-mer obtained by dropping w's low base-pair
// and prepending b at the top. Used by the graph walker to extend left.
func RvKmers(w uint64, k int) [4]uint64 {
	var out [4]uint64
	shifted := w >> 2
	for b := uint64(0); b < 4; b++ {
		out[b] = shifted | (b << (2*uint(k) - 2))
	}
	return out
}

// FwKmers returns the 4 candidate k-mers that follow w: for each 2-bit
// base b in {A,C,G,T}, the k-mer obtained by dropping w's high base-pair
// and appending b at the bottom. Used by the graph walker to extend right.
func FwKmers(w uint64, k int) [4]uint64 {
	var out [4]uint64
	mask := uint64(1)<<(2*uint(k)-2) - 1
	shifted := (w & mask) << 2
	for b := uint64(0); b < 4; b++ {
		out[b] = shifted | b
	}
	return out
}

// EachKmer calls fn for every raw (non-canonical) length-k k-mer of s in
// order, matching the BuildIndex+NextKmer iteration contract.
func EachKmer(s []byte, k int, fn func(word uint64, pos int) error) error {
	if len(s) < k {
		return nil
	}
	word, err := BuildIndex(s, k)
	if err != nil {
		return err
	}
	n := len(s) - k + 1
	for i := 0; i < n; i++ {
		word, err = NextKmer(word, s, k, i)
		if err != nil {
			return err
		}
		if err := fn(word, i); err != nil {
			return err
		}
	}
	return nil
}
