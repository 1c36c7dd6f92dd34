package mergestr

import "fmt"

// key identifies a bucket of reads that plausibly support the same STR:
// its motif plus the k-mer immediately flanking each side.
type key string

// bucketKey builds the lookup key for one orientation of a read, from
// its motif and the k bases immediately to either side of the motif
// region [zstart,end).
func bucketKey(motif string, leftFlankKmer, rightFlankKmer []byte) key {
	return key(fmt.Sprintf("%s %s %s", motif, leftFlankKmer, rightFlankKmer))
}
