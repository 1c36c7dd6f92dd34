package extend

import "github.com/strtandem/strx/kmer"

// PercentIdentity scores how well flank (sequence1) matches read at the
// point the walk started from: when reversed is false, flank is compared
// against read[index:] position-by-position (a right-flank/rightward
// check); when reversed is true, flank and read[:index] are aligned at
// their right ends and compared position-by-position leftward (a
// left-flank/leftward check). Matches
// PercentIdentity from the original walker, used as a sanity check after
// extension that a candidate flank is not a spurious graph shortcut.
func PercentIdentity(flank, read []byte, index int, reversed bool) float64 {
	var matches, mismatches int

	if !reversed {
		n := len(read) - index
		if len(flank) < n {
			n = len(flank)
		}
		for i := 0; i < n; i++ {
			if flank[i] == read[index+i] {
				matches++
			} else {
				mismatches++
			}
		}
	} else {
		i1, i2 := len(flank)-1, index-1
		for i1 >= 0 && i2 >= 0 {
			if flank[i1] == read[i2] {
				matches++
			} else {
				mismatches++
			}
			i1--
			i2--
		}
	}

	if matches+mismatches == 0 {
		return 0
	}
	return float64(matches) * 100.0 / float64(matches+mismatches)
}

// FindFirstGoodKmer scans the first numKmers k-mers of bases, starting at
// bases[0], and reports an offset: when returnOnFirst is true, scanning
// stops at the first k-mer backed by table and the offset is that hit's
// position plus k (where extension should begin); if no hit is found the
// scan runs to numKmers and the offset is numKmers+k. When returnOnFirst
// is false, the scan never stops early and the offset is the raw start
// position of the LAST k-mer backed by table (0 if none). Matches
// FindFirstGoodKmer, which the walker uses to pick a trustworthy starting
// point rather than assuming the read's own boundary k-mer is itself
// backed by the table.
func FindFirstGoodKmer(table *kmer.Table, bases []byte, numKmers int, returnOnFirst bool, k int) int {
	word, err := kmer.BuildIndex(bases, k)
	if err != nil {
		if returnOnFirst {
			return numKmers + k
		}
		return 0
	}

	if returnOnFirst {
		i := 0
		for ; i < numKmers; i++ {
			word, err = kmer.NextKmer(word, bases, k, i)
			if err != nil {
				break
			}
			if _, ok := table.Get(kmer.Canonical(word, k)); ok {
				break
			}
		}
		return i + k
	}

	last := 0
	for i := 0; i < numKmers; i++ {
		word, err = kmer.NextKmer(word, bases, k, i)
		if err != nil {
			break
		}
		if _, ok := table.Get(kmer.Canonical(word, k)); ok {
			last = i
		}
	}
	return last
}
