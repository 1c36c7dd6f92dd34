// Package align implements the local (Smith–Waterman) flank alignment
// and quality-weighted consensus building used by the merge pipeline to
// decide whether a new read supports an existing block.
package align

const (
	scoreMatch    = 1
	scoreMismatch = -1
	scoreGap      = -3

	// lowQualityChar is the quality-character floor above which a gap
	// column's surviving base is still kept, matching the original's
	// `quals[idx] > '5'` check (ASCII 53, Phred+33 Q20).
	lowQualityChar = '5'
)

func max4(a, b, c, d int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	if d > m {
		m = d
	}
	return m
}

// Result is the outcome of aligning one flank pair: the merged
// consensus bases/quals, the number of gaps, and the percent identity
// over the aligned region.
type Result struct {
	Seq   []byte
	Qual  []byte
	Gaps  int
	PID   float64
}

// Align performs a local alignment between seq1[start1:end1] and
// seq2[start2:end2], producing a consensus sequence by tracing back
// from the best-scoring cell. match/mismatch/gap scores and the
// traceback/consensus rules are fixed, matching the original Align
// routine's AlignFlanks callers.
//
// rightGapped selects which side of the optimal alignment the
// unaligned remainder of the longer sequence is grafted onto:
// false pads the *prefix* (for a left flank, anchored to the motif's
// left edge), true pads the *suffix* (for a right flank, anchored to
// the motif's right edge).
func Align(seq1, qual1 []byte, start1, end1 int, seq2, qual2 []byte, start2, end2 int, rightGapped bool) Result {
	t1, q1 := seq1[start1:end1], qual1[start1:end1]
	t2, q2 := seq2[start2:end2], qual2[start2:end2]
	n1, n2 := len(t1), len(t2)

	rows, cols := n1+1, n2+1
	A := make([][]int, rows)
	B := make([][]int, rows)
	for i := range A {
		A[i] = make([]int, cols)
		B[i] = make([]int, cols)
	}

	best, optI, optJ := 0, 0, 0
	for i := 1; i < rows; i++ {
		for j := 1; j < cols; j++ {
			scoreLeft := A[i][j-1] + scoreGap
			scoreUp := A[i-1][j] + scoreGap
			var scoreDiag int
			if t1[i-1] == t2[j-1] {
				scoreDiag = A[i-1][j-1] + scoreMatch
			} else {
				scoreDiag = A[i-1][j-1] + scoreMismatch
			}

			v := max4(scoreLeft, scoreUp, scoreDiag, 0)
			A[i][j] = v
			switch {
			case v == scoreDiag:
				B[i][j] = 0
			case v == scoreUp:
				B[i][j] = 1
			case v == scoreLeft:
				B[i][j] = 2
			}
			if v >= best {
				best = v
				optI, optJ = i, j
			}
		}
	}

	var seqBuf, qualBuf []byte
	i, j := optI, optJ
	maxScore := best
	matches, mismatches, gaps := 0, 0, 0

	if rightGapped {
		if n1 > n2 {
			a := n1
			for a > j {
				seqBuf = append(seqBuf, t1[a-1])
				qualBuf = append(qualBuf, q1[a-1])
				a--
			}
		} else {
			a := n2
			for a > j {
				seqBuf = append(seqBuf, t2[a-1])
				qualBuf = append(qualBuf, q2[a-1])
				a--
			}
		}
	} else {
		gaps = n2 - optJ
	}

	for maxScore > 0 && i >= 1 && j >= 1 {
		switch B[i][j] {
		case 0:
			if q1[i-1] > q2[j-1] {
				seqBuf = append(seqBuf, t1[i-1])
				qualBuf = append(qualBuf, q1[i-1])
			} else {
				seqBuf = append(seqBuf, t2[j-1])
				qualBuf = append(qualBuf, q2[j-1])
			}
			if t1[i-1] != t2[j-1] {
				mismatches++
			} else {
				matches++
			}
			i--
			j--
		case 1:
			if q1[i-1] > lowQualityChar {
				seqBuf = append(seqBuf, t1[i-1])
				qualBuf = append(qualBuf, q1[i-1])
			}
			i--
			gaps++
		case 2:
			if q2[j-1] > lowQualityChar {
				seqBuf = append(seqBuf, t2[j-1])
				qualBuf = append(qualBuf, q2[j-1])
			}
			j--
			gaps++
		}
		maxScore = A[i][j]
	}

	if rightGapped {
		gaps = maxInt(i, j) - minInt(i, j)
	} else {
		if n1 > n2 {
			for a := i; a > 0; a-- {
				seqBuf = append(seqBuf, t1[a-1])
				qualBuf = append(qualBuf, q1[a-1])
			}
		} else {
			for a := j; a > 0; a-- {
				seqBuf = append(seqBuf, t2[a-1])
				qualBuf = append(qualBuf, q2[a-1])
			}
		}
	}

	reverseBytes(seqBuf)
	reverseBytes(qualBuf)

	var pid float64
	if matches+mismatches > 0 {
		pid = float64(matches) * 100.0 / float64(matches+mismatches)
	}

	return Result{Seq: seqBuf, Qual: qualBuf, Gaps: gaps, PID: pid}
}

func reverseBytes(b []byte) {
	for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
