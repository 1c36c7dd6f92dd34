// Package fastqseq reads FASTQ records with the same trimming and
// quality-encoding options the original extend/merge tools exposed on
// the command line, but through a plain io.Reader rather than a
// gzFile handle.
package fastqseq

// Record is a single FASTQ read: a name line (without the leading '@'),
// its bases, and its Phred-encoded quality string. Bases and Quals are
// always the same length.
type Record struct {
	Name  string
	Bases []byte
	Quals []byte
}

// illuminaOffset is the difference between Illumina 1.3+ (Q+64) and
// Sanger/Illumina 1.8+ (Q+33) quality encodings.
const illuminaOffset = 31

// toSangerEncoding rewrites quals in place from Illumina (q+64) to
// Sanger (q+33) encoding, matching the original's
// `quals[idx] -= 31` loop in ReadNextSequence.
func toSangerEncoding(quals []byte) {
	for i := range quals {
		quals[i] -= illuminaOffset
	}
}

// lowQualityThreshold is the Phred-33 quality value at or below which 3'
// trim scanning continues: a base survives trimming only once a quality
// strictly above this is found, matching the original's
// `(quals[idx]-33) <= 2` cutoff.
const lowQualityThreshold = 2

// trim3Prime removes a trailing run of low-quality bases (Phred score
// <= lowQualityThreshold once offset by 33) from bases and quals,
// stopping at the first base (scanning from the end) whose quality
// exceeds the threshold. Grounded on the original ReadNextSequence's
// do_trim loop, adjusted for Go's already-newline-stripped lines.
func trim3Prime(bases, quals []byte) (trimmedBases, trimmedQuals []byte) {
	end := len(quals)
	for end > 0 && int(quals[end-1])-33 <= lowQualityThreshold {
		end--
	}
	return bases[:end], quals[:end]
}

// complement maps a base to its Watson-Crick complement, leaving
// anything else (including ambiguity codes) unchanged, matching the
// original's dna_complement lookup table.
var complement = [256]byte{}

func init() {
	for i := range complement {
		complement[i] = byte(i)
	}
	pairs := map[byte]byte{
		'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C',
		'a': 't', 't': 'a', 'c': 'g', 'g': 'c',
	}
	for b, c := range pairs {
		complement[b] = c
	}
}

// ReverseComplement returns a new Record with the bases reverse
// complemented and the quality string reversed to match, the way
// ReverseComplementSequence did in place over a FastqSequence.
func ReverseComplement(rec Record) Record {
	n := len(rec.Bases)
	bases := make([]byte, n)
	quals := make([]byte, n)
	for i := 0; i < n; i++ {
		bases[i] = complement[rec.Bases[n-1-i]]
		quals[i] = rec.Quals[n-1-i]
	}
	return Record{Name: rec.Name, Bases: bases, Quals: quals}
}
