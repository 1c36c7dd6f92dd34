package fastqseq

import (
	"bufio"
	"fmt"
	"io"

	"github.com/strtandem/strx/kmer"
)

// Reader parses FASTQ records from a plain 4-line-per-record stream,
// the way the original OpenFastqSequence/ReadNextSequence pair did over
// a gzFile, but over any io.Reader — gzip detection and decompression
// are the caller's concern (see clix.InStream).
type Reader struct {
	scan            *bufio.Scanner
	illuminaEncoded bool
	trim            bool
}

// NewReader wraps r. When illuminaEncoded is true, quality strings are
// converted from Illumina 1.3+ (q+64) to Sanger (q+33) encoding. When
// trim is true, a trailing run of quality <= Q2 is removed from both
// bases and quals before the record is returned.
func NewReader(r io.Reader, illuminaEncoded, trim bool) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &Reader{scan: scanner, illuminaEncoded: illuminaEncoded, trim: trim}
}

// Read returns the next record, or io.EOF once the stream is exhausted.
func (rd *Reader) Read() (Record, error) {
	if !rd.scan.Scan() {
		if err := rd.scan.Err(); err != nil {
			return Record{}, err
		}
		return Record{}, io.EOF
	}
	nameLine := rd.scan.Bytes()
	if len(nameLine) == 0 || nameLine[0] != '@' {
		return Record{}, fmt.Errorf("fastqseq: expected '@' name line, got %q", nameLine)
	}
	name := string(nameLine[1:])

	if !rd.scan.Scan() {
		return Record{}, fmt.Errorf("fastqseq: truncated record %q: missing bases line", name)
	}
	bases := append([]byte(nil), rd.scan.Bytes()...)

	if !rd.scan.Scan() {
		return Record{}, fmt.Errorf("fastqseq: truncated record %q: missing '+' line", name)
	}
	plusLine := rd.scan.Bytes()
	if len(plusLine) == 0 || plusLine[0] != '+' {
		return Record{}, fmt.Errorf("fastqseq: expected '+' separator for %q, got %q", name, plusLine)
	}

	if !rd.scan.Scan() {
		return Record{}, fmt.Errorf("fastqseq: truncated record %q: missing quality line", name)
	}
	quals := append([]byte(nil), rd.scan.Bytes()...)

	if len(bases) != len(quals) {
		return Record{}, fmt.Errorf("fastqseq: record %q has %d bases but %d quality values", name, len(bases), len(quals))
	}
	if err := kmer.ValidateBases(bases); err != nil {
		return Record{}, fmt.Errorf("fastqseq: record %q: %w", name, err)
	}

	if rd.illuminaEncoded {
		toSangerEncoding(quals)
	}
	if rd.trim {
		bases, quals = trim3Prime(bases, quals)
	}

	return Record{Name: name, Bases: bases, Quals: quals}, nil
}

// Each calls fn for every record in the stream, stopping at the first
// error fn returns or the first parse error.
func Each(r io.Reader, illuminaEncoded, trim bool, fn func(Record) error) error {
	rd := NewReader(r, illuminaEncoded, trim)
	for {
		rec, err := rd.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
}
