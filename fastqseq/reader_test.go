package fastqseq

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestReaderParsesRecords(t *testing.T) {
	data := "@read1\nACGTACGT\n+\nIIIIIIII\n@read2\nTTTT\n+\nIIII\n"
	rd := NewReader(strings.NewReader(data), false, false)

	rec, err := rd.Read()
	if err != nil {
		t.Fatal(err)
	}
	if rec.Name != "read1" || string(rec.Bases) != "ACGTACGT" {
		t.Errorf("got %+v", rec)
	}

	rec2, err := rd.Read()
	if err != nil {
		t.Fatal(err)
	}
	if rec2.Name != "read2" || string(rec2.Bases) != "TTTT" {
		t.Errorf("got %+v", rec2)
	}

	if _, err := rd.Read(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestReaderIlluminaEncoding(t *testing.T) {
	data := "@r\nACGT\n+\nhhhh\n"
	rd := NewReader(strings.NewReader(data), true, false)
	rec, err := rd.Read()
	if err != nil {
		t.Fatal(err)
	}
	for _, q := range rec.Quals {
		if q != 'h'-illuminaOffset {
			t.Errorf("got qual byte %q, want %q", q, byte('h'-illuminaOffset))
		}
	}
}

func TestReaderTrimsLowQualityTail(t *testing.T) {
	// quals 'I' = 33+40 (ok), '#' = 33+2 (low, <= threshold of 2)
	data := "@r\nACGTAC\n+\nIIII##\n"
	rd := NewReader(strings.NewReader(data), false, true)
	rec, err := rd.Read()
	if err != nil {
		t.Fatal(err)
	}
	if string(rec.Bases) != "ACGT" {
		t.Errorf("got bases %q, want ACGT after trimming", rec.Bases)
	}
	if len(rec.Quals) != 4 {
		t.Errorf("got %d quals, want 4", len(rec.Quals))
	}
}

func TestReaderRejectsMismatchedLengths(t *testing.T) {
	data := "@r\nACGT\n+\nII\n"
	rd := NewReader(strings.NewReader(data), false, false)
	if _, err := rd.Read(); err == nil {
		t.Error("expected error for mismatched bases/quals length")
	}
}

func TestReaderRejectsNonACGTBases(t *testing.T) {
	data := "@r\nACGNAC\n+\nIIIIII\n"
	rd := NewReader(strings.NewReader(data), false, false)
	if _, err := rd.Read(); err == nil {
		t.Error("expected error for non-ACGT base")
	}
}

func TestWriteRecordRoundTrip(t *testing.T) {
	rec := Record{Name: "r1", Bases: []byte("ACGT"), Quals: []byte("IIII")}
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	if err := WriteRecord(bw, rec); err != nil {
		t.Fatal(err)
	}
	bw.Flush()

	rd := NewReader(&buf, false, false)
	got, err := rd.Read()
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != rec.Name || string(got.Bases) != string(rec.Bases) {
		t.Errorf("got %+v, want %+v", got, rec)
	}
}
