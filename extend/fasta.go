package extend

import (
	"bufio"
	"fmt"
)

// Contig is one successfully extended STR read: its original motif
// annotation plus the assembled left flank, core (the trimmed read
// region actually spanning the STR), and right flank, with MotifStart/
// MotifEnd expressed as offsets into the final lflank+core+rflank
// sequence. Matches the fields PrintContig formats.
type Contig struct {
	Name       string
	Motif      string
	Copies     int
	LFlank     []byte
	Core       []byte
	RFlank     []byte
	MotifStart int
	MotifEnd   int
}

// WriteContig writes c in the extend pipeline's FASTA-like output
// format: a header of name, motif, copy number, and the motif's
// [start,end) span within the contig, followed by one line of sequence.
// Matches PrintContig.
func WriteContig(w *bufio.Writer, c Contig) error {
	if _, err := fmt.Fprintf(w, ">%s\t%s:%d:%d:%d\n", c.Name, c.Motif, c.Copies, c.MotifStart, c.MotifEnd); err != nil {
		return err
	}
	if _, err := w.Write(c.LFlank); err != nil {
		return err
	}
	if _, err := w.Write(c.Core); err != nil {
		return err
	}
	if _, err := w.Write(c.RFlank); err != nil {
		return err
	}
	return w.WriteByte('\n')
}
