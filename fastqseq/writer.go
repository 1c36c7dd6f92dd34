package fastqseq

import (
	"bufio"
	"fmt"
)

// WriteRecord writes rec in 4-line FASTQ format, matching
// PrintFastqSequence's "@name\nbases\n+\nquals\n" layout.
func WriteRecord(w *bufio.Writer, rec Record) error {
	if _, err := fmt.Fprintf(w, "@%s\n", rec.Name); err != nil {
		return err
	}
	if _, err := w.Write(rec.Bases); err != nil {
		return err
	}
	if err := w.WriteByte('\n'); err != nil {
		return err
	}
	if _, err := w.WriteString("+\n"); err != nil {
		return err
	}
	if _, err := w.Write(rec.Quals); err != nil {
		return err
	}
	return w.WriteByte('\n')
}
