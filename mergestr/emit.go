package mergestr

import (
	"bufio"
	"fmt"
)

// WriteBlocks emits every qualifying block as a FASTQ-like record:
// "@BlockN\tmotif\tc1,c2\tzstart\tend" then bases, "+", quals — matching
// the original's printf sequence at the tail of
// MergeShortTandemRepeatReads.
func (p *Pipeline) WriteBlocks(w *bufio.Writer) error {
	blocks := p.Blocks()
	for i, eb := range blocks {
		blk := eb.block
		var copiesField string
		first := true
		for _, c := range blk.Copies {
			if c == 0 {
				continue
			}
			if !first {
				copiesField += ","
			}
			copiesField += fmt.Sprintf("%d", c)
			first = false
		}

		if _, err := fmt.Fprintf(w, "@Block%d\t%s\t%s\t%d\t%d\n", i+1, eb.motif, copiesField, blk.ZStart, blk.End); err != nil {
			return err
		}
		if _, err := w.Write(blk.Seq); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
		if _, err := w.WriteString("+\n"); err != nil {
			return err
		}
		if _, err := w.Write(blk.Qual); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}
