// Package strname parses the tab-separated STR annotation lines that
// precede bases in extend and merge input FASTQ name fields.
package strname

import (
	"fmt"
	"strconv"
	"strings"
)

// Extend is a single STR read's annotation: the motif found in the read,
// its copy number, and the zero-based half-open [ZStart, End) interval
// of the motif within the read.
type Extend struct {
	Name   string
	Motif  string
	Copies int
	ZStart int
	End    int
}

// ParseExtend parses "name\tmotif\tcopies\tzstart\tend".
func ParseExtend(line string) (Extend, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != 5 {
		return Extend{}, fmt.Errorf("strname: extend name %q: want 5 tab-separated fields, got %d", line, len(fields))
	}
	copies, err := strconv.Atoi(fields[2])
	if err != nil {
		return Extend{}, fmt.Errorf("strname: extend name %q: bad copies: %w", line, err)
	}
	zstart, err := strconv.Atoi(fields[3])
	if err != nil {
		return Extend{}, fmt.Errorf("strname: extend name %q: bad zstart: %w", line, err)
	}
	end, err := strconv.Atoi(fields[4])
	if err != nil {
		return Extend{}, fmt.Errorf("strname: extend name %q: bad end: %w", line, err)
	}
	return Extend{
		Name:   fields[0],
		Motif:  fields[1],
		Copies: copies,
		ZStart: zstart,
		End:    end,
	}, nil
}

// String renders the annotation back to its tab-separated form.
func (e Extend) String() string {
	return fmt.Sprintf("%s\t%s\t%d\t%d\t%d", e.Name, e.Motif, e.Copies, e.ZStart, e.End)
}

// Merge is a read annotated in both its forward and reverse-complement
// orientations, as consumed by the merge pipeline's bucketing step.
type Merge struct {
	Name    string
	FMotif  string
	FCopies int
	FZStart int
	FEnd    int
	RMotif  string
	RCopies int
	RZStart int
	REnd    int
}

// ParseMerge parses
// "name\tfmotif\tfcopies\tfzstart\tfend\trmotif\trcopies\trzstart\trend".
func ParseMerge(line string) (Merge, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != 9 {
		return Merge{}, fmt.Errorf("strname: merge name %q: want 9 tab-separated fields, got %d", line, len(fields))
	}
	ints := make([]int, 0, 4)
	for _, idx := range []int{2, 3, 7, 8} {
		v, err := strconv.Atoi(fields[idx])
		if err != nil {
			return Merge{}, fmt.Errorf("strname: merge name %q: bad integer field %d: %w", line, idx, err)
		}
		ints = append(ints, v)
	}
	fcopies, fzstart, rzstart, rend := ints[0], ints[1], ints[2], ints[3]

	fend, err := strconv.Atoi(fields[4])
	if err != nil {
		return Merge{}, fmt.Errorf("strname: merge name %q: bad fend: %w", line, err)
	}
	rcopies, err := strconv.Atoi(fields[6])
	if err != nil {
		return Merge{}, fmt.Errorf("strname: merge name %q: bad rcopies: %w", line, err)
	}

	return Merge{
		Name:    fields[0],
		FMotif:  fields[1],
		FCopies: fcopies,
		FZStart: fzstart,
		FEnd:    fend,
		RMotif:  fields[5],
		RCopies: rcopies,
		RZStart: rzstart,
		REnd:    rend,
	}, nil
}

// String renders the annotation back to its tab-separated form.
func (m Merge) String() string {
	return fmt.Sprintf("%s\t%s\t%d\t%d\t%d\t%s\t%d\t%d\t%d",
		m.Name, m.FMotif, m.FCopies, m.FZStart, m.FEnd,
		m.RMotif, m.RCopies, m.RZStart, m.REnd)
}
