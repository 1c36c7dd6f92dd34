// Command extend_STR_reads grows flanking sequence outward from
// annotated short tandem repeat reads along a de Bruijn graph built
// from a set of whole-genome reads, emitting each surviving read as a
// FASTA-like contig with its motif span recorded in the header.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/strtandem/strx/clix"
	"github.com/strtandem/strx/extend"
)

var cmd = &cobra.Command{
	Use:   "extend_STR_reads [options] GENOME_SIZE COVERAGE KLEN STR_READS.fq READS1.fq [READS2.fq ...]",
	Short: "extend annotated STR reads along a de Bruijn graph built from whole-genome reads",
	Args:  cobra.MinimumNArgs(5),
	Run:   run,
}

func init() {
	cmd.Flags().Int("min_threshold", 2, "minimum k-mer occurrence count to keep in the walk table")
	cmd.Flags().Int("max_threshold", 255, "maximum k-mer occurrence count to keep in the walk table")
	cmd.Flags().Int("progress", 1000000, "log progress every N k-mers counted")
	cmd.Flags().Int("flanks", 1024, "maximum k-mers to walk per flank before giving up")
	cmd.Flags().Int("ploidy", 2, "organism ploidy, used to size the expected-kmer estimate")
	cmd.Flags().Float64("heterozygosity", 0.001, "expected heterozygosity rate, used to size the expected-kmer estimate")
	cmd.Flags().Float64("errorrate", 0.01, "expected per-base sequencing error rate, used to size the expected-kmer estimate")
	cmd.Flags().Uint64("bloom-memory-mb", 0, "size the counting Bloom filter from a raw memory budget in MiB instead of the false-positive-rate formula (0 = disabled)")
	cmd.Flags().Bool("debug", false, "enable debug logging")
	cmd.Flags().Bool("verbose", false, "enable verbose (info-level) logging")
}

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(c *cobra.Command, args []string) {
	clix.SetVerbosity(clix.GetFlagBool(c, "verbose"), clix.GetFlagBool(c, "debug"))

	genomeSize, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		clix.Die("GENOME_SIZE must be a positive integer, got %q", args[0])
	}
	coverage, err := strconv.Atoi(args[1])
	if err != nil {
		clix.Die("COVERAGE must be an integer, got %q", args[1])
	}
	k, err := strconv.Atoi(args[2])
	if err != nil {
		clix.Die("KLEN must be an integer, got %q", args[2])
	}
	if k%2 == 0 {
		clix.Warnf("KLEN %d is even; rounding down to %d", k, k-1)
		k--
	}
	strReadsFile := args[3]
	genomeFiles := args[4:]
	clix.CheckFilesExist(append([]string{strReadsFile}, genomeFiles...)...)

	cfg := extend.Config{
		K:                 k,
		HaploidGenomeSize: genomeSize,
		ExpectedCoverage:  coverage,
		Ploidy:            clix.GetFlagPositiveInt(c, "ploidy"),
		Heterozygosity:    clix.GetFlagFloat64(c, "heterozygosity"),
		ErrorRate:         clix.GetFlagFloat64(c, "errorrate"),
		MinThreshold:      clix.GetFlagPositiveInt(c, "min_threshold"),
		MaxThreshold:      clix.GetFlagPositiveInt(c, "max_threshold"),
		FlankChunk:        clix.GetFlagPositiveInt(c, "flanks"),
		BloomMemoryMB:     clix.GetFlagUint64(c, "bloom-memory-mb"),
	}
	progressEvery := clix.GetFlagPositiveInt(c, "progress")

	pipeline := extend.NewPipeline(cfg)

	sources := make([]extend.Source, len(genomeFiles))
	for i, file := range genomeFiles {
		file := file
		sources[i] = func() (io.Reader, io.Closer, error) {
			return clix.InStream(file)
		}
	}

	clix.Log.Infof("counting k-mers across %d whole-genome read file(s)", len(genomeFiles))
	err = pipeline.BuildTable(sources, func(n uint64) {
		if int(n)%progressEvery == 0 {
			clix.Log.Infof("... %s k-mers scanned", clix.Comma(int64(n)))
		}
	})
	clix.CheckError(err)

	if lf := pipeline.TableLoadFactor(); lf > 0.8 {
		clix.Warnf("walk table load factor %.2f exceeds 0.8; consider raising GENOME_SIZE/COVERAGE", lf)
	}

	if bf := pipeline.BloomFilter(); bf != nil {
		clix.WriteStatsTable(os.Stderr, []clix.RunStats{
			{Label: "bloom filter false positive rate (target)", Value: fmt.Sprintf("%.6f", bf.TargetFalsePositiveRate())},
			{Label: "bloom filter bits used", Value: clix.Comma(int64(bf.NumBits()))},
			{Label: "bloom filter bits set", Value: fmt.Sprintf("%s (%.2f%%)", clix.Comma(int64(bf.NumBitsSet())), bf.FillRatio()*100)},
			{Label: "bloom filter hash functions", Value: fmt.Sprintf("%d", bf.NumHashes())},
			{Label: "bloom filter entries added", Value: clix.Comma(int64(bf.Entries()))},
			{Label: "walk table size", Value: clix.Comma(int64(pipeline.Table().Len()))},
		})
	}

	in, inCloser, err := clix.InStream(strReadsFile)
	clix.CheckError(err)
	defer inCloser.Close()

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	var kmerWarned bool
	stats, err := pipeline.Run(in, out, func() {
		if !kmerWarned {
			kmerWarned = true
			clix.Warnf("%s", extend.KmerLengthWarning(cfg.K))
		}
	})
	clix.CheckError(err)

	clix.WriteStatsTable(os.Stderr, []clix.RunStats{
		{Label: "reads processed", Value: clix.Comma(int64(stats.Processed))},
		{Label: "reads not extended (kmer too long for flank)", Value: clix.Comma(int64(stats.NotExtended))},
		{Label: "reads dropped (flank too short or identity check failed)", Value: clix.Comma(int64(stats.Dropped))},
		{Label: "contigs emitted", Value: clix.Comma(int64(stats.Emitted))},
	})
}
