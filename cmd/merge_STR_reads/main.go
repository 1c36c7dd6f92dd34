// Command merge_STR_reads folds extended short tandem repeat reads into
// consensus blocks bucketed by their flanking k-mers, tracking up to
// three distinct copy numbers per block and emitting one FASTQ-like
// record per block that is within the support thresholds and has
// exactly two.
package main

import (
	"bufio"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/strtandem/strx/clix"
	"github.com/strtandem/strx/mergestr"
)

var cmd = &cobra.Command{
	Use:   "merge_STR_reads [options] KLEN STR_READS.fq",
	Short: "merge extended STR reads into consensus blocks bucketed by flanking k-mer",
	Args:  cobra.ExactArgs(2),
	Run:   run,
}

func init() {
	cmd.Flags().Int("min_threshold", 3, "minimum number of reads a block must gather to be emitted")
	cmd.Flags().Int("max_threshold", 10000, "maximum number of reads a block may gather before being dropped as repetitive")
	cmd.Flags().Int("progress", 1000000, "log progress every N reads merged")
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

	k, err := strconv.Atoi(args[0])
	if err != nil {
		clix.Die("KLEN must be an integer, got %q", args[0])
	}
	strReadsFile := args[1]
	clix.CheckFilesExist(strReadsFile)

	pipeline := mergestr.NewPipeline(
		k,
		clix.GetFlagPositiveInt(c, "min_threshold"),
		clix.GetFlagPositiveInt(c, "max_threshold"),
		clix.GetFlagPositiveInt(c, "progress"),
	)

	in, inCloser, err := clix.InStream(strReadsFile)
	clix.CheckError(err)
	defer inCloser.Close()

	err = pipeline.Run(in, func(n uint64, name string) {
		clix.Log.Infof("... %s reads merged (at %s)", clix.Comma(int64(n)), name)
	})
	clix.CheckError(err)

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	clix.CheckError(pipeline.WriteBlocks(out))

	blocks := pipeline.Blocks()
	clix.WriteStatsTable(os.Stderr, []clix.RunStats{
		{Label: "blocks emitted", Value: clix.Comma(int64(len(blocks)))},
	})
}
