package extend

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/strtandem/strx/fastqseq"
	"github.com/strtandem/strx/kmer"
	"github.com/strtandem/strx/strname"
)

// identityThreshold is the minimum percent identity an extended flank
// must share with the read it grew from before it is trusted, matching
// the walker's 95.00 sanity-check constant.
const identityThreshold = 95.0

// Config holds the tunables of ExtendShortTandemRepeatReads: the
// expected-coverage model used to size the k-mer table plus the
// counting and walk thresholds.
type Config struct {
	K                int
	HaploidGenomeSize uint64
	ExpectedCoverage int
	Ploidy           int
	Heterozygosity   float64
	ErrorRate        float64
	MinThreshold     int
	MaxThreshold     int
	FlankChunk       int

	// BloomMemoryMB, when non-zero, sizes the counting Bloom filter from
	// a raw memory budget instead of the false-positive-rate formula,
	// matching the original's dual bloom_filter_t constructor.
	BloomMemoryMB uint64
}

// GenomeSize returns the ploidy/heterozygosity-adjusted genome size used
// to size the k-mer table, matching ExtendShortTandemRepeatReads' own
// genome_size computation.
func (c Config) GenomeSize() uint64 {
	size := float64(c.HaploidGenomeSize) * (1 + c.Heterozygosity*float64(c.Ploidy-1)*float64(c.K))
	return uint64(size)
}

// ExpectedKmers returns the number of distinct k-mers the dataset is
// expected to contain, used both to size the table and the Bloom filter
// that gates the first counting pass, matching num_expected_kmers.
func (c Config) ExpectedKmers() uint64 {
	genomeSize := float64(c.GenomeSize())
	expected := genomeSize * (1 + float64(c.ExpectedCoverage)*(1-math.Pow(1-c.ErrorRate, float64(c.K))))
	return uint64(expected)
}

// Counters tallies the outcome of a Run pass, the data the CLI layer
// renders into a stats table.
type Counters struct {
	Processed    uint64
	NotExtended  uint64
	Dropped      uint64
	Emitted      uint64
	KmerWarning  bool
}

// Pipeline drives the extend walk over STR reads once its k-mer table
// has been built.
type Pipeline struct {
	cfg   Config
	table *kmer.Table
	bf    *kmer.BloomFilter
}

// NewPipeline prepares a Pipeline from cfg; BuildTable must be called
// before Run.
func NewPipeline(cfg Config) *Pipeline {
	return &Pipeline{cfg: cfg}
}

// BuildTable counts non-singleton k-mers across sources into the
// pipeline's walk table, matching ReadAndCountNonSingletonKmers. The
// Bloom filter that gates the first pass is sized from BloomMemoryMB
// when set, otherwise from the expected-kmer/false-positive-rate
// formula, matching the original's dual bloom_filter_t constructor.
func (p *Pipeline) BuildTable(sources []Source, progress func(n uint64)) error {
	if p.cfg.BloomMemoryMB > 0 {
		p.bf = kmer.NewBloomFilterFromMemoryBudget(p.cfg.BloomMemoryMB, 0)
	} else {
		p.bf = kmer.NewBloomFilter(p.cfg.ExpectedKmers(), 0.1)
	}
	table, err := CountKmers(sources, p.cfg.K, p.bf, p.cfg.MinThreshold, p.cfg.MaxThreshold, int(p.cfg.ExpectedKmers()), progress)
	if err != nil {
		return err
	}
	p.table = table
	return nil
}

// Table exposes the built k-mer table, mainly for tests and stats.
func (p *Pipeline) Table() *kmer.Table { return p.table }

// BloomFilter exposes the counting Bloom filter built by BuildTable, for
// the post-pass-1 stats banner (nil before BuildTable runs).
func (p *Pipeline) BloomFilter() *kmer.BloomFilter { return p.bf }

// TableLoadFactor reports how full the walk table is relative to the
// expected-kmer estimate that sized it, the closest equivalent Go's
// native map can offer to the original's sparse_hash_map load factor
// (which Go does not expose directly).
func (p *Pipeline) TableLoadFactor() float64 {
	expected := p.cfg.ExpectedKmers()
	if expected == 0 || p.table == nil {
		return 0
	}
	return float64(p.table.Len()) / float64(expected)
}

// Run streams STR-annotated reads from r, extends each on both ends,
// and writes surviving contigs to w, matching
// ExtendShortTandemRepeatReads' main read loop.
func (p *Pipeline) Run(r io.Reader, w *bufio.Writer, onKmerWarning func()) (Counters, error) {
	var stats Counters
	k := p.cfg.K

	err := fastqseq.Each(r, false, false, func(rec fastqseq.Record) error {
		stats.Processed++

		ann, err := strname.ParseExtend(rec.Name)
		if err != nil {
			return err
		}

		var lflank []byte
		idx1 := 0
		if k > ann.ZStart {
			stats.NotExtended++
			if !stats.KmerWarning {
				stats.KmerWarning = true
				if onKmerWarning != nil {
					onKmerWarning()
				}
			}
			// z < k: no k bases exist to seed a left walk at all. The
			// original reports "cannot extend" here; the resulting NULL
			// lflank means the read is skipped silently (spec §4.4.4).
			stats.Dropped++
			return nil
		} else {
			idx1 = FindFirstGoodKmer(p.table, rec.Bases, ann.ZStart-k+1, true, k)
			visited, _, werr := WalkBackward(p.table, rec.Bases, idx1, k, p.cfg.FlankChunk)
			if werr != nil {
				return werr
			}
			lflank = LeftFlank(visited, k)
			if PercentIdentity(lflank, rec.Bases, idx1, true) < identityThreshold {
				stats.Dropped++
				return nil
			}
		}

		idx2 := 0
		if len(rec.Bases)-ann.End < k {
			stats.NotExtended++
			if !stats.KmerWarning {
				stats.KmerWarning = true
				if onKmerWarning != nil {
					onKmerWarning()
				}
			}
			// Fewer than k bases follow the motif: no right seed exists,
			// so the read is skipped like the left-side case above.
			stats.Dropped++
			return nil
		} else {
			idx2 = FindFirstGoodKmer(p.table, rec.Bases[ann.End:], len(rec.Bases)-ann.End-k+1, false, k)
		}
		idx2 += ann.End

		visited2, _, werr := WalkForward(p.table, rec.Bases, idx2, k, p.cfg.FlankChunk)
		if werr != nil {
			return werr
		}
		rflank := RightFlank(visited2, k)
		if PercentIdentity(rflank, rec.Bases, idx2, false) < identityThreshold {
			stats.Dropped++
			return nil
		}

		contig := Contig{
			Name:       ann.Name,
			Motif:      ann.Motif,
			Copies:     ann.Copies,
			LFlank:     lflank,
			Core:       rec.Bases[idx1:idx2],
			RFlank:     rflank,
			MotifStart: len(lflank) + ann.ZStart - idx1,
			MotifEnd:   len(lflank) + ann.End - idx1,
		}
		if err := WriteContig(w, contig); err != nil {
			return err
		}
		stats.Emitted++
		return nil
	})

	return stats, err
}

// KmerLengthWarning returns the one-time banner printed when a read's
// motif starts too close to the 5' end, or ends too close to the 3' end,
// for the configured k-mer length to reach, matching
// IssueWarningAboutKmerLength.
func KmerLengthWarning(k int) string {
	return fmt.Sprintf(
		"kmer length %d for extension is greater than the flank requirement used for STR discovery; some blocks will not be extended",
		k,
	)
}
