package kmer

import (
	"github.com/pkg/errors"
	"github.com/shenwei356/bio/seq"
)

// ValidateBases rejects any base outside unambiguous A/C/G/T, using the
// same DNA alphabet the teacher's FASTA/Q reader validates against.
// The original C implementation leaves this undefined; spec §3 requires
// a rewrite to reject it explicitly.
func ValidateBases(bases []byte) error {
	if _, err := seq.NewSeq(seq.DNA, bases); err != nil {
		return errors.Wrap(ErrIllegalBase, err.Error())
	}
	for _, b := range bases {
		if base2bits[b] < 0 {
			return errors.Wrapf(ErrIllegalBase, "byte %q", b)
		}
	}
	return nil
}
