// Package seqstat holds small per-sequence statistics: phred scores, GC
// content and alphabet checks.
package seqstat

import (
	"errors"
	"strings"

	"gonum.org/v1/gonum/stat"
)

var (
	ErrEmptyQuality    = errors.New("empty quality string")
	ErrInvalidSequence = errors.New("sequence contains invalid characters")
)

// ConvertPhred returns the Phred+33 score of one quality character.
func ConvertPhred(c byte) int {
	return int(c) - 33
}

// QualScore is the mean phred score of a quality string.
func QualScore(quality string) (float64, error) {
	if len(quality) == 0 {
		return 0, ErrEmptyQuality
	}
	scores := make([]float64, len(quality))
	for i := 0; i < len(quality); i++ {
		scores[i] = float64(ConvertPhred(quality[i]))
	}
	return stat.Mean(scores, nil), nil
}

// ValidateBaseSeq reports whether seq is made only of A, C, G and T (U in
// place of T when rna is set), ignoring case.
func ValidateBaseSeq(seq string, rna bool) bool {
	t := byte('T')
	if rna {
		t = 'U'
	}
	for i := 0; i < len(seq); i++ {
		switch c := upper(seq[i]); c {
		case 'A', 'C', 'G', t:
		default:
			return false
		}
	}
	return true
}

func ValidateDNA(seq string) bool {
	return ValidateBaseSeq(seq, false)
}

// GCContent is the fraction of G and C bases in a DNA sequence, 0 to 1.
func GCContent(seq string) (float64, error) {
	if !ValidateDNA(seq) {
		return 0, ErrInvalidSequence
	}
	if len(seq) == 0 {
		return 0, nil
	}
	up := strings.ToUpper(seq)
	gc := strings.Count(up, "G") + strings.Count(up, "C")
	return float64(gc) / float64(len(seq)), nil
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
