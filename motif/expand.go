// Package motif turns literal motif text (IUPAC ambiguity codes, case marking
// exon or intron context) into concrete patterns used for sequence matching.
package motif

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

var (
	ErrEmptyMotif  = errors.New("empty motif")
	ErrInvalidBase = errors.New("invalid motif base")
)

// ambiguityClasses maps each IUPAC code to a character class holding the code
// itself followed by its compatible bases.
var ambiguityClasses = map[byte]string{
	'Y': "[YCT]", 'M': "[MAC]", 'K': "[KGT]",
	'W': "[WAT]", 'S': "[SCG]", 'R': "[RAG]",
	'B': "[BCGT]", 'D': "[DAGT]", 'H': "[HACT]",
	'V': "[VACG]", 'N': "[NACGTU]", 'U': "[UT]",
}

// Spec is one registered motif. Positions of its hits are never stored here;
// each occurrence is handed to the renderer on its own.
type Spec struct {
	Literal string     // text as written in the motif file
	Pattern string     // expanded matching pattern, the motif's identity
	Exon    bool       // literal had no lowercase letters
	Color   color.RGBA // legend and hit color
}

// Expand converts a literal into its matching pattern in one left-to-right
// pass. Expanded classes are appended to the output and never re-read, so a
// class can not be substituted twice.
func Expand(literal string) (Spec, error) {
	literal = strings.TrimSpace(literal)
	if literal == "" {
		return Spec{}, ErrEmptyMotif
	}

	var pattern strings.Builder
	exon := true
	for i := 0; i < len(literal); i++ {
		c := literal[i]
		lower := c >= 'a' && c <= 'z'
		if lower {
			exon = false
		}
		upper := c
		if lower {
			upper = c - 'a' + 'A'
		}

		switch upper {
		case 'A', 'C', 'G', 'T':
			pattern.WriteByte(c)
		default:
			class, ok := ambiguityClasses[upper]
			if !ok {
				return Spec{}, fmt.Errorf("%w %q in motif %q", ErrInvalidBase, c, literal)
			}
			if lower {
				class = strings.ToLower(class)
			}
			pattern.WriteString(class)
		}
	}

	return Spec{
		Literal: literal,
		Pattern: pattern.String(),
		Exon:    exon,
	}, nil
}

// Len is the number of sequence positions one hit of the motif covers.
func (s Spec) Len() int {
	return len(s.Literal)
}
