// Package occurrence locates motif hits and exon runs inside one sequence.
package occurrence

import (
	"fmt"
	"iter"
	"regexp"

	"motif_mark_go/motif"
)

// Span is a 0-indexed, end-exclusive region of a sequence.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int {
	return s.End - s.Start
}

// Finder searches sequences for every placement of one motif.
type Finder struct {
	re     *regexp.Regexp
	length int
}

// NewFinder compiles the expanded pattern of spec for case-insensitive search.
func NewFinder(spec motif.Spec) (*Finder, error) {
	return compile(spec.Pattern, spec.Len())
}

func compile(pattern string, length int) (*Finder, error) {
	if pattern == "" || length <= 0 {
		return nil, motif.ErrEmptyMotif
	}
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", pattern, err)
	}
	return &Finder{re: re, length: length}, nil
}

// All yields every hit in seq in position order. Hits may overlap: after a
// match at i the search resumes at i+1, not at the end of the match.
func (f *Finder) All(seq string) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		for from := 0; from < len(seq); {
			loc := f.re.FindStringIndex(seq[from:])
			if loc == nil {
				return
			}
			start := from + loc[0]
			if !yield(Span{Start: start, End: start + f.length}) {
				return
			}
			from = start + 1
		}
	}
}

// Find is a one-shot form of Finder.All. literalLen is the length of the
// unexpanded motif, which sets the end of each span.
func Find(pattern string, literalLen int, seq string) (iter.Seq[Span], error) {
	f, err := compile(pattern, literalLen)
	if err != nil {
		return nil, err
	}
	return f.All(seq), nil
}

// Exons yields maximal runs of uppercase letters in seq.
func Exons(seq string) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		start := -1
		for i := 0; i < len(seq); i++ {
			upper := seq[i] >= 'A' && seq[i] <= 'Z'
			switch {
			case upper && start < 0:
				start = i
			case !upper && start >= 0:
				if !yield(Span{Start: start, End: i}) {
					return
				}
				start = -1
			}
		}
		if start >= 0 {
			yield(Span{Start: start, End: len(seq)})
		}
	}
}
