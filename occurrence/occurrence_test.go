package occurrence

import (
	"reflect"
	"slices"
	"testing"

	"motif_mark_go/motif"
)

func TestFind(t *testing.T) {
	tests := []struct {
		name    string
		literal string
		seq     string
		want    []Span
	}{
		{"overlapping", "AA", "AAA", []Span{{0, 2}, {1, 3}}},
		{"case insensitive target", "AA", "aAa", []Span{{0, 2}, {1, 3}}},
		{"case insensitive pattern", "ygcy", "ttGCTtgcc", []Span{{1, 5}, {5, 9}}},
		{"absent", "GGG", "acgtACGT", nil},
		{"empty sequence", "A", "", nil},
		{"ambiguous end uses literal length", "N", "ac", []Span{{0, 1}, {1, 2}}},
		{"self overlapping periodic", "ATA", "ATATATA", []Span{{0, 3}, {2, 5}, {4, 7}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := motif.Expand(tt.literal)
			if err != nil {
				t.Fatal(err)
			}
			hits, err := Find(spec.Pattern, spec.Len(), tt.seq)
			if err != nil {
				t.Fatalf("Find() error = %v", err)
			}
			if got := slices.Collect(hits); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Find(%q, %q) = %v, want %v", spec.Pattern, tt.seq, got, tt.want)
			}
		})
	}
}

func TestFindEarlyStop(t *testing.T) {
	f, err := NewFinder(motif.Spec{Literal: "A", Pattern: "A"})
	if err != nil {
		t.Fatal(err)
	}
	var got []Span
	for s := range f.All("AAAA") {
		got = append(got, s)
		if len(got) == 2 {
			break
		}
	}
	if len(got) != 2 {
		t.Errorf("stopped after %d spans, want 2", len(got))
	}
}

func TestFindEmptyPattern(t *testing.T) {
	if _, err := Find("", 0, "ACGT"); err == nil {
		t.Error("Find with empty pattern succeeded")
	}
}

func TestExons(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want []Span
	}{
		{"one run", "aaTTGGcc", []Span{{2, 6}}},
		{"all lower", "acgtacgt", nil},
		{"all upper", "ACGT", []Span{{0, 4}}},
		{"single letters", "aCgTa", []Span{{1, 2}, {3, 4}}},
		{"run at both ends", "ACgtGT", []Span{{0, 2}, {4, 6}}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := slices.Collect(Exons(tt.seq)); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Exons(%q) = %v, want %v", tt.seq, got, tt.want)
			}
		})
	}
}
