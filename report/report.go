// Package report prints the motif hit counts of a finished diagram.
package report

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"

	"motif_mark_go/motif_mark"
)

// Print writes one line per gene and motif. sortBy is "alpha" (gene order,
// then motif text) or "freq" (most hits first). relFreq adds each count as a
// percentage of all hits.
func Print(w io.Writer, summary *motif_mark.Summary, sortBy string, relFreq bool) error {
	hits := make([]motif_mark.Hit, len(summary.Hits))
	copy(hits, summary.Hits)

	counts := make([]float64, len(hits))
	for i, h := range hits {
		counts[i] = float64(h.Count)
	}
	total := floats.Sum(counts)

	switch sortBy {
	case "freq":
		sort.SliceStable(hits, func(i, j int) bool {
			return hits[i].Count > hits[j].Count
		})
	case "alpha":
		order := geneOrder(hits)
		sort.SliceStable(hits, func(i, j int) bool {
			if hits[i].Gene != hits[j].Gene {
				return order[hits[i].Gene] < order[hits[j].Gene]
			}
			return hits[i].Motif < hits[j].Motif
		})
	default:
		return fmt.Errorf("unknown sort order %q (want alpha or freq)", sortBy)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if relFreq {
		fmt.Fprintln(tw, "Gene\tMotif\tContext\tCount\tRelative_Freq(%)")
	} else {
		fmt.Fprintln(tw, "Gene\tMotif\tContext\tCount")
	}
	for _, h := range hits {
		if relFreq {
			pct := 0.0
			if total > 0 {
				pct = float64(h.Count) / total * 100
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%.2f\n", h.Gene, h.Motif, context(h.Exon), h.Count, pct)
		} else {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", h.Gene, h.Motif, context(h.Exon), h.Count)
		}
	}
	return tw.Flush()
}

// geneOrder ranks genes by first appearance, which is file order.
func geneOrder(hits []motif_mark.Hit) map[string]int {
	order := make(map[string]int)
	for _, h := range hits {
		if _, ok := order[h.Gene]; !ok {
			order[h.Gene] = len(order)
		}
	}
	return order
}

func context(exon bool) string {
	if exon {
		return "exon"
	}
	return "intron"
}
