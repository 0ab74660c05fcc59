package motif_mark

import "motif_mark_go/motif"

// Hit counts the occurrences of one motif in one gene.
type Hit struct {
	Gene  string
	Motif string
	Exon  bool
	Count int
}

// Summary lists hit counts in gene order, then motif declaration order.
type Summary struct {
	Hits []Hit
}

func (s *Summary) add(gene string, spec motif.Spec, n int) {
	s.Hits = append(s.Hits, Hit{Gene: gene, Motif: spec.Literal, Exon: spec.Exon, Count: n})
}

// Total is the number of hits across every gene and motif.
func (s *Summary) Total() int {
	total := 0
	for _, h := range s.Hits {
		total += h.Count
	}
	return total
}
