// Package layout places spans on a gene row: which vertical band a rectangle
// gets, and where a sequence position lands on the canvas.
package layout

import (
	"slices"

	"motif_mark_go/occurrence"
)

// Band is the vertical extent of a rectangle relative to a row baseline, in
// y-down canvas units: it covers baseline-Rise to baseline-Rise+Height.
type Band struct {
	Rise   float64
	Height float64
}

// Top and Bottom return the band edges for a row drawn at baseline.
func (b Band) Top(baseline float64) float64    { return baseline - b.Rise }
func (b Band) Bottom(baseline float64) float64 { return baseline - b.Rise + b.Height }

// Shift lowers the top edge by offset and keeps the bottom edge, so the
// shifted rectangle sits inside the one it collided with.
func (b Band) Shift(offset float64) Band {
	return Band{Rise: b.Rise - offset, Height: b.Height - offset}
}

// Default bands. Exon-type spans get the taller band (25/50 against 20/40),
// as motif-mark has always drawn them; layout.* settings override both.
var (
	ExonBand   = Band{Rise: 25, Height: 50}
	IntronBand = Band{Rise: 20, Height: 40}
)

// DefaultNestOffset is how far a colliding span is moved.
const DefaultNestOffset = 5.0

// Resolver keeps the drawn-position set of the row being laid out.
//
// Collision is decided on boundary coordinates only: a span whose start or
// end equals a start or end already drawn on the row is nested. Spans that
// overlap without sharing a boundary are left on their base band.
type Resolver struct {
	NestOffset float64
	drawn      []int
}

func NewResolver(offset float64) *Resolver {
	return &Resolver{NestOffset: offset}
}

// Reset empties the drawn-position set. Call it before every gene row.
func (r *Resolver) Reset() {
	r.drawn = r.drawn[:0]
}

// Resolve picks the final band for span and records its boundaries.
func (r *Resolver) Resolve(span occurrence.Span, base Band) Band {
	band := base
	if r.collides(span) {
		band = base.Shift(r.NestOffset)
	}
	r.drawn = append(r.drawn, span.Start, span.End)
	return band
}

func (r *Resolver) collides(span occurrence.Span) bool {
	return slices.Contains(r.drawn, span.Start) || slices.Contains(r.drawn, span.End)
}

// Drawn returns a copy of the positions recorded since the last Reset.
func (r *Resolver) Drawn() []int {
	return slices.Clone(r.drawn)
}

// Scale maps sequence positions to horizontal canvas coordinates.
type Scale struct {
	Margin  float64 // canvas x of sequence position 0
	PerBase float64 // canvas units per base
}

func (s Scale) X(pos int) float64 {
	return s.Margin + float64(pos)*s.PerBase
}

// Width is the canvas length of n bases.
func (s Scale) Width(n int) float64 {
	return float64(n) * s.PerBase
}
