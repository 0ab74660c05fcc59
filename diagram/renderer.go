// Package diagram draws gene rows, spans and the motif legend.
//
// All coordinates handed to a Canvas are in y-down units (1 unit = 1 point),
// with the origin at the top-left corner of the page.
package diagram

import (
	"image/color"

	"motif_mark_go/layout"
	"motif_mark_go/motif"
	"motif_mark_go/occurrence"
)

// Canvas is the drawing surface a Renderer paints on.
type Canvas interface {
	FillRect(x0, y0, x1, y1 float64, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c color.Color)
	FillText(x, y, size float64, txt string, c color.Color)
}

// Style holds the fixed sizes of the diagram furniture.
type Style struct {
	LineWidth   float64 // gene baseline stroke
	LabelSize   float64 // gene header font size
	LabelRise   float64 // header baseline above the gene line
	LabelIndent float64 // header x, left of the sequence start
	LegendSize  float64 // legend font size
	LegendStep  float64 // vertical distance between legend entries
	Swatch      float64 // legend color square edge
}

var DefaultStyle = Style{
	LineWidth:   5,
	LabelSize:   15,
	LabelRise:   50,
	LabelIndent: 10,
	LegendSize:  20,
	LegendStep:  50,
	Swatch:      20,
}

// Renderer draws gene rows and the legend of one diagram onto its canvas.
type Renderer struct {
	canvas Canvas
	Scale  layout.Scale
	Style  Style
}

func NewRenderer(c Canvas, scale layout.Scale, style Style) *Renderer {
	return &Renderer{
		canvas: c,
		Scale:  scale,
		Style:  style,
	}
}

// DrawGene labels a gene row and draws its baseline scaled to length bases.
func (r *Renderer) DrawGene(header string, baseline float64, length int) {
	r.canvas.FillText(r.Scale.Margin-r.Style.LabelIndent, baseline-r.Style.LabelRise,
		r.Style.LabelSize, header, color.Black)
	r.canvas.StrokeLine(r.Scale.X(0), baseline, r.Scale.X(length), baseline,
		r.Style.LineWidth, color.Black)
}

// DrawSpan fills the rectangle for one exon or motif hit.
func (r *Renderer) DrawSpan(span occurrence.Span, baseline float64, band layout.Band, c color.Color) {
	r.canvas.FillRect(r.Scale.X(span.Start), band.Top(baseline),
		r.Scale.X(span.End), band.Bottom(baseline), c)
}

// DrawLegend stacks one swatch and literal per motif, starting at top.
func (r *Renderer) DrawLegend(top float64, specs []motif.Spec) {
	x := r.Scale.Margin
	y := top
	for _, spec := range specs {
		r.canvas.FillRect(x, y, x+r.Style.Swatch, y+r.Style.Swatch, spec.Color)
		r.canvas.FillText(x+r.Style.Swatch+10, y+r.Style.Swatch*0.75,
			r.Style.LegendSize, spec.Literal, color.Black)
		y += r.Style.LegendStep
	}
}
