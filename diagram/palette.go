package diagram

import (
	"errors"
	"image/color"
)

// ErrPaletteExhausted is returned once every palette color has been handed
// out. Colors are never reused, so the palette size is the motif limit.
var ErrPaletteExhausted = errors.New("palette exhausted: too many distinct motifs")

// palette lists the motif colors in the order they are handed out.
var palette = []color.RGBA{
	{0, 0, 128, 255},
	{0, 128, 128, 255},
	{128, 0, 128, 255},
	{0, 128, 0, 255},
	{128, 128, 0, 255},
	{128, 0, 0, 255},
	{128, 128, 128, 255},
	{192, 192, 192, 255},
	{255, 0, 255, 255},
	{0, 255, 255, 255},
	{255, 255, 0, 255},
	{0, 0, 255, 255},
	{0, 255, 0, 255},
	{255, 0, 0, 255},
}

// PaletteSize is the number of distinct motifs one diagram can hold.
var PaletteSize = len(palette)

// ExonColor fills the exon spans of every gene.
var ExonColor = color.RGBA{64, 64, 64, 255}

// Palette allocates colors from the fixed list, each one at most once.
type Palette struct {
	used int
}

func NewPalette() *Palette {
	return &Palette{}
}

func (p *Palette) Next() (color.RGBA, error) {
	if p.used >= len(palette) {
		return color.RGBA{}, ErrPaletteExhausted
	}
	c := palette[p.used]
	p.used++
	return c, nil
}

// Remaining reports how many colors are still free.
func (p *Palette) Remaining() int {
	return len(palette) - p.used
}
