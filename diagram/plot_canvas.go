package diagram

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

var ErrUnknownFormat = errors.New("unknown output format")

// output is one image backend and the extension it is saved under.
type output struct {
	ext    string
	dc     draw.Canvas
	writer io.WriterTo
}

// PlotCanvas paints every primitive onto one gonum/plot canvas per output
// format, so the PDF, PNG and SVG files carry the same picture.
type PlotCanvas struct {
	width   vg.Length
	height  vg.Length
	outputs []output
}

// NewPlotCanvas creates a white page of width x height points for each of
// formats ("pdf", "png", "svg"). dpi only affects the PNG.
func NewPlotCanvas(width, height float64, dpi int, formats []string) (*PlotCanvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %vx%v", width, height)
	}
	if len(formats) == 0 {
		return nil, fmt.Errorf("%w: none requested", ErrUnknownFormat)
	}
	w, h := vg.Points(width), vg.Points(height)
	pc := &PlotCanvas{width: w, height: h}

	for _, format := range formats {
		var out output
		switch format {
		case "png":
			c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))
			out = output{ext: format, dc: draw.New(c), writer: vgimg.PngCanvas{Canvas: c}}
		case "pdf":
			c := vgpdf.New(w, h)
			out = output{ext: format, dc: draw.New(c), writer: c}
		case "svg":
			c := vgsvg.New(w, h)
			out = output{ext: format, dc: draw.New(c), writer: c}
		default:
			return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
		}
		pc.outputs = append(pc.outputs, out)
	}

	pc.FillRect(0, 0, width, height, color.White)
	return pc, nil
}

// flip converts a y-down diagram coordinate into gonum's y-up space.
func (pc *PlotCanvas) flip(y float64) vg.Length {
	return pc.height - vg.Points(y)
}

func (pc *PlotCanvas) FillRect(x0, y0, x1, y1 float64, c color.Color) {
	pts := []vg.Point{
		{X: vg.Points(x0), Y: pc.flip(y0)},
		{X: vg.Points(x1), Y: pc.flip(y0)},
		{X: vg.Points(x1), Y: pc.flip(y1)},
		{X: vg.Points(x0), Y: pc.flip(y1)},
	}
	for _, out := range pc.outputs {
		out.dc.FillPolygon(c, pts)
	}
}

func (pc *PlotCanvas) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	sty := draw.LineStyle{Color: c, Width: vg.Points(width)}
	for _, out := range pc.outputs {
		out.dc.StrokeLine2(sty, vg.Points(x0), pc.flip(y0), vg.Points(x1), pc.flip(y1))
	}
}

// FillText writes txt in sans with its left end at x and its bottom at y.
// The weight stays regular: vgpdf cannot select a bold Liberation face.
func (pc *PlotCanvas) FillText(x, y, size float64, txt string, c color.Color) {
	sty := text.Style{
		Color: c,
		Font: font.Font{
			Typeface: "Liberation",
			Variant:  "Sans",
			Size:     vg.Points(size),
		},
		Handler: plot.DefaultTextHandler,
	}
	pt := vg.Point{X: vg.Points(x), Y: pc.flip(y)}
	for _, out := range pc.outputs {
		out.dc.FillText(sty, pt, txt)
	}
}

// Save writes <prefix>.<ext> for every format and returns the paths written.
func (pc *PlotCanvas) Save(prefix string) ([]string, error) {
	var paths []string
	for _, out := range pc.outputs {
		path := prefix + "." + out.ext
		if err := writeFile(path, out.writer); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFile(path string, w io.WriterTo) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if _, err := w.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
