package diagram

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"motif_mark_go/layout"
	"motif_mark_go/motif"
	"motif_mark_go/occurrence"
)

type rect struct {
	x0, y0, x1, y1 float64
	c              color.Color
}

type label struct {
	x, y float64
	txt  string
}

type line struct {
	x0, y0, x1, y1 float64
}

// recordCanvas keeps every primitive it is asked to draw.
type recordCanvas struct {
	rects  []rect
	lines  []line
	labels []label
}

func (rc *recordCanvas) FillRect(x0, y0, x1, y1 float64, c color.Color) {
	rc.rects = append(rc.rects, rect{x0, y0, x1, y1, c})
}

func (rc *recordCanvas) StrokeLine(x0, y0, x1, y1, _ float64, _ color.Color) {
	rc.lines = append(rc.lines, line{x0, y0, x1, y1})
}

func (rc *recordCanvas) FillText(x, y, _ float64, txt string, _ color.Color) {
	rc.labels = append(rc.labels, label{x, y, txt})
}

func TestPaletteExhaustion(t *testing.T) {
	p := NewPalette()
	seen := make(map[color.RGBA]bool)
	for i := 0; i < PaletteSize; i++ {
		c, err := p.Next()
		if err != nil {
			t.Fatalf("Next() #%d error = %v", i, err)
		}
		if seen[c] {
			t.Fatalf("Next() #%d repeated color %v", i, c)
		}
		seen[c] = true
	}
	if p.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", p.Remaining())
	}
	if _, err := p.Next(); !errors.Is(err, ErrPaletteExhausted) {
		t.Errorf("Next() past the end error = %v, want %v", err, ErrPaletteExhausted)
	}
}

func TestRendererGeometry(t *testing.T) {
	rc := &recordCanvas{}
	r := NewRenderer(rc, layout.Scale{Margin: 20, PerBase: 1}, DefaultStyle)

	r.DrawGene("INSR chr19", 150, 300)
	if len(rc.lines) != 1 || rc.lines[0] != (line{20, 150, 320, 150}) {
		t.Errorf("gene line = %v, want {20 150 320 150}", rc.lines)
	}
	if len(rc.labels) != 1 || rc.labels[0] != (label{10, 100, "INSR chr19"}) {
		t.Errorf("gene label = %v", rc.labels)
	}

	r.DrawSpan(occurrence.Span{Start: 5, End: 9}, 150, layout.IntronBand, ExonColor)
	want := rect{25, 130, 29, 170, ExonColor}
	if got := rc.rects[0]; got != want {
		t.Errorf("span rect = %v, want %v", got, want)
	}
}

func TestRendererLegend(t *testing.T) {
	rc := &recordCanvas{}
	r := NewRenderer(rc, layout.Scale{Margin: 20, PerBase: 1}, DefaultStyle)

	specs := []motif.Spec{
		{Literal: "ygcy", Color: color.RGBA{0, 0, 128, 255}},
		{Literal: "GCAUG", Color: color.RGBA{0, 128, 128, 255}},
	}
	r.DrawLegend(450, specs)

	if len(rc.rects) != 2 || len(rc.labels) != 2 {
		t.Fatalf("legend drew %d swatches and %d labels, want 2 and 2", len(rc.rects), len(rc.labels))
	}
	if rc.rects[1].y0 != 500 || rc.rects[1].c != specs[1].Color {
		t.Errorf("second swatch = %v", rc.rects[1])
	}
	if rc.labels[0] != (label{50, 465, "ygcy"}) {
		t.Errorf("first legend label = %v", rc.labels[0])
	}
}

func TestPlotCanvasSave(t *testing.T) {
	pc, err := NewPlotCanvas(400, 300, 96, []string{"pdf", "png", "svg"})
	if err != nil {
		t.Fatalf("NewPlotCanvas() error = %v", err)
	}
	r := NewRenderer(pc, layout.Scale{Margin: 20, PerBase: 1}, DefaultStyle)
	r.DrawGene("gene1", 150, 200)
	r.DrawSpan(occurrence.Span{Start: 10, End: 60}, 150, layout.ExonBand, ExonColor)

	prefix := filepath.Join(t.TempDir(), "gene")
	paths, err := pc.Save(prefix)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("Save() wrote %v, want 3 files", paths)
	}
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			t.Fatal(err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", p)
		}
	}
}

func TestNewPlotCanvasErrors(t *testing.T) {
	if _, err := NewPlotCanvas(100, 100, 96, []string{"bmp"}); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("unknown format error = %v, want %v", err, ErrUnknownFormat)
	}
	if _, err := NewPlotCanvas(0, 100, 96, []string{"png"}); err == nil {
		t.Error("zero width canvas accepted")
	}
}
