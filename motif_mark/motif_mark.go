// Package motif_mark walks gene records in file order, finds exons and motif
// hits in each, and hands every span to a painter as soon as it is found.
package motif_mark

import (
	"errors"
	"fmt"
	"image/color"

	"motif_mark_go/config"
	"motif_mark_go/diagram"
	"motif_mark_go/layout"
	"motif_mark_go/motif"
	"motif_mark_go/occurrence"
	"motif_mark_go/seqstat"
	common "motif_mark_go/utils"
)

var (
	ErrInvalidRecord = errors.New("record failed validation")
	ErrFinished      = errors.New("diagram already finished")
)

// Painter receives the geometry of every gene row.
type Painter interface {
	DrawGene(header string, baseline float64, length int)
	DrawSpan(span occurrence.Span, baseline float64, band layout.Band, c color.Color)
	DrawLegend(top float64, specs []motif.Spec)
}

// State is the progress of a Marker through its records.
type State int

const (
	Unstarted State = iota
	Scanning
	Rendered
	Done
)

func (s State) String() string {
	switch s {
	case Unstarted:
		return "unstarted"
	case Scanning:
		return "scanning"
	case Rendered:
		return "rendered"
	case Done:
		return "done"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type Options struct {
	RowSpacing float64
	NestOffset float64
	ExonBand   layout.Band
	IntronBand layout.Band
	Strict     bool
}

// OptionsFrom pulls the orchestration settings out of s.
func OptionsFrom(s config.Settings) Options {
	return Options{
		RowSpacing: s.Layout.RowSpacing,
		NestOffset: s.Layout.NestOffset,
		ExonBand:   layout.Band{Rise: s.Layout.ExonRise, Height: s.Layout.ExonHeight},
		IntronBand: layout.Band{Rise: s.Layout.IntronRise, Height: s.Layout.IntronHeight},
		Strict:     s.Strict,
	}
}

// Marker draws one diagram. It is not safe for concurrent use.
type Marker struct {
	opts     Options
	painter  Painter
	specs    []motif.Spec
	finders  []*occurrence.Finder
	resolver *layout.Resolver
	baseline float64
	state    State
	summary  *Summary
}

func New(reg *motif.Registry, p Painter, opts Options) (*Marker, error) {
	m := &Marker{
		opts:     opts,
		painter:  p,
		specs:    reg.Specs(),
		resolver: layout.NewResolver(opts.NestOffset),
		summary:  &Summary{},
	}
	for _, spec := range m.specs {
		f, err := occurrence.NewFinder(spec)
		if err != nil {
			return nil, fmt.Errorf("motif %q: %w", spec.Literal, err)
		}
		m.finders = append(m.finders, f)
	}
	return m, nil
}

func (m *Marker) State() State {
	return m.state
}

// Baseline is the y of the most recently drawn gene row.
func (m *Marker) Baseline() float64 {
	return m.baseline
}

// Mark scans one record and draws its row below the previous one: the gene
// line, then every exon, then the hits of each motif in declaration order.
func (m *Marker) Mark(rec common.Record) error {
	if m.state == Done {
		return ErrFinished
	}
	m.state = Scanning
	if m.opts.Strict && !seqstat.ValidateDNA(rec.Sequence) {
		return fmt.Errorf("%w: %s", ErrInvalidRecord, rec.Header)
	}

	m.baseline += m.opts.RowSpacing
	m.resolver.Reset()
	m.painter.DrawGene(rec.Header, m.baseline, len(rec.Sequence))

	for span := range occurrence.Exons(rec.Sequence) {
		band := m.resolver.Resolve(span, m.opts.ExonBand)
		m.painter.DrawSpan(span, m.baseline, band, diagram.ExonColor)
	}

	for i, spec := range m.specs {
		base := m.opts.IntronBand
		if spec.Exon {
			base = m.opts.ExonBand
		}
		hits := 0
		for span := range m.finders[i].All(rec.Sequence) {
			band := m.resolver.Resolve(span, base)
			m.painter.DrawSpan(span, m.baseline, band, spec.Color)
			hits++
		}
		m.summary.add(rec.Header, spec, hits)
	}

	m.state = Rendered
	return nil
}

// Finish draws the legend one row below the last gene.
func (m *Marker) Finish() (*Summary, error) {
	if m.state == Done {
		return nil, ErrFinished
	}
	m.painter.DrawLegend(m.baseline+m.opts.RowSpacing, m.specs)
	m.state = Done
	return m.summary, nil
}

// Run marks every record in order and finishes the diagram. The first
// failing record aborts the run.
func Run(records []common.Record, reg *motif.Registry, p Painter, opts Options) (*Summary, error) {
	m, err := New(reg, p, opts)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if err := m.Mark(rec); err != nil {
			return nil, err
		}
	}
	return m.Finish()
}

// PageSize fits a page to the records and legend entries it has to hold.
func PageSize(records []common.Record, legendEntries int, scale layout.Scale, opts Options, style diagram.Style) (width, height float64) {
	longest := 0
	for _, rec := range records {
		longest = max(longest, len(rec.Sequence))
	}
	width = max(2*scale.Margin+scale.Width(longest), 400)
	height = opts.RowSpacing*float64(len(records)+1) +
		style.LegendStep*float64(legendEntries) + scale.Margin
	return width, height
}
