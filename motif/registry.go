package motif

import (
	"fmt"
	"image/color"
)

// ColorSource hands out one distinct color per registered motif.
type ColorSource interface {
	Next() (color.RGBA, error)
}

// Registry keeps motifs in the order they were declared.
type Registry struct {
	specs []Spec
	index map[string]int // pattern -> position in specs
}

func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Load expands every literal and registers it with the next color from colors.
// Any invalid literal or an exhausted color source aborts the load.
func Load(literals []string, colors ColorSource) (*Registry, error) {
	r := NewRegistry()
	for _, lit := range literals {
		spec, err := Expand(lit)
		if err != nil {
			return nil, err
		}
		if r.Has(spec.Pattern) {
			continue // same pattern declared twice, keep the first color
		}
		spec.Color, err = colors.Next()
		if err != nil {
			return nil, fmt.Errorf("motif %q: %w", spec.Literal, err)
		}
		r.Add(spec)
	}
	return r, nil
}

// Add registers spec and reports whether it was new.
func (r *Registry) Add(spec Spec) bool {
	if r.Has(spec.Pattern) {
		return false
	}
	r.index[spec.Pattern] = len(r.specs)
	r.specs = append(r.specs, spec)
	return true
}

func (r *Registry) Has(pattern string) bool {
	_, ok := r.index[pattern]
	return ok
}

// Specs returns the registered motifs in declaration order.
func (r *Registry) Specs() []Spec {
	out := make([]Spec, len(r.specs))
	copy(out, r.specs)
	return out
}

func (r *Registry) Len() int {
	return len(r.specs)
}
