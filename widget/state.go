// Package widget holds the state of the vector practice widget: the input
// fields, the randomize range and whether the answer is revealed. It has no
// display dependency; front ends feed it events and hand it surfaces to draw on.
package widget

import (
	"github.com/bendazz/vector-practice/generator"
	"github.com/bendazz/vector-practice/geometry"
	"github.com/bendazz/vector-practice/logger"
	"github.com/bendazz/vector-practice/plot"
	"github.com/bendazz/vector-practice/render"
)

// Component names one of the four vector fields.
type Component int

const (
	ComponentAX Component = iota
	ComponentAY
	ComponentBX
	ComponentBY
)

type State struct {
	components [4]*Field
	rangeMin   *Field
	rangeMax   *Field

	visible bool
	dirty   bool

	generator *generator.Generator
	logger    logger.Logger
}

func New(initial geometry.VectorPair, rangeMin, rangeMax int, gen *generator.Generator, log logger.Logger) *State {
	if log == nil {
		log = logger.Discard()
	}
	rangeMin, rangeMax = CorrectRange(rangeMin, rangeMax, true)

	s := &State{
		components: [4]*Field{
			NewField("a.x", 0),
			NewField("a.y", 0),
			NewField("b.x", 0),
			NewField("b.y", 0),
		},
		rangeMin:  NewField("min", rangeMin),
		rangeMax:  NewField("max", rangeMax),
		dirty:     true,
		generator: gen,
		logger:    log,
	}
	s.SetPair(initial)
	return s
}

// Pair reads the current vector pair from the fields.
func (s *State) Pair() geometry.VectorPair {
	return geometry.VectorPair{
		AX: s.components[ComponentAX].Value(),
		AY: s.components[ComponentAY].Value(),
		BX: s.components[ComponentBX].Value(),
		BY: s.components[ComponentBY].Value(),
	}
}

// SetPair writes p into the fields.
func (s *State) SetPair(p geometry.VectorPair) {
	s.components[ComponentAX].SetValue(p.AX)
	s.components[ComponentAY].SetValue(p.AY)
	s.components[ComponentBX].SetValue(p.BX)
	s.components[ComponentBY].SetValue(p.BY)
	s.dirty = true
}

func (s *State) Component(c Component) *Field {
	return s.components[c]
}

func (s *State) RangeMin() *Field {
	return s.rangeMin
}

func (s *State) RangeMax() *Field {
	return s.rangeMax
}

// Fields lists every field in tab order.
func (s *State) Fields() []*Field {
	return []*Field{
		s.components[ComponentAX],
		s.components[ComponentAY],
		s.components[ComponentBX],
		s.components[ComponentBY],
		s.rangeMin,
		s.rangeMax,
	}
}

// Range returns the randomize bounds.
func (s *State) Range() (int, int) {
	return s.rangeMin.Value(), s.rangeMax.Value()
}

// FieldChanged is called after f was edited. Vector edits schedule a redraw;
// range edits push the other bound so that min <= max, once both bounds hold
// a number.
func (s *State) FieldChanged(f *Field) {
	switch f {
	case s.rangeMin, s.rangeMax:
		if !s.rangeMin.Complete() || !s.rangeMax.Complete() {
			return
		}
		lo, hi := CorrectRange(s.rangeMin.Value(), s.rangeMax.Value(), f == s.rangeMin)
		if lo != s.rangeMin.Value() {
			s.rangeMin.SetValue(lo)
		}
		if hi != s.rangeMax.Value() {
			s.rangeMax.SetValue(hi)
		}
	default:
		s.dirty = true
	}
}

// Randomize fills the vector fields with a fresh non-degenerate pair.
func (s *State) Randomize() geometry.VectorPair {
	lo, hi := s.Range()
	var pair geometry.VectorPair
	if s.generator != nil {
		pair = s.generator.Generate(lo, hi)
	} else {
		pair = generator.GenerateVectors(lo, hi)
	}
	s.SetPair(pair)
	s.logger.Info("vectors randomized", "pair", pair.String(), "min", lo, "max", hi)
	return pair
}

// Reveal shows the answer and the plots.
func (s *State) Reveal() {
	if s.visible {
		return
	}
	s.visible = true
	s.dirty = true
	s.logger.Debug("answer revealed", "pair", s.Pair().String())
}

// Hide hides the answer and the plots.
func (s *State) Hide() {
	if !s.visible {
		return
	}
	s.visible = false
	s.logger.Debug("answer hidden")
}

func (s *State) Visible() bool {
	return s.visible
}

// SumText is the answer read-out, e.g. "(4, 2)".
func (s *State) SumText() string {
	return s.Pair().SumText()
}

// Invalidate schedules a redraw, e.g. after the surfaces were resized.
func (s *State) Invalidate() {
	s.dirty = true
}

// Sync repaints the plots when they are visible and out of date. It reports
// whether anything was drawn. Hidden plots are left alone until revealed.
func (s *State) Sync(surfaces map[plot.Layout]render.Surface) bool {
	if !s.visible || !s.dirty {
		return false
	}

	pair := s.Pair()
	for _, layout := range plot.Layouts {
		if surface, ok := surfaces[layout]; ok {
			plot.Render(layout, surface, pair)
		}
	}
	s.dirty = false
	return true
}

// CorrectRange keeps lo <= hi by moving the bound that was not edited.
func CorrectRange(lo, hi int, editedMin bool) (int, int) {
	if lo <= hi {
		return lo, hi
	}
	if editedMin {
		return lo, lo
	}
	return hi, hi
}
