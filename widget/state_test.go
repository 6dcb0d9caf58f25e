package widget

import (
	"testing"

	"github.com/bendazz/vector-practice/generator"
	"github.com/bendazz/vector-practice/geometry"
	"github.com/bendazz/vector-practice/plot"
	"github.com/bendazz/vector-practice/render"
	"github.com/bendazz/vector-practice/render/rendertest"
)

var initialPair = geometry.VectorPair{AX: 3, AY: 4, BX: 1, BY: -2}

func newTestState() *State {
	return New(initialPair, -5, 5, generator.New(1, 0, nil), nil)
}

func newSurfaces() (map[plot.Layout]render.Surface, *rendertest.Recorder, *rendertest.Recorder) {
	standard := rendertest.New(400, 400)
	tipToTail := rendertest.New(400, 400)
	return map[plot.Layout]render.Surface{
		plot.Standard:  standard,
		plot.TipToTail: tipToTail,
	}, standard, tipToTail
}

func TestNewState(t *testing.T) {
	s := newTestState()

	if got := s.Pair(); got != initialPair {
		t.Errorf("Pair() = %v, want %v", got, initialPair)
	}
	if lo, hi := s.Range(); lo != -5 || hi != 5 {
		t.Errorf("Range() = %d, %d, want -5, 5", lo, hi)
	}
	if s.Visible() {
		t.Error("new state is visible")
	}
	if got := s.SumText(); got != "(4, 2)" {
		t.Errorf("SumText() = %q, want %q", got, "(4, 2)")
	}
	if got := len(s.Fields()); got != 6 {
		t.Errorf("len(Fields()) = %d, want 6", got)
	}
}

func TestNewStateCorrectsInvertedRange(t *testing.T) {
	s := New(initialPair, 5, -5, nil, nil)
	if lo, hi := s.Range(); lo != 5 || hi != 5 {
		t.Errorf("Range() = %d, %d, want 5, 5", lo, hi)
	}
}

func TestCorrectRange(t *testing.T) {
	tests := []struct {
		name           string
		lo, hi         int
		editedMin      bool
		wantLo, wantHi int
	}{
		{"ordered", -5, 5, true, -5, 5},
		{"equal", 2, 2, false, 2, 2},
		{"min raised past max", 7, 5, true, 7, 7},
		{"max lowered past min", -5, -8, false, -8, -8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := CorrectRange(tt.lo, tt.hi, tt.editedMin)
			if lo != tt.wantLo || hi != tt.wantHi {
				t.Errorf("CorrectRange(%d, %d, %v) = %d, %d, want %d, %d",
					tt.lo, tt.hi, tt.editedMin, lo, hi, tt.wantLo, tt.wantHi)
			}
		})
	}
}

func TestFieldChangedRange(t *testing.T) {
	s := newTestState()

	s.RangeMin().SetValue(9)
	s.FieldChanged(s.RangeMin())
	if lo, hi := s.Range(); lo != 9 || hi != 9 {
		t.Errorf("after raising min Range() = %d, %d, want 9, 9", lo, hi)
	}

	s.RangeMax().SetValue(-2)
	s.FieldChanged(s.RangeMax())
	if lo, hi := s.Range(); lo != -2 || hi != -2 {
		t.Errorf("after lowering max Range() = %d, %d, want -2, -2", lo, hi)
	}
}

func TestSyncOnlyWhenVisible(t *testing.T) {
	s := newTestState()
	surfaces, standard, tipToTail := newSurfaces()

	if s.Sync(surfaces) {
		t.Fatal("hidden state drew")
	}
	if len(standard.Calls) != 0 || len(tipToTail.Calls) != 0 {
		t.Fatal("hidden state touched the surfaces")
	}

	s.Reveal()
	if !s.Sync(surfaces) {
		t.Fatal("revealed state did not draw")
	}
	if len(standard.Calls) == 0 || len(tipToTail.Calls) == 0 {
		t.Fatal("both plots should be drawn after reveal")
	}

	standard.Reset()
	tipToTail.Reset()
	if s.Sync(surfaces) {
		t.Error("clean state redrew")
	}
}

func TestEditWhileHiddenDrawsOnReveal(t *testing.T) {
	s := newTestState()
	surfaces, standard, _ := newSurfaces()

	s.Reveal()
	s.Sync(surfaces)
	s.Hide()

	s.Component(ComponentBX).SetValue(-6)
	s.FieldChanged(s.Component(ComponentBX))
	standard.Reset()
	if s.Sync(surfaces) {
		t.Fatal("hidden state drew after an edit")
	}

	s.Reveal()
	if !s.Sync(surfaces) {
		t.Fatal("reveal after an edit did not redraw")
	}
	texts := standard.Texts()
	if len(texts) != 3 {
		t.Fatalf("standard plot drew %d labels, want 3", len(texts))
	}
}

func TestEditWhileVisibleRedraws(t *testing.T) {
	s := newTestState()
	surfaces, _, _ := newSurfaces()
	s.Reveal()
	s.Sync(surfaces)

	f := s.Component(ComponentAY)
	f.Backspace()
	f.Insert('7')
	s.FieldChanged(f)

	if !s.Sync(surfaces) {
		t.Error("edit while visible did not redraw")
	}
	if got := s.SumText(); got != "(4, 5)" {
		t.Errorf("SumText() = %q, want %q", got, "(4, 5)")
	}
}

func TestRangeEditDoesNotRedraw(t *testing.T) {
	s := newTestState()
	surfaces, _, _ := newSurfaces()
	s.Reveal()
	s.Sync(surfaces)

	s.RangeMax().SetValue(3)
	s.FieldChanged(s.RangeMax())
	if s.Sync(surfaces) {
		t.Error("range edit redrew the plots")
	}
}

func TestRandomizeStaysInRange(t *testing.T) {
	s := newTestState()
	s.RangeMin().SetValue(-2)
	s.FieldChanged(s.RangeMin())
	s.RangeMax().SetValue(2)
	s.FieldChanged(s.RangeMax())

	for i := 0; i < 50; i++ {
		p := s.Randomize()
		if p != s.Pair() {
			t.Fatalf("Randomize returned %v but fields hold %v", p, s.Pair())
		}
		if p.Degenerate() {
			t.Fatalf("Randomize produced degenerate pair %v", p)
		}
		for _, v := range []int{p.AX, p.AY, p.BX, p.BY} {
			if v < -2 || v > 2 {
				t.Fatalf("component %d of %v outside [-2, 2]", v, p)
			}
		}
	}
}

func TestRandomizeWhileVisibleRedraws(t *testing.T) {
	s := newTestState()
	surfaces, _, _ := newSurfaces()
	s.Reveal()
	s.Sync(surfaces)

	s.Randomize()
	if !s.Sync(surfaces) {
		t.Error("randomize while visible did not redraw")
	}
}

func TestRetypingRangeBoundWaitsForDigits(t *testing.T) {
	s := New(initialPair, -9, -3, nil, nil)
	lo := s.RangeMin()

	lo.Backspace()
	s.FieldChanged(lo)
	lo.Backspace()
	s.FieldChanged(lo)
	if got := s.RangeMax().Value(); got != -3 {
		t.Fatalf("max = %d after clearing min, want -3", got)
	}

	lo.Insert('-')
	s.FieldChanged(lo)
	if got := s.RangeMax().Value(); got != -3 {
		t.Fatalf("max = %d with min %q, want -3", got, lo.Text())
	}

	lo.Insert('8')
	s.FieldChanged(lo)
	if gotLo, gotHi := s.Range(); gotLo != -8 || gotHi != -3 {
		t.Errorf("Range() = %d, %d, want -8, -3", gotLo, gotHi)
	}
}

func TestCompleteRangeBoundStillCorrects(t *testing.T) {
	s := New(initialPair, -9, -3, nil, nil)
	lo := s.RangeMin()

	lo.Backspace()
	lo.Backspace()
	lo.Insert('4')
	s.FieldChanged(lo)
	if gotLo, gotHi := s.Range(); gotLo != 4 || gotHi != 4 {
		t.Errorf("Range() = %d, %d, want 4, 4", gotLo, gotHi)
	}
}
