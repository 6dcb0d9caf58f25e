// Package plot composes the two vector addition plots from the render
// primitives. Every call repaints the whole surface from the given pair, so
// rendering is idempotent and safe to repeat on resize.
package plot

import (
	"fmt"
	"strings"

	"github.com/bendazz/vector-practice/geometry"
	"github.com/bendazz/vector-practice/render"
)

// Layout selects one of the two plots.
type Layout int

const (
	// Standard draws A, B and A+B from the origin.
	Standard Layout = iota
	// TipToTail draws B from the tip of A and A+B from the origin.
	TipToTail
)

// Layouts lists every plot in display order.
var Layouts = []Layout{Standard, TipToTail}

func (l Layout) String() string {
	switch l {
	case Standard:
		return "standard"
	case TipToTail:
		return "tip-to-tail"
	}
	return fmt.Sprintf("Layout(%d)", int(l))
}

// Title is the heading shown above the plot.
func (l Layout) Title() string {
	switch l {
	case Standard:
		return "Standard position"
	case TipToTail:
		return "Tip-to-tail"
	}
	return l.String()
}

// ParseLayout accepts the names produced by String.
func ParseLayout(name string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "standard":
		return Standard, nil
	case "tip-to-tail", "tiptotail", "tip":
		return TipToTail, nil
	}
	return 0, fmt.Errorf("unknown plot layout %q", name)
}

// Render draws pair on s using the given layout.
func Render(layout Layout, s render.Surface, pair geometry.VectorPair) {
	switch layout {
	case TipToTail:
		RenderTipToTail(s, pair)
	default:
		RenderStandard(s, pair)
	}
}

// frame is the per-render scale shared by every endpoint of one plot.
type frame struct {
	width, height, unitPx float64
}

// begin fits the surface, picks the scale and draws the grid.
func begin(s render.Surface, pair geometry.VectorPair) frame {
	w, h := s.Fit()
	unitPx := geometry.AutoscaleUnitPx(pair, w, h)
	render.DrawGrid(s, w, h, unitPx)
	return frame{width: w, height: h, unitPx: unitPx}
}

func (f frame) toCanvas(world geometry.Vector) geometry.Vector {
	return geometry.ToCanvas(world, f.unitPx, f.width, f.height)
}

// RenderStandard draws A, B and A+B from the origin and labels each tip.
func RenderStandard(s render.Surface, pair geometry.VectorPair) {
	f := begin(s, pair)
	pal := render.DefaultPalette

	origin := f.toCanvas(geometry.Vector{})
	aEnd := f.toCanvas(pair.A())
	bEnd := f.toCanvas(pair.B())
	sumEnd := f.toCanvas(pair.SumVector())

	render.DrawArrow(s, origin, aEnd, pal.A)
	render.DrawArrow(s, origin, bEnd, pal.B)
	render.DrawArrow(s, origin, sumEnd, pal.Sum)

	render.LabelVector(s, aEnd, "a", pal.A)
	render.LabelVector(s, bEnd, "b", pal.B)
	render.LabelVector(s, sumEnd, "a+b", pal.Sum)
}

// RenderTipToTail draws A from the origin, B from the tip of A, and A+B from
// the origin to the tip of B. Only A and the sum are labelled.
func RenderTipToTail(s render.Surface, pair geometry.VectorPair) {
	f := begin(s, pair)
	pal := render.DefaultPalette

	origin := f.toCanvas(geometry.Vector{})
	aEnd := f.toCanvas(pair.A())
	// the tail of b sits on the tip of a
	sumEnd := f.toCanvas(pair.SumVector())

	render.DrawArrow(s, origin, aEnd, pal.A)
	render.DrawArrow(s, aEnd, sumEnd, pal.B)
	render.DrawArrow(s, origin, sumEnd, pal.Sum)

	render.LabelVector(s, aEnd, "a", pal.A)
	render.LabelVector(s, sumEnd, "a+b", pal.Sum)
}
