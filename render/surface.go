// Package render draws the plot primitives (grid, arrows and labels) onto a
// Surface. Coordinates passed to a Surface are display units; the Surface
// maps them onto its backing pixels.
package render

import (
	"image/color"

	"github.com/bendazz/vector-practice/geometry"
)

// Surface is the drawing capability the plots need.
type Surface interface {
	// Fit sizes the backing buffer to the current display size scaled by the
	// device pixel ratio and resets the drawing transform. It is a no-op on
	// the buffer when it already has the right size. The returned width and
	// height are in display units.
	Fit() (width, height float64)

	// Clear erases the whole surface.
	Clear()

	// StrokeLine draws a straight segment of the given width.
	StrokeLine(from, to geometry.Vector, width float64, c color.Color)

	// FillPath fills the closed subpaths of p using the non-zero rule.
	FillPath(p *Path, c color.Color)

	// MeasureText returns the advance width of s in the label font.
	MeasureText(s string) float64

	// DrawText draws s with its baseline origin at the given point.
	DrawText(s string, at geometry.Vector, c color.Color)
}
