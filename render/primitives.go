package render

import (
	"image/color"
	"math"

	"github.com/bendazz/vector-practice/geometry"
)

const (
	gridLineWidth  = 1.0
	axisLineWidth  = 1.5
	arrowLineWidth = 2.5

	arrowHeadRatio = 0.12
	arrowHeadMin   = 8.0
	arrowHeadMax   = 14.0
	arrowHeadAngle = math.Pi / 7

	labelPadding    = 6.0
	labelHeight     = 18.0
	labelRadius     = 6.0
	labelOffsetX    = 8.0
	labelOffsetY    = -6.0
	labelBaselineUp = 4.0 // box bottom sits this far below the baseline
)

// DrawGrid clears the surface and draws a square grid unitPx apart with a line
// through the centre, then the two axes through the exact centre.
func DrawGrid(s Surface, width, height, unitPx float64) {
	s.Clear()
	if !(unitPx > 0) {
		unitPx = geometry.DefaultUnitPx
	}

	// Lines sit on half pixels so a 1px stroke covers a single pixel column.
	for x := math.Round(math.Mod(width/2, unitPx)); x <= width; x += unitPx {
		s.StrokeLine(geometry.Vector{X: x + 0.5, Y: 0}, geometry.Vector{X: x + 0.5, Y: height}, gridLineWidth, DefaultPalette.Grid)
	}
	for y := math.Round(math.Mod(height/2, unitPx)); y <= height; y += unitPx {
		s.StrokeLine(geometry.Vector{X: 0, Y: y + 0.5}, geometry.Vector{X: width, Y: y + 0.5}, gridLineWidth, DefaultPalette.Grid)
	}

	s.StrokeLine(geometry.Vector{X: 0, Y: height/2 + 0.5}, geometry.Vector{X: width, Y: height/2 + 0.5}, axisLineWidth, DefaultPalette.Axis)
	s.StrokeLine(geometry.Vector{X: width/2 + 0.5, Y: 0}, geometry.Vector{X: width/2 + 0.5, Y: height}, axisLineWidth, DefaultPalette.Axis)
}

// ArrowHead returns the three corners of the arrowhead for a shaft from
// "from" to "to": the tip followed by the two barbs. A zero-length shaft
// points along the positive x-axis.
func ArrowHead(from, to geometry.Vector) [3]geometry.Vector {
	shaft := to.Sub(from)
	angle := shaft.Angle()
	headLen := geometry.Clamp(geometry.Distance(from, to)*arrowHeadRatio, arrowHeadMin, arrowHeadMax)

	return [3]geometry.Vector{
		to,
		to.Sub(geometry.Polar(headLen, angle-arrowHeadAngle)),
		to.Sub(geometry.Polar(headLen, angle+arrowHeadAngle)),
	}
}

// DrawArrow draws a shaft from "from" to "to" and a filled triangular head at "to".
func DrawArrow(s Surface, from, to geometry.Vector, c color.Color) {
	s.StrokeLine(from, to, arrowLineWidth, c)

	head := ArrowHead(from, to)
	s.FillPath(new(Path).MoveTo(head[0]).LineTo(head[1]).LineTo(head[2]).Close(), c)
}

// LabelBox returns the background rectangle (origin and size) and the text
// origin for a label of the given text width anchored at anchor.
func LabelBox(anchor geometry.Vector, textWidth float64) (origin, size, textAt geometry.Vector) {
	textAt = anchor.Add(geometry.Vector{X: labelOffsetX, Y: labelOffsetY})
	size = geometry.Vector{X: textWidth + labelPadding*2, Y: labelHeight}
	origin = geometry.Vector{X: textAt.X - labelPadding, Y: textAt.Y - labelHeight + labelBaselineUp}
	return origin, size, textAt
}

// LabelVector draws text on a translucent rounded box next to anchor.
func LabelVector(s Surface, anchor geometry.Vector, text string, c color.Color) {
	origin, size, textAt := LabelBox(anchor, s.MeasureText(text))
	s.FillPath(RoundRect(origin, size, labelRadius), DefaultPalette.LabelBG)
	s.DrawText(text, textAt, c)
}

// RoundRect builds a rounded rectangle. The radius is reduced to half the
// width or height when the box is too small for it.
func RoundRect(origin, size geometry.Vector, radius float64) *Path {
	r := math.Min(radius, math.Min(size.X/2, size.Y/2))
	x, y, w, h := origin.X, origin.Y, size.X, size.Y

	return new(Path).
		MoveTo(geometry.Vector{X: x + r, Y: y}).
		LineTo(geometry.Vector{X: x + w - r, Y: y}).
		QuadTo(geometry.Vector{X: x + w, Y: y}, geometry.Vector{X: x + w, Y: y + r}).
		LineTo(geometry.Vector{X: x + w, Y: y + h - r}).
		QuadTo(geometry.Vector{X: x + w, Y: y + h}, geometry.Vector{X: x + w - r, Y: y + h}).
		LineTo(geometry.Vector{X: x + r, Y: y + h}).
		QuadTo(geometry.Vector{X: x, Y: y + h}, geometry.Vector{X: x, Y: y + h - r}).
		LineTo(geometry.Vector{X: x, Y: y + r}).
		QuadTo(geometry.Vector{X: x, Y: y}, geometry.Vector{X: x + r, Y: y}).
		Close()
}
