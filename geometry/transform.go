package geometry

import "math"

const (
	// DefaultUnitPx is used when the canvas size cannot produce a usable scale.
	DefaultUnitPx = 30.0
	MinUnitPx     = 20.0
	MaxUnitPx     = 40.0

	// autoscaleMargin is the share of each axis kept free around the plot.
	autoscaleMargin = 0.15
)

// AutoscaleUnitPx picks how many pixels one world unit spans so that A, B and
// A+B fit inside a width x height canvas. The result is always a whole number
// in [MinUnitPx, MaxUnitPx]; non-finite or non-positive canvas sizes get
// DefaultUnitPx.
func AutoscaleUnitPx(pair VectorPair, width, height float64) float64 {
	if !isPositiveFinite(width) || !isPositiveFinite(height) {
		return DefaultUnitPx
	}

	maxAbs := pair.MaxAbs()
	halfW := width * (1 - autoscaleMargin) / 2
	halfH := height * (1 - autoscaleMargin) / 2
	unitX := halfW / maxAbs
	unitY := halfH / maxAbs

	unitPx := math.Floor(Clamp(math.Min(unitX, unitY), MinUnitPx, MaxUnitPx))
	if !isPositiveFinite(unitPx) {
		return DefaultUnitPx
	}
	return unitPx
}

// WorldToCanvas maps world coordinates to canvas pixels. The world origin sits
// at the canvas centre, x grows to the right and y grows upward.
func WorldToCanvas(x, y, unitPx, width, height float64) (px, py float64) {
	px = width/2 + x*unitPx
	py = height/2 - y*unitPx
	return px, py
}

// CanvasToWorld is the inverse of WorldToCanvas.
func CanvasToWorld(px, py, unitPx, width, height float64) (x, y float64) {
	x = (px - width/2) / unitPx
	y = (height/2 - py) / unitPx
	return x, y
}

// ToCanvas is WorldToCanvas for a Vector.
func ToCanvas(world Vector, unitPx, width, height float64) Vector {
	px, py := WorldToCanvas(world.X, world.Y, unitPx, width, height)
	return Vector{px, py}
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
