package geometry

import (
	"fmt"
	"math"
)

// MaxComponent is the largest magnitude a component may have. Sums of
// bounded components never overflow int.
const MaxComponent = 999999

// VectorPair holds the two integer vectors A = (AX, AY) and B = (BX, BY).
// Any integers are accepted, including the all-zero pair.
type VectorPair struct {
	AX int `json:"ax" mapstructure:"ax"`
	AY int `json:"ay" mapstructure:"ay"`
	BX int `json:"bx" mapstructure:"bx"`
	BY int `json:"by" mapstructure:"by"`
}

func NewVectorPair(ax, ay, bx, by int) VectorPair {
	return VectorPair{AX: ax, AY: ay, BX: bx, BY: by}
}

// A returns vector A in world coordinates.
func (p VectorPair) A() Vector {
	return Vector{float64(p.AX), float64(p.AY)}
}

// B returns vector B in world coordinates.
func (p VectorPair) B() Vector {
	return Vector{float64(p.BX), float64(p.BY)}
}

// Sum returns the integer components of A+B.
func (p VectorPair) Sum() (sx, sy int) {
	return p.AX + p.BX, p.AY + p.BY
}

// SumVector returns A+B in world coordinates.
func (p VectorPair) SumVector() Vector {
	return p.A().Add(p.B())
}

// SumText formats A+B as a coordinate pair, e.g. "(5, -3)".
func (p VectorPair) SumText() string {
	sx, sy := p.Sum()
	return fmt.Sprintf("(%d, %d)", sx, sy)
}

// Degenerate reports whether A, B or A+B is the zero vector.
func (p VectorPair) Degenerate() bool {
	sx, sy := p.Sum()
	return (p.AX == 0 && p.AY == 0) ||
		(p.BX == 0 && p.BY == 0) ||
		(sx == 0 && sy == 0)
}

// MaxAbs is the largest absolute component across A, B and A+B, floored at 1.
// It is computed in float64 so the sum of extreme integers cannot overflow.
func (p VectorPair) MaxAbs() float64 {
	ax, ay := float64(p.AX), float64(p.AY)
	bx, by := float64(p.BX), float64(p.BY)

	maxAbs := 1.0
	for _, c := range []float64{ax, ay, bx, by, ax + bx, ay + by} {
		maxAbs = math.Max(maxAbs, math.Abs(c))
	}
	return maxAbs
}

// Bounded reports whether every component lies in [-MaxComponent, MaxComponent].
func (p VectorPair) Bounded() bool {
	for _, c := range []int{p.AX, p.AY, p.BX, p.BY} {
		if !ComponentInRange(c) {
			return false
		}
	}
	return true
}

func ComponentInRange(c int) bool {
	return c >= -MaxComponent && c <= MaxComponent
}

func (p VectorPair) String() string {
	return fmt.Sprintf("a=(%d, %d) b=(%d, %d)", p.AX, p.AY, p.BX, p.BY)
}
