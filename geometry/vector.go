package geometry

import (
	"math"
)

// Vector is a point or displacement in the plane. It is used both for world
// coordinates (vector components) and for canvas pixel coordinates.
type Vector struct {
	X float64
	Y float64
}

func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y}
}

func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y}
}

func (v Vector) Scale(factor float64) Vector {
	return Vector{v.X * factor, v.Y * factor}
}

// Magnitude calculates the magnitude (length) of a vector
func (v Vector) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Angle returns the direction of the vector in radians, measured from the
// positive x-axis. The zero vector has angle 0.
func (v Vector) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Rotate rotates the vector counter-clockwise (in a y-up frame) by angle radians.
func (v Vector) Rotate(angle float64) Vector {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Vector{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Polar returns the vector of the given length pointing in direction angle.
func Polar(length, angle float64) Vector {
	return Vector{length * math.Cos(angle), length * math.Sin(angle)}
}
