package geometry

// Distance calculates the length of the segment between two points
func Distance(from, to Vector) float64 {
	return to.Sub(from).Magnitude()
}
