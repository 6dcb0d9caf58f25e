package geometry

import "cmp"

// Clamp limits value to the closed range [min, max].
func Clamp[T cmp.Ordered](value T, min T, max T) T {
	if value > max {
		value = max
		return value
	}

	if value < min {
		value = min
	}

	return value
}
