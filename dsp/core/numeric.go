package core

import "math"

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// ToFixed converts a real-valued sample to fixed point by scaling and
// rounding to the nearest integer.
func ToFixed(v float64, scale int64) int64 {
	return int64(math.Round(v * float64(scale)))
}

// FromFixed converts a fixed-point sample back to a real value.
func FromFixed(v, scale int64) float64 {
	return float64(v) / float64(scale)
}
