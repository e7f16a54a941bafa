package math

import (
	m "math"

	"golang.org/x/exp/constraints"
)

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// Lerp linearly interpolates between a and b.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

// fma computes a*b + c. It is not fused; the name mirrors the operation.
func fma(a, b, c float64) float64 {
	return a*b + c
}

// sinCos returns the sine and cosine of angle.
func sinCos(angle float64) (float64, float64) {
	return m.Sincos(angle)
}

func invSqrt(v float64) float64 {
	return 1.0 / m.Sqrt(v)
}
