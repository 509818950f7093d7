package homotopy

import (
	"math"

	"github.com/chewxy/math32"
)

// twoPi is 2π, converted once per scalar type by the callers that need it.
const twoPi = 2 * math.Pi

// sqrt returns the square root of x. float32 values stay in single precision.
func sqrt[T Float](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Sqrt(f))
	}
	return T(math.Sqrt(float64(x)))
}

// sincos returns sin(x) and cos(x). float32 values stay in single precision.
func sincos[T Float](x T) (sin, cos T) {
	if f, ok := any(x).(float32); ok {
		s, c := math32.Sincos(f)
		return T(s), T(c)
	}
	s, c := math.Sincos(float64(x))
	return T(s), T(c)
}

// isNaN reports whether x is NaN.
func isNaN[T Float](x T) bool {
	return x != x
}
