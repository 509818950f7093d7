package homotopy

import (
	"golang.org/x/exp/constraints"
)

// Float describes the scalar types maps can be built over. All maps taking
// part in one composition share a single choice of Float.
type Float interface {
	constraints.Float
}

// Curve is a homotopy map of type 1d -> 3d. Its input is normalized to
// [0, 1], which makes it a curved line.
type Curve[T Float] func(t T) [3]T

// Surface is a homotopy map of type 2d -> 3d. Its inputs are normalized to
// [0, 1]², which makes it a curved quad.
type Surface[T Float] func(t [2]T) [3]T

// Volume is a homotopy map of type 3d -> 3d. Its inputs are normalized to
// [0, 1]³, which makes it a curved cube.
//
// A curved cube doesn't have to look like a cube. The identity map gives a
// cube, but [Sphere] shows that very different shapes fit the same domain.
type Volume[T Float] func(t [3]T) [3]T

// Map is satisfied by the maps of every rank. It is used by the combinators
// that only touch a map's output, such as [MirrorX] and [Offset], so that
// they return a map of the same rank they were given.
type Map[I any, T Float] interface {
	~func(I) [3]T
}

// Curver describes values that can be evaluated like a [Curve].
type Curver[T Float] interface {
	// Eval evaluates the curve at parameter t. Generally, t is in the range [0, 1].
	Eval(t T) [3]T
}

// Surfacer describes values that can be evaluated like a [Surface].
type Surfacer[T Float] interface {
	Eval(t [2]T) [3]T
}

// Volumer describes values that can be evaluated like a [Volume].
type Volumer[T Float] interface {
	Eval(t [3]T) [3]T
}

var _ Curver[float64] = Curve[float64](nil)
var _ Surfacer[float64] = Surface[float64](nil)
var _ Volumer[float32] = Volume[float32](nil)

// Eval evaluates the curve at t.
func (c Curve[T]) Eval(t T) [3]T { return c(t) }

// Eval evaluates the surface at t.
func (s Surface[T]) Eval(t [2]T) [3]T { return s(t) }

// Eval evaluates the volume at t.
func (v Volume[T]) Eval(t [3]T) [3]T { return v(t) }

// CurveOf adapts any [Curver] to a [Curve].
func CurveOf[T Float](c Curver[T]) Curve[T] {
	if f, ok := c.(Curve[T]); ok {
		return f
	}
	return c.Eval
}

// SurfaceOf adapts any [Surfacer] to a [Surface].
func SurfaceOf[T Float](s Surfacer[T]) Surface[T] {
	if f, ok := s.(Surface[T]); ok {
		return f
	}
	return s.Eval
}

// VolumeOf adapts any [Volumer] to a [Volume].
func VolumeOf[T Float](v Volumer[T]) Volume[T] {
	if f, ok := v.(Volume[T]); ok {
		return f
	}
	return v.Eval
}
