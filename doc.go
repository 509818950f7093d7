// Package homotopy provides higher order functions for constructing 3D
// geometry out of homotopy maps.
//
// # Homotopy maps
//
// A [homotopy] is a continuous deformation between two functions. Think of
// combining two functions f and g with a parameter between 0 and 1, such that
// setting the parameter to 0 gives f and setting it to 1 gives g. In other
// words, it lets you interpolate smoothly between functions.
//
// This package uses a simplified version designed for constructing 3D
// geometry. A homotopy map is a function from a normalized parameter domain to
// a point in 3D space:
//
//   - [Curve] is a function of type 1d -> 3d, a curved line.
//   - [Surface] is a function of type 2d -> 3d, a curved quad.
//   - [Volume] is a function of type 3d -> 3d, a curved cube.
//
// All inputs are assumed to be normalized, starting at 0 and ending at 1.
// Basic geometric shapes are continuous within that range. Maps are plain Go
// function values: they are immutable once constructed, can be shared freely,
// and are safe to evaluate from multiple goroutines at once.
//
// # Laziness
//
// Combinators build new maps out of existing ones without ever materializing
// a mesh. Evaluation is deferred until a caller samples a parameter value,
// which then flows down through the nested functions. This makes it cheap to
// iterate on a design, to derive models of various levels of detail from one
// description, or to slice a curved cube into a curved quad with
// [IntersectZ3].
//
// Function names are kept short where the shapes are well-known, because
// descriptions of geometry tend to nest deeply.
//
// # Combinators
//
// The package provides the following primitive constructors:
//   - [Line]
//   - [QuadraticBezier]
//   - [CubicBezier]
//   - [Circle]
//   - [Sphere]
//
// Interpolation combinators blend maps of the same rank: [Lin2] crossfades
// two curves, and [CQuad] reconstructs the interior of a curved quad from its
// four boundary curves.
//
// Domain combinators remap a map's inputs while keeping them normalized:
// [Concatenate1] and its axis-specific variants such as [ConcatenateX2] join
// maps end to end, [Segment] and [Reverse] pick parts of a curve, and
// [Margin1], [Margin2] and [Margin3] inset a map's domain.
//
// Output combinators work on maps of any rank: [MirrorX], [MirrorY],
// [MirrorZ], [Offset] and [Transform]. The baked mirrors, such as
// [BakedMirrorX3], fold a half shape into a symmetric whole.
//
// Dimensional combinators change a map's rank. [Extend1] and [Extend2] add
// one, [Contour] and the intersections such as [IntersectX3] remove one.
//
// # Scalars
//
// Every map is generic over a single [Float] type. Most code will use
// float64, but float32 works too, in which case square roots and trigonometry
// are computed in single precision.
//
// # Numeric edge cases
//
// Combinators don't validate their arguments. Degenerate parameters, such as
// a concatenation weight of exactly 0 or 1, or a margin of -½, produce
// infinities and NaNs according to IEEE 754, which then propagate through
// the composition. The only exception is [CQuad], which handles degenerate
// blend weights explicitly.
//
// [homotopy]: https://en.wikipedia.org/wiki/Homotopy
package homotopy
