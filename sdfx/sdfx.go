// Package sdfx connects homotopy maps to the sdfx CAD kernel. It converts
// between the vector and transform types of both packages, so that maps can
// be positioned with sdfx matrices and sampled geometry can be bounded with
// sdfx boxes.
package sdfx

import (
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"honnef.co/go/homotopy"
	"honnef.co/go/homotopy/sample"
)

// ToV3 converts a point to an sdfx vector.
func ToV3(p [3]float64) v3.Vec {
	return v3.Vec{X: p[0], Y: p[1], Z: p[2]}
}

// FromV3 converts an sdfx vector to a point.
func FromV3(v v3.Vec) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// Transform applies m to every output point of a map of any rank.
func Transform[M homotopy.Map[I, float64], I any](m sdf.M44, a M) M {
	return M(func(t I) [3]float64 {
		return FromV3(m.MulPosition(ToV3(a(t))))
	})
}

// Affine returns the affine transform described by m. The bottom row of m is
// assumed to be (0, 0, 0, 1).
func Affine(m sdf.M44) homotopy.Affine[float64] {
	o := FromV3(m.MulPosition(v3.Vec{}))
	x := homotopy.Sub3(FromV3(m.MulPosition(v3.Vec{X: 1})), o)
	y := homotopy.Sub3(FromV3(m.MulPosition(v3.Vec{Y: 1})), o)
	z := homotopy.Sub3(FromV3(m.MulPosition(v3.Vec{Z: 1})), o)
	return homotopy.Affine[float64]{
		N0: x[0], N1: x[1], N2: x[2],
		N3: y[0], N4: y[1], N5: y[2],
		N6: z[0], N7: z[1], N8: z[2],
		N9: o[0], N10: o[1], N11: o[2],
	}
}

// BoundingBox returns the sdfx box enclosing points, ignoring points with NaN
// coordinates. It returns the zero box if there are no such points.
func BoundingBox(points [][3]float64) sdf.Box3 {
	box, ok := sample.Bounds(points)
	if !ok {
		return sdf.Box3{}
	}
	return sdf.Box3{
		Min: v3.Vec{X: box.Min.X, Y: box.Min.Y, Z: box.Min.Z},
		Max: v3.Vec{X: box.Max.X, Y: box.Max.Y, Z: box.Max.Z},
	}
}
