package homotopy

// Affine describes a 3D affine transform via coefficients.
//
// If the coefficients are (n0, …, n11), then the resulting transformation
// represents this augmented matrix:
//
//	| n0 n3 n6 n9  |
//	| n1 n4 n7 n10 |
//	| n2 n5 n8 n11 |
//	|  0  0  0  1  |
//
// The columns of the linear part come first, followed by the translation.
// The convention is that (A * B) * p == A * (B * p).
type Affine[T Float] struct {
	// Affine is a struct instead of an array because structs benefit from
	// SROA and arrays don't.

	N0, N1, N2, N3, N4, N5, N6, N7, N8, N9, N10, N11 T
}

// Identity returns the identity transform.
func Identity[T Float]() Affine[T] {
	return Affine[T]{N0: 1, N4: 1, N8: 1}
}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x, y and z.
func Scale[T Float](x, y, z T) Affine[T] {
	return Affine[T]{N0: x, N4: y, N8: z}
}

// Translate creates an affine transform representing translation.
func Translate[T Float](v [3]T) Affine[T] {
	return Affine[T]{N0: 1, N4: 1, N8: 1, N9: v[0], N10: v[1], N11: v[2]}
}

// RotateX creates an affine transform representing a rotation about the x
// axis. A positive angle rotates the positive y direction into positive z.
//
// The angle th is expressed in radians.
func RotateX[T Float](th T) Affine[T] {
	sin, cos := sincos(th)
	return Affine[T]{
		N0: 1,
		N4: cos, N5: sin,
		N7: -sin, N8: cos,
	}
}

// RotateY creates an affine transform representing a rotation about the y
// axis. A positive angle rotates the positive z direction into positive x.
func RotateY[T Float](th T) Affine[T] {
	sin, cos := sincos(th)
	return Affine[T]{
		N0: cos, N2: -sin,
		N4: 1,
		N6: sin, N8: cos,
	}
}

// RotateZ creates an affine transform representing a rotation about the z
// axis. A positive angle rotates the positive x direction into positive y.
func RotateZ[T Float](th T) Affine[T] {
	sin, cos := sincos(th)
	return Affine[T]{
		N0: cos, N1: sin,
		N3: -sin, N4: cos,
		N8: 1,
	}
}

// ReflectX creates an affine transform that reflects points across the plane
// of all points whose x coordinate is x. It agrees with [MirrorX].
func ReflectX[T Float](x T) Affine[T] {
	return Affine[T]{N0: -1, N4: 1, N8: 1, N9: 2 * x}
}

// ReflectY creates an affine transform that reflects points across the plane
// y = y. It agrees with [MirrorY].
func ReflectY[T Float](y T) Affine[T] {
	return Affine[T]{N0: 1, N4: -1, N8: 1, N10: 2 * y}
}

// ReflectZ creates an affine transform that reflects points across the plane
// z = z. It agrees with [MirrorZ].
func ReflectZ[T Float](z T) Affine[T] {
	return Affine[T]{N0: 1, N4: 1, N8: -1, N11: 2 * z}
}

// Coefficients returns the coefficients of the transform.
func (aff Affine[T]) Coefficients() [12]T {
	return [12]T{
		aff.N0, aff.N1, aff.N2,
		aff.N3, aff.N4, aff.N5,
		aff.N6, aff.N7, aff.N8,
		aff.N9, aff.N10, aff.N11,
	}
}

// Apply transforms the point p.
func (aff Affine[T]) Apply(p [3]T) [3]T {
	return [3]T{
		aff.N0*p[0] + aff.N3*p[1] + aff.N6*p[2] + aff.N9,
		aff.N1*p[0] + aff.N4*p[1] + aff.N7*p[2] + aff.N10,
		aff.N2*p[0] + aff.N5*p[1] + aff.N8*p[2] + aff.N11,
	}
}

// linear applies only the linear part of the transform to v.
func (aff Affine[T]) linear(v [3]T) [3]T {
	return [3]T{
		aff.N0*v[0] + aff.N3*v[1] + aff.N6*v[2],
		aff.N1*v[0] + aff.N4*v[1] + aff.N7*v[2],
		aff.N2*v[0] + aff.N5*v[1] + aff.N8*v[2],
	}
}

// Mul composes two transforms. The result applies o first, then aff.
func (aff Affine[T]) Mul(o Affine[T]) Affine[T] {
	c0 := aff.linear([3]T{o.N0, o.N1, o.N2})
	c1 := aff.linear([3]T{o.N3, o.N4, o.N5})
	c2 := aff.linear([3]T{o.N6, o.N7, o.N8})
	tr := aff.Apply([3]T{o.N9, o.N10, o.N11})
	return Affine[T]{
		c0[0], c0[1], c0[2],
		c1[0], c1[1], c1[2],
		c2[0], c2[1], c2[2],
		tr[0], tr[1], tr[2],
	}
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "Translate(v) * aff"
func (aff Affine[T]) ThenTranslate(v [3]T) Affine[T] {
	aff.N9 += v[0]
	aff.N10 += v[1]
	aff.N11 += v[2]
	return aff
}

// ThenScale creates aff followed by a scale of (x, y, z).
//
// Equivalent to "Scale(x, y, z) * aff"
func (aff Affine[T]) ThenScale(x, y, z T) Affine[T] {
	return Scale(x, y, z).Mul(aff)
}

// ThenRotateX creates aff followed by a rotation of th about the x axis.
func (aff Affine[T]) ThenRotateX(th T) Affine[T] {
	return RotateX(th).Mul(aff)
}

// ThenRotateY creates aff followed by a rotation of th about the y axis.
func (aff Affine[T]) ThenRotateY(th T) Affine[T] {
	return RotateY(th).Mul(aff)
}

// ThenRotateZ creates aff followed by a rotation of th about the z axis.
func (aff Affine[T]) ThenRotateZ(th T) Affine[T] {
	return RotateZ(th).Mul(aff)
}

// Determinant computes the determinant of the linear part.
func (aff Affine[T]) Determinant() T {
	return aff.N0*(aff.N4*aff.N8-aff.N7*aff.N5) -
		aff.N3*(aff.N1*aff.N8-aff.N7*aff.N2) +
		aff.N6*(aff.N1*aff.N5-aff.N4*aff.N2)
}

// Invert computes the inverse transform.
//
// Produces NaN or infinite values when the determinant is zero.
func (aff Affine[T]) Invert() Affine[T] {
	invDet := 1 / aff.Determinant()
	inv := Affine[T]{
		N0: invDet * (aff.N4*aff.N8 - aff.N7*aff.N5),
		N1: -invDet * (aff.N1*aff.N8 - aff.N7*aff.N2),
		N2: invDet * (aff.N1*aff.N5 - aff.N4*aff.N2),
		N3: -invDet * (aff.N3*aff.N8 - aff.N6*aff.N5),
		N4: invDet * (aff.N0*aff.N8 - aff.N6*aff.N2),
		N5: -invDet * (aff.N0*aff.N5 - aff.N3*aff.N2),
		N6: invDet * (aff.N3*aff.N7 - aff.N6*aff.N4),
		N7: -invDet * (aff.N0*aff.N7 - aff.N6*aff.N1),
		N8: invDet * (aff.N0*aff.N4 - aff.N3*aff.N1),
	}
	tr := inv.linear([3]T{aff.N9, aff.N10, aff.N11})
	inv.N9, inv.N10, inv.N11 = -tr[0], -tr[1], -tr[2]
	return inv
}

// Translation returns the translation component of this affine transformation.
func (aff Affine[T]) Translation() [3]T {
	return [3]T{aff.N9, aff.N10, aff.N11}
}

func (aff Affine[T]) IsNaN() bool {
	for _, n := range aff.Coefficients() {
		if isNaN(n) {
			return true
		}
	}
	return false
}

// Transform applies aff to every output point of a map of any rank.
// [Offset] and the mirror combinators are special cases of Transform.
func Transform[M Map[I, T], I any, T Float](aff Affine[T], a M) M {
	return M(func(t I) [3]T {
		return aff.Apply(a(t))
	})
}
