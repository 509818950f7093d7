package homotopy

// CQuad constructs a curved quad by smoothing between four boundary curves.
//
// ab and cd are evaluated at t[1] and interpolated along t[0]; ac and bd are
// evaluated at t[0] and interpolated along t[1]. The two interpolants are
// blended with the weights
//
//	w0 = 4(t[0]-½)² + smooth
//	w1 = 4(t[1]-½)² + smooth
//
// normalized to sum to one. Near the edges of an axis, the interpolant along
// that axis dominates. At the center both weights reach their minimum, smooth.
// A smooth of 0 gives a blend that is singular at the center, and larger
// values flatten the blend towards an even mix everywhere.
//
// Degenerate weights are handled explicitly. A normalized weight of exactly
// one returns the corresponding interpolant unmodified, and if the raw
// weights sum to zero, the result is the midpoint of the two interpolants.
func CQuad[T Float](smooth T, ab, cd, ac, bd Curve[T]) Surface[T] {
	return func(t [2]T) [3]T {
		abx := ab(t[1])
		cdx := cd(t[1])
		acx := ac(t[0])
		bdx := bd(t[0])

		w0 := 4*(t[0]-0.5)*(t[0]-0.5) + smooth
		w1 := 4*(t[1]-0.5)*(t[1]-0.5) + smooth
		if sum := w0 + w1; sum != 0 {
			w0, w1 = w0/sum, w1/sum
		} else {
			w0, w1 = 0, 0
		}

		a := Add3(abx, Scale3(Sub3(cdx, abx), t[0]))
		b := Add3(acx, Scale3(Sub3(bdx, acx), t[1]))
		switch {
		case w0 == 1:
			return a
		case w1 == 1:
			return b
		case w0+w1 == 0:
			return Scale3(Add3(a, b), 0.5)
		default:
			return Add3(Scale3(a, w0), Scale3(b, w1))
		}
	}
}
