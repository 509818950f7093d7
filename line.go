package homotopy

// Line returns the straight curve from a to b, a + (b-a)*t.
func Line[T Float](a, b [3]T) Curve[T] {
	d := Sub3(b, a)
	return func(t T) [3]T {
		return Add3(a, Scale3(d, t))
	}
}

// Lin2 creates a linear interpolation between two curves,
// a(t)*(1-t) + b(t)*t. At t = 0 it evaluates to a(0), at t = 1 to b(1).
//
// Nesting Lin2 over lines is how the Bézier constructors are built.
func Lin2[T Float](a, b Curve[T]) Curve[T] {
	return func(t T) [3]T {
		return Add3(Scale3(a(t), 1-t), Scale3(b(t), t))
	}
}

// QuadraticBezier returns the quadratic Bézier curve with control points a, b
// and c.
func QuadraticBezier[T Float](a, b, c [3]T) Curve[T] {
	return Lin2(Line(a, b), Line(b, c))
}

// CubicBezier blends the chords a→b and c→d.
//
// This is not the standard cubic Bézier through four control points, which
// would blend a→b, b→c and c→d over two more levels of [Lin2]. Shapes built
// with this constructor depend on the blend as it is, so it is kept. The
// curve still starts at a and ends at d.
func CubicBezier[T Float](a, b, c, d [3]T) Curve[T] {
	return Lin2(Line(a, b), Line(c, d))
}
