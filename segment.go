package homotopy

// Segment picks the part of a between range[0] and range[1] and normalizes it
// again. If range[0] > range[1], the segment runs backwards.
func Segment[T Float](rng [2]T, a Curve[T]) Curve[T] {
	d := rng[1] - rng[0]
	return func(t T) [3]T {
		return a(rng[0] + d*t)
	}
}

// Reverse reverses the direction of a, so that it starts at a(1) and ends at
// a(0).
func Reverse[T Float](a Curve[T]) Curve[T] {
	return Segment([2]T{1, 0}, a)
}

// marginScale returns the factor 1/(1+2m) used by the margin combinators.
// It is infinite for m = -½.
func marginScale[T Float](m T) T {
	return 1 / (1 + 2*m)
}

// Margin1 adds a margin m to the input of a curve. The input t is mapped to
// (t+m)/(1+2m), which means that the new curve starts at a(m/(1+2m)) and ends
// at a((1+m)/(1+2m)).
//
// This is a rescale of the whole domain, not a crop of a to [m, 1-m].
func Margin1[T Float](m T, a Curve[T]) Curve[T] {
	s := marginScale(m)
	return func(t T) [3]T {
		return a((t + m) * s)
	}
}

// Margin2 adds a margin m to both inputs of a surface. See [Margin1].
func Margin2[T Float](m T, a Surface[T]) Surface[T] {
	s := marginScale(m)
	return func(t [2]T) [3]T {
		return a([2]T{(t[0] + m) * s, (t[1] + m) * s})
	}
}

// Margin3 adds a margin m to all inputs of a volume. See [Margin1].
func Margin3[T Float](m T, a Volume[T]) Volume[T] {
	s := marginScale(m)
	return func(t [3]T) [3]T {
		return a([3]T{(t[0] + m) * s, (t[1] + m) * s, (t[2] + m) * s})
	}
}
