package homotopy

// remap splits the unit interval at w. For t < w it reports true and t
// rescaled from [0, w) to [0, 1), otherwise false and t rescaled from [w, 1]
// to [0, 1].
//
// w must lie in (0, 1). At w = 0 or w = 1 one side has zero length, and the
// division produces Inf or NaN.
func remap[T Float](w, t T) (T, bool) {
	if t < w {
		return t / w, true
	}
	return (t - w) / (1 - w), false
}

// Concatenate1 joins two curves end to end. a occupies [0, w) of the new
// curve's domain and b occupies [w, 1], both rescaled so that the result is
// normalized again.
//
// The result is only continuous at w if a(1) == b(0).
func Concatenate1[T Float](w T, a, b Curve[T]) Curve[T] {
	return func(t T) [3]T {
		u, first := remap(w, t)
		if first {
			return a(u)
		}
		return b(u)
	}
}

// ConcatenateX2 joins two surfaces along the first axis, at weight w.
func ConcatenateX2[T Float](w T, a, b Surface[T]) Surface[T] {
	return func(t [2]T) [3]T {
		u, first := remap(w, t[0])
		if first {
			return a([2]T{u, t[1]})
		}
		return b([2]T{u, t[1]})
	}
}

// ConcatenateY2 joins two surfaces along the second axis, at weight w.
func ConcatenateY2[T Float](w T, a, b Surface[T]) Surface[T] {
	return func(t [2]T) [3]T {
		u, first := remap(w, t[1])
		if first {
			return a([2]T{t[0], u})
		}
		return b([2]T{t[0], u})
	}
}

// ConcatenateX3 joins two volumes along the first axis, at weight w.
func ConcatenateX3[T Float](w T, a, b Volume[T]) Volume[T] {
	return func(t [3]T) [3]T {
		u, first := remap(w, t[0])
		if first {
			return a([3]T{u, t[1], t[2]})
		}
		return b([3]T{u, t[1], t[2]})
	}
}

// ConcatenateY3 joins two volumes along the second axis, at weight w.
func ConcatenateY3[T Float](w T, a, b Volume[T]) Volume[T] {
	return func(t [3]T) [3]T {
		u, first := remap(w, t[1])
		if first {
			return a([3]T{t[0], u, t[2]})
		}
		return b([3]T{t[0], u, t[2]})
	}
}

// ConcatenateZ3 joins two volumes along the third axis, at weight w.
func ConcatenateZ3[T Float](w T, a, b Volume[T]) Volume[T] {
	return func(t [3]T) [3]T {
		u, first := remap(w, t[2])
		if first {
			return a([3]T{t[0], t[1], u})
		}
		return b([3]T{t[0], t[1], u})
	}
}
