package homotopy

// The intersection combinators fix one input of a map and return a map of
// lower rank over the remaining inputs. They slice the domain; they don't
// compute geometric intersections.

// IntersectX2 intersects a curved quad at the x-line, fixing its first input.
func IntersectX2[T Float](x T, a Surface[T]) Curve[T] {
	return func(t T) [3]T {
		return a([2]T{x, t})
	}
}

// IntersectY2 intersects a curved quad at the y-line, fixing its second input.
func IntersectY2[T Float](y T, a Surface[T]) Curve[T] {
	return func(t T) [3]T {
		return a([2]T{t, y})
	}
}

// IntersectX3 intersects a curved cube at the x-plane.
func IntersectX3[T Float](x T, a Volume[T]) Surface[T] {
	return func(t [2]T) [3]T {
		return a([3]T{x, t[0], t[1]})
	}
}

// IntersectY3 intersects a curved cube at the y-plane.
func IntersectY3[T Float](y T, a Volume[T]) Surface[T] {
	return func(t [2]T) [3]T {
		return a([3]T{t[0], y, t[1]})
	}
}

// IntersectZ3 intersects a curved cube at the z-plane.
func IntersectZ3[T Float](z T, a Volume[T]) Surface[T] {
	return func(t [2]T) [3]T {
		return a([3]T{t[0], t[1], z})
	}
}
