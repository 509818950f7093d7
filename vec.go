package homotopy

// Points and vectors are plain arrays. The helpers below are all the vector
// arithmetic the combinators need.

// Add2 adds two 2d vectors.
func Add2[T Float](a, b [2]T) [2]T {
	return [2]T{a[0] + b[0], a[1] + b[1]}
}

// Sub2 computes a−b.
func Sub2[T Float](a, b [2]T) [2]T {
	return [2]T{a[0] - b[0], a[1] - b[1]}
}

// Scale2 multiplies every component of a by f.
func Scale2[T Float](a [2]T, f T) [2]T {
	return [2]T{a[0] * f, a[1] * f}
}

// Len2 returns the euclidean length of a.
func Len2[T Float](a [2]T) T {
	return sqrt(a[0]*a[0] + a[1]*a[1])
}

// Add3 adds two 3d vectors.
func Add3[T Float](a, b [3]T) [3]T {
	return [3]T{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Sub3 computes a−b.
func Sub3[T Float](a, b [3]T) [3]T {
	return [3]T{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Scale3 multiplies every component of a by f.
func Scale3[T Float](a [3]T, f T) [3]T {
	return [3]T{a[0] * f, a[1] * f, a[2] * f}
}

// Len3 returns the euclidean length of a.
func Len3[T Float](a [3]T) T {
	return sqrt(a[0]*a[0] + a[1]*a[1] + a[2]*a[2])
}

// Lerp3 linearly interpolates between a and b.
func Lerp3[T Float](a, b [3]T, t T) [3]T {
	// a + t * (b-a)
	return Add3(a, Scale3(Sub3(b, a), t))
}

// Cast2 converts the components of a to another scalar type.
func Cast2[U, T Float](a [2]T) [2]U {
	return [2]U{U(a[0]), U(a[1])}
}

// Cast3 converts the components of a to another scalar type.
func Cast3[U, T Float](a [3]T) [3]U {
	return [3]U{U(a[0]), U(a[1]), U(a[2])}
}

// IsNaN3 reports whether at least one component of a is NaN.
func IsNaN3[T Float](a [3]T) bool {
	return isNaN(a[0]) || isNaN(a[1]) || isNaN(a[2])
}
