package homotopy

// Extend1 extends a curve into a surface by adding the vector generated by b
// to the point generated by a. The first input drives a, the second drives b.
// This sweeps a along b.
func Extend1[T Float](a, b Curve[T]) Surface[T] {
	return func(t [2]T) [3]T {
		return Add3(a(t[0]), b(t[1]))
	}
}

// Extend2 extends a surface into a volume by adding the vector generated by
// the curve a. The first input drives a, the remaining two drive b.
func Extend2[T Float](a Curve[T], b Surface[T]) Volume[T] {
	return func(t [3]T) [3]T {
		return Add3(a(t[0]), b([2]T{t[1], t[2]}))
	}
}
