package homotopy

// Contour returns the boundary of a curved quad as a closed curve. Each edge
// of the quad's domain takes up a quarter of the curve:
//
//	[0, ¼):  [0, 0] → [1, 0]
//	[¼, ½):  [1, 0] → [1, 1]
//	[½, ¾):  [1, 1] → [0, 1]
//	[¾, 1]:  [0, 1] → [0, 0]
func Contour[T Float](a Surface[T]) Curve[T] {
	return func(t T) [3]T {
		switch {
		case t < 0.25:
			return a([2]T{4 * t, 0})
		case t < 0.5:
			return a([2]T{1, 4 * (t - 0.25)})
		case t < 0.75:
			return a([2]T{1 - 4*(t-0.5), 1})
		default:
			return a([2]T{0, 1 - 4*(t-0.75)})
		}
	}
}
