package homotopy

// Offset translates every output point of a map of any rank by pos.
func Offset[M Map[I, T], I any, T Float](pos [3]T, a M) M {
	return M(func(t I) [3]T {
		return Add3(a(t), pos)
	})
}
