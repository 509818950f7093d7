package homotopy

// MirrorX mirrors the output of a map of any rank around the yz-plane at x,
// i.e. the plane of all points whose x coordinate equals x.
func MirrorX[M Map[I, T], I any, T Float](x T, a M) M {
	return M(func(t I) [3]T {
		pos := a(t)
		return [3]T{2*x - pos[0], pos[1], pos[2]}
	})
}

// MirrorY mirrors the output of a map of any rank around the xz-plane at y.
func MirrorY[M Map[I, T], I any, T Float](y T, a M) M {
	return M(func(t I) [3]T {
		pos := a(t)
		return [3]T{pos[0], 2*y - pos[1], pos[2]}
	})
}

// MirrorZ mirrors the output of a map of any rank around the xy-plane at z.
func MirrorZ[M Map[I, T], I any, T Float](z T, a M) M {
	return M(func(t I) [3]T {
		pos := a(t)
		return [3]T{pos[0], pos[1], 2*z - pos[2]}
	})
}

// BakedMirrorX2 bakes a mirror into a surface. The first half of the first
// axis evaluates a, the second half evaluates a mirrored around the yz-plane
// at x. This folds a half shape into a symmetric whole.
func BakedMirrorX2[T Float](x T, a Surface[T]) Surface[T] {
	return ConcatenateX2(0.5, a, MirrorX(x, a))
}

// BakedMirrorY2 is like [BakedMirrorX2], but splits the second axis and
// mirrors around the xz-plane at y.
func BakedMirrorY2[T Float](y T, a Surface[T]) Surface[T] {
	return ConcatenateY2(0.5, a, MirrorY(y, a))
}

// BakedMirrorX3 bakes a mirror around the yz-plane at x into the first axis
// of a volume.
func BakedMirrorX3[T Float](x T, a Volume[T]) Volume[T] {
	return ConcatenateX3(0.5, a, MirrorX(x, a))
}

// BakedMirrorY3 bakes a mirror around the xz-plane at y into the second axis
// of a volume.
func BakedMirrorY3[T Float](y T, a Volume[T]) Volume[T] {
	return ConcatenateY3(0.5, a, MirrorY(y, a))
}

// BakedMirrorZ3 bakes a mirror around the xy-plane at z into the third axis
// of a volume.
func BakedMirrorZ3[T Float](z T, a Volume[T]) Volume[T] {
	return ConcatenateZ3(0.5, a, MirrorZ(z, a))
}
