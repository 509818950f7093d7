package homotopy

// Circle creates a disc located at center with the given radius.
//
// The first input is the angle, starting at 0 and rotating 360 degrees around
// the center to end at 1. The second input is the distance from the center,
// as a fraction of the radius.
//
// The circle is flat along the z axis, at center's z coordinate.
func Circle[T Float](center [3]T, radius T) Surface[T] {
	tau := T(twoPi)
	return func(t [2]T) [3]T {
		sin, cos := sincos(t[0] * tau)
		r := radius * t[1]
		return [3]T{
			center[0] + r*cos,
			center[1] + r*sin,
			center[2],
		}
	}
}

// Sphere creates a ball located at center with the given radius.
//
// The first input controls the rotation around the z axis. The second input
// starts at the bottom of the sphere, z = center.z - radius, and moves up to
// the top. The third input is the distance from the z axis, as a fraction of
// the sphere's cross-section at that height.
func Sphere[T Float](center [3]T, radius T) Volume[T] {
	tau := T(twoPi)
	return func(t [3]T) [3]T {
		sin, cos := sincos(t[0] * tau)
		tx := 2*t[1] - 1
		r := radius * sqrt(1-tx*tx) * t[2]
		return [3]T{
			center[0] + r*cos,
			center[1] + r*sin,
			center[2] - radius + 2*radius*t[1],
		}
	}
}
