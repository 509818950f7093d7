package homotopy

import (
	"testing"
)

func TestIntersect2(t *testing.T) {
	s := Surface[float64](identity2)

	diff(t, [3]float64{0.3, 0.7, 0}, IntersectX2(0.3, s)(0.7))
	diff(t, [3]float64{0.7, 0.3, 0}, IntersectY2(0.3, s)(0.7))
}

func TestIntersect3(t *testing.T) {
	v := Volume[float64](identity3)
	p := [2]float64{0.1, 0.9}

	diff(t, [3]float64{0.5, 0.1, 0.9}, IntersectX3(0.5, v)(p))
	diff(t, [3]float64{0.1, 0.5, 0.9}, IntersectY3(0.5, v)(p))
	diff(t, [3]float64{0.1, 0.9, 0.5}, IntersectZ3(0.5, v)(p))
}

func TestIntersectSphere(t *testing.T) {
	// Fixing the radial input of a ball at 1 yields its surface, and fixing the
	// polar input of that surface at ½ yields the equator.
	eq := IntersectY2(0.5, IntersectZ3(1, Sphere([3]float64{0, 0, 0}, 3.0)))
	for _, tt := range []float64{0, 0.2, 0.5, 0.8} {
		p := eq(tt)
		if d := Len3(p); d < 3-1e-9 || d > 3+1e-9 {
			t.Errorf("got distance %v at %v, want 3", d, tt)
		}
		if p[2] != 0 {
			t.Errorf("got z = %v, want 0", p[2])
		}
	}
}
