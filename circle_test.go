package homotopy

import (
	"math"
	"testing"
)

func TestCircle(t *testing.T) {
	const epsilon = 1e-9
	c := Circle([3]float64{0, 0, 0}, 1.0)

	assertNear(t, c([2]float64{0, 1}), [3]float64{1, 0, 0}, epsilon)
	assertNear(t, c([2]float64{0.25, 1}), [3]float64{0, 1, 0}, epsilon)
	assertNear(t, c([2]float64{0.5, 1}), [3]float64{-1, 0, 0}, epsilon)
	assertNear(t, c([2]float64{1, 1}), [3]float64{1, 0, 0}, epsilon)

	center := [3]float64{2, -3, 5}
	c = Circle(center, 4.0)
	diff(t, center, c([2]float64{0.3, 0}))
	assertNear(t, c([2]float64{0.25, 0.5}), [3]float64{2, -1, 5}, epsilon)
	for _, a := range []float64{0, 0.1, 0.37, 0.8} {
		if z := c([2]float64{a, 0.7})[2]; z != 5 {
			t.Errorf("got z = %v, want 5", z)
		}
	}
}

func TestSphere(t *testing.T) {
	const epsilon = 1e-9
	s := Sphere([3]float64{0, 0, 0}, 1.0)

	for _, az := range []float64{0, 0.3, 0.9} {
		for _, r := range []float64{0, 0.5, 1} {
			bottom := s([3]float64{az, 0, r})
			assertNear(t, bottom, [3]float64{0, 0, -1}, epsilon)
			top := s([3]float64{az, 1, r})
			assertNear(t, top, [3]float64{0, 0, 1}, epsilon)
		}
	}

	// The equator has the full radius.
	assertNear(t, s([3]float64{0, 0.5, 1}), [3]float64{1, 0, 0}, epsilon)
	assertNear(t, s([3]float64{0.25, 0.5, 1}), [3]float64{0, 1, 0}, epsilon)

	// Every point with a radial input of 1 lies on the sphere.
	center := [3]float64{1, 2, 3}
	s = Sphere(center, 2.5)
	for _, p := range [][3]float64{{0.1, 0.2, 1}, {0.6, 0.75, 1}, {0.99, 0.01, 1}} {
		if d := Len3(Sub3(s(p), center)); math.Abs(d-2.5) > epsilon {
			t.Errorf("distance from center at %v is %v, want 2.5", p, d)
		}
	}
}

func TestCircleFloat32(t *testing.T) {
	c := Circle([3]float32{0, 0, 0}, 2)
	p := c([2]float32{0.25, 1})
	want := [3]float32{0, 2, 0}
	if d := Len3(Sub3(p, want)); d > 1e-5 {
		t.Errorf("got %v, want %v", p, want)
	}

	s := Sphere([3]float32{0, 0, 0}, 1)
	if z := s([3]float32{0.5, 1, 1})[2]; z != 1 {
		t.Errorf("got z = %v, want 1", z)
	}
}
