package homotopy

import (
	"math"
	"testing"
)

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := [3]float64{3, 4, 5}

	assertNear(t, Identity[float64]().Apply(p), p, epsilon)
	assertNear(t, Scale(2.0, 3, 4).Apply(p), [3]float64{6, 12, 20}, epsilon)
	assertNear(t, RotateZ(0.0).Apply(p), p, epsilon)
	assertNear(t, RotateZ(math.Pi/2).Apply(p), [3]float64{-4, 3, 5}, epsilon)
	assertNear(t, RotateX(math.Pi/2).Apply(p), [3]float64{3, -5, 4}, epsilon)
	assertNear(t, RotateY(math.Pi/2).Apply(p), [3]float64{5, 4, -3}, epsilon)
	assertNear(t, Translate([3]float64{5, 6, 7}).Apply(p), [3]float64{8, 10, 12}, epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine[float64]{2, 0.5, 0.1, 0.3, 1.5, -0.2, 0.4, 0.1, 3, 5, -6, 7}
	a2 := RotateX(0.3).ThenTranslate([3]float64{1, 2, 3}).ThenScale(1, 2, 0.5)

	for _, p := range [][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 1}} {
		assertNear(t, a1.Mul(a2).Apply(p), a1.Apply(a2.Apply(p)), epsilon)
	}
}

func TestAffineThen(t *testing.T) {
	const epsilon = 1e-9
	aff := Identity[float64]().ThenRotateZ(math.Pi / 2).ThenTranslate([3]float64{1, 2, 3})
	assertNear(t, aff.Apply([3]float64{1, 0, 0}), [3]float64{1, 3, 3}, epsilon)
	diff(t, [3]float64{1, 2, 3}, aff.Translation())

	aff = Translate([3]float64{1, 0, 0}).ThenScale(2, 2, 2)
	assertNear(t, aff.Apply([3]float64{0, 0, 0}), [3]float64{2, 0, 0}, epsilon)
}

func TestAffineInvert(t *testing.T) {
	const epsilon = 1e-9
	a := Affine[float64]{2, 0.5, 0.1, 0.3, 1.5, -0.2, 0.4, 0.1, 3, 5, -6, 7}
	aInv := a.Invert()

	for _, p := range [][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 2, 3}} {
		assertNear(t, a.Apply(aInv.Apply(p)), p, epsilon)
		assertNear(t, aInv.Apply(a.Apply(p)), p, epsilon)
	}
}

func TestAffineDeterminant(t *testing.T) {
	if got := Scale(2.0, 3, 4).Determinant(); got != 24 {
		t.Errorf("got %v, want 24", got)
	}
	if got := ReflectY(5.0).Determinant(); got != -1 {
		t.Errorf("got %v, want -1", got)
	}
	if Identity[float64]().IsNaN() {
		t.Error("identity contains NaN")
	}
	if !Scale(0.0, 1, 1).Invert().IsNaN() {
		t.Error("inverse of singular transform doesn't contain NaN")
	}
}

func TestReflection(t *testing.T) {
	a := Line([3]float64{1, 2, 3}, [3]float64{-4, 5, 0.5})
	for _, tt := range []float64{0, 0.3, 1} {
		diff(t, MirrorX(3, a)(tt), ReflectX(3.0).Apply(a(tt)))
		diff(t, MirrorY(-1, a)(tt), ReflectY(-1.0).Apply(a(tt)))
		diff(t, MirrorZ(0.5, a)(tt), ReflectZ(0.5).Apply(a(tt)))
	}
}

func TestTransform(t *testing.T) {
	v := [3]float64{1, 2, 3}
	s := Surface[float64](identity2)
	moved := Transform(Translate(v), s)
	for _, p := range [][2]float64{{0, 0}, {0.25, 0.5}, {1, 1}} {
		diff(t, Offset(v, s)(p), moved(p))
	}

	// Transform returns a map of the same rank and scalar type it was given.
	var c Curve[float32] = Transform(RotateZ[float32](math.Pi/2), Line([3]float32{0, 0, 0}, [3]float32{1, 0, 0}))
	got := c(1)
	if got[0] > 1e-6 || got[0] < -1e-6 || got[1] < 1-1e-6 || got[1] > 1+1e-6 {
		t.Errorf("got %v, want [0 1 0]", got)
	}
}
