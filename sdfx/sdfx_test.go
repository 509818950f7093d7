package sdfx

import (
	"math"
	"testing"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/stretchr/testify/assert"
	"honnef.co/go/homotopy"
)

func assertNear(t *testing.T, want, got [3]float64) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, "component %d of %v", i, got)
	}
}

func TestConvert(t *testing.T) {
	p := [3]float64{1, -2, 3.5}
	assert.Equal(t, v3.Vec{X: 1, Y: -2, Z: 3.5}, ToV3(p))
	assert.Equal(t, p, FromV3(ToV3(p)))
}

func TestTransform(t *testing.T) {
	line := homotopy.Line([3]float64{0, 0, 0}, [3]float64{1, 0, 0})
	moved := Transform(sdf.Translate3d(v3.Vec{X: 1, Y: 2, Z: 3}), line)
	assertNear(t, [3]float64{1, 2, 3}, moved(0))
	assertNear(t, [3]float64{2, 2, 3}, moved(1))

	disc := homotopy.Circle([3]float64{0, 0, 0}, 1.0)
	turned := Transform(sdf.RotateZ(math.Pi/2), disc)
	want := homotopy.Transform(homotopy.RotateZ(math.Pi/2), disc)
	for _, p := range [][2]float64{{0, 1}, {0.3, 0.5}, {0.9, 1}} {
		assertNear(t, want(p), turned(p))
	}
}

func TestAffine(t *testing.T) {
	m := sdf.Translate3d(v3.Vec{X: 5, Y: 6, Z: 7}).Mul(sdf.RotateX(0.3)).Mul(sdf.Scale3d(v3.Vec{X: 2, Y: 3, Z: 4}))
	aff := Affine(m)
	for _, p := range [][3]float64{{0, 0, 0}, {1, 2, 3}, {-4, 0.5, 9}} {
		assertNear(t, FromV3(m.MulPosition(ToV3(p))), aff.Apply(p))
	}
	assertNear(t, [3]float64{5, 6, 7}, aff.Translation())
	assert.InDelta(t, 24, aff.Determinant(), 1e-9)
}

func TestBoundingBox(t *testing.T) {
	assert.Equal(t, sdf.Box3{}, BoundingBox(nil))

	box := BoundingBox([][3]float64{{1, 2, 3}, {math.NaN(), 0, 0}, {-1, 4, 0}})
	assert.Equal(t, sdf.Box3{
		Min: v3.Vec{X: -1, Y: 2, Z: 0},
		Max: v3.Vec{X: 1, Y: 4, Z: 3},
	}, box)
}
