package homotopy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats with an absolute tolerance suitable for chains of a
// few trigonometric operations.
var approx = cmpopts.EquateApprox(0, 1e-9)

func assertNear(t *testing.T, got, want [3]float64, epsilon float64) {
	t.Helper()
	if d := Len3(Sub3(got, want)); !(d <= epsilon) {
		t.Fatalf("got %v, expected %v", got, want)
	}
}

// identity2 maps the unit square onto itself, in the z = 0 plane.
func identity2(t [2]float64) [3]float64 {
	return [3]float64{t[0], t[1], 0}
}

// identity3 maps the unit cube onto itself.
func identity3(t [3]float64) [3]float64 {
	return t
}
