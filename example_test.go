package homotopy_test

import (
	"fmt"

	"honnef.co/go/homotopy"
)

func ExampleConcatenate1() {
	a := homotopy.Line([3]float64{0, 0, 0}, [3]float64{1, 0, 0})
	b := homotopy.Line([3]float64{1, 0, 0}, [3]float64{1, 1, 0})
	c := homotopy.Concatenate1(0.5, a, b)
	for _, t := range []float64{0, 0.25, 0.5, 0.75, 1} {
		fmt.Println(c(t))
	}
	// Output:
	// [0 0 0]
	// [0.5 0 0]
	// [1 0 0]
	// [1 0.5 0]
	// [1 1 0]
}

func ExampleCQuad() {
	ab := homotopy.Line([3]float64{0, 0, 0}, [3]float64{0, 1, 0})
	cd := homotopy.Line([3]float64{1, 0, 0}, [3]float64{1, 1, 0})
	ac := homotopy.Line([3]float64{0, 0, 0}, [3]float64{1, 0, 0})
	bd := homotopy.Line([3]float64{0, 1, 0}, [3]float64{1, 1, 0})
	quad := homotopy.CQuad(0, ab, cd, ac, bd)
	fmt.Println(quad([2]float64{0.5, 0.5}))
	// Output:
	// [0.5 0.5 0]
}

func ExampleIntersectZ3() {
	ball := homotopy.Sphere([3]float64{0, 0, 0}, 3.0)
	shell := homotopy.IntersectZ3(1, ball)
	equator := homotopy.IntersectY2(0.5, shell)
	for _, t := range []float64{0, 0.25, 0.5} {
		p := equator(t)
		fmt.Printf("%.3f %.3f %.3f\n", p[0], p[1], p[2])
	}
	// Output:
	// 3.000 0.000 0.000
	// 0.000 3.000 0.000
	// -3.000 0.000 0.000
}
