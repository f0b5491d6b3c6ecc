package polynom_test

import (
	"fmt"

	"github.com/vorot/roots/iterative"
	"github.com/vorot/roots/polynom"
)

// ExampleSolve finds the roots of the degree-five polynomial
// (x-1)(x-2)(x-3)(x-4)(x-5).
func ExampleSolve() {
	a := []float64{-15, 85, -225, 274, -120}

	roots, err := polynom.Solve(a, iterative.NewTolerance(1e-12, 100))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, r := range roots {
		fmt.Printf("%.3f\n", r)
	}
	// Output:
	// 1.000
	// 2.000
	// 3.000
	// 4.000
	// 5.000
}
