package polynom_test

import (
	"testing"

	"github.com/vorot/roots/iterative"
	"github.com/vorot/roots/polynom"
)

func BenchmarkSolve_DegreeFive(b *testing.B) {
	a := []float64{-15, 85, -225, 274, -120}
	conv := iterative.NewTolerance(1e-12, 100)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = polynom.Solve(a, conv)
	}
}

func BenchmarkEval_DegreeFive(b *testing.B) {
	a := []float64{-15, 85, -225, 274, -120}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = polynom.Eval(a, 2.5)
	}
}
