package iterative_test

import (
	"testing"

	"github.com/vorot/roots/iterative"
)

func benchTarget(x float64) float64 { return x*x*x - 2*x - 5 }

func BenchmarkBrent(b *testing.B) {
	conv := iterative.NewTolerance(1e-12, 100)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = iterative.Brent(2.0, 3.0, benchTarget, conv)
	}
}

func BenchmarkRegulaFalsi(b *testing.B) {
	conv := iterative.NewTolerance(1e-12, 100)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = iterative.RegulaFalsi(2.0, 3.0, benchTarget, conv)
	}
}

func BenchmarkNewtonRaphson(b *testing.B) {
	df := func(x float64) float64 { return 3*x*x - 2 }
	conv := iterative.NewTolerance(1e-12, 100)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = iterative.NewtonRaphson(2.0, benchTarget, df, conv)
	}
}
