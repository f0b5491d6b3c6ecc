package iterative

import "github.com/vorot/roots/core"

// NewtonRaphson finds a root of f starting from a single point, stepping
// by f(x)/df(x) each iteration.
//
// Converges quadratically near a simple root but needs the derivative df
// and offers no control over which root is found. A zero derivative at
// the starting point is corrected once by shifting the start by one unit;
// a zero derivative later aborts with ErrZeroDerivative.
func NewtonRaphson[F core.Float](start F, f, df Func[F], conv Convergency[F]) (F, error) {
	x := start

	for iter := 0; ; {
		y := f(x)
		d := df(x)
		if conv.RootFound(y) {
			return x, nil
		}
		if conv.RootFound(d) {
			if iter == 0 {
				// Stationary starting point; nudge and retry once.
				x++
				iter++
				continue
			}

			return 0, ErrZeroDerivative
		}

		x1 := x - y/d
		if conv.Converged(x, x1) {
			return x1, nil
		}

		x = x1
		iter++
		if conv.IterationLimit(iter) {
			return 0, ErrNoConvergence
		}
	}
}
