package iterative

import "github.com/vorot/roots/core"

// Secant finds a root of f starting from two arbitrary points, using the
// secant through the two most recent samples as the next approximation.
//
// No bracketing or derivative is needed, but when several roots exist it
// is impossible to predict which one the method lands on, and it returns
// ErrZeroDerivative when two consecutive samples share the same value.
func Secant[F core.Float](first, second F, f Func[F], conv Convergency[F]) (F, error) {
	x1, y1 := first, f(first)
	if conv.RootFound(y1) {
		return x1, nil
	}
	x2, y2 := second, f(second)
	if conv.RootFound(y2) {
		return x2, nil
	}

	for iter := 0; ; {
		// A flat secant has no axis crossing to step to.
		if conv.RootFound(y1 - y2) {
			return 0, ErrZeroDerivative
		}

		x := x2 - y2*(x2-x1)/(y2-y1)
		if conv.Converged(x, x2) {
			return x, nil
		}
		y := f(x)
		if conv.RootFound(y) {
			return x, nil
		}

		x1, y1 = x2, y2
		x2, y2 = x, y

		iter++
		if conv.IterationLimit(iter) {
			return 0, ErrNoConvergence
		}
	}
}
