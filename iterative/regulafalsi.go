package iterative

import "github.com/vorot/roots/core"

// Which endpoint the previous iteration replaced; repeating the same
// endpoint triggers the Illinois damping below.
type falsiEdge int

const (
	noEdge falsiEdge = iota
	edgeLow
	edgeHigh
)

// RegulaFalsi finds a root of f inside [a, b] using the Illinois
// modification of the false-position method.
//
// Slow but robust: the bracket never loses the root. Classical regula
// falsi stalls when one endpoint stays fixed; the Illinois variant halves
// the stale endpoint's function value whenever the same end is replaced
// twice in a row, which restores superlinear convergence.
//
// Returns ErrNoBracketing when f(a) and f(b) share a sign.
func RegulaFalsi[F core.Float](a, b F, f Func[F], conv Convergency[F]) (F, error) {
	x1, x2 := a, b
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	y1 := f(x1)
	if conv.RootFound(y1) {
		return x1, nil
	}
	y2 := f(x2)
	if conv.RootFound(y2) {
		return x2, nil
	}
	if y1*y2 > 0 {
		return 0, ErrNoBracketing
	}

	edge := noEdge
	for iter := 0; ; {
		x := (x1*y2 - x2*y1) / (y2 - y1)
		if conv.Converged(x1, x2) {
			return x, nil
		}
		y := f(x)
		if conv.RootFound(y) {
			return x, nil
		}

		switch {
		case y*y1 > 0:
			x1, y1 = x, y
			if edge == edgeLow {
				y2 /= 2
			}
			edge = edgeLow
		case y*y2 > 0:
			x2, y2 = x, y
			if edge == edgeHigh {
				y1 /= 2
			}
			edge = edgeHigh
		default:
			// y is exactly zero.
			return x, nil
		}

		iter++
		if conv.IterationLimit(iter) {
			return 0, ErrNoConvergence
		}
	}
}
