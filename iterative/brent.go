package iterative

import "github.com/vorot/roots/core"

// Brent finds a root of f inside [a, b] by combining inverse quadratic
// interpolation, the secant step and bisection.
//
// The usual default among the bracketing methods: it keeps bisection's
// guaranteed progress while taking superlinear steps whenever the
// interpolated candidate behaves. An interpolation step is rejected in
// favour of bisection when it falls outside [(3a+b)/4, b], when it fails
// to halve the previous step, or when the previous step already converged.
//
// Returns ErrNoBracketing when f(a) and f(b) share a sign.
func Brent[F core.Float](a, b F, f Func[F], conv Convergency[F]) (F, error) {
	ya, yb := f(a), f(b)
	if ya*yb > 0 {
		return 0, ErrNoBracketing
	}

	// Keep |f(b)| <= |f(a)| so b is always the better approximation.
	if core.Abs(ya) < core.Abs(yb) {
		a, b = b, a
		ya, yb = yb, ya
	}

	c, yc, d := a, ya, a
	bisected := true

	for iter := 0; ; {
		if conv.RootFound(ya) {
			return a, nil
		}
		if conv.RootFound(yb) {
			return b, nil
		}
		if conv.Converged(a, b) {
			return c, nil
		}

		var s F
		if ya != yc && yb != yc {
			// Inverse quadratic interpolation through the three samples.
			s = a*yb*yc/((ya-yb)*(ya-yc)) +
				b*ya*yc/((yb-ya)*(yb-yc)) +
				c*ya*yb/((yc-ya)*(yc-yb))
		} else {
			// Two samples coincide in y; fall back to the secant step.
			s = b - yb*(b-a)/(yb-ya)
		}

		fallback := (s-b)*(s-(3*a+b)/4) > 0 ||
			(bisected && core.Abs(s-b) >= core.Abs(b-c)/2) ||
			(!bisected && core.Abs(s-b) >= core.Abs(c-d)/2) ||
			(bisected && conv.Converged(b, c)) ||
			(!bisected && conv.Converged(c, d))
		if fallback {
			s = (a + b) / 2
			bisected = true
		} else {
			bisected = false
		}

		ys := f(s)
		d = c
		c, yc = b, yb
		// The retained endpoint keeps its known value; only s costs an
		// evaluation.
		if ya*ys < 0 {
			b, yb = s, ys
		} else {
			a, ya = s, ys
		}
		if core.Abs(ya) < core.Abs(yb) {
			a, b = b, a
			ya, yb = yb, ya
		}

		iter++
		if conv.IterationLimit(iter) {
			return 0, ErrNoConvergence
		}
	}
}
