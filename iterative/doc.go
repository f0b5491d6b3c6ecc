// Package iterative finds single roots of arbitrary real functions by
// successive approximation.
//
// Unlike package analytic, which inverts polynomials in closed form, the
// solvers here work on any f: F → F. The caller supplies the function, a
// starting point or bracket, and a Convergency that decides when the
// search is done:
//
//	🎯 Secant           — no bracketing, no derivative, fragile
//	🎯 RegulaFalsi      — bracketing, Illinois edge damping, robust but slow
//	🎯 NewtonRaphson    — derivative required, quadratic convergence
//	🎯 Brent            — bracketing, the usual default choice
//	🎯 InverseQuadratic — bracketing, parabolic interpolation
//
// Every solver returns the approximated root or one of three sentinel
// errors: ErrNoConvergence (iteration limit hit), ErrNoBracketing (the
// initial interval does not straddle zero) or ErrZeroDerivative (the
// method cannot take another step).
//
// Tolerance is the ready-made Convergency for the common case of one
// absolute epsilon on both axes. Trace wraps any Convergency to log each
// check to an io.Writer and count iterations.
//
//	conv := iterative.DefaultTolerance[float64]()
//	root, err := iterative.Brent(0.0, 10.0, f, conv)
package iterative
