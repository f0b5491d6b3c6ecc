// Package polynom finds all real roots of a normalized polynomial of any
// degree.
//
// A polynomial of degree n is passed as the n trailing coefficients of
//
//	x^n + a[0]·x^(n-1) + a[1]·x^(n-2) + ... + a[n-1]
//
// with the leading 1 implied. Degrees up to four are delegated to the
// closed-form solvers in package analytic; higher degrees are bracketed
// between the polynomial's critical points (found by recursing on the
// normalized derivative) and polished with iterative.Brent. Results come
// back ascending and deduplicated either way.
//
// The iterative stage inherits the caller's Convergency, so accuracy and
// effort are tunable:
//
//	conv := iterative.NewTolerance(1e-12, 100)
//	roots, err := polynom.Solve([]float64{-15, 85, -225, 274, -120}, conv)
package polynom
