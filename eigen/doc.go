// Package eigen finds real roots of a normalized polynomial as the
// eigenvalues of its companion matrix.
//
// This route scales to any degree and needs no bracketing, at the price
// of a looser contract than the rest of the module: results come back in
// no particular order, a multiple root appears once per multiplicity,
// and precision is whatever the QR iteration delivers. Eigenvalues whose
// imaginary part exceeds a small cutoff relative to the real part are
// dropped as genuinely complex.
//
// The coefficient convention matches package polynom: a polynomial of
// degree n is the n trailing coefficients of
//
//	x^n + a[0]·x^(n-1) + ... + a[n-1]
//
// Only float64 is supported; the underlying factorization works in
// double precision.
package eigen
