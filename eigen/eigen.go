package eigen

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrEmptyCoefficients is returned by Solve when no coefficients are
	// given.
	ErrEmptyCoefficients = errors.New("eigen: no coefficients")

	// ErrFactorization is returned when the QR iteration fails to
	// converge on the companion matrix.
	ErrFactorization = errors.New("eigen: eigenvalue factorization failed")
)

// An eigenvalue with a tiny imaginary part is a real root perturbed by
// rounding; anything above the cutoff is genuinely complex.
const imagCutoff = 1e-9

// Solve returns the real roots of the normalized polynomial
// x^n + a[0]·x^(n-1) + ... + a[n-1], unsorted and with multiplicities.
//
// The roots are computed as the eigenvalues of the polynomial's
// companion matrix: ones on the subdiagonal, the negated coefficients in
// the last column.
func Solve(a []float64) ([]float64, error) {
	n := len(a)
	if n == 0 {
		return nil, ErrEmptyCoefficients
	}

	companion := mat.NewDense(n, n, nil)
	for i := 0; i+1 < n; i++ {
		companion.Set(i+1, i, 1)
	}
	for i := 0; i < n; i++ {
		// Column entry i holds the negated coefficient of x^i.
		companion.Set(i, n-1, -a[n-1-i])
	}

	var eig mat.Eigen
	if !eig.Factorize(companion, mat.EigenNone) {
		return nil, ErrFactorization
	}

	roots := make([]float64, 0, n)
	for _, v := range eig.Values(nil) {
		re, im := real(v), imag(v)
		if math.Abs(im) <= imagCutoff*math.Max(1, math.Abs(re)) {
			roots = append(roots, re)
		}
	}

	return roots, nil
}
