package solve

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrSVDFailed indicates the singular value decomposition did not
// converge.
var ErrSVDFailed = errors.New("solve: svd factorization failed")

const machineEps = 2.220446049250313e-16

// cond2 returns the l2 condition number of a, the ratio of its largest
// to smallest singular value. Returns +Inf for rank deficient
// matrices.
func cond2(a mat.Matrix) (float64, error) {
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDNone); !ok {
		return 0, ErrSVDFailed
	}
	s := svd.Values(nil)
	smin := s[len(s)-1]
	if smin == 0 {
		return math.Inf(1), nil
	}
	return s[0] / smin, nil
}

// pseudoInverse computes the Moore-Penrose pseudo-inverse of a via a
// thin SVD, zeroing singular values at or below tol. A non-positive
// tol derives the usual cutoff max(dims)*eps*s_max.
func pseudoInverse(a mat.Matrix, tol float64) (*mat.Dense, error) {
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, ErrSVDFailed
	}

	s := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	if tol <= 0 {
		r, c := a.Dims()
		n := r
		if c > n {
			n = c
		}
		tol = float64(n) * machineEps * s[0]
	}

	k := len(s)
	sinv := mat.NewDense(k, k, nil)
	for i, sv := range s {
		if sv > tol {
			sinv.Set(i, i, 1.0/sv)
		}
	}

	var pinv mat.Dense
	pinv.Product(&v, sinv, u.T())
	return &pinv, nil
}
