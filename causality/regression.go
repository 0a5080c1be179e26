package causality

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// svdRankTol is the singular-value tolerance used to pick the effective
// numerical rank in the SVD fallback.
const svdRankTol = 1e-12

// SolveLeastSquares solves min ||target - design*p||_2 for the coefficient
// vector p and returns the residual target - design*p.
//
// The normal equations are tried first; if design'*design is singular or
// badly conditioned the solver falls back to an SVD-based minimum-norm
// solution, so near rank-deficient systems (large order, short series,
// duplicated regressors) still produce a residual instead of failing.
// ErrRankDeficient is returned only if the SVD factorization itself fails.
func SolveLeastSquares(design mat.Matrix, target []float64) ([]float64, error) {
	n, k := design.Dims()
	if n != len(target) {
		return nil, fmt.Errorf("%w: design has %d rows, target has %d samples", ErrLengthMismatch, n, len(target))
	}

	p, err := solveCoefficients(design, target, n, k)
	if err != nil {
		return nil, err
	}

	var fitted mat.VecDense
	fitted.MulVec(design, p)

	residual := make([]float64, n)
	for i := range residual {
		residual[i] = target[i] - fitted.AtVec(i)
	}
	return residual, nil
}

// solveCoefficients computes the least-squares coefficient vector for
// design*p ≈ target.
func solveCoefficients(design mat.Matrix, target []float64, n, k int) (*mat.VecDense, error) {
	v := mat.NewVecDense(n, target)

	// First try: normal equations p = (X'X)^(-1) X'v.
	var xtx mat.Dense
	xtx.Mul(design.T(), design)

	var xtxInv mat.Dense
	if invErr := xtxInv.Inverse(&xtx); invErr == nil {
		var xtv mat.VecDense
		xtv.MulVec(design.T(), v)

		var p mat.VecDense
		p.MulVec(&xtxInv, &xtv)
		return &p, nil
	}

	// Fallback: X'X is singular or badly conditioned. Use SVD-based least
	// squares, which yields the minimum-norm solution.
	var svd mat.SVD
	if ok := svd.Factorize(design, mat.SVDThin); !ok {
		return nil, fmt.Errorf("%w: SVD factorization failed for %dx%d design", ErrRankDeficient, n, k)
	}

	rank := svd.Rank(svdRankTol)
	if rank == 0 {
		// Numerically all-zero design: the minimum-norm solution is p = 0.
		return mat.NewVecDense(k, nil), nil
	}

	rhs := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		rhs.Set(i, 0, target[i])
	}

	var b mat.Dense
	svd.SolveTo(&b, rhs, rank)

	p := mat.NewVecDense(k, nil)
	for i := 0; i < k; i++ {
		p.SetVec(i, b.At(i, 0))
	}
	return p, nil
}
