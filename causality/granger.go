package causality

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// GrangerCausality measures how much y's past improves a linear prediction
// of x beyond x's own past, using `order` lags for both series.
//
// The returned statistic is 2*ln(std(res_auto)/std(res_joint)), where
// res_auto is the residual of regressing x[order:] on x's lag matrix and
// res_joint the residual of the joint regression on [lag(x) | lag(y)]. It
// approaches 0 when y's lags add no explanatory power and is strictly
// positive when they genuinely reduce residual variance; estimation noise
// can push it mildly negative. GrangerCausality(x, y, m) and
// GrangerCausality(y, x, m) are independent, asymmetric quantities.
//
// If the joint regression fits x perfectly (degenerate data), the residual
// standard deviation is zero and the result is +Inf or NaN; callers must
// guard against degenerate inputs.
//
// Returns ErrLengthMismatch if x and y differ in length and ErrInvalidOrder
// unless 1 <= order < len(x).
func GrangerCausality(x, y []float64, order int) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("%w: len(x)=%d, len(y)=%d", ErrLengthMismatch, len(x), len(y))
	}

	lagX, err := BuildLagMatrix(x, order)
	if err != nil {
		return 0, err
	}
	lagY, err := BuildLagMatrix(y, order)
	if err != nil {
		return 0, err
	}

	target := x[order:]

	resAuto, err := SolveLeastSquares(lagX, target)
	if err != nil {
		return 0, err
	}

	var joint mat.Dense
	joint.Augment(lagX, lagY)

	resJoint, err := SolveLeastSquares(&joint, target)
	if err != nil {
		return 0, err
	}

	return 2 * math.Log(stat.StdDev(resAuto, nil)/stat.StdDev(resJoint, nil)), nil
}

// SignificanceThreshold returns the critical value a Granger causality
// statistic must exceed to reject the hypothesis that the two series are
// non-causally related at significance level p.
//
// Under the null, length*GC is asymptotically chi-square distributed with
// `order` degrees of freedom, so the threshold is the (1-p) quantile of that
// distribution divided by length.
//
// Returns ErrInvalidParameter unless 0 < p < 1, order > 0 and length > 0.
func SignificanceThreshold(p float64, order, length int) (float64, error) {
	if p <= 0 || p >= 1 {
		return 0, fmt.Errorf("%w: p-value %v not in (0,1)", ErrInvalidParameter, p)
	}
	if order <= 0 {
		return 0, fmt.Errorf("%w: order %d must be positive", ErrInvalidParameter, order)
	}
	if length <= 0 {
		return 0, fmt.Errorf("%w: length %d must be positive", ErrInvalidParameter, length)
	}

	chi2 := distuv.ChiSquared{K: float64(order)}
	return chi2.Quantile(1-p) / float64(length), nil
}
