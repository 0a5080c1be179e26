package causality

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// BuildLagMatrix builds the lagged design matrix for series x at the given
// order. The result has len(x)-order rows and order columns: column 0 holds
// the lag-1 values, column 1 the lag-2 values, and so on, so that row t
// holds [x[order-1+t], x[order-2+t], ..., x[t]] and aligns with target
// sample x[order+t].
//
// Returns ErrInvalidOrder unless 1 <= order < len(x).
func BuildLagMatrix(x []float64, order int) (*mat.Dense, error) {
	n := len(x)
	if order <= 0 || order >= n {
		return nil, fmt.Errorf("%w: order %d for series of length %d", ErrInvalidOrder, order, n)
	}

	rows := n - order
	data := make([]float64, rows*order)
	for t := 0; t < rows; t++ {
		base := t * order
		for i := 0; i < order; i++ {
			data[base+i] = x[order-1-i+t]
		}
	}
	return mat.NewDense(rows, order, data), nil
}
