package causality

import (
	"fmt"
	"math"
)

// maxInferredBins caps how many distinct values automatic bin selection will
// enumerate before switching to Sturges' rule.
const maxInferredBins = 16

// MutualInformation estimates the mutual information between two aligned
// sequences from a joint 2-D histogram, in nats.
//
// Each axis is discretized into `bins` equal-width bins spanning that
// series' full range. bins <= 0 selects a default: the number of distinct
// values when there are at most 16 (so binary 0/1 data gets exactly 2 bins),
// otherwise Sturges' rule. The plug-in estimate sums
// p(i,j)*ln(p(i,j)/(p(i)*p(j))) over bins with nonzero joint count; zero
// count bins contribute 0. Mutual information is non-negative, but the
// binned plug-in estimator can come out slightly negative from finite-sample
// bias; the bias is not corrected.
//
// Returns ErrLengthMismatch if the sequences differ in length or are empty.
func MutualInformation(x, y []float64, bins int) (float64, error) {
	if err := checkAligned(x, y); err != nil {
		return 0, err
	}
	bx := newBinner(x, bins)
	by := newBinner(y, bins)
	return miCodes(bx.codes(x), by.codes(y), bx.n, by.n), nil
}

func checkAligned(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: len(x)=%d, len(y)=%d", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) == 0 {
		return fmt.Errorf("%w: empty input", ErrLengthMismatch)
	}
	return nil
}

// binner maps sample values to equal-width bin indices. Edges are fixed
// from the full series a binner was built on, so codes stay comparable
// across sub-slices of that series.
type binner struct {
	min   float64
	width float64
	n     int
}

func newBinner(x []float64, bins int) binner {
	if bins <= 0 {
		bins = defaultBins(x)
	}
	lo, hi := x[0], x[0]
	for _, v := range x[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	width := (hi - lo) / float64(bins)
	if width == 0 {
		// Constant series: every sample lands in bin 0.
		width = 1
	}
	return binner{min: lo, width: width, n: bins}
}

// defaultBins picks a discretization for a series when the caller did not
// specify one: the distinct-value count for low-cardinality data, Sturges'
// rule otherwise.
func defaultBins(x []float64) int {
	distinct := make(map[float64]struct{}, maxInferredBins+1)
	for _, v := range x {
		distinct[v] = struct{}{}
		if len(distinct) > maxInferredBins {
			return int(math.Ceil(math.Log2(float64(len(x))))) + 1
		}
	}
	if len(distinct) < 2 {
		return 2
	}
	return len(distinct)
}

func (b binner) code(v float64) int {
	i := int((v - b.min) / b.width)
	if i < 0 {
		i = 0
	}
	// The series maximum sits on the last bin's upper edge.
	if i >= b.n {
		i = b.n - 1
	}
	return i
}

func (b binner) codes(x []float64) []int {
	out := make([]int, len(x))
	for i, v := range x {
		out[i] = b.code(v)
	}
	return out
}

// miCodes computes the plug-in mutual information of two equal-length
// integer code sequences with nx and ny bins.
func miCodes(cx, cy []int, nx, ny int) float64 {
	joint := make([]float64, nx*ny)
	px := make([]float64, nx)
	py := make([]float64, ny)
	for t := range cx {
		joint[cx[t]*ny+cy[t]]++
		px[cx[t]]++
		py[cy[t]]++
	}
	return miFromCounts(joint, px, py, nx, ny, float64(len(cx)))
}

// miFromCounts evaluates sum p(i,j)*ln(p(i,j)/(p(i)p(j))) from raw counts,
// with the 0*ln(0)=0 convention for empty bins.
func miFromCounts(joint, px, py []float64, nx, ny int, n float64) float64 {
	mi := 0.0
	for i := 0; i < nx; i++ {
		if px[i] == 0 {
			continue
		}
		row := joint[i*ny : (i+1)*ny]
		for j, c := range row {
			if c == 0 {
				continue
			}
			mi += (c / n) * math.Log(c*n/(px[i]*py[j]))
		}
	}
	return mi
}
