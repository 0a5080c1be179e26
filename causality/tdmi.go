package causality

import "fmt"

// DelayedMutualInformation computes the mutual information between x and a
// delay-shifted y.
//
// delay == 0 is MutualInformation(x, y) exactly. delay < 0 aligns
// x[-delay:] with y[:len+delay], testing whether x's future aligns with y's
// present (x leads). delay > 0 aligns x[:len-delay] with y[delay:], testing
// whether x's past aligns with y's present (x lags).
//
// Bin edges are fixed from each full series before slicing, so values are
// comparable across delays and identical to the batched sweep's.
//
// Returns ErrLengthMismatch on unequal or empty input and
// ErrInvalidDelayRange if |delay| >= len(x).
func DelayedMutualInformation(x, y []float64, delay, bins int) (float64, error) {
	if err := checkAligned(x, y); err != nil {
		return 0, err
	}
	n := len(x)
	if delay <= -n || delay >= n {
		return 0, fmt.Errorf("%w: delay %d for series of length %d", ErrInvalidDelayRange, delay, n)
	}

	bx := newBinner(x, bins)
	by := newBinner(y, bins)
	return dmiCodes(bx.codes(x), by.codes(y), bx.n, by.n, delay), nil
}

// dmiCodes evaluates the delay alignment on pre-binned code sequences.
func dmiCodes(cx, cy []int, nx, ny, delay int) float64 {
	n := len(cx)
	switch {
	case delay < 0:
		return miCodes(cx[-delay:], cy[:n+delay], nx, ny)
	case delay > 0:
		return miCodes(cx[:n-delay], cy[delay:], nx, ny)
	default:
		return miCodes(cx, cy, nx, ny)
	}
}

// TimeDelayedMutualInformation computes the delayed mutual information of x
// and y at every delay in `delays`, returning one value per delay in input
// order.
//
// The delays must form a contiguous ascending integer range containing 0,
// with both endpoints smaller in magnitude than len(x); anything else is
// ErrInvalidDelayRange. Within that contract the result equals calling
// DelayedMutualInformation for each delay individually, but the sweep bins
// each series once and reuses the integer codes for every delay: the
// non-negative half of the range is covered by a single forward scan whose
// marginal counts are updated incrementally as the alignment window
// shrinks, and the non-positive half by the mirrored scan with the source
// and target roles flipped.
func TimeDelayedMutualInformation(x, y []float64, delays []int, bins int) ([]float64, error) {
	if err := checkAligned(x, y); err != nil {
		return nil, err
	}
	if err := checkDelayRange(delays, len(x)); err != nil {
		return nil, err
	}

	bx := newBinner(x, bins)
	by := newBinner(y, bins)
	cx := bx.codes(x)
	cy := by.codes(y)

	var forward, mirrored []float64
	if last := delays[len(delays)-1]; last > 0 {
		forward = sweepOneSide(cx, cy, bx.n, by.n, last)
	}
	if first := delays[0]; first < 0 {
		mirrored = sweepOneSide(cy, cx, by.n, bx.n, -first)
	}

	out := make([]float64, len(delays))
	for i, d := range delays {
		switch {
		case d > 0:
			out[i] = forward[d]
		case d < 0:
			out[i] = mirrored[-d]
		default:
			out[i] = miCodes(cx, cy, bx.n, by.n)
		}
	}
	return out, nil
}

func checkDelayRange(delays []int, n int) error {
	if len(delays) == 0 {
		return fmt.Errorf("%w: empty delay sequence", ErrInvalidDelayRange)
	}
	for i := 1; i < len(delays); i++ {
		if delays[i] != delays[i-1]+1 {
			return fmt.Errorf("%w: delays must be a contiguous ascending range, got %d after %d",
				ErrInvalidDelayRange, delays[i], delays[i-1])
		}
	}
	first, last := delays[0], delays[len(delays)-1]
	if first > 0 || last < 0 {
		return fmt.Errorf("%w: delay range [%d, %d] does not contain 0", ErrInvalidDelayRange, first, last)
	}
	if -first >= n || last >= n {
		return fmt.Errorf("%w: delay range [%d, %d] exceeds series length %d", ErrInvalidDelayRange, first, last, n)
	}
	return nil
}

// sweepOneSide computes the mutual information of pairs (cs[t], ct[t+d])
// for every d in [0, maxDelay] in one pass over the pre-binned codes.
//
// Stepping from delay d-1 to d drops exactly one sample from each side of
// the alignment window (cs[n-d] from the source, ct[d-1] from the target),
// so the marginal counts are maintained incrementally; only the joint
// counts are re-accumulated, as a tight scan over integer codes with no
// per-delay rebinning.
func sweepOneSide(cs, ct []int, ns, nt, maxDelay int) []float64 {
	n := len(cs)
	msrc := make([]float64, ns)
	mtgt := make([]float64, nt)
	for t := 0; t < n; t++ {
		msrc[cs[t]]++
		mtgt[ct[t]]++
	}

	joint := make([]float64, ns*nt)
	out := make([]float64, maxDelay+1)
	for d := 0; d <= maxDelay; d++ {
		if d > 0 {
			msrc[cs[n-d]]--
			mtgt[ct[d-1]]--
		}
		for i := range joint {
			joint[i] = 0
		}
		for t := 0; t < n-d; t++ {
			joint[cs[t]*nt+ct[t+d]]++
		}
		out[d] = miFromCounts(joint, msrc, mtgt, ns, nt, float64(n-d))
	}
	return out
}
