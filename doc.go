// Package gocausal estimates directional causal influence between pairs of
// scalar time series.
//
// Two complementary estimators are provided: Granger causality, a linear
// regression based measure, and time-delayed mutual information (TDMI), an
// information-theoretic measure. Both operate on plain []float64 sequences
// and share the same regression and histogram machinery.
//
// # Quick Start
//
// Test whether y's past helps predict x:
//
//	gc, _ := causality.GrangerCausality(x, y, 10)
//	thr, _ := causality.SignificanceThreshold(0.001, 10, len(x))
//	if gc > thr {
//	    // y Granger-causes x at the 0.1% level
//	}
//
// Sweep mutual information across delays to find the direction and lag of an
// interaction:
//
//	delays := make([]int, 0, 41)
//	for d := -20; d <= 20; d++ {
//	    delays = append(delays, d)
//	}
//	curve, _ := causality.TimeDelayedMutualInformation(x, y, delays, 0)
//
// # Packages
//
//   - causality: Granger causality, significance thresholds, mutual
//     information and the delayed-MI sweep
//   - timeseries: series containers, CSV loading and descriptive statistics
package gocausal
