// Package causality implements pairwise causal-influence estimators for
// scalar time series.
//
// Granger causality asks whether the past of one series improves a linear
// prediction of another beyond that series' own past. The statistic is
//
//	GC = 2 * ln( std(res_auto) / std(res_joint) )
//
// where res_auto is the residual of regressing x on its own lags and
// res_joint the residual of regressing x on its own lags plus y's lags.
// Under independence, len(x)*GC is asymptotically chi-square distributed
// with `order` degrees of freedom, which SignificanceThreshold turns into a
// decision threshold for a chosen p-value.
//
// Time-delayed mutual information (TDMI) estimates the binned mutual
// information between x and a delay-shifted y for every delay in a range.
// Negative delays test whether x leads y; positive delays test whether x
// lags y. TimeDelayedMutualInformation bins each series once and reuses the
// integer codes across the whole sweep instead of rebuilding a histogram per
// delay.
//
// All functions are pure: they allocate their own working arrays, never
// retain inputs, and return identical results for identical inputs.
package causality
