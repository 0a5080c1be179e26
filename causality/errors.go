package causality

import "errors"

// Sentinel errors returned by the estimators. All validation happens before
// any computation, so a returned error means no partial work was done.
var (
	// ErrInvalidOrder is returned when a regression order is not in
	// [1, len(series)-1].
	ErrInvalidOrder = errors.New("invalid regression order")

	// ErrLengthMismatch is returned when two sequences required to be
	// aligned differ in length, or when an input is empty.
	ErrLengthMismatch = errors.New("sequence length mismatch")

	// ErrInvalidParameter is returned when a p-value, order or length is
	// outside its domain for the significance computation.
	ErrInvalidParameter = errors.New("parameter outside valid domain")

	// ErrInvalidDelayRange is returned when a delay sweep is requested over
	// a range that is not contiguous, does not contain zero, or exceeds the
	// series length.
	ErrInvalidDelayRange = errors.New("invalid delay range")

	// ErrRankDeficient is returned when the least-squares solver cannot
	// produce any solution. The SVD fallback returns a minimum-norm
	// solution for rank-deficient systems, so this is rare.
	ErrRankDeficient = errors.New("rank-deficient design matrix")
)
